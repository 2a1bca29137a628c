package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger hex-dumps the raw IR bytes a command consumes.
type RawLogger interface {
	Log(data []byte)
}

type rawLogger struct {
	w      io.Writer
	source string
	offset int64
	mu     sync.Mutex
}

// NewRaw returns a RawLogger writing to w and labelling each line with
// source. A nil w yields a logger that drops everything.
func NewRaw(w io.Writer, source string) RawLogger {
	return &rawLogger{w: w, source: source}
}

// Log writes one line per chunk: timestamp, source, stream offset of the
// chunk's first byte, length and hex bytes.
func (r *rawLogger) Log(data []byte) {
	if len(data) == 0 || r.w == nil {
		return
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	line := fmt.Sprintf("%s %s @%d: %d bytes, hex: %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		r.source,
		r.offset,
		len(data),
		hexbuf.String())
	r.offset += int64(len(data))
	_, _ = io.WriteString(r.w, line)
}

// Writer adapts r to an io.Writer so it can observe a stream through an
// io.TeeReader. Writes never fail.
func Writer(r RawLogger) io.Writer {
	return rawWriter{r}
}

type rawWriter struct{ r RawLogger }

func (w rawWriter) Write(p []byte) (int, error) {
	w.r.Log(p)
	return len(p), nil
}
