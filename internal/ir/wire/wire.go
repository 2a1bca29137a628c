// Package wire streams an ir.Program between the front end and a backend
// process.
//
// The format is private to one build on one host: counts and lengths are
// 4-byte unsigned integers and floats are 8-byte IEEE-754 values, all in the
// native byte order. There is no header, version or checksum.
//
//	string        = u32 length, bytes
//	ValueOptions  = f64 low, f64 high, u32 bins, string units
//	Field         = u32 kind, string name, string typeName, u32 elements, ValueOptions
//	Type          = string name, u32 fieldCount, Field...
//	Program       = u32 typeCount, Type..., u32 instanceCount, Field...
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/frib-daq/genx/internal/ir"
)

// MaxStringLen bounds a single decoded string. Longer lengths can only come
// from a corrupt stream.
const MaxStringLen = 1 << 20

var (
	ErrTruncated = errors.New("wire: truncated input")
	ErrMalformed = errors.New("wire: malformed input")
	ErrBadKind   = errors.New("wire: unknown field kind")
)

var order = binary.NativeEndian

// Marshal returns the encoding of p.
func Marshal(p *ir.Program) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a complete Program from data. Trailing bytes are an error.
func Unmarshal(data []byte) (*ir.Program, error) {
	r := bytes.NewReader(data)
	d := &Decoder{r: r}
	p, err := d.Decode()
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, ErrMalformed
	}
	return p, nil
}

// readFull maps short reads onto ErrTruncated.
func readFull(r io.Reader, b []byte) error {
	if _, err := io.ReadFull(r, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return errors.Join(ErrTruncated, io.ErrUnexpectedEOF)
		}
		return err
	}
	return nil
}
