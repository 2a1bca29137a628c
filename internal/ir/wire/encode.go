package wire

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/frib-daq/genx/internal/ir"
)

// Encoder writes Programs to an output stream.
type Encoder struct {
	w   *bufio.Writer
	buf [8]byte
	err error
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode writes p: the type section followed by the instance section.
func (e *Encoder) Encode(p *ir.Program) error {
	if e.err != nil {
		return e.err
	}
	if err := checkCount(len(p.Types), "types"); err != nil {
		return err
	}
	if err := checkCount(len(p.Instances), "instances"); err != nil {
		return err
	}

	e.u32(uint32(len(p.Types)))
	for _, t := range p.Types {
		e.typeDef(t)
	}
	e.u32(uint32(len(p.Instances)))
	for _, inst := range p.Instances {
		e.field(inst)
	}
	if e.err != nil {
		return e.err
	}
	e.err = e.w.Flush()
	return e.err
}

func checkCount(n int, what string) error {
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("wire: too many %s: %d", what, n)
	}
	return nil
}

func (e *Encoder) typeDef(t ir.TypeDefinition) {
	e.str(t.Name)
	e.u32(uint32(len(t.Fields)))
	for _, f := range t.Fields {
		e.field(f)
	}
}

func (e *Encoder) field(f ir.Field) {
	e.u32(uint32(f.Kind))
	e.str(f.Name)
	e.str(f.TypeName)
	e.u32(f.Elements)
	e.options(f.Options)
}

func (e *Encoder) options(o ir.ValueOptions) {
	e.f64(o.Low)
	e.f64(o.High)
	e.u32(o.Bins)
	e.str(o.Units)
}

func (e *Encoder) str(s string) {
	if e.err != nil {
		return
	}
	if len(s) > MaxStringLen {
		e.err = fmt.Errorf("wire: string of %d bytes exceeds limit", len(s))
		return
	}
	e.u32(uint32(len(s)))
	e.write([]byte(s))
}

func (e *Encoder) u32(v uint32) {
	order.PutUint32(e.buf[:4], v)
	e.write(e.buf[:4])
}

func (e *Encoder) f64(v float64) {
	order.PutUint64(e.buf[:8], math.Float64bits(v))
	e.write(e.buf[:8])
}

func (e *Encoder) write(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}
