package wire

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/frib-daq/genx/internal/ir"
)

// preallocation cap for counts read off the wire
const maxPrealloc = 1024

// Decoder reads Programs from an input stream.
type Decoder struct {
	r   io.Reader
	buf [8]byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Trace copies every byte the decoder consumes to w. It must be called before
// Decode.
func (d *Decoder) Trace(w io.Writer) {
	d.r = io.TeeReader(d.r, w)
}

// Decode reads one complete Program. The type section is consumed in full
// before any instance is read. The result is validated; a stream that
// violates the model's naming or reference rules is reported as malformed.
func (d *Decoder) Decode() (*ir.Program, error) {
	p := &ir.Program{}

	nTypes, err := d.u32()
	if err != nil {
		return nil, fmt.Errorf("type count: %w", err)
	}
	p.Types = make([]ir.TypeDefinition, 0, min(nTypes, maxPrealloc))
	for i := uint32(0); i < nTypes; i++ {
		t, err := d.typeDef()
		if err != nil {
			return nil, fmt.Errorf("type %d of %d: %w", i+1, nTypes, err)
		}
		p.Types = append(p.Types, t)
	}

	nInst, err := d.u32()
	if err != nil {
		return nil, fmt.Errorf("instance count: %w", err)
	}
	p.Instances = make([]ir.Field, 0, min(nInst, maxPrealloc))
	for i := uint32(0); i < nInst; i++ {
		f, err := d.field()
		if err != nil {
			return nil, fmt.Errorf("instance %d of %d: %w", i+1, nInst, err)
		}
		p.Instances = append(p.Instances, f)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return p, nil
}

func (d *Decoder) typeDef() (ir.TypeDefinition, error) {
	var t ir.TypeDefinition
	var err error
	if t.Name, err = d.str(); err != nil {
		return t, err
	}
	n, err := d.u32()
	if err != nil {
		return t, err
	}
	t.Fields = make([]ir.Field, 0, min(n, maxPrealloc))
	for i := uint32(0); i < n; i++ {
		f, err := d.field()
		if err != nil {
			return t, fmt.Errorf("%s field %d: %w", t.Name, i+1, err)
		}
		t.Fields = append(t.Fields, f)
	}
	return t, nil
}

func (d *Decoder) field() (ir.Field, error) {
	var f ir.Field
	tag, err := d.u32()
	if err != nil {
		return f, err
	}
	f.Kind = ir.Kind(tag)
	if !f.Kind.Valid() {
		return f, fmt.Errorf("%w: %d", ErrBadKind, tag)
	}
	if f.Name, err = d.str(); err != nil {
		return f, err
	}
	if f.TypeName, err = d.str(); err != nil {
		return f, err
	}
	if f.Elements, err = d.u32(); err != nil {
		return f, err
	}
	f.Options, err = d.options()
	return f, err
}

func (d *Decoder) options() (ir.ValueOptions, error) {
	var o ir.ValueOptions
	var err error
	if o.Low, err = d.f64(); err != nil {
		return o, err
	}
	if o.High, err = d.f64(); err != nil {
		return o, err
	}
	if o.Bins, err = d.u32(); err != nil {
		return o, err
	}
	o.Units, err = d.str()
	return o, err
}

func (d *Decoder) str() (string, error) {
	n, err := d.u32()
	if err != nil {
		return "", err
	}
	if n > MaxStringLen {
		return "", fmt.Errorf("%w: string length %d", ErrMalformed, n)
	}
	if n == 0 {
		return "", nil
	}
	b := make([]byte, n)
	if err := readFull(d.r, b); err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *Decoder) u32() (uint32, error) {
	if err := readFull(d.r, d.buf[:4]); err != nil {
		return 0, err
	}
	return order.Uint32(d.buf[:4]), nil
}

func (d *Decoder) f64() (float64, error) {
	if err := readFull(d.r, d.buf[:8]); err != nil {
		return 0, err
	}
	return math.Float64frombits(order.Uint64(d.buf[:8])), nil
}
