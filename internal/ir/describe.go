package ir

import (
	"fmt"
	"strconv"
	"strings"
)

var kindTokens = [...]string{
	KindValue:       "value",
	KindArray:       "array",
	KindStructure:   "struct",
	KindStructArray: "structarray",
}

// MarshalText renders the kind as the token used in model description files.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, uint32(k))
	}
	return []byte(kindTokens[k]), nil
}

// UnmarshalText accepts the tokens produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, tok := range kindTokens {
		if s == tok {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// formatFloat prints v with six significant digits in the shorter of fixed
// and exponent notation, trailing zeros dropped.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func (o ValueOptions) String() string {
	return fmt.Sprintf("Low = %s High = %s bins= %d units: %s",
		formatFloat(o.Low), formatFloat(o.High), o.Bins, o.Units)
}

func (f Field) String() string {
	var b strings.Builder
	b.WriteString("Type: " + f.Kind.String() + "\n")
	b.WriteString("Name: " + f.Name + "\n")
	b.WriteString("Typename: " + f.TypeName + "\n")
	b.WriteString("elements: " + strconv.FormatUint(uint64(f.Elements), 10) + "\n")
	b.WriteString(f.Options.String() + "\n")
	return b.String()
}

func (t TypeDefinition) String() string {
	var b strings.Builder
	b.WriteString("Type: " + t.Name + " Fields:\n")
	for _, f := range t.Fields {
		b.WriteString("  " + f.String() + "\n")
	}
	return b.String()
}

// String dumps the whole program as a human readable listing.
func (p *Program) String() string {
	var b strings.Builder
	b.WriteString("----------------- types ---------------\n")
	for _, t := range p.Types {
		b.WriteString("==\n")
		b.WriteString(t.String() + "\n")
	}
	b.WriteString("---------------- instances ------------\n")
	for _, inst := range p.Instances {
		b.WriteString("==\n")
		b.WriteString(inst.String() + "\n")
	}
	return b.String()
}
