package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldString(t *testing.T) {
	f := Array("samples", 4, ValueOptions{Low: -0.5, High: 1024, Bins: 512, Units: "ns"})
	want := "Type: array\n" +
		"Name: samples\n" +
		"Typename: \n" +
		"elements: 4\n" +
		"Low = -0.5 High = 1024 bins= 512 units: ns\n"
	assert.Equal(t, want, f.String())
}

func TestValueOptionsStringPrecision(t *testing.T) {
	tests := []struct {
		opts ValueOptions
		want string
	}{
		{ValueOptions{Low: 1.0 / 3, High: 100, Bins: 3}, "Low = 0.333333 High = 100 bins= 3 units: "},
		{ValueOptions{Low: -1234567, High: 1e6, Bins: 1, Units: "keV"}, "Low = -1.23457e+06 High = 1e+06 bins= 1 units: keV"},
		{ValueOptions{Low: 0.0001, High: 2.5e-5, Bins: 10}, "Low = 0.0001 High = 2.5e-05 bins= 10 units: "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.opts.String())
	}
}

func TestTypeDefinitionString(t *testing.T) {
	td := TypeDefinition{Name: "Hit", Fields: []Field{Value("e", DefaultValueOptions())}}
	s := td.String()
	assert.Contains(t, s, "Type: Hit Fields:\n")
	assert.Contains(t, s, "  Type: value\nName: e\n")
}

func TestKindText(t *testing.T) {
	for k := KindValue; k <= KindStructArray; k++ {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var back Kind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}

	var k Kind
	assert.ErrorIs(t, k.UnmarshalText([]byte("matrix")), ErrInvalidKind)
	_, err := Kind(9).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidKind)
	assert.Equal(t, "array of struct", KindStructArray.String())
}
