package common

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// IndexWidth is the number of decimal digits needed to print the largest
// index of an n-element array with a consistent width, floor(log10(n)) + 1.
// Counting digits keeps the result exact at powers of ten, where a floating
// point log10 can land just below the integer.
func IndexWidth(n uint32) int {
	if n == 0 {
		return 1
	}
	return len(strconv.FormatUint(uint64(n), 10))
}

// IndexFormat returns the printf conversion for the padded index of an
// n-element array, e.g. "%02d" for 12 elements.
func IndexFormat(n uint32) string {
	return fmt.Sprintf("%%0%dd", IndexWidth(n))
}

// Identifier turns s into a valid C++ identifier. Characters outside
// [A-Za-z0-9_] become '_' and a leading digit gets a '_' prefix.
func Identifier(s string) string {
	if s == "" {
		return "_"
	}
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// BaseName strips directories from an output base name, so
// "~/rootstuff/base" yields "base".
func BaseName(base string) string {
	return filepath.Base(base)
}
