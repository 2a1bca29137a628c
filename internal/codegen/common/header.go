package common

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/frib-daq/genx/internal/ir"
	"github.com/frib-daq/genx/internal/ir/wire"
)

// Digest fingerprints a program by hashing its wire encoding, so two runs
// over the same declarations stamp the same value into their output.
func Digest(prog *ir.Program) (string, error) {
	data, err := wire.Marshal(prog)
	if err != nil {
		return "", fmt.Errorf("encode program for digest: %w", err)
	}
	sum := blake2b.Sum256(data)
	return "blake2b-256:" + hex.EncodeToString(sum[:]), nil
}

// FileHeader renders the comment block placed at the top of every generated
// file.
func FileHeader(program, filename, brief, digest string) (string, error) {
	banner, err := ProgramVersion(program)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("/**\n")
	b.WriteString("*  @file  " + filename + "\n")
	b.WriteString("*  @brief " + brief + "\n")
	b.WriteString("*\n")
	b.WriteString("*   This file was generated by " + banner + "\n")
	b.WriteString("*   IR digest: " + digest + "\n")
	b.WriteString("*   Do NOT edit by hand\n")
	b.WriteString("*/\n")
	return b.String(), nil
}
