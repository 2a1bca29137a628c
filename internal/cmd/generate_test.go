package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBinDir installs shell stand-ins for the parser and both backends. The
// parser copies its input to stdout and the backends copy stdin to
// BASENAME.<backend>.
func fakeBinDir(t *testing.T, parser string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("pipeline tests use /bin/sh scripts")
	}
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+body), 0o755))
	}
	write("parser", parser)
	for _, backend := range Backends {
		write(backend, `cat > "$1.`+backend+`"`+"\n")
	}
	return dir
}

func TestPipeline(t *testing.T) {
	bin := fakeBinDir(t, `cat "$1"`+"\n")
	work := t.TempDir()
	input := filepath.Join(work, "event.def")
	require.NoError(t, os.WriteFile(input, []byte("stream bytes"), 0o644))

	for target, backend := range Backends {
		t.Run(target, func(t *testing.T) {
			base := filepath.Join(work, "out-"+target)
			g := &Generate{Target: target, BinDir: bin, Parser: "parser", Input: input, Basename: base}
			var stdout, stderr bytes.Buffer
			require.NoError(t, g.Pipeline(context.Background(), discardLogger(), &stdout, &stderr))

			data, err := os.ReadFile(base + "." + backend)
			require.NoError(t, err)
			assert.Equal(t, "stream bytes", string(data))
		})
	}
}

func TestPipelineParserFailure(t *testing.T) {
	bin := fakeBinDir(t, "echo 'syntax error at line 3' >&2\nexit 3\n")
	work := t.TempDir()
	input := filepath.Join(work, "bad.def")
	require.NoError(t, os.WriteFile(input, nil, 0o644))

	g := &Generate{Target: "root", BinDir: bin, Parser: "parser", Input: input, Basename: filepath.Join(work, "out")}
	var stdout, stderr bytes.Buffer
	err := g.Pipeline(context.Background(), discardLogger(), &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parser: exit status 3")
	assert.Contains(t, stderr.String(), "syntax error at line 3")
}

func TestPipelineMissingBackend(t *testing.T) {
	bin := fakeBinDir(t, `cat "$1"`+"\n")
	require.NoError(t, os.Remove(filepath.Join(bin, "specgenerate")))
	work := t.TempDir()
	input := filepath.Join(work, "event.def")
	require.NoError(t, os.WriteFile(input, nil, 0o644))

	g := &Generate{Target: "spectcl", BinDir: bin, Parser: "parser", Input: input, Basename: filepath.Join(work, "out")}
	err := g.Pipeline(context.Background(), discardLogger(), &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "start specgenerate")
}

func TestPipelineUnknownTarget(t *testing.T) {
	g := &Generate{Target: "geant", BinDir: t.TempDir()}
	err := g.Pipeline(context.Background(), discardLogger(), &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unsupported target 'geant'")
}

func TestBinDirDefaultsToExecutable(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir, err := (&Generate{}).binDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(exe), dir)

	dir, err = (&Generate{BinDir: "/opt/genx/bin"}).binDir()
	require.NoError(t, err)
	assert.Equal(t, "/opt/genx/bin", dir)
}
