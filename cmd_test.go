package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestExecute_DeleteAndComment(t *testing.T) {
	source := filepath.Join("testdata", "ftl.cpp")

	for _, tt := range []struct {
		op       string
		expected string
	}{
		{"delete", "ftl_delete.cpp"},
		{"comment", "ftl_comment.cpp"},
	} {
		t.Run(tt.op, func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join("testdata", tt.expected))
			require.NoError(t, err)

			stdout, stderr, code := runCLI(t, source, tt.op)
			assert.Equal(t, 0, code)
			assert.Empty(t, stderr)
			assert.Equal(t, string(want), stdout)
		})
	}
}

func TestExecute_InvalidUsage(t *testing.T) {
	cases := [][]string{
		{},
		{"only-file.cpp"},
		{"a.cpp", "remove"},
		{"a.cpp", "delete", "extra"},
		{"--no-such-flag", "a.cpp", "delete"},
	}

	for _, args := range cases {
		stdout, stderr, code := runCLI(t, args...)
		assert.Equal(t, 0, code, "args %v", args)
		assert.Empty(t, stderr, "args %v", args)
		assert.Contains(t, stdout, "Использование: nolog", "args %v", args)
	}
}

func TestExecute_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.cpp")

	stdout, stderr, code := runCLI(t, missing, "delete")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, missing)
}

func TestExecute_FlagsOverrideConfig(t *testing.T) {
	config := writeTempFile(t, "nolog.toml", "trigger = \"printf(\"\nprefix = \"--\"\n")
	source := writeTempFile(t, "main.c", "printf(\"a\");\nLOG(x);\nputs(y);\n")

	stdout, _, code := runCLI(t, "--config", config, source, "comment")
	assert.Equal(t, 0, code)
	assert.Equal(t, "--printf(\"a\");\nLOG(x);\nputs(y);\n", stdout)

	stdout, _, code = runCLI(t, "-f", config, "--trigger", "LOG(", source, "comment")
	assert.Equal(t, 0, code)
	assert.Equal(t, "printf(\"a\");\n--LOG(x);\nputs(y);\n", stdout)
}

func TestExecute_InvalidPrefix(t *testing.T) {
	source := writeTempFile(t, "main.cpp", "x;\n")

	stdout, stderr, code := runCLI(t, "--prefix", "#", source, "comment")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "префикс")
}

func TestExecute_Glob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.cpp"), []byte("a();\nstd::cout << 1;\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.cpp"), []byte("std::cout << 2\n  ;\nb();\n"), 0o644))

	stdout, _, code := runCLI(t, filepath.Join(dir, "*.cpp"), "delete")
	assert.Equal(t, 0, code)
	assert.Equal(t, "a();\nb();\n", stdout)
}

func TestExecute_Clipboard(t *testing.T) {
	written := stubClipboard(t, "std::cout << 1;\nkeep();\n", nil)

	stdout, stderr, code := runCLI(t, "--clipboard", "--to-clipboard", "-v", "comment")
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "//std::cout << 1;\nkeep();\n", *written)
	assert.Contains(t, stderr, "[nolog] ")
	assert.Contains(t, stderr, "строки 1-1")
}

func TestExecute_VerboseTruncated(t *testing.T) {
	source := filepath.Join("testdata", "truncated.cpp")

	stdout, stderr, code := runCLI(t, "--verbose", source, "delete")
	assert.Equal(t, 0, code)
	assert.Equal(t, "void dump() {\n", stdout)
	assert.Contains(t, stderr, "строки 2-3 (нет завершающей ';' до конца файла)")
}

func TestExecute_LiteralNameWithGlobChars(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "log[1].cpp"), []byte("real();\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "log1.cpp"), []byte("wrong();\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a{b}.cpp"), []byte("std::cout << 1;\nab();\n"), 0o644))

	stdout, stderr, code := runCLI(t, filepath.Join(dir, "log[1].cpp"), "delete")
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "real();\n", stdout)

	stdout, stderr, code = runCLI(t, filepath.Join(dir, "a{b}.cpp"), "delete")
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "ab();\n", stdout)
}

func TestExecute_IgnoresConfigInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nolog.yaml"), []byte("trigger: keep\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.cpp"), []byte("std::cout << 1;\nkeep();\n"), 0o644))
	testChdir(t, dir)

	stdout, _, code := runCLI(t, "main.cpp", "delete")
	assert.Equal(t, 0, code)
	assert.Equal(t, "keep();\n", stdout)
}

// testChdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
