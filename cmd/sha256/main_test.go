package main

import (
	"bytes"
	stdsha256 "crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

const (
	emptyHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	abcHash   = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
)

func runWith(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out)
	return out.String(), err
}

func TestPrompt(t *testing.T) {
	out, err := runWith(t, "abc\n")
	assert.NoError(t, err)
	assert.Equal(t, out, "Enter text: SHA-256 hash: "+abcHash+"\n")
}

func TestLineEndings(t *testing.T) {
	for _, in := range []string{"abc", "abc\n", "abc\r\n", "abc\nignored\n"} {
		out, err := runWith(t, in, "-q")
		assert.NoError(t, err)
		assert.Equal(t, out, "SHA-256 hash: "+abcHash+"\n")
	}
}

func TestEmptyLine(t *testing.T) {
	out, err := runWith(t, "\n", "-q")
	assert.NoError(t, err)
	assert.Equal(t, out, "SHA-256 hash: "+emptyHash+"\n")
}

func TestInputErrors(t *testing.T) {
	_, err := runWith(t, "")
	assert.Error(t, err)

	_, err = runWith(t, "\xff\xfe\n")
	assert.Error(t, err)

	_, err = runWith(t, "abc\n", "-nope")
	assert.Error(t, err)
}

func TestHelp(t *testing.T) {
	for _, arg := range []string{"-h", "-help", "--help"} {
		out, err := runWith(t, "abc\n", arg)
		assert.NoError(t, err)
		assert.Equal(t, out, "")
	}
}

func TestTrace(t *testing.T) {
	out, err := runWith(t, strings.Repeat("a", 100)+"\n", "-q", "-trace")
	assert.NoError(t, err)

	assert.Equal(t, strings.Contains(out, "Chunk"), true)
	assert.Equal(t, strings.Contains(out, "State"), true)

	sum := stdsha256.Sum256([]byte(strings.Repeat("a", 100)))
	digest := hex.EncodeToString(sum[:])
	assert.Equal(t, strings.HasSuffix(out, "SHA-256 hash: "+digest+"\n"), true)

	// two chunks, the last state is the digest
	assert.Equal(t, strings.Count(out, digest), 2)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "empty.txt")
	assert.NoError(t, os.WriteFile(a, []byte("abc"), 0o644))
	assert.NoError(t, os.WriteFile(b, nil, 0o644))

	out, err := runWith(t, "", a, b)
	assert.NoError(t, err)
	assert.Equal(t, strings.Contains(out, abcHash), true)
	assert.Equal(t, strings.Contains(out, emptyHash), true)
	assert.Equal(t, strings.Contains(out, "a.txt"), true)

	out, err = runWith(t, "", "-trace", a)
	assert.NoError(t, err)
	assert.Equal(t, strings.Count(out, abcHash), 2)

	_, err = runWith(t, "", filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
