// FILE: lixenwraith/ini/io_test.go
package ini

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSerialize tests the canonical output layout
func TestSerialize(t *testing.T) {
	doc := NewDocument()
	doc.Set("B", "x", "1")
	doc.Set("A", "url", "a=b=c")
	doc.Set("A", "empty", "")
	doc.Ensure("Empty")

	assert.Equal(t, "[B]\nx=1\n\n[A]\nurl=a=b=c\nempty=\n\n[Empty]\n\n", string(Serialize(doc)))
	assert.Empty(t, Serialize(NewDocument()))

	var sb strings.Builder
	n, err := WriteTo(&sb, doc)
	require.NoError(t, err)
	assert.Equal(t, int64(sb.Len()), n)
}

// TestSerializeRoundTrip tests that serialized output parses back to the same content
func TestSerializeRoundTrip(t *testing.T) {
	sources := []string{
		sampleINI,
		"; comments are dropped\n[A]\n  spaced =  value  \nurl=x=y\n[B]\n[A]\nlate=1\n",
		"[S]\nempty=\n",
	}

	for _, src := range sources {
		for _, strategy := range strategies {
			first, err := Parse(strings.NewReader(src), strategy)
			require.NoError(t, err)

			second, err := Parse(strings.NewReader(string(Serialize(first))), strategy)
			require.NoError(t, err)

			assert.Equal(t, first.SectionNames(), second.SectionNames())
			assert.Equal(t, first.Map(), second.Map())
			assert.Equal(t, Serialize(first), Serialize(second))
		}
	}
}

// TestAtomicWriteFile tests replacement of file content on disk
func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "out.ini")

	require.NoError(t, atomicWriteFile(path, []byte("[A]\n")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[A]\n", string(data))

	require.NoError(t, OSFileSystem{}.WriteFile(path, []byte("[B]\n")))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[B]\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}
