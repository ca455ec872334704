package output

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/repoextract/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *domain.Document {
	return &domain.Document{
		RepoURL: "https://github.com/user/repo.git",
		Tree:    "└── a.py\n",
		Blocks:  []string{"<a.py>\nprint(1)\n</a.py>"},
	}
}

func TestNewWriter(t *testing.T) {
	tests := []struct {
		name   string
		opts   WriterOptions
		stdout bool
	}{
		{name: "empty path writes stdout", opts: WriterOptions{}, stdout: true},
		{name: "dash writes stdout", opts: WriterOptions{Path: "-"}, stdout: true},
		{name: "file path", opts: WriterOptions{Path: "out.txt"}, stdout: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(tt.opts)
			assert.Equal(t, tt.stdout, w.ToStdout())
			assert.NotNil(t, w.stdout)
		})
	}
}

func TestWriter_WriteStdout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WriterOptions{Stdout: &buf})

	doc := testDocument()
	require.NoError(t, w.Write(context.Background(), doc))
	assert.Equal(t, doc.String()+"\n", buf.String())
}

func TestWriter_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.txt")
	w := NewWriter(WriterOptions{Path: path})

	doc := testDocument()
	require.NoError(t, w.Write(context.Background(), doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.String(), string(data))
	assert.NoFileExists(t, path+".json")
}

func TestWriter_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	err := NewWriter(WriterOptions{Path: path}).Write(context.Background(), testDocument())
	assert.ErrorIs(t, err, domain.ErrOutputExists)

	data, _ := os.ReadFile(path)
	assert.Equal(t, "old", string(data))

	require.NoError(t, NewWriter(WriterOptions{Path: path, Force: true}).Write(context.Background(), testDocument()))
	data, _ = os.ReadFile(path)
	assert.Equal(t, testDocument().String(), string(data))
}

func TestWriter_JSONMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w := NewWriter(WriterOptions{Path: path, JSONMetadata: true})

	doc := testDocument()
	require.NoError(t, w.Write(context.Background(), doc))

	data, err := os.ReadFile(path + ".json")
	require.NoError(t, err)

	var meta Metadata
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Equal(t, doc.RepoURL, meta.RepoURL)
	assert.Equal(t, 1, meta.FileCount)
	assert.Equal(t, len(doc.String()), meta.Bytes)
	assert.False(t, meta.GeneratedAt.IsZero())
}

func TestWriter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewWriter(WriterOptions{Stdout: &buf}).Write(ctx, testDocument())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}
