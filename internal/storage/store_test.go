package storage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GiulianoD/vports/internal/config"
)

func newStore(t *testing.T, maxFileBytes int64, maxFiles int) *Store {
	t.Helper()
	store, err := New(config.UploadConfig{
		Dir:          t.TempDir(),
		MaxFileBytes: maxFileBytes,
		MaxFiles:     maxFiles,
	})
	require.NoError(t, err)
	return store
}

// fileHeaders builds real multipart.FileHeader values by round-tripping a
// multipart body through the HTTP machinery, the same way gin receives them.
func fileHeaders(t *testing.T, contents ...string) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for i, content := range contents {
		fw, err := mw.CreateFormFile("anexos", fmt.Sprintf("arquivo-%d.txt", i))
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["anexos"]
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	n := 0
	for _, e := range entries {
		if !e.IsDir() {
			n++
		}
	}
	return n
}

func TestStageAndCommit(t *testing.T) {
	store := newStore(t, 1024, 10)

	staged, err := store.Stage(fileHeaders(t, "conteúdo um", "conteúdo dois"))
	require.NoError(t, err)

	attachments := staged.Attachments()
	require.Len(t, attachments, 2)
	assert.Equal(t, "arquivo-0.txt", attachments[0].Nome)
	assert.Equal(t, int64(len("conteúdo um")), attachments[0].Tamanho)

	// Before commit the public dir holds nothing.
	assert.Equal(t, 0, countFiles(t, store.Dir()))

	require.NoError(t, staged.Commit())

	assert.Equal(t, 2, countFiles(t, store.Dir()))
	for _, a := range attachments {
		_, err := os.Stat(a.Caminho)
		assert.NoError(t, err, "committed file %s must exist", a.Caminho)
	}
	assert.Equal(t, 0, countFiles(t, filepath.Join(store.Dir(), ".staging")))
}

func TestStageAndDiscard(t *testing.T) {
	store := newStore(t, 1024, 10)

	staged, err := store.Stage(fileHeaders(t, "um", "dois"))
	require.NoError(t, err)

	staged.Discard()

	assert.Equal(t, 0, countFiles(t, store.Dir()))
	assert.Equal(t, 0, countFiles(t, filepath.Join(store.Dir(), ".staging")))
}

func TestStage_NoFiles(t *testing.T) {
	store := newStore(t, 1024, 10)

	staged, err := store.Stage(nil)
	require.NoError(t, err)
	assert.Nil(t, staged.Attachments())
	assert.NoError(t, staged.Commit())
}

func TestStage_TooManyFiles(t *testing.T) {
	store := newStore(t, 1024, 2)

	_, err := store.Stage(fileHeaders(t, "a", "b", "c"))

	assert.ErrorIs(t, err, ErrTooManyFiles)
}

func TestStage_FileTooLarge(t *testing.T) {
	store := newStore(t, 4, 10)

	_, err := store.Stage(fileHeaders(t, "pequeno mas não o bastante"))

	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Equal(t, 0, countFiles(t, filepath.Join(store.Dir(), ".staging")), "no staged leftovers after rejection")
}

func TestCommit_Twice(t *testing.T) {
	store := newStore(t, 1024, 10)

	staged, err := store.Stage(fileHeaders(t, "um"))
	require.NoError(t, err)

	require.NoError(t, staged.Commit())
	assert.NoError(t, staged.Commit(), "second commit is a no-op")
}

func TestUniqueName_SanitizesSeparators(t *testing.T) {
	name := uniqueName("../etc/passwd")
	assert.NotContains(t, name, "/")
	assert.Contains(t, name, "passwd")
}
