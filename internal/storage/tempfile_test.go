package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func TestTempStore_SaveAndCleanup(t *testing.T) {
	store, err := NewTempStore(t.TempDir())
	require.NoError(t, err)

	path, cleanup, err := store.Save(newFileHeader(t, "receipt.jpg", []byte("image bytes")))
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("image bytes"), written)
	assert.Equal(t, ".jpg", path[len(path)-4:])

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// calling cleanup again is harmless
	cleanup()
}

func TestTempStore_UniqueNames(t *testing.T) {
	store, err := NewTempStore(t.TempDir())
	require.NoError(t, err)

	header := newFileHeader(t, "receipt.png", []byte("img"))

	first, cleanupFirst, err := store.Save(header)
	require.NoError(t, err)
	defer cleanupFirst()

	second, cleanupSecond, err := store.Save(header)
	require.NoError(t, err)
	defer cleanupSecond()

	assert.NotEqual(t, first, second)
}

func TestTempStore_DefaultExtension(t *testing.T) {
	store, err := NewTempStore(t.TempDir())
	require.NoError(t, err)

	path, cleanup, err := store.Save(newFileHeader(t, "receipt", []byte("img")))
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, ".png", path[len(path)-4:])
}

func TestNewTempStore_CreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/uploads"
	_, err := NewTempStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
