package archive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bandcamp-archiver/internal/client/bandcamp"
	"bandcamp-archiver/internal/config"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		OutputPath:               t.TempDir(),
		MetadataDirname:          "metadata",
		ArtworkDirname:           "artwork",
		FlacsDirname:             "flacs",
		RipsDirname:              "rips",
		DownloadRetryCount:       2,
		ParsedDownloadRetryDelay: time.Millisecond,
	}
}

func newTestStore(t *testing.T) (Store, *config.Config) {
	t.Helper()

	cfg := newTestConfig(t)

	client, err := bandcamp.NewClient()
	require.NoError(t, err)

	return NewStore(cfg, client), cfg
}

func TestEnsureLayout(t *testing.T) {
	t.Parallel()

	store, cfg := newTestStore(t)
	require.NoError(t, store.EnsureLayout())

	for _, dir := range []string{"metadata", "artwork", "flacs", "flacs/free", "rips"} {
		info, err := os.Stat(filepath.Join(cfg.OutputPath, dir))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	// Idempotent: pre-existing directories are not an error.
	assert.NoError(t, store.EnsureLayout())
}

func TestEnsureAccountLayout(t *testing.T) {
	t.Parallel()

	store, cfg := newTestStore(t)
	require.NoError(t, store.EnsureLayout())
	require.NoError(t, store.EnsureAccountLayout("someband"))

	for _, dir := range []string{
		"metadata/someband",
		"artwork/someband",
		"flacs/free/someband",
		"rips/someband",
	} {
		info, err := os.Stat(filepath.Join(cfg.OutputPath, dir))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	assert.NoError(t, store.EnsureAccountLayout("someband"))
}

func TestWrite(t *testing.T) {
	t.Parallel()

	store, cfg := newTestStore(t)
	require.NoError(t, store.EnsureLayout())
	require.NoError(t, store.EnsureAccountLayout("someband"))

	relPath := store.MetadataFile("someband", "bar.json")
	require.NoError(t, store.Write(relPath, []byte(`{"id":1}`)))

	content, err := os.ReadFile(filepath.Join(cfg.OutputPath, "metadata", "someband", "bar.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(content))
}

func TestDownloadTo(t *testing.T) {
	t.Parallel()

	payload := []byte("fake image data")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	store, cfg := newTestStore(t)
	require.NoError(t, store.EnsureLayout())
	require.NoError(t, store.EnsureAccountLayout("someband"))

	relPath := store.ArtworkFile("someband", "a500_0.jpg")

	written, err := store.DownloadTo(context.Background(), server.URL+"/img/a500_0.jpg", relPath)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), written)

	content, err := os.ReadFile(filepath.Join(cfg.OutputPath, "artwork", "someband", "a500_0.jpg"))
	require.NoError(t, err)
	assert.Equal(t, payload, content)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Join(cfg.OutputPath, "artwork", "someband"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDownloadToBrokenLink(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	store, cfg := newTestStore(t)
	require.NoError(t, store.EnsureLayout())
	require.NoError(t, store.EnsureAccountLayout("someband"))

	relPath := store.ArtworkFile("someband", "missing.jpg")

	_, err := store.DownloadTo(context.Background(), server.URL+"/img/missing.jpg", relPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, bandcamp.ErrUnexpectedHTTPStatus)

	// Nothing written on failure.
	_, statErr := os.Stat(filepath.Join(cfg.OutputPath, "artwork", "someband", "missing.jpg"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestStorePathHelpers(t *testing.T) {
	t.Parallel()

	store, cfg := newTestStore(t)

	assert.Equal(t, filepath.Join("metadata", "someband", "metadata.json"),
		store.MetadataFile("someband", "metadata.json"))
	assert.Equal(t, filepath.Join("artwork", "someband", "a1_0.jpg"),
		store.ArtworkFile("someband", "a1_0.jpg"))
	assert.Equal(t, filepath.Join("flacs", "free", "someband", "Title.flac"),
		store.FreeAudioFile("someband", "Title.flac"))
	assert.Equal(t, filepath.Join(cfg.OutputPath, "metadata"),
		store.AbsolutePath("metadata"))
}
