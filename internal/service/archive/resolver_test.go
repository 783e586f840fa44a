package archive

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_bandcamp "bandcamp-archiver/internal/client/bandcamp/mocks"
	"bandcamp-archiver/internal/client/feed"
	mock_renderer "bandcamp-archiver/internal/renderer/mocks"
)

func fakeImageBody() io.ReadCloser {
	return io.NopCloser(strings.NewReader("img"))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	pageRenderer := mock_renderer.NewMockRenderer(ctrl)
	bandcampClient := mock_bandcamp.NewMockClient(ctrl)

	cfg := newTestConfig(t)
	store := NewStore(cfg, bandcampClient)
	require.NoError(t, store.EnsureLayout())

	releaseURL := "https://foo.bandcamp.com/album/bar"
	raw := json.RawMessage(`{
		"id": 100,
		"item_type": "album",
		"artist": "Foo",
		"art_id": 500,
		"url": "https://foo.bandcamp.com/album/bar",
		"current": {"title": "Bar", "minimum_price": 0},
		"trackinfo": [
			{"id": 101, "title": "One", "title_link": "/track/one", "art_id": 501},
			{"id": 102, "title": "Two", "title_link": "/track/two"},
			{"id": 103, "title": "Three", "title_link": "/track/three", "art_id": 500}
		]
	}`)

	pageRenderer.EXPECT().Navigate(gomock.Any(), releaseURL).Return(nil)
	pageRenderer.EXPECT().ReadTralbumData(gomock.Any()).Return(raw, nil)

	// Only the track without an art_id triggers a track page fetch.
	bandcampClient.EXPECT().
		FetchTrackArtID(gomock.Any(), "https://foo.bandcamp.com/track/two").
		Return(int64(502), nil)

	for _, artworkURL := range []string{
		"https://f4.bcbits.com/img/a500_0.jpg",
		"https://f4.bcbits.com/img/a501_0.jpg",
		"https://f4.bcbits.com/img/a502_0.jpg",
	} {
		bandcampClient.EXPECT().
			DownloadFromURL(gomock.Any(), artworkURL).
			Return(fakeImageBody(), int64(3), nil)
	}

	resolver := NewResolver(pageRenderer, bandcampClient, store)

	result, err := resolver.Resolve(context.Background(),
		feed.Item{URL: releaseURL, Title: "Bar by Foo"},
		&ReleaseRef{Account: "foo", Kind: ReleaseKindAlbum, Slug: "bar"})
	require.NoError(t, err)

	assert.Equal(t, "Foo", result.Metadata.Artist)
	assert.Equal(t, []string{
		"https://f4.bcbits.com/img/a500_0.jpg",
		"https://f4.bcbits.com/img/a501_0.jpg",
		"https://f4.bcbits.com/img/a502_0.jpg",
	}, result.ArtworkURLs)
	assert.Equal(t, int64(3), result.ArtworkSaved)
	assert.Equal(t, int64(9), result.BytesDownloaded)
	assert.Equal(t,
		filepath.Join(cfg.OutputPath, "artwork", "foo", "a500_0.jpg"),
		result.FirstArtworkPath)

	// Metadata lands under the release slug and under the fixed snapshot name.
	for _, filename := range []string{"bar.json", "metadata.json"} {
		content, readErr := os.ReadFile(filepath.Join(cfg.OutputPath, "metadata", "foo", filename))
		require.NoError(t, readErr, filename)
		assert.JSONEq(t, string(raw), string(content), filename)
	}

	for _, filename := range []string{"a500_0.jpg", "a501_0.jpg", "a502_0.jpg"} {
		content, readErr := os.ReadFile(filepath.Join(cfg.OutputPath, "artwork", "foo", filename))
		require.NoError(t, readErr, filename)
		assert.Equal(t, "img", string(content), filename)
	}
}

func TestResolveSingleTrackSkipsItself(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	pageRenderer := mock_renderer.NewMockRenderer(ctrl)
	bandcampClient := mock_bandcamp.NewMockClient(ctrl)

	cfg := newTestConfig(t)
	store := NewStore(cfg, bandcampClient)
	require.NoError(t, store.EnsureLayout())

	releaseURL := "https://foo.bandcamp.com/track/solo"
	raw := json.RawMessage(`{
		"id": 200,
		"item_type": "track",
		"artist": "Foo",
		"art_id": 700,
		"current": {"title": "Solo", "minimum_price": 0},
		"trackinfo": [
			{"id": 200, "title": "Solo", "title_link": "/track/solo"}
		]
	}`)

	pageRenderer.EXPECT().Navigate(gomock.Any(), releaseURL).Return(nil)
	pageRenderer.EXPECT().ReadTralbumData(gomock.Any()).Return(raw, nil)

	// The track entry is the release itself: no back-fill fetch for it.
	bandcampClient.EXPECT().
		DownloadFromURL(gomock.Any(), "https://f4.bcbits.com/img/a700_0.jpg").
		Return(fakeImageBody(), int64(3), nil)

	resolver := NewResolver(pageRenderer, bandcampClient, store)

	result, err := resolver.Resolve(context.Background(),
		feed.Item{URL: releaseURL},
		&ReleaseRef{Account: "foo", Kind: ReleaseKindTrack, Slug: "solo"})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://f4.bcbits.com/img/a700_0.jpg"}, result.ArtworkURLs)
	assert.Equal(t, int64(1), result.ArtworkSaved)
}

func TestResolveBackfillFailureSkipsTrack(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	pageRenderer := mock_renderer.NewMockRenderer(ctrl)
	bandcampClient := mock_bandcamp.NewMockClient(ctrl)

	cfg := newTestConfig(t)
	store := NewStore(cfg, bandcampClient)
	require.NoError(t, store.EnsureLayout())

	releaseURL := "https://foo.bandcamp.com/album/bar"
	raw := json.RawMessage(`{
		"id": 100,
		"item_type": "album",
		"artist": "Foo",
		"art_id": 500,
		"current": {"title": "Bar", "minimum_price": 0},
		"trackinfo": [
			{"id": 101, "title": "One", "title_link": "/track/one"},
			{"id": 102, "title": "Two", "title_link": "/track/two", "art_id": 502}
		]
	}`)

	pageRenderer.EXPECT().Navigate(gomock.Any(), releaseURL).Return(nil)
	pageRenderer.EXPECT().ReadTralbumData(gomock.Any()).Return(raw, nil)

	bandcampClient.EXPECT().
		FetchTrackArtID(gomock.Any(), "https://foo.bandcamp.com/track/one").
		Return(int64(0), errors.New("page gone"))

	for _, artworkURL := range []string{
		"https://f4.bcbits.com/img/a500_0.jpg",
		"https://f4.bcbits.com/img/a502_0.jpg",
	} {
		bandcampClient.EXPECT().
			DownloadFromURL(gomock.Any(), artworkURL).
			Return(fakeImageBody(), int64(3), nil)
	}

	resolver := NewResolver(pageRenderer, bandcampClient, store)

	result, err := resolver.Resolve(context.Background(),
		feed.Item{URL: releaseURL},
		&ReleaseRef{Account: "foo", Kind: ReleaseKindAlbum, Slug: "bar"})
	require.NoError(t, err)

	// The failed back-fill drops that track; the rest of the set survives.
	assert.Equal(t, []string{
		"https://f4.bcbits.com/img/a500_0.jpg",
		"https://f4.bcbits.com/img/a502_0.jpg",
	}, result.ArtworkURLs)
}

func TestResolveArtworkDownloadFailureSkipsFile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	pageRenderer := mock_renderer.NewMockRenderer(ctrl)
	bandcampClient := mock_bandcamp.NewMockClient(ctrl)

	cfg := newTestConfig(t)
	store := NewStore(cfg, bandcampClient)
	require.NoError(t, store.EnsureLayout())

	releaseURL := "https://foo.bandcamp.com/album/bar"
	raw := json.RawMessage(`{
		"id": 100,
		"item_type": "album",
		"artist": "Foo",
		"art_id": 500,
		"current": {"title": "Bar", "minimum_price": 0},
		"trackinfo": [
			{"id": 101, "title": "One", "title_link": "/track/one", "art_id": 501}
		]
	}`)

	pageRenderer.EXPECT().Navigate(gomock.Any(), releaseURL).Return(nil)
	pageRenderer.EXPECT().ReadTralbumData(gomock.Any()).Return(raw, nil)

	// DownloadTo retries, so the broken link is hit once per attempt.
	bandcampClient.EXPECT().
		DownloadFromURL(gomock.Any(), "https://f4.bcbits.com/img/a500_0.jpg").
		Return(nil, int64(0), errors.New("connection reset")).
		Times(int(cfg.DownloadRetryCount))
	bandcampClient.EXPECT().
		DownloadFromURL(gomock.Any(), "https://f4.bcbits.com/img/a501_0.jpg").
		Return(fakeImageBody(), int64(3), nil)

	resolver := NewResolver(pageRenderer, bandcampClient, store)

	result, err := resolver.Resolve(context.Background(),
		feed.Item{URL: releaseURL},
		&ReleaseRef{Account: "foo", Kind: ReleaseKindAlbum, Slug: "bar"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.ArtworkSaved)
	assert.Equal(t,
		filepath.Join(cfg.OutputPath, "artwork", "foo", "a501_0.jpg"),
		result.FirstArtworkPath)
}

func TestResolveMissingReleaseData(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	pageRenderer := mock_renderer.NewMockRenderer(ctrl)
	bandcampClient := mock_bandcamp.NewMockClient(ctrl)

	cfg := newTestConfig(t)
	store := NewStore(cfg, bandcampClient)

	releaseURL := "https://foo.bandcamp.com/album/gone"

	pageRenderer.EXPECT().Navigate(gomock.Any(), releaseURL).Return(nil)
	pageRenderer.EXPECT().ReadTralbumData(gomock.Any()).
		Return(nil, errors.New("release data object is missing"))

	resolver := NewResolver(pageRenderer, bandcampClient, store)

	result, err := resolver.Resolve(context.Background(),
		feed.Item{URL: releaseURL},
		&ReleaseRef{Account: "foo", Kind: ReleaseKindAlbum, Slug: "gone"})
	require.Error(t, err)
	assert.Nil(t, result)

	// Nothing persisted for an unreadable release.
	_, statErr := os.Stat(filepath.Join(cfg.OutputPath, "metadata", "foo"))
	assert.True(t, os.IsNotExist(statErr))
}
