package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"apod-wallpaper/apod"
	"apod-wallpaper/download"
	"apod-wallpaper/wallpaper"
	"apod-wallpaper/wallpaper/modes"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context) (*apod.Metadata, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apod.Metadata), args.Error(1)
}

type mockDownloader struct {
	mock.Mock
}

func (m *mockDownloader) Download(ctx context.Context, url, dest string) (string, error) {
	args := m.Called(url, dest)
	return args.String(0), args.Error(1)
}

type mockSetter struct {
	mock.Mock
}

func (m *mockSetter) Set(ctx context.Context, file string) error {
	return m.Called(file).Error(0)
}

func (m *mockSetter) SetMode(ctx context.Context, mode modes.FillStyle) error {
	return m.Called(mode).Error(0)
}

var nebula = &apod.Metadata{Title: "Nebula", Date: "2026-10-18", HDURL: "https://example.com/img.jpg"}

func TestRun_HappyPath(t *testing.T) {
	f, d, s := new(mockFetcher), new(mockDownloader), new(mockSetter)
	f.On("Fetch").Return(nebula, nil)
	d.On("Download", "https://example.com/img.jpg", "/pics/apod.jpg").Return("/pics/apod.jpg", nil)
	s.On("Set", "/pics/apod.jpg").Return(nil)

	p := &Pipeline{Fetcher: f, Downloader: d, Setter: s, Dest: "/pics/apod.jpg"}
	require.NoError(t, p.Run(context.Background()))

	f.AssertExpectations(t)
	d.AssertExpectations(t)
	s.AssertExpectations(t)
	s.AssertNotCalled(t, "SetMode", mock.Anything)
}

func TestRun_FetchFailureStopsPipeline(t *testing.T) {
	f, d, s := new(mockFetcher), new(mockDownloader), new(mockSetter)
	f.On("Fetch").Return(nil, apod.ErrMissingHDURL)

	p := &Pipeline{Fetcher: f, Downloader: d, Setter: s, Dest: "/pics/apod.jpg"}
	err := p.Run(context.Background())
	assert.ErrorIs(t, err, apod.ErrMissingHDURL)
	assert.ErrorContains(t, err, "failed to fetch image data")

	d.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
	s.AssertNotCalled(t, "Set", mock.Anything)
}

func TestRun_DownloadFailureStopsPipeline(t *testing.T) {
	f, d, s := new(mockFetcher), new(mockDownloader), new(mockSetter)
	f.On("Fetch").Return(nebula, nil)
	d.On("Download", mock.Anything, mock.Anything).Return("", errors.New("disk full"))

	p := &Pipeline{Fetcher: f, Downloader: d, Setter: s, Dest: "/pics/apod.jpg"}
	err := p.Run(context.Background())
	assert.ErrorContains(t, err, "failed to download image: disk full")
	s.AssertNotCalled(t, "Set", mock.Anything)
}

func TestRun_SetterFailure(t *testing.T) {
	f, d, s := new(mockFetcher), new(mockDownloader), new(mockSetter)
	f.On("Fetch").Return(nebula, nil)
	d.On("Download", mock.Anything, mock.Anything).Return("/pics/apod.jpg", nil)
	s.On("Set", "/pics/apod.jpg").Return(wallpaper.ErrUnsupportedDesktop)

	p := &Pipeline{Fetcher: f, Downloader: d, Setter: s, Dest: "/pics/apod.jpg", FillMode: modes.Zoom}
	err := p.Run(context.Background())
	assert.ErrorIs(t, err, wallpaper.ErrUnsupportedDesktop)
	s.AssertNotCalled(t, "SetMode", mock.Anything)
}

func TestRun_NoSetter(t *testing.T) {
	f, d := new(mockFetcher), new(mockDownloader)
	f.On("Fetch").Return(nebula, nil)
	d.On("Download", mock.Anything, mock.Anything).Return("/pics/apod.jpg", nil)

	p := &Pipeline{Fetcher: f, Downloader: d, Dest: "/pics/apod.jpg"}
	assert.ErrorIs(t, p.Run(context.Background()), wallpaper.ErrUnsupportedOS)
	d.AssertExpectations(t)
}

func TestRun_FillModeFailureIsNotFatal(t *testing.T) {
	f, d, s := new(mockFetcher), new(mockDownloader), new(mockSetter)
	f.On("Fetch").Return(nebula, nil)
	d.On("Download", mock.Anything, mock.Anything).Return("/pics/apod.jpg", nil)
	s.On("Set", "/pics/apod.jpg").Return(nil)
	s.On("SetMode", modes.Span).Return(errors.New("fill mode span has no KDE equivalent"))

	p := &Pipeline{Fetcher: f, Downloader: d, Setter: s, Dest: "/pics/apod.jpg", FillMode: modes.Span}
	require.NoError(t, p.Run(context.Background()))
	s.AssertExpectations(t)
}

func TestRun_TwiceLeavesOneFile(t *testing.T) {
	var imageHits atomic.Int32
	images := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := imageHits.Add(1)
		_, _ = w.Write([]byte{0xFF, 0xD8, byte(n)})
	}))
	defer images.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title": "Nebula", "hdurl": "` + images.URL + `/hd.jpg"}`))
	}))
	defer api.Close()

	dir := t.TempDir()
	dest := filepath.Join(dir, "apod.jpg")
	s := new(mockSetter)
	s.On("Set", dest).Return(nil)

	p := &Pipeline{
		Fetcher:    apod.NewClient(api.Client(), api.URL, "DEMO_KEY"),
		Downloader: download.NewDownloader(images.Client()),
		Setter:     s,
		Dest:       dest,
	}
	require.NoError(t, p.Run(context.Background()))
	require.NoError(t, p.Run(context.Background()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "apod.jpg", entries[0].Name())

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 2}, got)
	s.AssertNumberOfCalls(t, "Set", 2)
}
