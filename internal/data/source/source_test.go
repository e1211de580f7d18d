package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = "Start Time,End Time,Machine ID,Activity Type\n15/01/2024 09:00,15/01/2024 11:30,1,Running\n"

func TestSheetSourceFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	src := NewSheetSource("sheet-id", "109996351")
	src.baseURL = server.URL

	data, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleFeed, string(data))
}

func TestSheetSourceFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	src := NewSheetSource("sheet-id", "wrong-gid")
	src.baseURL = server.URL

	_, err := src.Fetch(context.Background())
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.Status)
}

func TestSheetSourceFetchUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	src := NewSheetSource("sheet-id", "gid")
	src.baseURL = server.URL

	_, err := src.Fetch(context.Background())
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.NotNil(t, fetchErr.Err)
}

func TestSheetSourceURL(t *testing.T) {
	src := NewSheetSource("abc123", "109996351")
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/abc123/export?format=csv&gid=109996351",
		src.URL())
}

func TestFileSourceFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleFeed), 0644))

	src := NewFileSource(path)
	data, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleFeed, string(data))
}

func TestFileSourceMissing(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "absent.csv"))

	_, err := src.Fetch(context.Background())
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}
