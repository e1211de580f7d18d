package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/SiddiqueAhmad/ai-costing/internal/util"
)

// Source is anything that can produce the raw CSV feed.
type Source interface {
	// Fetch returns the raw CSV payload, header line included.
	Fetch(ctx context.Context) ([]byte, error)

	// Name identifies the source for logging
	Name() string
}

// FetchError wraps any failure to retrieve the feed. The pipeline aborts with
// an empty result set on a FetchError; there is no partial aggregation over an
// incomplete fetch.
type FetchError struct {
	Source string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: unexpected status code %d", e.Source, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

const sheetExportURL = "https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s"

// SheetSource fetches the activity feed from a spreadsheet CSV export
// endpoint. SheetId selects the document and Gid the tab; a wrong Gid is a
// configuration error surfaced as a fetch failure, not a pipeline bug.
type SheetSource struct {
	SheetId string
	Gid     string

	baseURL    string
	httpClient *http.Client
}

// NewSheetSource creates a source for the given spreadsheet and tab.
func NewSheetSource(sheetId, gid string) *SheetSource {
	return &SheetSource{
		SheetId: sheetId,
		Gid:     gid,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// URL returns the export endpoint this source fetches from.
func (s *SheetSource) URL() string {
	if s.baseURL != "" {
		return s.baseURL
	}
	return fmt.Sprintf(sheetExportURL, s.SheetId, s.Gid)
}

// Name identifies the source for logging
func (s *SheetSource) Name() string {
	return fmt.Sprintf("sheet %s/%s", s.SheetId, s.Gid)
}

// Fetch downloads the CSV export.
func (s *SheetSource) Fetch(ctx context.Context) ([]byte, error) {
	url := s.URL()
	util.LogDebug(fmt.Sprintf("Fetching activity feed from %s", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Source: s.Name(), Err: err}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Source: s.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Source: s.Name(), Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: s.Name(), Err: err}
	}

	util.LogDebug(fmt.Sprintf("Fetched %d bytes from %s", len(body), s.Name()))
	return body, nil
}

// FileSource reads the feed from a local CSV file, for offline runs and tests.
type FileSource struct {
	Path string
}

// NewFileSource creates a source reading from the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name identifies the source for logging
func (s *FileSource) Name() string {
	return fmt.Sprintf("file %s", s.Path)
}

// Fetch reads the CSV file.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &FetchError{Source: s.Name(), Err: err}
	}
	return data, nil
}
