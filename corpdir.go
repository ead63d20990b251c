package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

const maxSearchResults = 10

// CorpStore is where the company directory lives between runs.
type CorpStore interface {
	LoadCorps(ctx context.Context) ([]Corp, error)
	SaveCorps(ctx context.Context, corps []Corp) error
}

// SearchResult is one autocomplete hit.
type SearchResult struct {
	CorpName  string `json:"corp_name"`
	CorpCode  string `json:"corp_code"`
	StockCode string `json:"stock_code"`
}

// CorpDirectory is the in-memory name to code lookup used by search. It is
// read-only after construction and safe to share between requests.
type CorpDirectory struct {
	corps  []Corp
	lower  []string
	byCode map[string]Corp
}

func NewCorpDirectory(corps []Corp) *CorpDirectory {
	sorted := make([]Corp, len(corps))
	copy(sorted, corps)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CorpName == sorted[j].CorpName {
			return sorted[i].CorpCode < sorted[j].CorpCode
		}
		return sorted[i].CorpName < sorted[j].CorpName
	})

	dir := &CorpDirectory{
		corps:  sorted,
		lower:  make([]string, len(sorted)),
		byCode: make(map[string]Corp, len(sorted)),
	}
	for i, c := range sorted {
		dir.lower[i] = strings.ToLower(c.CorpName)
		dir.byCode[c.CorpCode] = c
	}
	return dir
}

// LoadCorpDirectory builds the directory from a store.
func LoadCorpDirectory(ctx context.Context, store CorpStore, logger *zerolog.Logger) (*CorpDirectory, error) {
	corps, err := store.LoadCorps(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("companies", len(corps)).Msg("loaded corp directory")
	return NewCorpDirectory(corps), nil
}

func (d *CorpDirectory) Len() int {
	return len(d.corps)
}

// Search does a case-insensitive substring match on company names and
// returns at most 10 hits.
func (d *CorpDirectory) Search(query string) []SearchResult {
	results := []SearchResult{}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || d == nil {
		return results
	}
	for i, name := range d.lower {
		if !strings.Contains(name, query) {
			continue
		}
		c := d.corps[i]
		results = append(results, SearchResult{CorpName: c.CorpName, CorpCode: c.CorpCode, StockCode: c.StockCode})
		if len(results) == maxSearchResults {
			break
		}
	}
	return results
}

// Lookup finds a company by corp code, tolerating missing zero padding.
func (d *CorpDirectory) Lookup(corpCode string) (Corp, bool) {
	if d == nil {
		return Corp{}, false
	}
	c, ok := d.byCode[padCorpCode(corpCode)]
	return c, ok
}

// jsonCorpStore keeps the directory in data/corpCodes.json as
// {"<corp_name>": {"corp_code": "...", "stock_code": "..."}}.
type jsonCorpStore struct {
	path string
}

type jsonCorpEntry struct {
	CorpCode  string `json:"corp_code"`
	StockCode string `json:"stock_code"`
}

func newJSONCorpStore(path string) *jsonCorpStore {
	return &jsonCorpStore{path: path}
}

func (s *jsonCorpStore) LoadCorps(ctx context.Context) ([]Corp, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corp directory %s: %w", s.path, err)
	}
	defer f.Close()

	entries := map[string]jsonCorpEntry{}
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode corp directory %s: %w", s.path, err)
	}

	corps := make([]Corp, 0, len(entries))
	for name, entry := range entries {
		corps = append(corps, Corp{CorpName: name, CorpCode: entry.CorpCode, StockCode: entry.StockCode})
	}
	return corps, nil
}

// SaveCorps writes the directory. When a name repeats, listed companies win
// over unlisted ones, matching what search should show.
func (s *jsonCorpStore) SaveCorps(ctx context.Context, corps []Corp) error {
	entries := make(map[string]jsonCorpEntry, len(corps))
	for _, c := range corps {
		if prev, ok := entries[c.CorpName]; ok && prev.StockCode != "" && !c.Listed() {
			continue
		}
		entries[c.CorpName] = jsonCorpEntry{CorpCode: c.CorpCode, StockCode: c.StockCode}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(s.path), err)
	}
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode corp directory: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
