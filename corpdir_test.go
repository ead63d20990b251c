package main

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpDirectorySearch(t *testing.T) {
	dir := NewCorpDirectory(sampleCorps())

	tests := []struct {
		query string
		want  []string
	}{
		{"삼성", []string{"삼성물산비상장", "삼성전기", "삼성전자"}},
		{"sk", []string{"SK하이닉스"}},
		{"  lg전자 ", []string{"LG전자"}},
		{"카카오", []string{}},
		{"", []string{}},
		{"   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			names := []string{}
			for _, r := range dir.Search(tt.query) {
				names = append(names, r.CorpName)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	hit := dir.Search("SK하이")[0]
	assert.Equal(t, SearchResult{CorpName: "SK하이닉스", CorpCode: "00164779", StockCode: "000660"}, hit)
}

func TestCorpDirectorySearchLimit(t *testing.T) {
	corps := []Corp{}
	for i := 0; i < 25; i++ {
		corps = append(corps, Corp{CorpCode: fmt.Sprintf("%08d", i), CorpName: fmt.Sprintf("테스트%02d", i)})
	}
	dir := NewCorpDirectory(corps)

	results := dir.Search("테스트")
	require.Len(t, results, maxSearchResults)
	assert.Equal(t, "테스트00", results[0].CorpName)
	assert.Equal(t, 25, dir.Len())
}

func TestCorpDirectoryNil(t *testing.T) {
	var dir *CorpDirectory
	assert.Empty(t, dir.Search("삼성"))
	_, ok := dir.Lookup("00126380")
	assert.False(t, ok)
}

func TestCorpDirectoryLookup(t *testing.T) {
	dir := NewCorpDirectory(sampleCorps())

	corp, ok := dir.Lookup("126380")
	require.True(t, ok)
	assert.Equal(t, "삼성전자", corp.CorpName)

	_, ok = dir.Lookup("00000000")
	assert.False(t, ok)
}

func TestJSONCorpStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "corpCodes.json")
	store := newJSONCorpStore(path)
	ctx := context.Background()

	_, err := store.LoadCorps(ctx)
	assert.Error(t, err)

	corps := append(sampleCorps(),
		Corp{CorpCode: "00000001", CorpName: "삼성전자"},
		Corp{CorpCode: "00000002", CorpName: "다코"},
	)
	require.NoError(t, store.SaveCorps(ctx, corps))

	logger := zerolog.Nop()
	dir, err := LoadCorpDirectory(ctx, store, &logger)
	require.NoError(t, err)
	assert.Equal(t, 6, dir.Len())

	// the listed company keeps the name
	corp, ok := dir.Lookup("00126380")
	require.True(t, ok)
	assert.Equal(t, "005930", corp.StockCode)
	_, ok = dir.Lookup("00000001")
	assert.False(t, ok)

	_, ok = dir.Lookup("00000002")
	assert.True(t, ok)
}

func TestBundledCorpDirectory(t *testing.T) {
	logger := zerolog.Nop()
	dir, err := LoadCorpDirectory(context.Background(), newJSONCorpStore("data/corpCodes.json"), &logger)
	require.NoError(t, err)
	assert.NotEmpty(t, dir.Search("삼성"))
}
