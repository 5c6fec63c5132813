// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/gehan/audioconv/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	cfg := types.HistoryConfig{
		Path:       filepath.Join(t.TempDir(), "history.db"),
		MaxResults: 20,
	}
	store, err := NewStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func record(input, format string, status types.ConversionStatus) types.Record {
	return types.Record{
		Input:    input,
		Output:   strings.TrimSuffix(input, filepath.Ext(input)) + "." + format,
		Format:   format,
		Preset:   "balanced",
		Status:   status,
		Duration: 1500 * time.Millisecond,
	}
}

func TestRecordAndRecent(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for _, rec := range []types.Record{
		record("a.wav", "mp3", types.ConversionDone),
		record("b.flac", "ogg", types.ConversionDone),
		record("c.wav", "mp3", types.ConversionFailed),
	} {
		if err := store.Record(rec); err != nil {
			t.Fatal(err)
		}
	}

	records, err := store.Recent(ctx, QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Newest first.
	if records[0].Input != "c.wav" || records[2].Input != "a.wav" {
		t.Errorf("wrong order: %q, %q, %q", records[0].Input, records[1].Input, records[2].Input)
	}

	r := records[2]
	if r.Output != "a.mp3" || r.Format != "mp3" || r.Preset != "balanced" {
		t.Errorf("record = %+v", r)
	}
	if r.Duration != 1500*time.Millisecond {
		t.Errorf("duration = %v", r.Duration)
	}
	if r.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestRecentFilters(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for _, rec := range []types.Record{
		record("a.wav", "mp3", types.ConversionDone),
		record("b.flac", "ogg", types.ConversionDone),
		record("c.wav", "mp3", types.ConversionFailed),
	} {
		if err := store.Record(rec); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name string
		opts QueryOptions
		want []string
	}{
		{"by status", QueryOptions{Status: types.ConversionFailed}, []string{"c.wav"}},
		{"by format", QueryOptions{Format: "mp3"}, []string{"c.wav", "a.wav"}},
		{"status and format", QueryOptions{Status: types.ConversionDone, Format: "mp3"}, []string{"a.wav"}},
		{"limit", QueryOptions{Limit: 1}, []string{"c.wav"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := store.Recent(ctx, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if len(records) != len(tt.want) {
				t.Fatalf("got %d records, want %d", len(records), len(tt.want))
			}
			for i, want := range tt.want {
				if records[i].Input != want {
					t.Errorf("records[%d].Input = %q, want %q", i, records[i].Input, want)
				}
			}
		})
	}
}

func TestCounts(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.Record(record("a.wav", "mp3", types.ConversionDone)); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.Record(record("b.wav", "mp3", types.ConversionFailed)); err != nil {
		t.Fatal(err)
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if counts[types.ConversionDone] != 3 || counts[types.ConversionFailed] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestExportYAML(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.Record(record("a.wav", "mp3", types.ConversionDone)); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "export.yaml")
	if err := store.ExportYAML(ctx, path, QueryOptions{}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var records []types.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		t.Fatalf("export is not valid YAML: %v", err)
	}
	if len(records) != 1 || records[0].Input != "a.wav" {
		t.Errorf("records = %+v", records)
	}
}

func TestStoreReopen(t *testing.T) {
	cfg := types.HistoryConfig{Path: filepath.Join(t.TempDir(), "history.db")}

	store, err := NewStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Record(record("a.wav", "mp3", types.ConversionDone)); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	records, err := reopened.Recent(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records after reopen, want 1", len(records))
	}
}

func TestNewStoreEmptyPath(t *testing.T) {
	if _, err := NewStore(types.HistoryConfig{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}
