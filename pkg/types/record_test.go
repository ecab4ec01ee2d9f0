package types

import (
	"encoding/json"
	"testing"
)

func TestRecordID(t *testing.T) {
	t.Run("string id", func(t *testing.T) {
		r := Record{"id": "c-17", "name": "Ann"}
		if got := r.ID(); got != "c-17" {
			t.Fatalf("expected c-17, got %q", got)
		}
	})

	t.Run("json.Number id", func(t *testing.T) {
		r := Record{"id": json.Number("42")}
		if got := r.ID(); got != "42" {
			t.Fatalf("expected 42, got %q", got)
		}
	})

	t.Run("float64 id has no exponent", func(t *testing.T) {
		r := Record{"id": float64(1000000)}
		if got := r.ID(); got != "1000000" {
			t.Fatalf("expected 1000000, got %q", got)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		r := Record{"name": "no id"}
		if got := r.ID(); got != "" {
			t.Fatalf("expected empty id, got %q", got)
		}
	})

	t.Run("unusable id type", func(t *testing.T) {
		r := Record{"id": []any{"nested"}}
		if got := r.ID(); got != "" {
			t.Fatalf("expected empty id, got %q", got)
		}
	})
}

func TestMergeRecords(t *testing.T) {
	t.Run("patch overrides, absent fields preserved", func(t *testing.T) {
		base := Record{"id": "1", "name": "Ann", "status": "active"}
		patch := Record{"status": "inactive"}
		merged := MergeRecords(base, patch)
		if merged["status"] != "inactive" {
			t.Fatalf("expected status inactive, got %v", merged["status"])
		}
		if merged["name"] != "Ann" {
			t.Fatalf("expected name preserved, got %v", merged["name"])
		}
	})

	t.Run("inputs not mutated", func(t *testing.T) {
		base := Record{"id": "1", "status": "active"}
		patch := Record{"status": "inactive"}
		_ = MergeRecords(base, patch)
		if base["status"] != "active" {
			t.Fatalf("base mutated: %v", base["status"])
		}
	})

	t.Run("nil base", func(t *testing.T) {
		merged := MergeRecords(nil, Record{"id": "9"})
		if merged.ID() != "9" {
			t.Fatalf("expected id 9, got %q", merged.ID())
		}
	})
}

func TestEndpoint(t *testing.T) {
	t.Run("standard entities resolve", func(t *testing.T) {
		for _, name := range StandardEntities {
			path, err := Endpoint(name)
			if err != nil {
				t.Fatalf("Endpoint(%q): %v", name, err)
			}
			if path == "" {
				t.Fatalf("Endpoint(%q): empty path", name)
			}
		}
	})

	t.Run("unknown entity", func(t *testing.T) {
		if _, err := Endpoint("warehouses"); err != ErrUnknownEntity {
			t.Fatalf("expected ErrUnknownEntity, got %v", err)
		}
	})
}
