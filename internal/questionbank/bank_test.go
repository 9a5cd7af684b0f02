package questionbank

import (
	"os"
	"path/filepath"
	"testing"
)

func TestForTopicCaseInsensitive(t *testing.T) {
	b := New([]Question{
		{ID: "a", Topic: "Excel", Level: LevelEasy, Type: TypeFreetext},
		{ID: "b", Topic: "sql", Level: LevelEasy, Type: TypeFreetext},
		{ID: "c", Topic: "EXCEL", Level: LevelHard, Type: TypeFreetext},
	})

	got := b.ForTopic("excel")
	if len(got) != 2 {
		t.Fatalf("ForTopic returned %d questions, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("source order not preserved: got %q, %q", got[0].ID, got[1].ID)
	}
}

func TestForTopicNoMatch(t *testing.T) {
	b := Default()
	if got := b.ForTopic("cooking"); len(got) != 0 {
		t.Errorf("expected empty result for unknown topic, got %d", len(got))
	}
}

func TestSampleDistinct(t *testing.T) {
	pool := Default().ForTopic("excel")

	got := Sample(pool, 5)
	if len(got) != 5 {
		t.Fatalf("sampled %d questions, want 5", len(got))
	}

	seen := make(map[string]bool)
	for _, q := range got {
		if seen[q.ID] {
			t.Errorf("question %q sampled twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSampleClampsToPoolSize(t *testing.T) {
	pool := []Question{
		{ID: "a", Topic: "excel"},
		{ID: "b", Topic: "excel"},
	}

	got := Sample(pool, 5)
	if len(got) != 2 {
		t.Errorf("sampled %d questions from a pool of 2, want 2", len(got))
	}

	if got := Sample(nil, 5); got != nil {
		t.Errorf("sampling an empty pool should return nil, got %v", got)
	}
}

func TestSeedBankValid(t *testing.T) {
	b := Default()
	if err := checkIDs(b.All()); err != nil {
		t.Fatalf("seed bank has duplicate IDs: %v", err)
	}

	levels := make(map[Level]int)
	for _, q := range b.ForTopic("excel") {
		levels[q.Level]++
		switch q.Type {
		case TypeFormula:
			if len(q.Expected) == 0 {
				t.Errorf("formula question %q has no expected answers", q.ID)
			}
		case TypeFreetext:
			if q.Reference == "" {
				t.Errorf("freetext question %q has no reference answer", q.ID)
			}
		default:
			t.Errorf("question %q has unknown type %q", q.ID, q.Type)
		}
	}

	for _, lvl := range []Level{LevelEasy, LevelMedium, LevelHard} {
		if levels[lvl] == 0 {
			t.Errorf("seed bank has no %s questions; the selector needs all levels", lvl)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.json")

	valid := `[
		{"id": "q1", "topic": "excel", "prompt": "Sum A1:A5.", "level": "easy", "type": "formula", "expected": ["=SUM(A1:A5)"]},
		{"id": "q2", "topic": "excel", "prompt": "What is a macro?", "level": "hard", "type": "freetext", "reference": "A recorded or scripted sequence of actions."}
	]`
	if err := os.WriteFile(path, []byte(valid), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(b.All()) != 2 {
		t.Fatalf("loaded %d questions, want 2", len(b.All()))
	}
}

func TestLoadFileRejectsBadLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.json")

	bad := `[{"id": "q1", "topic": "excel", "prompt": "x", "level": "impossible", "type": "formula"}]`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected schema validation error for invalid level")
	}
}

func TestLoadFileRejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.json")

	dup := `[
		{"id": "q1", "topic": "excel", "prompt": "x", "level": "easy", "type": "freetext", "reference": "r"},
		{"id": "q1", "topic": "excel", "prompt": "y", "level": "easy", "type": "freetext", "reference": "r"}
	]`
	if err := os.WriteFile(path, []byte(dup), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for duplicate question IDs")
	}
}
