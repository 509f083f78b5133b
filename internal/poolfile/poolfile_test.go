package poolfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesDisciplines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	payload := `{
		"disciplines": [
			{
				"name": "math",
				"questions": [
					{"id": "q1", "stem": "2+2?", "options": {"A": "3", "B": "4"}, "correct": "B"}
				]
			},
			{"name": "history", "questions": []}
		]
	}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write pool file: %v", err)
	}

	disciplines, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(disciplines) != 2 {
		t.Fatalf("expected 2 disciplines, got %d", len(disciplines))
	}
	if disciplines[0].Name != "math" || len(disciplines[0].Questions) != 1 {
		t.Fatalf("unexpected first discipline: %+v", disciplines[0])
	}
	question := disciplines[0].Questions[0]
	if question.ID != "q1" || question.Correct != "B" || question.Options["B"] != "4" {
		t.Fatalf("unexpected question: %+v", question)
	}
}

func TestLoadMissingFileYieldsEmptyPool(t *testing.T) {
	disciplines, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if disciplines != nil {
		t.Fatalf("expected empty pool, got %v", disciplines)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write pool file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}
