package exam

import (
	"testing"

	"exam-simulator/internal/poolfile"
)

func rawQuestion(id string) poolfile.RawQuestion {
	return poolfile.RawQuestion{
		ID:   id,
		Stem: "Stem for " + id,
		Options: map[string]string{
			"A": "first",
			"B": "second",
			"C": "third",
		},
		Correct: "B",
	}
}

func TestBuildCatalogDropsMalformedQuestions(t *testing.T) {
	raw := []poolfile.RawDiscipline{
		{
			Name: "math",
			Questions: []poolfile.RawQuestion{
				rawQuestion("ok-1"),
				{ID: "", Stem: "missing id", Options: map[string]string{"A": "x", "B": "y"}, Correct: "A"},
				{ID: "no-stem", Stem: "  ", Options: map[string]string{"A": "x", "B": "y"}, Correct: "A"},
				{ID: "one-option", Stem: "too few", Options: map[string]string{"A": "x"}, Correct: "A"},
				{ID: "bad-correct", Stem: "key missing", Options: map[string]string{"A": "x", "B": "y"}, Correct: "E"},
				{ID: "bad-label", Stem: "label out of range", Options: map[string]string{"A": "x", "F": "y"}, Correct: "A"},
				rawQuestion("ok-2"),
			},
		},
	}

	catalog := BuildCatalog(raw)
	discipline, ok := catalog.Discipline("math")
	if !ok {
		t.Fatalf("expected math discipline to survive")
	}
	if len(discipline.Questions) != 2 {
		t.Fatalf("expected 2 valid questions, got %d", len(discipline.Questions))
	}
	for _, question := range discipline.Questions {
		if question.CorrectLabel != "B" {
			t.Fatalf("unexpected correct label %q", question.CorrectLabel)
		}
		if len(question.Options) != 3 || question.Options[0].Label != "A" || question.Options[2].Label != "C" {
			t.Fatalf("options not sorted by label: %+v", question.Options)
		}
	}
}

func TestBuildCatalogDropsEmptyDisciplinesAndKeepsOrder(t *testing.T) {
	raw := []poolfile.RawDiscipline{
		{Name: "math", Questions: []poolfile.RawQuestion{rawQuestion("m1")}},
		{Name: "empty", Questions: []poolfile.RawQuestion{{ID: "bad"}}},
		{Name: "history", Questions: []poolfile.RawQuestion{rawQuestion("h1")}},
		{Name: "", Questions: []poolfile.RawQuestion{rawQuestion("x1")}},
	}

	catalog := BuildCatalog(raw)
	names := catalog.Names()
	if len(names) != 2 || names[0] != "math" || names[1] != "history" {
		t.Fatalf("unexpected discipline order: %v", names)
	}
	if _, ok := catalog.Discipline("empty"); ok {
		t.Fatalf("discipline with no valid questions should be dropped")
	}
}

func TestCatalogReplaceSwapsWholePool(t *testing.T) {
	catalog := BuildCatalog([]poolfile.RawDiscipline{
		{Name: "math", Questions: []poolfile.RawQuestion{rawQuestion("m1")}},
	})

	catalog.Replace([]poolfile.RawDiscipline{
		{Name: "history", Questions: []poolfile.RawQuestion{rawQuestion("h1"), rawQuestion("h2")}},
	})

	if _, ok := catalog.Discipline("math"); ok {
		t.Fatalf("replace should drop disciplines absent from the new pool")
	}
	history, ok := catalog.Discipline("history")
	if !ok || len(history.Questions) != 2 {
		t.Fatalf("replace did not load the new pool: %+v", history)
	}
}

func TestBuildCatalogFromEmptyPool(t *testing.T) {
	catalog := BuildCatalog(nil)
	if len(catalog.Disciplines()) != 0 {
		t.Fatalf("expected empty catalog")
	}
}
