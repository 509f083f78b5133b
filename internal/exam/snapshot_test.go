package exam

import (
	"reflect"
	"strconv"
	"testing"
)

func makeDiscipline(name string, n int) Discipline {
	questions := make([]Question, 0, n)
	for idx := 0; idx < n; idx++ {
		questions = append(questions, Question{
			ID:   name + "-q" + strconv.Itoa(idx),
			Stem: "Stem " + strconv.Itoa(idx),
			Options: []Option{
				{Label: "A", Text: "first " + strconv.Itoa(idx)},
				{Label: "B", Text: "second " + strconv.Itoa(idx)},
				{Label: "C", Text: "third " + strconv.Itoa(idx)},
				{Label: "D", Text: "fourth " + strconv.Itoa(idx)},
			},
			CorrectLabel: "B",
		})
	}
	return Discipline{Name: name, Questions: questions}
}

func TestBuildSnapshotIsDeterministicPerSeed(t *testing.T) {
	parts := []allocatedDiscipline{
		{Discipline: makeDiscipline("math", 15), Quota: 6},
		{Discipline: makeDiscipline("history", 15), Quota: 4},
	}

	first := buildSnapshot(parts, 10, 42, true)
	second := buildSnapshot(parts, 10, 42, true)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different snapshots")
	}

	other := buildSnapshot(parts, 10, 43, true)
	if reflect.DeepEqual(first, other) {
		t.Fatalf("different seeds produced identical snapshots")
	}
}

func TestBuildSnapshotMeetsTotalAndTagsIndexes(t *testing.T) {
	parts := []allocatedDiscipline{
		{Discipline: makeDiscipline("math", 3), Quota: 3},
		{Discipline: makeDiscipline("history", 20), Quota: 7},
	}

	snapshot := buildSnapshot(parts, 10, 7, false)
	if len(snapshot) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(snapshot))
	}

	seen := make(map[string]bool)
	perDiscipline := make(map[string]int)
	for idx, question := range snapshot {
		if question.Index != idx {
			t.Fatalf("question %d carries index %d", idx, question.Index)
		}
		if seen[question.ID] {
			t.Fatalf("question %s selected twice", question.ID)
		}
		seen[question.ID] = true
		perDiscipline[question.Discipline]++
	}
	if perDiscipline["math"] != 3 || perDiscipline["history"] != 7 {
		t.Fatalf("unexpected per-discipline split: %v", perDiscipline)
	}
}

func TestBuildSnapshotBackfillsQuotaShortfall(t *testing.T) {
	// Quotas deliberately below the total: the remainder pool fills the gap.
	parts := []allocatedDiscipline{
		{Discipline: makeDiscipline("math", 5), Quota: 1},
		{Discipline: makeDiscipline("history", 5), Quota: 1},
	}

	snapshot := buildSnapshot(parts, 4, 99, false)
	if len(snapshot) != 4 {
		t.Fatalf("expected backfill to reach 4 questions, got %d", len(snapshot))
	}

	seen := make(map[string]bool)
	for _, question := range snapshot {
		if seen[question.ID] {
			t.Fatalf("backfill duplicated question %s", question.ID)
		}
		seen[question.ID] = true
	}
}

func TestShuffleOptionsPreservesCorrectText(t *testing.T) {
	parts := []allocatedDiscipline{
		{Discipline: makeDiscipline("math", 12), Quota: 12},
	}

	originals := make(map[string]Question)
	for _, question := range parts[0].Questions {
		originals[question.ID] = question
	}

	snapshot := buildSnapshot(parts, 12, 1234, true)
	shuffledAny := false
	for _, question := range snapshot {
		original := originals[question.ID]

		var originalText, remappedText string
		for _, option := range original.Options {
			if option.Label == original.CorrectLabel {
				originalText = option.Text
			}
		}
		for _, option := range question.Options {
			if option.Label == question.CorrectLabel {
				remappedText = option.Text
			}
		}

		if originalText == "" || remappedText != originalText {
			t.Fatalf("question %s: correct text %q remapped to %q", question.ID, originalText, remappedText)
		}
		if question.CorrectLabel != original.CorrectLabel {
			shuffledAny = true
		}
	}
	if !shuffledAny {
		t.Fatalf("expected at least one remapped correct label across 12 questions")
	}
}

func TestSeedFromIDIsStable(t *testing.T) {
	if seedFromID("at_abc123") != seedFromID("at_abc123") {
		t.Fatalf("seed derivation is not stable")
	}
	if seedFromID("at_abc123") == seedFromID("at_abc124") {
		t.Fatalf("distinct ids produced the same seed")
	}
}
