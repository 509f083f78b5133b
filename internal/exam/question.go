package exam

import (
	"sort"
	"strings"

	"exam-simulator/internal/poolfile"
)

const (
	minOptions = 2
	maxLabel   = "E"
)

type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question is a validated pool question. CorrectLabel is guaranteed to be
// one of the option labels.
type Question struct {
	ID           string
	Stem         string
	Options      []Option
	CorrectLabel string
}

type Discipline struct {
	Name      string
	Questions []Question
}

// SnapshotQuestion is a question frozen into an attempt: shuffled options,
// remapped correct label, zero-based presentation index.
type SnapshotQuestion struct {
	Question
	Discipline string
	Index      int
}

func buildQuestion(raw poolfile.RawQuestion) (Question, bool) {
	id := strings.TrimSpace(raw.ID)
	stem := strings.TrimSpace(raw.Stem)
	if id == "" || stem == "" || len(raw.Options) < minOptions {
		return Question{}, false
	}

	options := make([]Option, 0, len(raw.Options))
	seen := make(map[string]bool, len(raw.Options))
	for label, text := range raw.Options {
		label = strings.ToUpper(strings.TrimSpace(label))
		text = strings.TrimSpace(text)
		if len(label) != 1 || label < "A" || label > maxLabel || text == "" || seen[label] {
			return Question{}, false
		}
		seen[label] = true
		options = append(options, Option{Label: label, Text: text})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Label < options[j].Label })

	correct := strings.ToUpper(strings.TrimSpace(raw.Correct))
	if !seen[correct] {
		return Question{}, false
	}

	return Question{
		ID:           id,
		Stem:         stem,
		Options:      options,
		CorrectLabel: correct,
	}, true
}

func (q Question) hasLabel(label string) bool {
	for _, option := range q.Options {
		if option.Label == label {
			return true
		}
	}
	return false
}

func normalizeLetter(answer string) string {
	letter := strings.ToUpper(strings.TrimSpace(answer))
	if len(letter) != 1 {
		return ""
	}
	return letter
}
