package exam

import (
	"math"
	"time"
)

// UnansweredLabel is the sentinel reported for questions with no ledger entry.
const UnansweredLabel = "-"

type Report struct {
	AttemptID      string
	Score          float64
	CorrectCount   int
	Total          int
	ElapsedSeconds int
	Questions      []ReportQuestion
}

type ReportQuestion struct {
	Index        int
	QuestionID   string
	Stem         string
	YourAnswer   string
	CorrectLabel string
	Correct      bool
}

// buildReport derives the score report from the persisted attempt and
// ledger. It is deterministic for a finished attempt: repeated calls return
// identical results.
func buildReport(attempt Attempt, answers map[string]AnswerEntry, now time.Time) Report {
	report := Report{
		AttemptID: attempt.ID,
		Total:     len(attempt.Questions),
		Questions: make([]ReportQuestion, 0, len(attempt.Questions)),
	}

	for _, question := range attempt.Questions {
		item := ReportQuestion{
			Index:        question.Index,
			QuestionID:   question.ID,
			Stem:         question.Stem,
			YourAnswer:   UnansweredLabel,
			CorrectLabel: question.CorrectLabel,
		}
		if entry, ok := answers[question.ID]; ok {
			item.YourAnswer = entry.Letter
			item.Correct = entry.Correct
			if entry.Correct {
				report.CorrectCount++
			}
		}
		report.Questions = append(report.Questions, item)
	}

	if report.Total > 0 {
		score := float64(report.CorrectCount) / float64(report.Total) * 100
		report.Score = math.Round(score*100) / 100
	}

	report.ElapsedSeconds = elapsedSeconds(attempt, now)
	return report
}

// elapsedSeconds clamps to the attempt window so a report requested long
// after the deadline never exceeds the allotted duration.
func elapsedSeconds(attempt Attempt, now time.Time) int {
	end := now
	if attempt.FinishedAt != nil {
		end = *attempt.FinishedAt
	}
	if end.After(attempt.EndsAt) {
		end = attempt.EndsAt
	}

	elapsed := int(end.Sub(attempt.StartedAt).Seconds())
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
