package sqlite

import (
	"context"
	"time"

	"exam-simulator/internal/exam"
)

// SaveAnswer upserts the ledger row for (attempt, question): a resubmission
// overwrites, it does not append.
func (s *Store) SaveAnswer(ctx context.Context, attemptID string, entry exam.AnswerEntry) error {
	correct := 0
	if entry.Correct {
		correct = 1
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO answers (attempt_id, question_id, letter, correct, submitted_at_unix)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(attempt_id, question_id) DO UPDATE SET
			letter = excluded.letter,
			correct = excluded.correct,
			submitted_at_unix = excluded.submitted_at_unix`,
		attemptID,
		entry.QuestionID,
		entry.Letter,
		correct,
		entry.SubmittedAt.UnixNano(),
	)
	return err
}

func (s *Store) GetAnswers(ctx context.Context, attemptID string) (map[string]exam.AnswerEntry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT question_id, letter, correct, submitted_at_unix
		 FROM answers
		 WHERE attempt_id = ?`,
		attemptID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := make(map[string]exam.AnswerEntry)
	for rows.Next() {
		var (
			entry           exam.AnswerEntry
			correct         int
			submittedAtUnix int64
		)
		if err := rows.Scan(&entry.QuestionID, &entry.Letter, &correct, &submittedAtUnix); err != nil {
			return nil, err
		}
		entry.Correct = correct == 1
		entry.SubmittedAt = time.Unix(0, submittedAtUnix).UTC()
		answers[entry.QuestionID] = entry
	}

	return answers, rows.Err()
}
