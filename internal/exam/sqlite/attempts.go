package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"exam-simulator/internal/exam"
)

// CreateAttempt persists the attempt row and its frozen snapshot in one
// transaction, so a partially written attempt can never be observed.
func (s *Store) CreateAttempt(ctx context.Context, attempt exam.Attempt) error {
	disciplinesJSON, err := json.Marshal(attempt.Disciplines)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO attempts (attempt_id, owner_id, mode, status, started_at_unix, ends_at_unix, finished_at_unix, duration_minutes, total, seed, disciplines_json)
		 VALUES (?, ?, ?, ?, ?, ?, NULL, ?, ?, ?, ?)`,
		attempt.ID,
		attempt.OwnerID,
		string(attempt.Mode),
		string(attempt.Status),
		attempt.StartedAt.UnixNano(),
		attempt.EndsAt.UnixNano(),
		attempt.DurationMinutes,
		attempt.Total,
		attempt.Seed,
		string(disciplinesJSON),
	)
	if err != nil {
		return err
	}

	for _, question := range attempt.Questions {
		optionsJSON, err := json.Marshal(question.Options)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO attempt_questions (attempt_id, position, question_id, discipline, stem, options_json, correct_label)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			attempt.ID,
			question.Index,
			question.ID,
			question.Discipline,
			question.Stem,
			string(optionsJSON),
			question.CorrectLabel,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetAttempt(ctx context.Context, attemptID string) (exam.Attempt, error) {
	var (
		attempt         exam.Attempt
		mode            string
		status          string
		startedAtUnix   int64
		endsAtUnix      int64
		finishedAtUnix  sql.NullInt64
		disciplinesJSON string
	)
	err := s.db.QueryRowContext(
		ctx,
		`SELECT attempt_id, owner_id, mode, status, started_at_unix, ends_at_unix, finished_at_unix, duration_minutes, total, seed, disciplines_json
		 FROM attempts WHERE attempt_id = ?`,
		attemptID,
	).Scan(
		&attempt.ID,
		&attempt.OwnerID,
		&mode,
		&status,
		&startedAtUnix,
		&endsAtUnix,
		&finishedAtUnix,
		&attempt.DurationMinutes,
		&attempt.Total,
		&attempt.Seed,
		&disciplinesJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return exam.Attempt{}, exam.ErrAttemptNotFound
		}
		return exam.Attempt{}, err
	}

	attempt.Mode = exam.Mode(mode)
	attempt.Status = exam.Status(status)
	attempt.StartedAt = time.Unix(0, startedAtUnix).UTC()
	attempt.EndsAt = time.Unix(0, endsAtUnix).UTC()
	if finishedAtUnix.Valid {
		finishedAt := time.Unix(0, finishedAtUnix.Int64).UTC()
		attempt.FinishedAt = &finishedAt
	}
	if err := json.Unmarshal([]byte(disciplinesJSON), &attempt.Disciplines); err != nil {
		return exam.Attempt{}, err
	}

	attempt.Questions, err = s.getAttemptQuestions(ctx, attemptID)
	if err != nil {
		return exam.Attempt{}, err
	}
	return attempt, nil
}

func (s *Store) getAttemptQuestions(ctx context.Context, attemptID string) ([]exam.SnapshotQuestion, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT position, question_id, discipline, stem, options_json, correct_label
		 FROM attempt_questions
		 WHERE attempt_id = ?
		 ORDER BY position ASC`,
		attemptID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]exam.SnapshotQuestion, 0)
	for rows.Next() {
		var (
			question    exam.SnapshotQuestion
			optionsJSON string
		)
		if err := rows.Scan(
			&question.Index,
			&question.ID,
			&question.Discipline,
			&question.Stem,
			&optionsJSON,
			&question.CorrectLabel,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(optionsJSON), &question.Options); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	return questions, rows.Err()
}

func (s *Store) ListAttempts(ctx context.Context, ownerID string) ([]exam.AttemptSummary, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT attempt_id, mode, status, started_at_unix, ends_at_unix, duration_minutes, total
		 FROM attempts
		 WHERE owner_id = ?
		 ORDER BY started_at_unix DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]exam.AttemptSummary, 0)
	for rows.Next() {
		var (
			summary       exam.AttemptSummary
			mode          string
			status        string
			startedAtUnix int64
			endsAtUnix    int64
		)
		if err := rows.Scan(
			&summary.ID,
			&mode,
			&status,
			&startedAtUnix,
			&endsAtUnix,
			&summary.DurationMinutes,
			&summary.Total,
		); err != nil {
			return nil, err
		}
		summary.Mode = exam.Mode(mode)
		summary.Status = exam.Status(status)
		summary.StartedAt = time.Unix(0, startedAtUnix).UTC()
		summary.EndsAt = time.Unix(0, endsAtUnix).UTC()
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// FinishAttempt is a conditional update on status so concurrent finish
// calls resolve deterministically: exactly one wins, the rest see the
// conflict.
func (s *Store) FinishAttempt(ctx context.Context, attemptID string, finishedAt time.Time) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE attempts SET status = ?, finished_at_unix = ?
		 WHERE attempt_id = ? AND status = ?`,
		string(exam.StatusFinished),
		finishedAt.UnixNano(),
		attemptID,
		string(exam.StatusActive),
	)
	if err != nil {
		return err
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if updated == 0 {
		var found int
		err := s.db.QueryRowContext(
			ctx,
			`SELECT 1 FROM attempts WHERE attempt_id = ? LIMIT 1`,
			attemptID,
		).Scan(&found)
		if errors.Is(err, sql.ErrNoRows) {
			return exam.ErrAttemptNotFound
		}
		if err != nil {
			return err
		}
		return exam.ErrAlreadyFinished
	}
	return nil
}
