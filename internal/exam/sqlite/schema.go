package sqlite

import (
	"context"
)

func (s *Store) initSchema(ctx context.Context) error {
	// No FK constraints: attempt rows are never physically deleted, so the
	// application owns the lifecycle entirely.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS attempts (
			attempt_id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			status TEXT NOT NULL,
			started_at_unix INTEGER NOT NULL,
			ends_at_unix INTEGER NOT NULL,
			finished_at_unix INTEGER,
			duration_minutes INTEGER NOT NULL,
			total INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			disciplines_json TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS attempt_questions (
			attempt_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			question_id TEXT NOT NULL,
			discipline TEXT NOT NULL,
			stem TEXT NOT NULL,
			options_json TEXT NOT NULL,
			correct_label TEXT NOT NULL,
			PRIMARY KEY (attempt_id, position),
			UNIQUE (attempt_id, question_id)
		);`,
		`CREATE TABLE IF NOT EXISTS answers (
			attempt_id TEXT NOT NULL,
			question_id TEXT NOT NULL,
			letter TEXT NOT NULL,
			correct INTEGER NOT NULL,
			submitted_at_unix INTEGER NOT NULL,
			PRIMARY KEY (attempt_id, question_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_owner ON attempts(owner_id, started_at_unix DESC);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
