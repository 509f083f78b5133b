package exam

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrValidation covers caller-correctable input problems.
	ErrValidation = errors.New("invalid request")
	// ErrInsufficientPool means the pool cannot supply the requested total
	// even after spill redistribution.
	ErrInsufficientPool = errors.New("insufficient questions in pool")

	ErrAttemptNotFound      = errors.New("attempt not found")
	ErrQuestionNotInAttempt = errors.New("question is not part of this attempt")

	// Conflict family: operations against an attempt in the wrong state.
	ErrAttemptNotActive = errors.New("attempt is not active")
	ErrAlreadyFinished  = errors.New("attempt already finished")
	ErrReportNotReady   = errors.New("attempt is not finished yet")

	// ErrTimeExpired is a normal state transition for the system but a
	// rejection for the caller, distinct from the conflict family.
	ErrTimeExpired = errors.New("time expired")
)

type Mode string

const (
	ModeMixed  Mode = "mixed"
	ModeSingle Mode = "single"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Attempt is one timed exam instance. The question snapshot, the timing
// window and the seed are immutable once persisted; only status, finished_at
// and the answer ledger change afterwards.
type Attempt struct {
	ID              string
	OwnerID         string
	Mode            Mode
	Status          Status
	StartedAt       time.Time
	EndsAt          time.Time
	FinishedAt      *time.Time
	DurationMinutes int
	Total           int
	Seed            int64
	Disciplines     []string
	Questions       []SnapshotQuestion
}

type AttemptSummary struct {
	ID              string
	Mode            Mode
	Status          Status
	StartedAt       time.Time
	EndsAt          time.Time
	DurationMinutes int
	Total           int
}

// AnswerEntry is one ledger row: at most one live entry per (attempt,
// question); a resubmission overwrites. Correct is computed at write time
// against the frozen snapshot and never recomputed.
type AnswerEntry struct {
	QuestionID  string
	Letter      string
	Correct     bool
	SubmittedAt time.Time
}

type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt Attempt) error
	GetAttempt(ctx context.Context, attemptID string) (Attempt, error)
	ListAttempts(ctx context.Context, ownerID string) ([]AttemptSummary, error)
	SaveAnswer(ctx context.Context, attemptID string, entry AnswerEntry) error
	GetAnswers(ctx context.Context, attemptID string) (map[string]AnswerEntry, error)
	// FinishAttempt transitions active->finished exactly once; it returns
	// ErrAlreadyFinished when the attempt is already terminal.
	FinishAttempt(ctx context.Context, attemptID string, finishedAt time.Time) error
}
