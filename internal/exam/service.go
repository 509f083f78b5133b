package exam

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

type Service struct {
	attempts AttemptRepository
	catalog  *Catalog
	policy   Policy
	now      func() time.Time

	cacheMu      sync.RWMutex
	attemptCache map[string]Attempt

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewService(attempts AttemptRepository, catalog *Catalog, policy Policy) *Service {
	return &Service{
		attempts:     attempts,
		catalog:      catalog,
		policy:       policy,
		now:          time.Now,
		attemptCache: make(map[string]Attempt),
		locks:        make(map[string]*sync.Mutex),
	}
}

func (s *Service) Policy() Policy {
	return s.policy
}

type CreateRequest struct {
	Mode            Mode
	Total           int
	DurationMinutes int
	Disciplines     []string
	Distribution    Distribution
}

// CreateAttempt validates the request, allocates quotas, freezes the
// question snapshot and persists the new attempt. All allocation and
// snapshot work happens before the first write, so a capacity failure
// leaves no state behind.
func (s *Service) CreateAttempt(ctx context.Context, ownerID string, req CreateRequest) (Attempt, error) {
	mode, err := normalizeMode(req.Mode)
	if err != nil {
		return Attempt{}, err
	}

	total := req.Total
	if total == 0 {
		total = s.policy.DefaultTotal
	}
	if total < s.policy.MinTotal || total > s.policy.maxForMode(mode) {
		return Attempt{}, fmt.Errorf("%w: total must be between %d and %d",
			ErrValidation, s.policy.MinTotal, s.policy.maxForMode(mode))
	}

	duration := s.policy.durationOrDefault(req.DurationMinutes)

	disciplines, err := s.resolveDisciplines(mode, req.Disciplines)
	if err != nil {
		return Attempt{}, err
	}

	dist := req.Distribution
	switch dist {
	case "":
		dist = DistributionAuto
	case DistributionAuto, DistributionEven:
	default:
		return Attempt{}, fmt.Errorf("%w: unknown distribution %q", ErrValidation, dist)
	}

	counts := make([]disciplineCount, len(disciplines))
	for idx, discipline := range disciplines {
		counts[idx] = disciplineCount{name: discipline.Name, available: len(discipline.Questions)}
	}
	quotas, err := allocate(counts, total, dist)
	if err != nil {
		return Attempt{}, err
	}

	attemptID := generateAttemptID()
	seed := seedFromID(attemptID)
	if !s.policy.SeedFromAttemptID {
		seed = rand.Int63()
	}

	parts := make([]allocatedDiscipline, len(disciplines))
	names := make([]string, len(disciplines))
	for idx, discipline := range disciplines {
		parts[idx] = allocatedDiscipline{Discipline: discipline, Quota: quotas[idx]}
		names[idx] = discipline.Name
	}

	startedAt := s.now().UTC()
	attempt := Attempt{
		ID:              attemptID,
		OwnerID:         ownerID,
		Mode:            mode,
		Status:          StatusActive,
		StartedAt:       startedAt,
		EndsAt:          startedAt.Add(time.Duration(duration) * time.Minute),
		DurationMinutes: duration,
		Total:           total,
		Seed:            seed,
		Disciplines:     names,
		Questions:       buildSnapshot(parts, total, seed, s.policy.ShuffleOptions),
	}

	if err := s.attempts.CreateAttempt(ctx, attempt); err != nil {
		return Attempt{}, err
	}
	s.setCachedAttempt(attempt)
	return attempt, nil
}

func (s *Service) ListAttempts(ctx context.Context, ownerID string) ([]AttemptSummary, error) {
	return s.attempts.ListAttempts(ctx, ownerID)
}

func (s *Service) GetAttempt(ctx context.Context, ownerID, attemptID string) (Attempt, map[string]AnswerEntry, error) {
	attempt, err := s.loadAttempt(ctx, ownerID, attemptID)
	if err != nil {
		return Attempt{}, nil, err
	}
	answers, err := s.attempts.GetAnswers(ctx, attemptID)
	if err != nil {
		return Attempt{}, nil, err
	}
	return attempt, answers, nil
}

// SubmitAnswer records one answer in the ledger, overwriting any prior
// entry for the question. The deadline is re-checked on every call; past
// ends_at the submission is rejected and, when the policy asks for it, the
// attempt is finished as a side effect of the rejected call.
func (s *Service) SubmitAnswer(ctx context.Context, ownerID, attemptID, questionID, answer string) error {
	lock := s.attemptLock(attemptID)
	lock.Lock()
	defer lock.Unlock()

	attempt, err := s.loadAttempt(ctx, ownerID, attemptID)
	if err != nil {
		return err
	}

	var question *SnapshotQuestion
	for idx := range attempt.Questions {
		if attempt.Questions[idx].ID == questionID {
			question = &attempt.Questions[idx]
			break
		}
	}
	if question == nil {
		return ErrQuestionNotInAttempt
	}

	if attempt.Status != StatusActive && s.policy.LockOnFinish {
		return ErrAttemptNotActive
	}

	now := s.now().UTC()
	if now.After(attempt.EndsAt) {
		if s.policy.AutoFinishOnTimeout && attempt.Status == StatusActive {
			if err := s.finishLocked(ctx, attempt, now); err != nil {
				return err
			}
		}
		return ErrTimeExpired
	}

	letter := normalizeLetter(answer)
	if letter == "" || !question.hasLabel(letter) {
		return fmt.Errorf("%w: option %q is not valid for this question", ErrValidation, answer)
	}

	return s.attempts.SaveAnswer(ctx, attemptID, AnswerEntry{
		QuestionID:  questionID,
		Letter:      letter,
		Correct:     letter == question.CorrectLabel,
		SubmittedAt: now,
	})
}

// FinishAttempt transitions active->finished and returns the permanent
// report. A second explicit finish is a conflict, never a silent success.
func (s *Service) FinishAttempt(ctx context.Context, ownerID, attemptID string) (Report, error) {
	lock := s.attemptLock(attemptID)
	lock.Lock()
	defer lock.Unlock()

	attempt, err := s.loadAttempt(ctx, ownerID, attemptID)
	if err != nil {
		return Report{}, err
	}
	if attempt.Status != StatusActive {
		return Report{}, ErrAlreadyFinished
	}

	now := s.now().UTC()
	if err := s.finishLocked(ctx, attempt, now); err != nil {
		return Report{}, err
	}

	attempt.Status = StatusFinished
	attempt.FinishedAt = &now

	answers, err := s.attempts.GetAnswers(ctx, attemptID)
	if err != nil {
		return Report{}, err
	}
	return buildReport(attempt, answers, now), nil
}

// GetReport is available only once the attempt is finished and is
// idempotent: repeated calls return identical results.
func (s *Service) GetReport(ctx context.Context, ownerID, attemptID string) (Report, error) {
	attempt, err := s.loadAttempt(ctx, ownerID, attemptID)
	if err != nil {
		return Report{}, err
	}
	if attempt.Status != StatusFinished {
		return Report{}, ErrReportNotReady
	}

	answers, err := s.attempts.GetAnswers(ctx, attemptID)
	if err != nil {
		return Report{}, err
	}
	return buildReport(attempt, answers, s.now().UTC()), nil
}

// finishLocked persists the terminal transition; callers hold the attempt
// lock and have already checked the current status.
func (s *Service) finishLocked(ctx context.Context, attempt Attempt, finishedAt time.Time) error {
	if err := s.attempts.FinishAttempt(ctx, attempt.ID, finishedAt); err != nil {
		return err
	}
	attempt.Status = StatusFinished
	attempt.FinishedAt = &finishedAt
	s.setCachedAttempt(attempt)
	return nil
}

func (s *Service) resolveDisciplines(mode Mode, requested []string) ([]Discipline, error) {
	if mode == ModeSingle {
		if len(requested) != 1 {
			return nil, fmt.Errorf("%w: single mode requires exactly one discipline", ErrValidation)
		}
		name := strings.TrimSpace(requested[0])
		discipline, ok := s.catalog.Discipline(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown discipline %q", ErrValidation, name)
		}
		return []Discipline{discipline}, nil
	}

	disciplines := s.catalog.Disciplines()
	if len(disciplines) == 0 {
		return nil, ErrInsufficientPool
	}
	return disciplines, nil
}

func normalizeMode(mode Mode) (Mode, error) {
	switch mode {
	case "":
		return ModeMixed, nil
	case ModeMixed, ModeSingle:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrValidation, mode)
	}
}

func (s *Service) attemptLock(attemptID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[attemptID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[attemptID] = lock
	}
	return lock
}

func generateAttemptID() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	const length = 10

	var builder strings.Builder
	builder.Grow(len("at_") + length)
	builder.WriteString("at_")
	for idx := 0; idx < length; idx++ {
		builder.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return builder.String()
}
