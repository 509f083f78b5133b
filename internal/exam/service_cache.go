package exam

import "context"

// Cache-specific helpers are isolated here so service.go can focus on
// orchestration. The snapshot of an attempt is immutable once persisted, so
// cached attempts only ever change status and finished_at.

// loadAttempt resolves an attempt through the read-through cache and scopes
// it to the owner. Someone else's attempt reads as not-found.
func (s *Service) loadAttempt(ctx context.Context, ownerID, attemptID string) (Attempt, error) {
	attempt, ok := s.getCachedAttempt(attemptID)
	if !ok {
		var err error
		attempt, err = s.attempts.GetAttempt(ctx, attemptID)
		if err != nil {
			return Attempt{}, err
		}
		s.setCachedAttempt(attempt)
	}

	if attempt.OwnerID != ownerID {
		return Attempt{}, ErrAttemptNotFound
	}
	return attempt, nil
}

func (s *Service) getCachedAttempt(attemptID string) (Attempt, bool) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	attempt, ok := s.attemptCache[attemptID]
	return attempt, ok
}

func (s *Service) setCachedAttempt(attempt Attempt) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.attemptCache[attempt.ID] = attempt
}
