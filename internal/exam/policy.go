package exam

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Policy holds the numeric and behavioral constraints for attempts. It is
// built once at startup by merging the baseline with an optional override
// file and is read-only afterwards.
type Policy struct {
	MinTotal     int
	MaxTotal     int
	SingleMax    int
	DefaultTotal int

	AllowedDurations []int
	DefaultDuration  int

	ShuffleOptions      bool
	HideAnswerKey       bool
	AutoFinishOnTimeout bool
	LockOnFinish        bool
	SeedFromAttemptID   bool
}

func DefaultPolicy() Policy {
	return Policy{
		MinTotal:            5,
		MaxTotal:            40,
		SingleMax:           36,
		DefaultTotal:        10,
		AllowedDurations:    []int{15, 30, 60, 90, 120},
		DefaultDuration:     60,
		ShuffleOptions:      true,
		HideAnswerKey:       true,
		AutoFinishOnTimeout: true,
		LockOnFinish:        true,
		SeedFromAttemptID:   true,
	}
}

// policyOverrides is the loose file shape; absent fields keep the baseline.
type policyOverrides struct {
	MinTotal     *int `json:"min_total"`
	MaxTotal     *int `json:"max_total"`
	SingleMax    *int `json:"single_max"`
	DefaultTotal *int `json:"default_total"`

	AllowedDurations []int `json:"allowed_durations"`
	DefaultDuration  *int  `json:"default_duration"`

	ShuffleOptions      *bool `json:"shuffle_options"`
	HideAnswerKey       *bool `json:"hide_answer_key"`
	AutoFinishOnTimeout *bool `json:"auto_finish_on_timeout"`
	LockOnFinish        *bool `json:"lock_on_finish"`
	SeedFromAttemptID   *bool `json:"seed_from_attempt_id"`
}

// LoadPolicy merges the baseline with the override file at path. An empty
// path or a missing file yields the baseline unchanged.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return policy, nil
		}
		return Policy{}, err
	}

	var overrides policyOverrides
	if err := json.Unmarshal(data, &overrides); err != nil {
		return Policy{}, fmt.Errorf("parse policy file %s: %w", path, err)
	}

	applyIntOverride(&policy.MinTotal, overrides.MinTotal)
	applyIntOverride(&policy.MaxTotal, overrides.MaxTotal)
	applyIntOverride(&policy.SingleMax, overrides.SingleMax)
	applyIntOverride(&policy.DefaultTotal, overrides.DefaultTotal)
	applyIntOverride(&policy.DefaultDuration, overrides.DefaultDuration)
	if len(overrides.AllowedDurations) > 0 {
		policy.AllowedDurations = overrides.AllowedDurations
	}
	applyBoolOverride(&policy.ShuffleOptions, overrides.ShuffleOptions)
	applyBoolOverride(&policy.HideAnswerKey, overrides.HideAnswerKey)
	applyBoolOverride(&policy.AutoFinishOnTimeout, overrides.AutoFinishOnTimeout)
	applyBoolOverride(&policy.LockOnFinish, overrides.LockOnFinish)
	applyBoolOverride(&policy.SeedFromAttemptID, overrides.SeedFromAttemptID)

	return policy, nil
}

func applyIntOverride(target *int, value *int) {
	if value != nil {
		*target = *value
	}
}

func applyBoolOverride(target *bool, value *bool) {
	if value != nil {
		*target = *value
	}
}

// durationOrDefault substitutes the default for durations outside the
// allowed set instead of rejecting the request.
func (p Policy) durationOrDefault(minutes int) int {
	for _, allowed := range p.AllowedDurations {
		if minutes == allowed {
			return minutes
		}
	}
	return p.DefaultDuration
}

func (p Policy) maxForMode(mode Mode) int {
	if mode == ModeSingle {
		return p.SingleMax
	}
	return p.MaxTotal
}
