package exam

import (
	"hash/fnv"
	"math/rand"
)

type allocatedDiscipline struct {
	Discipline
	Quota int
}

// seedFromID derives the attempt's deterministic seed from its identifier,
// so the same attempt id always reproduces the same snapshot.
func seedFromID(id string) int64 {
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(id))
	return int64(hash.Sum64())
}

// buildSnapshot assembles the frozen question sequence for an attempt: each
// discipline's pool is shuffled and its quota taken without replacement, any
// shortfall is backfilled from the shuffled unused remainder, the combined
// list is shuffled once more so position reveals nothing about discipline,
// and option labels are permuted per question when enabled.
func buildSnapshot(parts []allocatedDiscipline, total int, seed int64, shuffleOptions bool) []SnapshotQuestion {
	rng := rand.New(rand.NewSource(seed))

	picked := make([]SnapshotQuestion, 0, total)
	var leftover []SnapshotQuestion

	for _, part := range parts {
		pool := make([]Question, len(part.Questions))
		copy(pool, part.Questions)
		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})

		take := part.Quota
		if take > len(pool) {
			take = len(pool)
		}
		for idx, question := range pool {
			tagged := SnapshotQuestion{Question: question, Discipline: part.Name}
			if idx < take {
				picked = append(picked, tagged)
			} else {
				leftover = append(leftover, tagged)
			}
		}
	}

	if len(picked) < total {
		rng.Shuffle(len(leftover), func(i, j int) {
			leftover[i], leftover[j] = leftover[j], leftover[i]
		})
		need := total - len(picked)
		if need > len(leftover) {
			need = len(leftover)
		}
		picked = append(picked, leftover[:need]...)
	}

	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	for idx := range picked {
		if shuffleOptions {
			picked[idx].Question = shuffleQuestionOptions(picked[idx].Question, rng)
		}
		picked[idx].Index = idx
	}

	return picked
}

// shuffleQuestionOptions permutes the option texts under fresh A.. labels and
// remaps the correct label to wherever the originally-correct text landed, so
// correctness checks behave exactly as in an unshuffled attempt.
func shuffleQuestionOptions(question Question, rng *rand.Rand) Question {
	correctIdx := -1
	for idx, option := range question.Options {
		if option.Label == question.CorrectLabel {
			correctIdx = idx
		}
	}

	perm := rng.Perm(len(question.Options))
	shuffled := make([]Option, len(question.Options))
	remapped := question.CorrectLabel
	for idx, src := range perm {
		label := string(rune('A' + idx))
		shuffled[idx] = Option{Label: label, Text: question.Options[src].Text}
		if src == correctIdx {
			remapped = label
		}
	}

	question.Options = shuffled
	question.CorrectLabel = remapped
	return question
}
