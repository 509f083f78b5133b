package exam

import "fmt"

// BuildPractice assembles a one-off, unpersisted exam from the catalog:
// same allocation and shuffling as a real attempt, but nothing is written
// anywhere. Used by the offline CLI runner.
func BuildPractice(catalog *Catalog, disciplineName string, total int, seed int64) ([]SnapshotQuestion, error) {
	var disciplines []Discipline
	if disciplineName != "" {
		discipline, ok := catalog.Discipline(disciplineName)
		if !ok {
			return nil, fmt.Errorf("%w: unknown discipline %q", ErrValidation, disciplineName)
		}
		disciplines = []Discipline{discipline}
	} else {
		disciplines = catalog.Disciplines()
	}

	counts := make([]disciplineCount, len(disciplines))
	for idx, discipline := range disciplines {
		counts[idx] = disciplineCount{name: discipline.Name, available: len(discipline.Questions)}
	}
	quotas, err := allocate(counts, total, DistributionAuto)
	if err != nil {
		return nil, err
	}

	parts := make([]allocatedDiscipline, len(disciplines))
	for idx, discipline := range disciplines {
		parts[idx] = allocatedDiscipline{Discipline: discipline, Quota: quotas[idx]}
	}
	return buildSnapshot(parts, total, seed, true), nil
}
