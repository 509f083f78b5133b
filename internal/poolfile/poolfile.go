package poolfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// RawQuestion mirrors one question entry in the pool file before validation.
// Fields may be missing or malformed; exam.BuildCatalog decides what survives.
type RawQuestion struct {
	ID      string            `json:"id"`
	Stem    string            `json:"stem"`
	Options map[string]string `json:"options"`
	Correct string            `json:"correct"`
}

type RawDiscipline struct {
	Name      string        `json:"name"`
	Questions []RawQuestion `json:"questions"`
}

type poolDocument struct {
	Disciplines []RawDiscipline `json:"disciplines"`
}

// Load reads the question pool file. A missing file is not an error: the
// engine treats an empty pool as an ordinary "insufficient pool" condition
// at attempt-creation time.
func Load(path string) ([]RawDiscipline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var doc poolDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse pool file %s: %w", path, err)
	}

	return doc.Disciplines, nil
}
