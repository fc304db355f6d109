package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/PabloGalante/longevity-agent/internal/domain"
)

// FileSource loads the supplement catalog from a JSON file of the shape
// {"supplements": [...]}.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) LoadSupplements(_ context.Context) ([]*domain.Supplement, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge file: %w", err)
	}

	var payload struct {
		Supplements []*domain.Supplement `json:"supplements"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parsing knowledge file %s: %w", s.Path, err)
	}
	if len(payload.Supplements) == 0 {
		return nil, fmt.Errorf("knowledge file %s contains no supplements", s.Path)
	}

	return payload.Supplements, nil
}
