package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/ecosnap/ecosnap-backend/internal/model"
)

var (
	jsonPattern    = regexp.MustCompile(`(?s)\{.*\}`)
	ErrParseFailed = errors.New("parse_failed")
)

// Fallback values substituted for individual missing fields; a partial
// model response never fails the whole result.
const (
	fallbackName      = "Unknown"
	fallbackRecycling = "Check local recycling guidelines."
	fallbackReuse     = "Consider reusing or upcycling."
)

type rawAnalysis struct {
	IsValidTrashImage *bool           `json:"isValidTrashImage"`
	Name              string          `json:"name"`
	Materials         json.RawMessage `json:"materials"`
	RecyclingMethod   string          `json:"recyclingMethod"`
	ReuseMethod       string          `json:"reuseMethod"`
	Category          string          `json:"category"`
	Error             string          `json:"error"`
}

// ParseAnalysis extracts the first JSON object from the model output and
// normalizes it into an Analysis. Missing fields get fallbacks; the
// category is keyword-normalized into the fixed set.
func ParseAnalysis(text string) (*model.Analysis, error) {
	m := jsonPattern.FindString(text)
	if m == "" {
		return nil, fmt.Errorf("%w: no JSON found in response", ErrParseFailed)
	}
	var raw rawAnalysis
	if err := json.Unmarshal([]byte(m), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	if raw.IsValidTrashImage != nil && !*raw.IsValidTrashImage {
		return &model.Analysis{IsValidTrashImage: false, Error: raw.Error}, nil
	}

	a := &model.Analysis{
		IsValidTrashImage: true,
		Name:              raw.Name,
		Materials:         parseMaterials(raw.Materials),
		RecyclingMethod:   raw.RecyclingMethod,
		ReuseMethod:       raw.ReuseMethod,
		Category:          model.NormalizeCategory(raw.Category),
	}
	if a.Name == "" {
		a.Name = fallbackName
	}
	if a.RecyclingMethod == "" {
		a.RecyclingMethod = fallbackRecycling
	}
	if a.ReuseMethod == "" {
		a.ReuseMethod = fallbackReuse
	}
	return a, nil
}

// parseMaterials accepts either a JSON array of strings or a bare string.
func parseMaterials(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{fallbackName}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return []string{fallbackName}
		}
		return list
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return []string{fallbackName}
}
