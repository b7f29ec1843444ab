// questionnaire.go
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Question types as they appear in questions.yaml.
const (
	TypeSingle = "single"
	TypeMulti  = "multi"
)

// Question struct to match the YAML structure. Scoring fields (weight,
// score_map, scored) drive the assessment engine; the rest is form metadata.
type Question struct {
	ID       string         `yaml:"id" json:"id"`
	Domain   string         `yaml:"domain" json:"domain"`
	Title    string         `yaml:"title" json:"title"`
	Prompt   string         `yaml:"prompt" json:"question"`
	Type     string         `yaml:"type" json:"type"`
	Required bool           `yaml:"required" json:"required"`
	Options  []string       `yaml:"options" json:"options"`
	Weight   int            `yaml:"weight,omitempty" json:"-"`
	ScoreMap map[string]int `yaml:"score_map,omitempty" json:"-"`

	// Scored is a tri-state in YAML so that omitting it means "scored".
	// Context questions set `scored: false` explicitly.
	Scored *bool `yaml:"scored,omitempty" json:"-"`
}

// IsScored reports whether the question contributes risk points.
func (q *Question) IsScored() bool {
	return q.Scored == nil || *q.Scored
}

// MultiWorstPoints is the worst-case base score of a multi-select question
// (3+ selections under the counting rule).
const MultiWorstPoints = 5

// WorstPoints returns the maximum base score this question can contribute,
// used as the normalization denominator.
func (q *Question) WorstPoints() int {
	if q.Type == TypeMulti {
		return MultiWorstPoints
	}
	worst := 0
	for _, v := range q.ScoreMap {
		if v > worst {
			worst = v
		}
	}
	return worst
}

// Questionnaire holds the full ordered question configuration table.
type Questionnaire struct {
	Questions []Question `yaml:"questions" json:"questions"`
}

// ByID looks a question up by id, preserving no state.
func (qn *Questionnaire) ByID(id string) (Question, bool) {
	for _, q := range qn.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// LoadQuestionnaire reads and parses the questions.yaml file. Weights
// default to 1 when omitted.
func LoadQuestionnaire(path string) (*Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questionnaire file: %w", err)
	}

	var qn Questionnaire
	if err := yaml.Unmarshal(data, &qn); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questionnaire YAML: %w", err)
	}

	for i := range qn.Questions {
		if qn.Questions[i].Weight == 0 {
			qn.Questions[i].Weight = 1
		}
		if qn.Questions[i].Type == "" {
			qn.Questions[i].Type = TypeSingle
		}
	}

	return &qn, nil
}
