// Package assessment implements the risk-scoring engine: it maps a submitted
// answer set plus the static question configuration to a normalized 0-100
// safety score, a risk level, per-domain sub-scores, and the ranked top risk
// contributors that drive guidance selection.
//
// The engine is deliberately resilient rather than strict: the questionnaire
// form enforces required fields, so missing or unrecognized answers degrade
// to documented "unsure" defaults instead of producing errors.
package assessment

import (
	"math"
	"sort"
	"strings"

	"kidsafe-go/internal/models"
)

// Answer sentinels shared by the scoring rules and the guidance triggers.
const (
	AnswerUnsure = "I'm not sure"
	AnswerNone   = "None"
)

// Base points substituted when a single-select question is unanswered and
// its score map has no explicit "unsure" entry.
const defaultUnsurePoints = 2

// Risk levels.
const (
	LevelLow    = "Low"
	LevelMedium = "Medium"
	LevelHigh   = "High"
)

// Number of top risk contributors reported on the result.
const topRiskCount = 5

// QuestionScore is the per-question score record, recomputed on every run.
type QuestionScore struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Domain     string `json:"domain"`
	Chosen     string `json:"chosen"`
	Scored     bool   `json:"scored"`
	BasePoints int    `json:"basePoints"`
	Weight     int    `json:"weight"`
	RiskPoints int    `json:"riskPoints"`
}

// DomainScore is the normalized sub-score for one question domain.
type DomainScore struct {
	Domain string `json:"domain"`
	Score  int    `json:"score"`
}

// Context carries the unscored answers used to personalize guidance.
type Context struct {
	Age             string `json:"age"`
	DeviceOwnership string `json:"device_ownership"`
	DeviceType      string `json:"device_type"`
}

// Result is the full output of one scoring run.
type Result struct {
	Score        int             `json:"score"`
	RiskLevel    string          `json:"riskLevel"`
	DomainScores []DomainScore   `json:"domainScores"`
	TopRisks     []QuestionScore `json:"topRisks"`
	Context      Context         `json:"context"`
}

// levelForScore classifies a normalized score. Lower bounds are inclusive.
func levelForScore(score int) string {
	switch {
	case score >= 85:
		return LevelLow
	case score >= 70:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// scoreMultiSelect applies the selection-count rule for multi-select
// questions: unanswered means unknown risk, an explicit "None" clears the
// risk, "unsure" keeps it moderate, and otherwise risk grows with the
// number of distinct platforms, capped at three or more. "None" and
// "unsure" take precedence over the count regardless of co-selection.
func scoreMultiSelect(selected []string) int {
	if len(selected) == 0 {
		return 2
	}
	for _, s := range selected {
		if s == AnswerNone {
			return 0
		}
	}
	for _, s := range selected {
		if s == AnswerUnsure {
			return 2
		}
	}
	switch len(selected) {
	case 1:
		return 2
	case 2:
		return 3
	default:
		return 5
	}
}

// baseScore computes the unweighted base points for one question.
func baseScore(q *models.Question, answers models.AnswerSet) (base int, chosen string) {
	if q.Type == models.TypeMulti {
		selected := answers.List(q.ID)
		return scoreMultiSelect(selected), strings.Join(selected, ", ")
	}

	chosen = answers.String(q.ID)
	if chosen == "" {
		if v, ok := q.ScoreMap[AnswerUnsure]; ok {
			return v, chosen
		}
		return defaultUnsurePoints, chosen
	}
	// An answer outside the score map carries no points rather than failing.
	return q.ScoreMap[chosen], chosen
}

// normalize converts accumulated risk points into a 0-100 score where 100
// is safest. A zero denominator is treated as 1 so an all-context
// questionnaire still yields a score.
func normalize(risk, maxRisk int) int {
	if maxRisk == 0 {
		maxRisk = 1
	}
	score := int(math.Round(100 * (1 - float64(risk)/float64(maxRisk))))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Assess runs the scoring engine over one answer set. It never fails:
// unknown ids are ignored and missing answers score at their unsure
// defaults.
func Assess(answers models.AnswerSet, qn *models.Questionnaire) *Result {
	perQuestion := make([]QuestionScore, 0, len(qn.Questions))
	totalRisk, maxRisk := 0, 0

	// Domain aggregates, keyed by name but ordered by first encounter so
	// that tied domain scores keep their configuration order.
	type domainAgg struct{ risk, max int }
	domainOrder := make([]string, 0, 8)
	domains := make(map[string]*domainAgg)

	for i := range qn.Questions {
		q := &qn.Questions[i]

		if !q.IsScored() {
			chosen := answers.String(q.ID)
			if q.Type == models.TypeMulti {
				chosen = strings.Join(answers.List(q.ID), ", ")
			}
			perQuestion = append(perQuestion, QuestionScore{
				ID: q.ID, Title: q.Title, Domain: q.Domain, Chosen: chosen,
			})
			continue
		}

		base, chosen := baseScore(q, answers)
		rec := QuestionScore{
			ID:         q.ID,
			Title:      q.Title,
			Domain:     q.Domain,
			Chosen:     chosen,
			Scored:     true,
			BasePoints: base,
			Weight:     q.Weight,
			RiskPoints: base * q.Weight,
		}
		perQuestion = append(perQuestion, rec)

		worst := q.WorstPoints() * q.Weight
		totalRisk += rec.RiskPoints
		maxRisk += worst

		agg, ok := domains[q.Domain]
		if !ok {
			agg = &domainAgg{}
			domains[q.Domain] = agg
			domainOrder = append(domainOrder, q.Domain)
		}
		agg.risk += rec.RiskPoints
		agg.max += worst
	}

	score := normalize(totalRisk, maxRisk)

	domainScores := make([]DomainScore, 0, len(domainOrder))
	for _, name := range domainOrder {
		agg := domains[name]
		domainScores = append(domainScores, DomainScore{
			Domain: name,
			Score:  normalize(agg.risk, agg.max),
		})
	}
	// Weakest domain first; stable so ties keep encounter order.
	sort.SliceStable(domainScores, func(i, j int) bool {
		return domainScores[i].Score < domainScores[j].Score
	})

	topRisks := make([]QuestionScore, 0, len(perQuestion))
	for _, rec := range perQuestion {
		if rec.Scored {
			topRisks = append(topRisks, rec)
		}
	}
	// Stable so tied risk points keep configuration order.
	sort.SliceStable(topRisks, func(i, j int) bool {
		return topRisks[i].RiskPoints > topRisks[j].RiskPoints
	})
	if len(topRisks) > topRiskCount {
		topRisks = topRisks[:topRiskCount]
	}

	return &Result{
		Score:        score,
		RiskLevel:    levelForScore(score),
		DomainScores: domainScores,
		TopRisks:     topRisks,
		Context: Context{
			Age:             answers.String("age"),
			DeviceOwnership: answers.String("device_ownership"),
			DeviceType:      answers.String("device_type"),
		},
	}
}
