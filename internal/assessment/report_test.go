package assessment

import (
	"strings"
	"testing"

	"kidsafe-go/internal/models"
)

func TestBuildRiskReportFromNilResult(t *testing.T) {
	rep := BuildRiskReportFromResult(nil)
	if rep.Summary.RiskScore != nil {
		t.Fatalf("expected nil risk score, got %v", *rep.Summary.RiskScore)
	}
	if rep.Summary.RiskLevel != LevelMedium {
		t.Fatalf("expected Medium fallback level, got %q", rep.Summary.RiskLevel)
	}
	if !strings.Contains(rep.Summary.ShortOverview, "answers were recorded") {
		t.Fatalf("unexpected overview: %q", rep.Summary.ShortOverview)
	}
	if rep.Disclaimer == "" {
		t.Fatal("disclaimer must always be present")
	}
}

func TestBuildRiskReportSummary(t *testing.T) {
	qn := loadQuestionnaire(t)

	rep := BuildRiskReport(safestAnswers(), qn)
	if rep.Summary.RiskScore == nil || *rep.Summary.RiskScore != 100 {
		t.Fatalf("expected score 100, got %v", rep.Summary.RiskScore)
	}
	if rep.Summary.RiskLevel != LevelLow {
		t.Fatalf("expected Low, got %q", rep.Summary.RiskLevel)
	}
	if !strings.Contains(rep.Summary.ShortOverview, "looks strong") {
		t.Fatalf("unexpected low-risk overview: %q", rep.Summary.ShortOverview)
	}

	rep = BuildRiskReport(worstAnswers(), qn)
	if rep.Summary.RiskLevel != LevelHigh {
		t.Fatalf("expected High, got %q", rep.Summary.RiskLevel)
	}
	if !strings.Contains(rep.Summary.ShortOverview, "higher risk") {
		t.Fatalf("unexpected high-risk overview: %q", rep.Summary.ShortOverview)
	}
	if rep.ReportID == "" {
		t.Fatal("report id must be set")
	}
}

func TestKeyRisksUseExplanationTable(t *testing.T) {
	qn := loadQuestionnaire(t)
	rep := BuildRiskReport(models.AnswerSet{
		"screen_lock":  "No",
		"social_media": []string{"None"},
	}, qn)

	found := false
	for _, kr := range rep.KeyRisks {
		if kr.Title == "Device access may be unprotected" {
			found = true
			if !strings.Contains(kr.Description, "Without a screen lock") {
				t.Fatalf("chosen-dependent description not selected: %q", kr.Description)
			}
			if kr.Severity != LevelHigh {
				t.Fatalf("base 5 should map to High severity, got %q", kr.Severity)
			}
		}
	}
	if !found {
		t.Fatal("screen_lock explanation missing from key risks")
	}
}

func TestKeyRiskFallbackForUnmappedID(t *testing.T) {
	qn := &models.Questionnaire{Questions: []models.Question{
		{ID: "mystery", Domain: "D", Title: "Mystery question", Type: models.TypeSingle, Weight: 1,
			ScoreMap: map[string]int{"Safe": 0, "Risky": 5}},
	}}
	rep := BuildRiskReport(models.AnswerSet{"mystery": "Risky"}, qn)
	if len(rep.KeyRisks) != 1 {
		t.Fatalf("expected one key risk, got %d", len(rep.KeyRisks))
	}
	kr := rep.KeyRisks[0]
	if kr.Title != "Mystery question" {
		t.Fatalf("expected question title fallback, got %q", kr.Title)
	}
	if !strings.Contains(kr.Description, "may increase exposure") {
		t.Fatalf("expected generic description, got %q", kr.Description)
	}
}

func TestSeverityFromBasePoints(t *testing.T) {
	cases := []struct {
		points int
		want   string
	}{
		{0, LevelLow},
		{1, LevelLow},
		{2, LevelMedium},
		{3, LevelMedium},
		{4, LevelHigh},
		{5, LevelHigh},
	}
	for _, tc := range cases {
		if got := severityFromBasePoints(tc.points); got != tc.want {
			t.Fatalf("points %d: expected %q, got %q", tc.points, tc.want, got)
		}
	}
}
