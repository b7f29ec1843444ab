// report.go
package assessment

import (
	"strings"

	"github.com/google/uuid"

	"kidsafe-go/internal/models"
)

// Report is the display-level composite returned to the caller. Guidance
// sections are merged in by the caller once they are generated.
type Report struct {
	ReportID   string    `json:"report_id"`
	Summary    Summary   `json:"summary"`
	KeyRisks   []KeyRisk `json:"key_risks"`
	Disclaimer string    `json:"disclaimer"`
}

// Summary is the narrative header of the report.
type Summary struct {
	RiskScore     *int   `json:"risk_score"`
	RiskLevel     string `json:"risk_level"`
	ShortOverview string `json:"short_overview"`
}

// KeyRisk explains one top risk contributor in parent-facing language.
type KeyRisk struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

const disclaimer = "This assessment is general guidance based on your answers. " +
	"It is not legal, medical, or emergency advice. If you believe your child is " +
	"in immediate danger, please contact local authorities or a child protection organization."

// riskExplanation describes what a risky answer implies, without giving
// recommendations (those belong to the guidance engine).
type riskExplanation struct {
	title    string
	describe func(chosen string) string
}

var riskExplanations = map[string]riskExplanation{
	"screen_lock": {
		title: "Device access may be unprotected",
		describe: func(chosen string) string {
			if chosen == "No" {
				return "Without a screen lock, anyone holding the device can open apps, messages, and accounts."
			}
			return "If you're not sure about screen lock, the device may be easier to access than expected."
		},
	},
	"app_install": {
		title: "Apps may be installed without supervision",
		describe: func(chosen string) string {
			if chosen == "Yes" {
				return "Installing apps without approval increases exposure to unsafe apps, ads, tracking, and inappropriate content."
			}
			return "If you're not sure, it may be worth checking device permissions for app installs."
		},
	},
	"parental_controls": {
		title: "Family safety controls may be missing or incomplete",
		describe: func(chosen string) string {
			if chosen == "No" {
				return "Without parental controls, it's harder to manage screen time, app access, and age-appropriate content."
			}
			return "Partial or unknown setup can leave gaps depending on the device and apps used."
		},
	},
	"social_media": {
		title: "Social platform exposure",
		describe: func(string) string {
			return "Using multiple social platforms can increase contact with strangers, unwanted messages, and privacy exposure."
		},
	},
	"photo_sharing": {
		title: "Personal content may be publicly shared",
		describe: func(chosen string) string {
			if chosen == "Often" {
				return "Frequent posting can increase privacy risk and unwanted attention, especially if profiles are not private."
			}
			return "Posting sometimes/rarely still carries privacy risk depending on who can view the content."
		},
	},
	"online_contacts": {
		title: "Online contacts may include unknown people",
		describe: func(chosen string) string {
			if strings.Contains(chosen, "Mostly online") {
				return "Talking mostly with online people increases the chance of unwanted contact and manipulation."
			}
			return "Mixed contacts may include people you don't know in real life."
		},
	},
	"unknown_callers": {
		title: "Unknown people may contact your child",
		describe: func(chosen string) string {
			if chosen == "Yes" {
				return "Allowing unknown numbers increases the chance of spam, scams, and unwanted contact."
			}
			return "If you're not sure, the current settings may allow unknown contacts."
		},
	},
	"gaming_chat": {
		title: "Chat in games can create contact risk",
		describe: func(chosen string) string {
			switch {
			case strings.Contains(chosen, "voice"):
				return "Voice chat can expose children to strangers, inappropriate language, or pressure."
			case strings.Contains(chosen, "text"):
				return "Text chat can expose children to strangers, unwanted messages, or bullying."
			default:
				return "Game chat appears limited, which reduces contact risk."
			}
		},
	},
	"public_wifi": {
		title: "Public Wi-Fi can increase network exposure",
		describe: func(chosen string) string {
			if chosen == "Often" {
				return "Public Wi-Fi can be less secure and may expose browsing or app traffic to interception."
			}
			return "Occasional public Wi-Fi still carries some risk depending on the network."
		},
	},
	"privacy_settings": {
		title: "Privacy settings may allow wider visibility",
		describe: func(chosen string) string {
			if chosen == "No" {
				return "If apps are not private/friends-only, content may be visible to more people than intended."
			}
			return "Partial or unknown privacy settings can leave some apps more open than expected."
		},
	},
	"app_review": {
		title: "Installed apps may not be regularly checked",
		describe: func(chosen string) string {
			if chosen == "No" {
				return "If apps aren't reviewed, risky or unnecessary apps can stay installed unnoticed."
			}
			return "Sometimes reviewing apps may miss changes over time as new apps are installed."
		},
	},
	"online_incidents": {
		title: "Past unwanted contact or bullying risk",
		describe: func(chosen string) string {
			if chosen == "Yes" {
				return "Past incidents suggest a higher chance of repeated unwanted contact or bullying without protective changes."
			}
			return "Uncertainty can mean issues happened but weren't clearly identified."
		},
	},
}

func severityFromBasePoints(p int) string {
	switch {
	case p >= 4:
		return LevelHigh
	case p >= 2:
		return LevelMedium
	default:
		return LevelLow
	}
}

func overviewForLevel(level string) string {
	switch level {
	case LevelLow:
		return "Overall safety looks strong. There are still a few areas you can review for extra peace of mind."
	case LevelMedium:
		return "Overall safety is moderate. A few areas may benefit from small improvements and regular check-ins."
	default:
		return "Overall safety appears higher risk. Several answers suggest your child may be more exposed to online risks."
	}
}

// BuildRiskReport scores the answer set and assembles the report in one
// call.
func BuildRiskReport(answers models.AnswerSet, qn *models.Questionnaire) *Report {
	return BuildRiskReportFromResult(Assess(answers, qn))
}

// BuildRiskReportFromResult assembles a report from an existing scoring
// result, avoiding recomputation. A nil result produces the neutral
// "answers recorded" report.
func BuildRiskReportFromResult(res *Result) *Report {
	if res == nil {
		return &Report{
			ReportID: uuid.NewString(),
			Summary: Summary{
				RiskLevel: LevelMedium,
				ShortOverview: "Your answers were recorded. This assessment summarizes likely " +
					"safety exposure based on the questionnaire.",
			},
			KeyRisks:   []KeyRisk{},
			Disclaimer: disclaimer,
		}
	}

	score := res.Score
	keyRisks := make([]KeyRisk, 0, len(res.TopRisks))
	for _, r := range res.TopRisks {
		kr := KeyRisk{
			Title:       r.Title,
			Description: "This area may increase exposure depending on current settings and habits.",
			Severity:    severityFromBasePoints(r.BasePoints),
		}
		if kr.Title == "" {
			kr.Title = "Potential risk area"
		}
		if expl, ok := riskExplanations[r.ID]; ok {
			kr.Title = expl.title
			kr.Description = expl.describe(r.Chosen)
		}
		keyRisks = append(keyRisks, kr)
	}

	return &Report{
		ReportID: uuid.NewString(),
		Summary: Summary{
			RiskScore:     &score,
			RiskLevel:     res.RiskLevel,
			ShortOverview: overviewForLevel(res.RiskLevel),
		},
		KeyRisks:   keyRisks,
		Disclaimer: disclaimer,
	}
}
