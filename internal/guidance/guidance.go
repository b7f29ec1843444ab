// Package guidance derives the advisory bundle from a finished scoring
// result plus the raw answers: prioritized immediate actions, platform
// tips for the child's device, behavior-topic advice, and conversation
// openers for the parent. Rules only, fully deterministic: the same
// result and answers always produce a structurally identical bundle.
package guidance

import (
	"kidsafe-go/internal/assessment"
	"kidsafe-go/internal/models"
)

// Action is one prioritized immediate action with concrete steps.
type Action struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// DeviceTips is the tip list for one platform category.
type DeviceTips struct {
	DeviceType string   `json:"device_type"`
	Tips       []string `json:"tips"`
}

// Topic is one block of behavior advice.
type Topic struct {
	Topic  string   `json:"topic"`
	Advice []string `json:"advice"`
}

// Conversation carries the suggested tone and opener phrases.
type Conversation struct {
	Tone           string   `json:"tone"`
	ExamplePhrases []string `json:"example_phrases"`
}

// Bundle is the full guidance output, replacing any previously generated
// bundle wholesale.
type Bundle struct {
	ImmediateActions      []Action     `json:"immediate_actions"`
	DeviceRecommendations []DeviceTips `json:"device_specific_recommendations"`
	BehaviorGuidance      []Topic      `json:"online_behavior_guidance"`
	ConversationTips      Conversation `json:"parent_child_conversation_tips"`
}

// Build assembles the guidance bundle. It never re-derives scoring rules;
// the result's top risks are consumed as-is.
func Build(res *assessment.Result, answers models.AnswerSet) *Bundle {
	return &Bundle{
		ImmediateActions:      buildImmediateActions(res),
		DeviceRecommendations: buildDeviceRecommendations(answers),
		BehaviorGuidance:      buildBehaviorGuidance(answers),
		ConversationTips:      buildConversationTips(answers),
	}
}

// topRiskIDs returns the ids of at most max top risk contributors, most
// impactful first.
func topRiskIDs(res *assessment.Result, max int) []string {
	if res == nil {
		return nil
	}
	ids := make([]string, 0, max)
	for _, r := range res.TopRisks {
		if len(ids) == max {
			break
		}
		ids = append(ids, r.ID)
	}
	return ids
}
