// conversation.go
package guidance

import "kidsafe-go/internal/models"

// Phrase list stays short: at most this many openers.
const maxPhrases = 6

// Age brackets that change the suggested wording. Values match the
// questionnaire options exactly.
func isYoungerAge(age string) bool {
	return age == "Under 6" || age == "7–9"
}

func isTeen(age string) bool {
	return age == "13–15" || age == "16–17"
}

// buildConversationTips selects a tone from the incident answer and
// assembles opener phrases in fixed order: base, younger-age, teen,
// incident-specific, truncated to the cap.
func buildConversationTips(answers models.AnswerSet) Conversation {
	age := answers.String("age")
	hadIncident := answers.String("online_incidents") == "Yes"

	tone := "Calm, encouraging, and non-judgmental"
	if hadIncident {
		tone = "Calm, supportive, and reassuring"
	}

	phrases := []string{
		"I want your device to feel safe for you - can we look at a few settings together?",
		"You're not in trouble. I'm here to support you if anything online feels weird or uncomfortable.",
		"If someone online asks personal questions, what do you think is a safe response?",
	}

	if isYoungerAge(age) {
		phrases = append(phrases,
			"If a stranger sends a message, what should we do together?",
			"It's always okay to tell me - even if you clicked something by accident.",
		)
	}
	if isTeen(age) {
		phrases = append(phrases,
			"If someone pressures you to share photos or meet up, you can tell me - I'll help, not judge.",
			"Let's agree on what's okay to share online and what stays private.",
		)
	}
	if hadIncident {
		phrases = append(phrases,
			"Thank you for telling me. You did the right thing - we'll handle it together.",
			"Let's save evidence (screenshots) and block/report the account if needed.",
		)
	}

	if len(phrases) > maxPhrases {
		phrases = phrases[:maxPhrases]
	}

	return Conversation{Tone: tone, ExamplePhrases: phrases}
}
