// behavior.go
package guidance

import (
	"kidsafe-go/internal/assessment"
	"kidsafe-go/internal/models"
)

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

// buildBehaviorGuidance assembles topic blocks in a fixed order, each
// gated by its trigger condition over the raw answers. The healthy-habits
// topic is always appended last.
func buildBehaviorGuidance(answers models.AnswerSet) []Topic {
	out := make([]Topic, 0, 6)

	social := answers.List("social_media")
	usesSocial := len(social) > 0 &&
		!contains(social, assessment.AnswerNone) &&
		!contains(social, assessment.AnswerUnsure)

	if usesSocial {
		out = append(out, Topic{
			Topic: "Social media safety",
			Advice: []string{
				"Set profiles to Private/Friends-only where possible.",
				"Disable location tagging for posts and stories.",
				"Review followers/friends together and remove unknown people.",
				"Limit who can message your child (friends-only is safest).",
			},
		})
	} else if contains(social, assessment.AnswerUnsure) {
		out = append(out, Topic{
			Topic: "Social media visibility check",
			Advice: []string{
				"Ask your child which apps they use to post or message friends.",
				"Check whether any accounts are public and switch to Private/Friends-only if needed.",
			},
		})
	}

	if photoSharing := answers.String("photo_sharing"); photoSharing == "Often" || photoSharing == "Sometimes" {
		out = append(out, Topic{
			Topic: "Photo & video sharing",
			Advice: []string{
				"Avoid sharing personal details in photos (school name, street signs, schedules).",
				"Turn off location in the camera app and in social apps.",
				"Agree on a simple rule: ask before posting a new photo/video.",
			},
		})
	}

	switch answers.String("online_contacts") {
	case "Mixed (friends + online people)", "Mostly online people", assessment.AnswerUnsure:
		out = append(out, Topic{
			Topic: "Chat and contacts",
			Advice: []string{
				"Keep friend lists to people your child knows in real life when possible.",
				"Teach a clear rule: never share address, school, phone number, or meeting plans online.",
				"Encourage your child to tell you if someone makes them uncomfortable.",
			},
		})
	}

	switch answers.String("gaming_chat") {
	case "Yes, with voice chat", "Yes, with text chat":
		out = append(out, Topic{
			Topic: "Gaming and chat",
			Advice: []string{
				"Limit chat to friends-only where the game allows it.",
				"Disable voice chat with strangers (or use party chat with real friends).",
				"Remind your child: no personal details in chat, ever.",
			},
		})
	}

	if publicWifi := answers.String("public_wifi"); publicWifi == "Often" || publicWifi == "Sometimes" {
		out = append(out, Topic{
			Topic: "Public Wi-Fi",
			Advice: []string{
				"Turn off auto-join for open Wi-Fi networks.",
				"Avoid logging into sensitive accounts on public Wi-Fi when possible.",
				"If public Wi-Fi is frequent, consider a reputable VPN later (optional).",
			},
		})
	}

	out = append(out, Topic{
		Topic: "Healthy digital safety habits",
		Advice: []string{
			"Only answer calls or messages from people you recognize, or check with a parent first.",
			"Share photos or videos only with people you know and trust in real life.",
			"If a message asks you to act quickly or keep secrets, pause and involve a parent.",
			"Only accept new chat contacts if you know them personally.",
			"If you're unsure whether someone online is real, verify together with a parent.",
			"If something feels unusual or uncomfortable, tell a parent - you won't be in trouble.",
		},
	})

	return out
}
