// actions.go
package guidance

import (
	"strings"

	"kidsafe-go/internal/assessment"
)

// Immediate actions are kept short and doable: at most this many.
const maxActions = 3

// How many top risks are considered before mapping and de-duplication.
const actionCandidates = 4

// actionForRisk maps a question id to its action template. Ids outside
// the table yield no action.
func actionForRisk(riskID string) (Action, bool) {
	switch riskID {
	case "screen_lock":
		return Action{
			Title: "Turn on a screen lock",
			Steps: []string{
				"Open device Settings.",
				"Go to Security / Lock Screen (or Face ID / Touch ID / Passcode).",
				"Choose a PIN or passcode that your child can remember.",
				"Explain it like locking the front door - it protects photos, messages, and apps if the device is lost.",
			},
		}, true

	case "app_install":
		return Action{
			Title: "Require approval for app installs",
			Steps: []string{
				"Enable family safety controls for the device (Screen Time / Family Link / Family Safety).",
				"Turn on app approvals (parent permission) for new installs.",
				"Review existing installed apps together and remove anything you don't recognize.",
			},
		}, true

	case "parental_controls":
		return Action{
			Title: "Enable parental controls / family safety tools",
			Steps: []string{
				"Turn on the built-in family safety features for the device.",
				"Set age-appropriate content restrictions and basic screen-time limits.",
				"Start simple - you can adjust later based on what works for your family.",
			},
		}, true

	case "privacy_settings":
		return Action{
			Title: "Set apps to Private / Friends-only",
			Steps: []string{
				"Open the settings inside each social app your child uses.",
				"Set the account to Private (or Friends-only).",
				"Disable public profile visibility where possible.",
				"Review who can message/comment and limit to known contacts.",
			},
		}, true

	case "unknown_callers":
		return Action{
			Title: "Limit unknown callers and messages",
			Steps: []string{
				"Enable spam/unknown caller filtering on the device.",
				"If available, use a contacts-only mode (or block unknown callers).",
				"Review messaging app privacy settings so only approved contacts can message.",
			},
		}, true

	case "online_contacts":
		return Action{
			Title: "Review who your child chats with online",
			Steps: []string{
				"Ask your child to show the apps they use for chatting and gaming.",
				"Review the contact/friends list together and remove unknown people.",
				"Agree on a simple rule: no sharing personal details (school, address, schedules).",
			},
		}, true

	case "gaming_chat":
		return Action{
			Title: "Reduce exposure in game chat",
			Steps: []string{
				"Check game privacy settings for chat and friend requests.",
				"Disable voice chat with strangers (or limit chat to friends).",
				"Remind your child not to share personal information in chats.",
			},
		}, true

	case "public_wifi":
		return Action{
			Title: "Make public Wi-Fi use safer",
			Steps: []string{
				"Turn off auto-join for open Wi-Fi networks.",
				"Avoid logging into sensitive accounts on public Wi-Fi when possible.",
				"If your family uses public Wi-Fi often, consider a reputable VPN later (optional).",
			},
		}, true

	case "photo_sharing":
		return Action{
			Title: "Reduce privacy exposure from photo/video sharing",
			Steps: []string{
				"Disable location tagging in the camera and social apps.",
				"Set who can view posts to Friends-only/Private.",
				"Agree on a 'pause and check' habit: ask a parent before posting personal photos.",
			},
		}, true

	case "app_review":
		return Action{
			Title: "Set a simple routine to review installed apps",
			Steps: []string{
				"Once a month, review installed apps together for 5 minutes.",
				"Remove apps your child doesn't use or that feel uncomfortable.",
				"Check app permissions (location, camera, microphone) and turn off what isn't needed.",
			},
		}, true

	case "online_incidents":
		return Action{
			Title: "Create a safe reporting path for incidents",
			Steps: []string{
				"Let your child know they can tell you about bullying or unwanted messages without getting in trouble.",
				"Save evidence (screenshots) if something concerning happens.",
				"Block/report accounts within the app, and consider adjusting privacy settings afterward.",
			},
		}, true

	case "social_media":
		return Action{
			Title: "Review social media exposure",
			Steps: []string{
				"Check which platforms are used and what the profiles look like from an outsider view.",
				"Set accounts to Private/Friends-only and limit who can message.",
				"Review followers/friends and remove unknown contacts.",
			},
		}, true
	}

	return Action{}, false
}

// baselineAction is the safe fallback when no top risk maps to an action,
// so the section is never silently empty while risk exists.
func baselineAction() Action {
	return Action{
		Title: "Start with a quick safety check",
		Steps: []string{
			"Confirm the device has a screen lock.",
			"Review privacy settings on the main apps.",
			"Check that app installs require parent approval (where available).",
		},
	}
}

func buildImmediateActions(res *assessment.Result) []Action {
	actions := make([]Action, 0, actionCandidates)
	for _, id := range topRiskIDs(res, actionCandidates) {
		if a, ok := actionForRisk(id); ok {
			actions = append(actions, a)
		}
	}

	if len(actions) == 0 {
		actions = append(actions, baselineAction())
	}

	// De-duplicate by normalized title, first occurrence wins.
	seen := make(map[string]bool, len(actions))
	out := make([]Action, 0, maxActions)
	for _, a := range actions {
		key := strings.ToLower(strings.TrimSpace(a.Title))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
		if len(out) == maxActions {
			break
		}
	}
	return out
}
