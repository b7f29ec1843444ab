// device.go
package guidance

import (
	"strings"

	"kidsafe-go/internal/models"
)

// buildDeviceRecommendations picks one tip list by substring match against
// the device_type context answer, checked in a fixed priority order with a
// generic fallback.
func buildDeviceRecommendations(answers models.AnswerSet) []DeviceTips {
	deviceType := answers.String("device_type")

	var tips []string
	switch {
	case strings.Contains(deviceType, "Android"):
		tips = []string{
			"Enable Google Play Protect (built-in app scanning).",
			"Disable installation from unknown sources (sideloading).",
			"Review app permissions (location, camera, microphone) and disable what isn't needed.",
			"Consider using Google Family Link for approvals and limits.",
		}
	case strings.Contains(deviceType, "iPhone") || strings.Contains(deviceType, "iPad"):
		tips = []string{
			"Enable Screen Time for content restrictions and app limits.",
			"Use 'Communication Limits' to reduce unknown contact.",
			"Turn off AirDrop from 'Everyone' (use Contacts Only).",
			"Review app permissions (Location Services, Photos, Microphone).",
		}
	case strings.Contains(deviceType, "Windows"):
		tips = []string{
			"Use a standard (non-admin) account for the child.",
			"Enable Microsoft Family Safety for filters and limits.",
			"Keep Windows updates and Microsoft Defender enabled.",
			"Turn on browser protections (SmartScreen) and safe browsing features.",
		}
	case strings.Contains(deviceType, "MacBook"):
		tips = []string{
			"Use Screen Time on macOS for app limits and content restrictions.",
			"Ensure the child uses a standard user account (not admin).",
			"Keep macOS updates enabled.",
			"Review privacy permissions in System Settings (Location, Camera, Microphone).",
		}
	case strings.Contains(deviceType, "Game console"):
		tips = []string{
			"Enable the console's parental controls and set a PIN.",
			"Restrict voice chat with strangers (friends-only is safer).",
			"Limit friend requests and messages to known contacts.",
			"Review privacy settings and online play permissions.",
		}
	default:
		tips = []string{
			"Ensure a screen lock is enabled.",
			"Keep automatic updates on.",
			"Review app permissions and privacy settings regularly.",
		}
	}

	label := deviceType
	if label == "" {
		label = "Your device"
	}

	return []DeviceTips{{DeviceType: label, Tips: tips}}
}
