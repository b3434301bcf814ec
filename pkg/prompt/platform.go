package prompt

import "strings"

const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformThreads   = "threads"
	PlatformLinkedIn  = "linkedin"
	PlatformTwitter   = "twitter"
	PlatformX         = "x"
)

// NormalizePlatform lower-cases and trims a platform name. "x" stays distinct
// from "twitter" so callers can echo what the user asked for.
func NormalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

// PlatformGuidance returns the style guidance for a platform.
// Unknown or empty platforms get the generic guidance.
func PlatformGuidance(platform string) string {
	switch NormalizePlatform(platform) {
	case PlatformFacebook:
		return "Optimize for Facebook: longer content, clear formatting, relevant hashtags."
	case PlatformInstagram:
		return "Optimize for Instagram: focus on an engaging caption, rich hashtags and a clear call to action."
	case PlatformTikTok:
		return "Optimize for TikTok: a short, trend-aware script with rhythm and a suitable music suggestion."
	case PlatformThreads:
		return "Optimize for Threads: short, concise and approachable content."
	case PlatformLinkedIn:
		return "Optimize for LinkedIn: professional tone, high informational value, clear formatting."
	case PlatformTwitter, PlatformX:
		return "Optimize for Twitter/X: short and concise, relevant hashtags, under 280 characters."
	default:
		return "Create content that fits general social media standards."
	}
}
