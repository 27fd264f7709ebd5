// README: Turns a /chat request into an upstream prompt or a refusal.
package prompt

import (
	"fmt"
	"strings"
)

// Resolve derives the upstream prompt. A non-blank free-form prompt wins over
// trip parameters and is forwarded untouched when it mentions a travel keyword.
func Resolve(req Request) (Resolution, error) {
	if req.Prompt.IsSet() {
		if !req.Prompt.IsString() {
			return Resolution{}, ErrInvalidPrompt
		}
		text := req.Prompt.String()
		if strings.TrimSpace(text) != "" {
			if !IsTravelRelated(text) {
				return Resolution{Refused: true}, nil
			}
			return Resolution{Prompt: text}, nil
		}
	}

	return Resolution{Prompt: Build(
		req.Destination.Or(DefaultDestination).String(),
		req.Days.Or(DefaultDays).String(),
		req.Budget.Or(DefaultBudget).String(),
		req.Preferences.Or(DefaultPreferences).String(),
	)}, nil
}

// IsTravelRelated reports whether text contains any allow-listed keyword.
func IsTravelRelated(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Build fills the trip-planning template. Values are concatenated as given.
func Build(destination, days, budget, preferences string) string {
	return fmt.Sprintf(
		"You are a helpful travel assistant. Plan a %s-day trip to %s within ₹%s. User preferences: %s. "+
			"Give a detailed daily itinerary, travel tips, food and hotel suggestions.",
		days, destination, budget, preferences,
	)
}
