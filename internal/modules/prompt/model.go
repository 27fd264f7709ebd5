// README: Prompt resolver inputs, allow-list and defaults.
package prompt

import (
	"errors"

	"travelrelay/internal/types"
)

// ErrInvalidPrompt is returned when the prompt field is present but not a JSON string.
var ErrInvalidPrompt = errors.New("prompt must be a string")

// RefusalMessage is returned verbatim for prompts that are not about travel.
const RefusalMessage = "Sorry, I can only help with travel-related queries like planning trips, destinations, itineraries, etc."

// Keywords gate free-form prompts. A keyword matches anywhere in the lower-cased prompt.
var Keywords = []string{
	"travel", "trip", "itinerary", "vacation", "holiday", "place",
	"tour", "destination", "stay", "hotel", "food", "budget",
	"days", "location", "guide", "tourist", "explore", "plan",
}

// Defaults used when building a prompt from trip parameters.
const (
	DefaultDestination = "Kashmir"
	DefaultDays        = "5"
	DefaultBudget      = "20000"
	DefaultPreferences = ""
)

// Request is the inbound /chat body.
type Request struct {
	Prompt      types.Field `json:"prompt"`
	Destination types.Field `json:"destination"`
	Days        types.Field `json:"days"`
	Budget      types.Field `json:"budget"`
	Preferences types.Field `json:"preferences"`
}

// Resolution is the outcome of Resolve: either a prompt to send upstream or a refusal.
type Resolution struct {
	Prompt  string
	Refused bool
}
