// README: Query record and analytics view definitions.
package query

import (
	"time"

	"travelrelay/internal/modules/prompt"
	"travelrelay/internal/types"
)

const (
	StatusCompleted = "completed"

	// TimestampLayout renders minute precision, e.g. 2024-05-01 09:30.
	TimestampLayout = "2006-01-02 15:04"

	unknownValue = "Unknown"

	popularLimit = 5
	recentLimit  = 10
)

// Record is one completed exchange.
type Record struct {
	ID          int         `json:"id"`
	Destination types.Field `json:"destination"`
	Days        types.Field `json:"days"`
	Budget      types.Field `json:"budget"`
	Preferences types.Field `json:"preferences"`
	Prompt      types.Field `json:"prompt"`
	Response    string      `json:"response"`
	Timestamp   string      `json:"timestamp"`
	Status      string      `json:"status"`
}

// NewRecord copies the inbound fields as sent; the id is assigned by the store.
func NewRecord(req prompt.Request, response string, now time.Time) Record {
	return Record{
		Destination: req.Destination.Or(unknownValue),
		Days:        req.Days.Or(unknownValue),
		Budget:      req.Budget.Or(unknownValue),
		Preferences: req.Preferences.Or(""),
		Prompt:      req.Prompt.Or(""),
		Response:    response,
		Timestamp:   now.Format(TimestampLayout),
		Status:      StatusCompleted,
	}
}

type DestinationCount struct {
	Name  types.Field `json:"name"`
	Count int         `json:"count"`
}

type Activity struct {
	Time   string `json:"time"`
	Action string `json:"action"`
}

type Analytics struct {
	TotalQueries        int                `json:"totalQueries"`
	PopularDestinations []DestinationCount `json:"popularDestinations"`
	RecentActivity      []Activity         `json:"recentActivity"`
}
