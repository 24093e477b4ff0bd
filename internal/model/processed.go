package model

import (
	"github.com/google/uuid"
)

// ProcessedEvent is the derived listing row for an event: its shifts plus
// resolved names and computed totals. It is recomputed from the source
// collections on every query and never persisted or cached.
type ProcessedEvent struct {
	ID                 uuid.UUID        `json:"id"`
	Title              string           `json:"title"`
	ClientID           string           `json:"client_id"`
	BrandID            string           `json:"brand_id"`
	ClientName         string           `json:"client_name"`
	BrandName          string           `json:"brand_name"`
	Date               string           `json:"date"`
	DateFormatted      string           `json:"date_formatted"`
	TotalOperators     int              `json:"total_operators"`
	TotalAssignedHours float64          `json:"total_assigned_hours"`
	Shifts             []ProcessedShift `json:"shifts"`
}

// ProcessedShift is the slice of a shift the listing and the export need.
type ProcessedShift struct {
	ID           uuid.UUID   `json:"id"`
	StartTime    string      `json:"start_time"`
	EndTime      string      `json:"end_time"`
	ActivityType *string     `json:"activity_type"`
	Role         *string     `json:"role"`
	PauseHours   float64     `json:"pause_hours"`
	OperatorIDs  []uuid.UUID `json:"operator_ids"`
}

// Sort keys for the processed-events listing.
const (
	SortDateAsc    = "date-asc"
	SortDateDesc   = "date-desc"
	SortClientAsc  = "client-asc"
	SortClientDesc = "client-desc"
)

// EventFilter narrows the processed-events listing. All set predicates
// compose with logical AND; date bounds are inclusive and may be one-sided.
type EventFilter struct {
	StartDate string
	EndDate   string
	ClientID  *uuid.UUID
	BrandID   *uuid.UUID
}
