package model

import (
	"github.com/google/uuid"
)

// Shift is one work slot of an event. Date is ISO "YYYY-MM-DD" and the clock
// times are "HH:MM" wall-clock strings; both compare lexicographically, which
// the window query and date sorting rely on.
type Shift struct {
	Base
	EventID      uuid.UUID   `json:"event_id" db:"event_id"`
	Date         string      `json:"date" db:"date"`
	StartTime    string      `json:"start_time" db:"start_time"`
	EndTime      string      `json:"end_time" db:"end_time"`
	PauseHours   float64     `json:"pause_hours" db:"pause_hours"`
	ActivityType *string     `json:"activity_type,omitempty" db:"activity_type"`
	Role         *string     `json:"role,omitempty" db:"role"`
	Location     *string     `json:"location,omitempty" db:"location"`
	OperatorIDs  []uuid.UUID `json:"operator_ids" db:"-"`
}

type CreateShiftRequest struct {
	EventID      uuid.UUID   `json:"event_id" binding:"required" validate:"required"`
	Date         string      `json:"date" binding:"required" validate:"required,datetime=2006-01-02"`
	StartTime    string      `json:"start_time" binding:"required" validate:"required,len=5"`
	EndTime      string      `json:"end_time" binding:"required" validate:"required,len=5"`
	PauseHours   float64     `json:"pause_hours" validate:"gte=0"`
	ActivityType *string     `json:"activity_type" validate:"omitempty,max=255"`
	Role         *string     `json:"role" validate:"omitempty,max=255"`
	Location     *string     `json:"location" validate:"omitempty,max=500"`
	OperatorIDs  []uuid.UUID `json:"operator_ids"`
}

type UpdateShiftRequest struct {
	Date         *string      `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime    *string      `json:"start_time" validate:"omitempty,len=5"`
	EndTime      *string      `json:"end_time" validate:"omitempty,len=5"`
	PauseHours   *float64     `json:"pause_hours" validate:"omitempty,gte=0"`
	ActivityType *string      `json:"activity_type"`
	Role         *string      `json:"role"`
	Location     *string      `json:"location"`
	OperatorIDs  *[]uuid.UUID `json:"operator_ids"`
}
