package model

import (
	"github.com/google/uuid"
)

// Event is a staffed engagement (a fair, a concert, a store opening).
// Its schedule lives in the owning shifts.
type Event struct {
	Base
	Title    string     `json:"title" db:"title"`
	Address  string     `json:"address" db:"address"`
	ClientID *uuid.UUID `json:"client_id,omitempty" db:"client_id"`
	BrandID  *uuid.UUID `json:"brand_id,omitempty" db:"brand_id"`
}

type CreateEventRequest struct {
	Title    string     `json:"title" binding:"required" validate:"required,max=255"`
	Address  string     `json:"address" validate:"max=500"`
	ClientID *uuid.UUID `json:"client_id"`
	BrandID  *uuid.UUID `json:"brand_id"`
}

type UpdateEventRequest struct {
	Title    *string    `json:"title" validate:"omitempty,max=255"`
	Address  *string    `json:"address" validate:"omitempty,max=500"`
	ClientID *uuid.UUID `json:"client_id"`
	BrandID  *uuid.UUID `json:"brand_id"`
}
