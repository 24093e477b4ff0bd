package model

import (
	"github.com/google/uuid"
)

// Client is an agency customer that events are billed to.
type Client struct {
	Base
	Name string `json:"name" db:"name"`
}

// Brand is a customer brand, optionally owned by a client.
type Brand struct {
	Base
	Name     string     `json:"name" db:"name"`
	ClientID *uuid.UUID `json:"client_id,omitempty" db:"client_id"`
}

type CreateClientRequest struct {
	Name string `json:"name" binding:"required" validate:"required,max=255"`
}

type CreateBrandRequest struct {
	Name     string     `json:"name" binding:"required" validate:"required,max=255"`
	ClientID *uuid.UUID `json:"client_id"`
}
