package model

// Operator is a field worker that shifts are assigned to. Push registration
// state lives with the external notification provider, not here.
type Operator struct {
	Base
	Name  string  `json:"name" db:"name"`
	Email *string `json:"email,omitempty" db:"email"`
	Phone *string `json:"phone,omitempty" db:"phone"`
}

type CreateOperatorRequest struct {
	Name  string  `json:"name" binding:"required" validate:"required,max=255"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,max=32"`
}
