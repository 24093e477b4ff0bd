package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ezystaff/staffing-api/internal/model"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Get(ctx context.Context, id uuid.UUID) (*model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Event, error)
}

type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	Get(ctx context.Context, id uuid.UUID) (*model.Shift, error)
	Update(ctx context.Context, shift *model.Shift) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Shift, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Shift, error)
	// ListStartingBetween returns shifts on the given date whose start time
	// falls within [fromTime, toTime], bounds inclusive.
	ListStartingBetween(ctx context.Context, date, fromTime, toTime string) ([]*model.Shift, error)
	ReplaceAssignments(ctx context.Context, shiftID uuid.UUID, operatorIDs []uuid.UUID) error
	ListAssignments(ctx context.Context, shiftID uuid.UUID) ([]uuid.UUID, error)
}

type OperatorRepository interface {
	Create(ctx context.Context, operator *model.Operator) error
	Get(ctx context.Context, id uuid.UUID) (*model.Operator, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Operator, error)
}

type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	Get(ctx context.Context, id uuid.UUID) (*model.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Client, error)
}

type BrandRepository interface {
	Create(ctx context.Context, brand *model.Brand) error
	Get(ctx context.Context, id uuid.UUID) (*model.Brand, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Brand, error)
}

type SentNotificationRepository interface {
	Exists(ctx context.Context, shiftID, operatorID uuid.UUID, notificationType string) (bool, error)
	Create(ctx context.Context, notification *model.SentNotification) error
}
