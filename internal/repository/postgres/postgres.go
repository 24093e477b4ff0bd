package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/ezystaff/staffing-api/internal/repository"
)

type eventRepository struct {
	db *sqlx.DB
}

type shiftRepository struct {
	db *sqlx.DB
}

type operatorRepository struct {
	db *sqlx.DB
}

type clientRepository struct {
	db *sqlx.DB
}

type brandRepository struct {
	db *sqlx.DB
}

type sentNotificationRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func NewShiftRepository(db *sqlx.DB) repository.ShiftRepository {
	return &shiftRepository{db: db}
}

func NewOperatorRepository(db *sqlx.DB) repository.OperatorRepository {
	return &operatorRepository{db: db}
}

func NewClientRepository(db *sqlx.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func NewBrandRepository(db *sqlx.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

func NewSentNotificationRepository(db *sqlx.DB) repository.SentNotificationRepository {
	return &sentNotificationRepository{db: db}
}
