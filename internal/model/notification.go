package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification type tags recorded in the sent-notification ledger.
const (
	NotificationTypeShiftReminder1h = "shift_reminder_1h"
)

// SentNotification is an append-only ledger row. Its existence for a
// (shift, operator, type) triple is the sole idempotency signal.
type SentNotification struct {
	ID               uuid.UUID `json:"id" db:"id"`
	ShiftID          uuid.UUID `json:"shift_id" db:"shift_id"`
	OperatorID       uuid.UUID `json:"operator_id" db:"operator_id"`
	NotificationType string    `json:"notification_type" db:"notification_type"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// PushMessage is the payload handed to the push-send collaborator.
type PushMessage struct {
	OperatorID uuid.UUID  `json:"operatorId"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	EventID    *uuid.UUID `json:"eventId,omitempty"`
	ShiftID    *uuid.UUID `json:"shiftId,omitempty"`
}

// Delivery channels for manual sends.
const (
	ChannelPush  = "push"
	ChannelEmail = "email"
)

type TestNotificationRequest struct {
	OperatorID uuid.UUID  `json:"operator_id" binding:"required" validate:"required"`
	EventID    *uuid.UUID `json:"event_id"`
	Title      string     `json:"title" validate:"max=255"`
	Body       string     `json:"body" validate:"max=2000"`
	Channel    string     `json:"channel" validate:"omitempty,oneof=push email"`
}

type BroadcastNotificationRequest struct {
	Title   string     `json:"title" binding:"required" validate:"required,max=255"`
	Body    string     `json:"body" binding:"required" validate:"required,max=2000"`
	EventID *uuid.UUID `json:"event_id"`
	Channel string     `json:"channel" validate:"omitempty,oneof=push email"`
}

// BroadcastResult reports a bulk send as "<successes>/<total>".
type BroadcastResult struct {
	Sent  int `json:"sent"`
	Total int `json:"total"`
}
