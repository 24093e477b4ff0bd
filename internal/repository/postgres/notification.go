package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ezystaff/staffing-api/internal/model"
)

func (r *sentNotificationRepository) Exists(ctx context.Context, shiftID, operatorID uuid.UUID, notificationType string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM sent_notifications
			WHERE shift_id = $1
			AND operator_id = $2
			AND notification_type = $3
		)
	`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, shiftID, operatorID, notificationType)
	if err != nil {
		return false, fmt.Errorf("failed to check sent notification: %w", err)
	}
	return exists, nil
}

func (r *sentNotificationRepository) Create(ctx context.Context, notification *model.SentNotification) error {
	// The ledger is append-only; the composite unique key absorbs the race
	// between overlapping job runs without failing the insert.
	query := `
		INSERT INTO sent_notifications (id, shift_id, operator_id, notification_type, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (shift_id, operator_id, notification_type) DO NOTHING
	`
	notification.ID = uuid.New()
	notification.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		notification.ID,
		notification.ShiftID,
		notification.OperatorID,
		notification.NotificationType,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record sent notification: %w", err)
	}
	return nil
}
