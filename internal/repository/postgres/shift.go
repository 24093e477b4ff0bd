package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ezystaff/staffing-api/internal/model"
)

const shiftColumns = `id, event_id, date, start_time, end_time, pause_hours,
	   activity_type, role, location, created_at, updated_at`

func (r *shiftRepository) Create(ctx context.Context, shift *model.Shift) error {
	query := `
		INSERT INTO shifts (
			id, event_id, date, start_time, end_time, pause_hours,
			activity_type, role, location, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	shift.ID = uuid.New()
	shift.CreatedAt = time.Now()
	shift.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		shift.ID,
		shift.EventID,
		shift.Date,
		shift.StartTime,
		shift.EndTime,
		shift.PauseHours,
		shift.ActivityType,
		shift.Role,
		shift.Location,
		shift.CreatedAt,
		shift.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}

	if len(shift.OperatorIDs) > 0 {
		if err := r.ReplaceAssignments(ctx, shift.ID, shift.OperatorIDs); err != nil {
			return err
		}
	}
	return nil
}

func (r *shiftRepository) Get(ctx context.Context, id uuid.UUID) (*model.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	var shift model.Shift
	err := r.db.GetContext(ctx, &shift, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	operatorIDs, err := r.ListAssignments(ctx, shift.ID)
	if err != nil {
		return nil, err
	}
	shift.OperatorIDs = operatorIDs
	return &shift, nil
}

func (r *shiftRepository) Update(ctx context.Context, shift *model.Shift) error {
	query := `
		UPDATE shifts
		SET date = $1, start_time = $2, end_time = $3, pause_hours = $4,
			activity_type = $5, role = $6, location = $7, updated_at = $8
		WHERE id = $9
	`
	shift.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		shift.Date,
		shift.StartTime,
		shift.EndTime,
		shift.PauseHours,
		shift.ActivityType,
		shift.Role,
		shift.Location,
		shift.UpdatedAt,
		shift.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("shift not found")
	}

	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM shifts
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("shift not found")
	}

	return nil
}

func (r *shiftRepository) List(ctx context.Context) ([]*model.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts ORDER BY date ASC, start_time ASC`

	var shifts []*model.Shift
	err := r.db.SelectContext(ctx, &shifts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	if err := r.attachAssignments(ctx, shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE event_id = $1 ORDER BY date ASC, start_time ASC`

	var shifts []*model.Shift
	err := r.db.SelectContext(ctx, &shifts, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts for event: %w", err)
	}
	if err := r.attachAssignments(ctx, shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepository) ListStartingBetween(ctx context.Context, date, fromTime, toTime string) ([]*model.Shift, error) {
	query := `SELECT ` + shiftColumns + `
		FROM shifts
		WHERE date = $1
		AND start_time >= $2
		AND start_time <= $3
		ORDER BY start_time ASC
	`
	var shifts []*model.Shift
	err := r.db.SelectContext(ctx, &shifts, query, date, fromTime, toTime)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming shifts: %w", err)
	}
	return shifts, nil
}

func (r *shiftRepository) ReplaceAssignments(ctx context.Context, shiftID uuid.UUID, operatorIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shift_assignments WHERE shift_id = $1`, shiftID); err != nil {
		return fmt.Errorf("failed to clear shift assignments: %w", err)
	}

	for i, operatorID := range operatorIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO shift_assignments (shift_id, operator_id, position, created_at)
			VALUES ($1, $2, $3, $4)
		`, shiftID, operatorID, i, time.Now())
		if err != nil {
			return fmt.Errorf("failed to assign operator: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *shiftRepository) ListAssignments(ctx context.Context, shiftID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT operator_id
		FROM shift_assignments
		WHERE shift_id = $1
		ORDER BY position ASC
	`
	var operatorIDs []uuid.UUID
	err := r.db.SelectContext(ctx, &operatorIDs, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	return operatorIDs, nil
}

// attachAssignments loads operator ids for a batch of shifts in one query.
func (r *shiftRepository) attachAssignments(ctx context.Context, shifts []*model.Shift) error {
	if len(shifts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(shifts))
	byID := make(map[uuid.UUID]*model.Shift, len(shifts))
	for _, s := range shifts {
		s.OperatorIDs = []uuid.UUID{}
		ids = append(ids, s.ID)
		byID[s.ID] = s
	}

	query, args, err := sqlx.In(`
		SELECT shift_id, operator_id
		FROM shift_assignments
		WHERE shift_id IN (?)
		ORDER BY position ASC
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to build assignment query: %w", err)
	}
	query = r.db.Rebind(query)

	rows := []struct {
		ShiftID    uuid.UUID `db:"shift_id"`
		OperatorID uuid.UUID `db:"operator_id"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("failed to list shift assignments: %w", err)
	}

	for _, row := range rows {
		shift := byID[row.ShiftID]
		shift.OperatorIDs = append(shift.OperatorIDs, row.OperatorID)
	}
	return nil
}
