package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ezystaff/staffing-api/internal/model"
)

func (r *operatorRepository) Create(ctx context.Context, operator *model.Operator) error {
	query := `
		INSERT INTO operators (id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	operator.ID = uuid.New()
	operator.CreatedAt = time.Now()
	operator.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		operator.ID,
		operator.Name,
		operator.Email,
		operator.Phone,
		operator.CreatedAt,
		operator.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}
	return nil
}

func (r *operatorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Operator, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM operators
		WHERE id = $1
	`
	var operator model.Operator
	err := r.db.GetContext(ctx, &operator, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}
	return &operator, nil
}

func (r *operatorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM operators
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete operator: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("operator not found")
	}

	return nil
}

func (r *operatorRepository) List(ctx context.Context) ([]*model.Operator, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM operators
		ORDER BY name ASC
	`
	var operators []*model.Operator
	err := r.db.SelectContext(ctx, &operators, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list operators: %w", err)
	}
	return operators, nil
}
