package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ezystaff/staffing-api/internal/model"
)

func (r *brandRepository) Create(ctx context.Context, brand *model.Brand) error {
	query := `
		INSERT INTO brands (id, name, client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	brand.ID = uuid.New()
	brand.CreatedAt = time.Now()
	brand.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		brand.ID,
		brand.Name,
		brand.ClientID,
		brand.CreatedAt,
		brand.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

func (r *brandRepository) Get(ctx context.Context, id uuid.UUID) (*model.Brand, error) {
	query := `
		SELECT id, name, client_id, created_at, updated_at
		FROM brands
		WHERE id = $1
	`
	var brand model.Brand
	err := r.db.GetContext(ctx, &brand, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}
	return &brand, nil
}

func (r *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM brands
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("brand not found")
	}

	return nil
}

func (r *brandRepository) List(ctx context.Context) ([]*model.Brand, error) {
	query := `
		SELECT id, name, client_id, created_at, updated_at
		FROM brands
		ORDER BY name ASC
	`
	var brands []*model.Brand
	err := r.db.SelectContext(ctx, &brands, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}
