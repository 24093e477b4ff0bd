package shift

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ezystaff/staffing-api/internal/model"
	"github.com/ezystaff/staffing-api/internal/repository"
)

type Service struct {
	repo      repository.ShiftRepository
	eventRepo repository.EventRepository
}

func NewService(repo repository.ShiftRepository, eventRepo repository.EventRepository) *Service {
	return &Service{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *Service) CreateShift(ctx context.Context, req *model.CreateShiftRequest) (*model.Shift, error) {
	// The owning event must exist; everything else is free-form. End before
	// start is stored as-is, the hour calculation clamps it to zero.
	if _, err := s.eventRepo.Get(ctx, req.EventID); err != nil {
		return nil, fmt.Errorf("invalid shift: %w", err)
	}

	shift := &model.Shift{
		EventID:      req.EventID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		PauseHours:   req.PauseHours,
		ActivityType: req.ActivityType,
		Role:         req.Role,
		Location:     req.Location,
		OperatorIDs:  req.OperatorIDs,
	}
	if err := s.repo.Create(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}
	return shift, nil
}

func (s *Service) GetShift(ctx context.Context, id uuid.UUID) (*model.Shift, error) {
	shift, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return shift, nil
}

func (s *Service) UpdateShift(ctx context.Context, id uuid.UUID, req *model.UpdateShiftRequest) (*model.Shift, error) {
	shift, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.Date != nil {
		shift.Date = *req.Date
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if req.PauseHours != nil {
		shift.PauseHours = *req.PauseHours
	}
	if req.ActivityType != nil {
		shift.ActivityType = req.ActivityType
	}
	if req.Role != nil {
		shift.Role = req.Role
	}
	if req.Location != nil {
		shift.Location = req.Location
	}

	if err := s.repo.Update(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}

	if req.OperatorIDs != nil {
		if err := s.repo.ReplaceAssignments(ctx, shift.ID, *req.OperatorIDs); err != nil {
			return nil, fmt.Errorf("failed to update shift assignments: %w", err)
		}
		shift.OperatorIDs = *req.OperatorIDs
	}

	return shift, nil
}

func (s *Service) DeleteShift(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

func (s *Service) ListShiftsByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Shift, error) {
	shifts, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, nil
}
