package event

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/ezystaff/staffing-api/internal/model"
	"github.com/ezystaff/staffing-api/internal/repository"
	"github.com/ezystaff/staffing-api/pkg/hours"
)

// Display placeholder for an unresolved client reference.
const unresolvedClientName = "—"

type Service struct {
	eventRepo  repository.EventRepository
	shiftRepo  repository.ShiftRepository
	clientRepo repository.ClientRepository
	brandRepo  repository.BrandRepository
}

func NewService(
	eventRepo repository.EventRepository,
	shiftRepo repository.ShiftRepository,
	clientRepo repository.ClientRepository,
	brandRepo repository.BrandRepository,
) *Service {
	return &Service{
		eventRepo:  eventRepo,
		shiftRepo:  shiftRepo,
		clientRepo: clientRepo,
		brandRepo:  brandRepo,
	}
}

func (s *Service) CreateEvent(ctx context.Context, req *model.CreateEventRequest) (*model.Event, error) {
	event := &model.Event{
		Title:    req.Title,
		Address:  req.Address,
		ClientID: req.ClientID,
		BrandID:  req.BrandID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *Service) GetEvent(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	event, err := s.eventRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (s *Service) UpdateEvent(ctx context.Context, id uuid.UUID, req *model.UpdateEventRequest) (*model.Event, error) {
	event, err := s.eventRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Address != nil {
		event.Address = *req.Address
	}
	if req.ClientID != nil {
		event.ClientID = req.ClientID
	}
	if req.BrandID != nil {
		event.BrandID = req.BrandID
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *Service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func (s *Service) ListEvents(ctx context.Context) ([]*model.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// ListProcessed projects, filters and sorts the event listing. The
// projection is recomputed from the source collections on every call.
func (s *Service) ListProcessed(ctx context.Context, filter model.EventFilter, sortKey string) ([]*model.ProcessedEvent, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	brands, err := s.brandRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}

	processed := Process(events, shifts, clients, brands)
	processed = Filter(processed, filter)
	Sort(processed, sortKey)
	return processed, nil
}

// Process derives one ProcessedEvent per event that has at least one shift;
// events without shifts are dropped from the listing by design. Totals count
// an operator once per shift they are assigned to.
func Process(events []*model.Event, shifts []*model.Shift, clients []*model.Client, brands []*model.Brand) []*model.ProcessedEvent {
	clientNames := make(map[uuid.UUID]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}
	brandNames := make(map[uuid.UUID]string, len(brands))
	for _, b := range brands {
		brandNames[b.ID] = b.Name
	}

	shiftsByEvent := make(map[uuid.UUID][]*model.Shift, len(events))
	for _, s := range shifts {
		shiftsByEvent[s.EventID] = append(shiftsByEvent[s.EventID], s)
	}

	processed := make([]*model.ProcessedEvent, 0, len(events))
	for _, ev := range events {
		eventShifts := shiftsByEvent[ev.ID]
		if len(eventShifts) == 0 {
			continue
		}

		totalOperators := 0
		totalHours := 0.0
		firstDate := ""
		processedShifts := make([]model.ProcessedShift, 0, len(eventShifts))
		for _, sh := range eventShifts {
			count := len(sh.OperatorIDs)
			totalOperators += count
			totalHours += hours.Effective(sh.StartTime, sh.EndTime, sh.PauseHours) * float64(count)

			if firstDate == "" || sh.Date < firstDate {
				firstDate = sh.Date
			}

			processedShifts = append(processedShifts, model.ProcessedShift{
				ID:           sh.ID,
				StartTime:    sh.StartTime,
				EndTime:      sh.EndTime,
				ActivityType: sh.ActivityType,
				Role:         sh.Role,
				PauseHours:   sh.PauseHours,
				OperatorIDs:  sh.OperatorIDs,
			})
		}

		clientID := ""
		clientName := unresolvedClientName
		if ev.ClientID != nil {
			clientID = ev.ClientID.String()
			if name, ok := clientNames[*ev.ClientID]; ok {
				clientName = name
			}
		}
		brandID := ""
		brandName := ""
		if ev.BrandID != nil {
			brandID = ev.BrandID.String()
			if name, ok := brandNames[*ev.BrandID]; ok {
				brandName = name
			}
		}

		processed = append(processed, &model.ProcessedEvent{
			ID:                 ev.ID,
			Title:              ev.Title,
			ClientID:           clientID,
			BrandID:            brandID,
			ClientName:         clientName,
			BrandName:          brandName,
			Date:               firstDate,
			DateFormatted:      model.FormatDateDDMMYY(firstDate),
			TotalOperators:     totalOperators,
			TotalAssignedHours: totalHours,
			Shifts:             processedShifts,
		})
	}

	return processed
}

// Filter applies the set predicates with logical AND. The input slice is
// never mutated; removing a filter returns the original set.
func Filter(events []*model.ProcessedEvent, filter model.EventFilter) []*model.ProcessedEvent {
	filtered := make([]*model.ProcessedEvent, 0, len(events))
	for _, ev := range events {
		if filter.StartDate != "" || filter.EndDate != "" {
			if ev.Date == "" {
				continue
			}
			if filter.StartDate != "" && ev.Date < filter.StartDate {
				continue
			}
			if filter.EndDate != "" && ev.Date > filter.EndDate {
				continue
			}
		}
		if filter.ClientID != nil && ev.ClientID != filter.ClientID.String() {
			continue
		}
		if filter.BrandID != nil && ev.BrandID != filter.BrandID.String() {
			continue
		}
		filtered = append(filtered, ev)
	}
	return filtered
}

// Sort orders events in place by the given key. Equal keys keep their
// relative input order so identical input renders identically.
func Sort(events []*model.ProcessedEvent, sortKey string) {
	switch sortKey {
	case model.SortDateAsc:
		sort.SliceStable(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	case model.SortDateDesc:
		sort.SliceStable(events, func(i, j int) bool { return events[i].Date > events[j].Date })
	case model.SortClientAsc:
		sort.SliceStable(events, func(i, j int) bool { return events[i].ClientName < events[j].ClientName })
	case model.SortClientDesc:
		sort.SliceStable(events, func(i, j int) bool { return events[i].ClientName > events[j].ClientName })
	}
}
