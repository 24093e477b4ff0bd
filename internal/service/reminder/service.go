package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ezystaff/staffing-api/internal/model"
	"github.com/ezystaff/staffing-api/internal/repository"
	"github.com/ezystaff/staffing-api/internal/service/notification"
)

// The job scans for shifts starting between 45 and 75 minutes from now,
// bounds inclusive, on today's date only. A shift whose start crosses
// midnight relative to the job clock is out of window by definition.
const (
	windowFrom = 45 * time.Minute
	windowTo   = 75 * time.Minute

	reminderTitle = "Turno in arrivo"
)

// Summary reports one job run.
type Summary struct {
	ShiftsChecked     int `json:"shifts_checked"`
	NotificationsSent int `json:"notifications_sent"`
}

type Service struct {
	shiftRepo repository.ShiftRepository
	eventRepo repository.EventRepository
	ledger    repository.SentNotificationRepository
	sender    notification.PushSender
	now       func() time.Time
}

func NewService(
	shiftRepo repository.ShiftRepository,
	eventRepo repository.EventRepository,
	ledger repository.SentNotificationRepository,
	sender notification.PushSender,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		shiftRepo: shiftRepo,
		eventRepo: eventRepo,
		ledger:    ledger,
		sender:    sender,
		now:       now,
	}
}

// Run executes one dispatch pass. Only a failure of the initial window query
// aborts the run; any failure on a single shift or operator is logged and
// that unit skipped. A ledger row for (shift, operator, type) means the pair
// is done forever, there is no retry or un-send.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	now := s.now()
	today := now.Format("2006-01-02")
	fromTime := now.Add(windowFrom).Format("15:04")
	toTime := now.Add(windowTo).Format("15:04")

	log.Info().
		Str("date", today).
		Str("from", fromTime).
		Str("to", toTime).
		Msg("checking for upcoming shifts")

	shifts, err := s.shiftRepo.ListStartingBetween(ctx, today, fromTime, toTime)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming shifts: %w", err)
	}

	summary := &Summary{ShiftsChecked: len(shifts)}

	for _, shift := range shifts {
		operatorIDs, err := s.shiftRepo.ListAssignments(ctx, shift.ID)
		if err != nil {
			log.Error().Err(err).Str("shift_id", shift.ID.String()).Msg("failed to fetch assignments, skipping shift")
			continue
		}

		// The event lookup may fail without dropping the shift; the message
		// falls back to a generic title and no address.
		var event *model.Event
		if ev, err := s.eventRepo.Get(ctx, shift.EventID); err != nil {
			log.Error().Err(err).Str("shift_id", shift.ID.String()).Msg("failed to fetch event for shift")
		} else {
			event = ev
		}

		for _, operatorID := range operatorIDs {
			s.processPair(ctx, shift, event, operatorID, summary)
		}
	}

	log.Info().
		Int("shifts_checked", summary.ShiftsChecked).
		Int("notifications_sent", summary.NotificationsSent).
		Msg("reminder run completed")

	return summary, nil
}

func (s *Service) processPair(ctx context.Context, shift *model.Shift, event *model.Event, operatorID uuid.UUID, summary *Summary) {
	exists, err := s.ledger.Exists(ctx, shift.ID, operatorID, model.NotificationTypeShiftReminder1h)
	if err != nil {
		log.Error().Err(err).
			Str("shift_id", shift.ID.String()).
			Str("operator_id", operatorID.String()).
			Msg("failed to check notification ledger, skipping")
		return
	}
	if exists {
		log.Debug().
			Str("shift_id", shift.ID.String()).
			Str("operator_id", operatorID.String()).
			Msg("reminder already sent")
		return
	}

	shiftID := shift.ID
	msg := &model.PushMessage{
		OperatorID: operatorID,
		Title:      reminderTitle,
		Body:       composeBody(shift, event),
		ShiftID:    &shiftID,
	}
	if event != nil {
		eventID := event.ID
		msg.EventID = &eventID
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		log.Error().Err(err).
			Str("shift_id", shift.ID.String()).
			Str("operator_id", operatorID.String()).
			Msg("failed to send reminder, skipping")
		return
	}

	err = s.ledger.Create(ctx, &model.SentNotification{
		ShiftID:          shift.ID,
		OperatorID:       operatorID,
		NotificationType: model.NotificationTypeShiftReminder1h,
	})
	if err != nil {
		log.Error().Err(err).
			Str("shift_id", shift.ID.String()).
			Str("operator_id", operatorID.String()).
			Msg("failed to record sent reminder")
		return
	}

	summary.NotificationsSent++
}

// composeBody builds the reminder text. Location prefers the shift's own
// location, then the event address, and is omitted when neither is set.
func composeBody(shift *model.Shift, event *model.Event) string {
	title := "Turno"
	if event != nil && event.Title != "" {
		title = event.Title
	}

	location := ""
	if shift.Location != nil && *shift.Location != "" {
		location = *shift.Location
	} else if event != nil {
		location = event.Address
	}

	body := fmt.Sprintf("Il tuo turno %q inizia tra un'ora (%s)", title, shift.StartTime)
	if location != "" {
		body += fmt.Sprintf(" presso %s", location)
	}
	return body
}
