package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ezystaff/staffing-api/internal/email"
	"github.com/ezystaff/staffing-api/internal/model"
	"github.com/ezystaff/staffing-api/internal/repository"
	"github.com/ezystaff/staffing-api/pkg/messaging"
)

// Default Italian placeholders used when a manual send leaves fields blank.
const (
	defaultTestTitle = "Notifica di Test"
	defaultTestBody  = "Questa è una notifica di test da EZYSTAFF"
)

// PushSender is the external push-send collaborator. Token lookup and device
// dispatch are entirely its responsibility.
type PushSender interface {
	Send(ctx context.Context, msg *model.PushMessage) error
}

type Service struct {
	operatorRepo repository.OperatorRepository
	eventRepo    repository.EventRepository
	sender       PushSender
	emailSvc     email.Service
	broker       messaging.Broker
}

func NewService(
	operatorRepo repository.OperatorRepository,
	eventRepo repository.EventRepository,
	sender PushSender,
	emailSvc email.Service,
	broker messaging.Broker,
) *Service {
	return &Service{
		operatorRepo: operatorRepo,
		eventRepo:    eventRepo,
		sender:       sender,
		emailSvc:     emailSvc,
		broker:       broker,
	}
}

// SendTest delivers a single manual notification to one operator. Blank
// title/body fall back to the fixed placeholders, with the event title
// appended to the default body when an event is selected.
func (s *Service) SendTest(ctx context.Context, req *model.TestNotificationRequest) error {
	operator, err := s.operatorRepo.Get(ctx, req.OperatorID)
	if err != nil {
		return fmt.Errorf("failed to resolve operator: %w", err)
	}

	title := req.Title
	if title == "" {
		title = defaultTestTitle
	}

	body := req.Body
	if body == "" {
		body = defaultTestBody
		if req.EventID != nil {
			if event, err := s.eventRepo.Get(ctx, *req.EventID); err == nil {
				body = fmt.Sprintf("%s per l'evento %q", defaultTestBody, event.Title)
			}
		}
	}

	if err := s.deliver(ctx, operator, req.Channel, title, body, req.EventID); err != nil {
		return err
	}

	s.publishEvent(ctx, "test_notification_sent", operator.ID.String(), title)
	return nil
}

// Broadcast sends the same notification to every operator, one at a time.
// A failed send is logged and skipped; the remaining operators still get
// theirs. The result reports successes out of total.
func (s *Service) Broadcast(ctx context.Context, req *model.BroadcastNotificationRequest) (*model.BroadcastResult, error) {
	if req.Title == "" || req.Body == "" {
		return nil, fmt.Errorf("title and body are required")
	}

	operators, err := s.operatorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operators: %w", err)
	}

	sent := 0
	for _, operator := range operators {
		if err := s.deliver(ctx, operator, req.Channel, req.Title, req.Body, req.EventID); err != nil {
			log.Error().Err(err).
				Str("operator_id", operator.ID.String()).
				Msg("broadcast send failed, skipping operator")
			continue
		}
		sent++
	}

	s.publishEvent(ctx, "broadcast_sent", fmt.Sprintf("%d/%d", sent, len(operators)), req.Title)

	return &model.BroadcastResult{Sent: sent, Total: len(operators)}, nil
}

func (s *Service) deliver(ctx context.Context, operator *model.Operator, channel, title, body string, eventID *uuid.UUID) error {
	switch channel {
	case model.ChannelEmail:
		return s.sendEmail(ctx, operator, title, body)
	case model.ChannelPush, "":
		return s.sender.Send(ctx, &model.PushMessage{
			OperatorID: operator.ID,
			Title:      title,
			Body:       body,
			EventID:    eventID,
		})
	default:
		return fmt.Errorf("unsupported channel: %s", channel)
	}
}

func (s *Service) sendEmail(ctx context.Context, operator *model.Operator, subject, content string) error {
	if s.emailSvc == nil {
		return fmt.Errorf("email channel not configured")
	}
	if operator.Email == nil || *operator.Email == "" {
		return fmt.Errorf("operator has no email address")
	}
	return s.emailSvc.SendCustom(ctx, *operator.Email, subject, content)
}

// publishEvent pushes a best-effort audit record onto the broker. Publish
// failures are logged, never surfaced.
func (s *Service) publishEvent(ctx context.Context, eventType, subject, title string) {
	if s.broker == nil {
		return
	}
	err := s.broker.Publish(ctx, "notifications", messaging.Message{
		Type: eventType,
		Payload: map[string]interface{}{
			"subject": subject,
			"title":   title,
		},
	})
	if err != nil {
		log.Warn().Err(err).Str("event_type", eventType).Msg("failed to publish notification event")
	}
}
