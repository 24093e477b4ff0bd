package reminder

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezystaff/staffing-api/internal/model"
)

// fakeShiftRepo filters stored shifts the way the SQL window query does:
// string equality on date, lexicographic range on start time.
type fakeShiftRepo struct {
	shifts      []*model.Shift
	assignments map[uuid.UUID][]uuid.UUID
	queryErr    error
	assignErr   map[uuid.UUID]error
}

func (f *fakeShiftRepo) ListStartingBetween(_ context.Context, date, fromTime, toTime string) ([]*model.Shift, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var out []*model.Shift
	for _, s := range f.shifts {
		if s.Date == date && s.StartTime >= fromTime && s.StartTime <= toTime {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) ListAssignments(_ context.Context, shiftID uuid.UUID) ([]uuid.UUID, error) {
	if err, ok := f.assignErr[shiftID]; ok {
		return nil, err
	}
	return f.assignments[shiftID], nil
}

func (f *fakeShiftRepo) Create(context.Context, *model.Shift) error  { return fmt.Errorf("not implemented") }
func (f *fakeShiftRepo) Get(context.Context, uuid.UUID) (*model.Shift, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeShiftRepo) Update(context.Context, *model.Shift) error { return fmt.Errorf("not implemented") }
func (f *fakeShiftRepo) Delete(context.Context, uuid.UUID) error    { return fmt.Errorf("not implemented") }
func (f *fakeShiftRepo) List(context.Context) ([]*model.Shift, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeShiftRepo) ListByEvent(context.Context, uuid.UUID) ([]*model.Shift, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeShiftRepo) ReplaceAssignments(context.Context, uuid.UUID, []uuid.UUID) error {
	return fmt.Errorf("not implemented")
}

type fakeEventRepo struct {
	events map[uuid.UUID]*model.Event
}

func (f *fakeEventRepo) Get(_ context.Context, id uuid.UUID) (*model.Event, error) {
	ev, ok := f.events[id]
	if !ok {
		return nil, fmt.Errorf("event not found")
	}
	return ev, nil
}

func (f *fakeEventRepo) Create(context.Context, *model.Event) error { return fmt.Errorf("not implemented") }
func (f *fakeEventRepo) Update(context.Context, *model.Event) error { return fmt.Errorf("not implemented") }
func (f *fakeEventRepo) Delete(context.Context, uuid.UUID) error    { return fmt.Errorf("not implemented") }
func (f *fakeEventRepo) List(context.Context) ([]*model.Event, error) {
	return nil, fmt.Errorf("not implemented")
}

type ledgerKey struct {
	shift    uuid.UUID
	operator uuid.UUID
	typ      string
}

type fakeLedger struct {
	rows      map[ledgerKey]bool
	existsErr error
	createErr error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{rows: make(map[ledgerKey]bool)}
}

func (f *fakeLedger) Exists(_ context.Context, shiftID, operatorID uuid.UUID, typ string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.rows[ledgerKey{shiftID, operatorID, typ}], nil
}

func (f *fakeLedger) Create(_ context.Context, n *model.SentNotification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.rows[ledgerKey{n.ShiftID, n.OperatorID, n.NotificationType}] = true
	return nil
}

type fakeSender struct {
	sent    []*model.PushMessage
	failFor map[uuid.UUID]error
}

func (f *fakeSender) Send(_ context.Context, msg *model.PushMessage) error {
	if err, ok := f.failFor[msg.OperatorID]; ok {
		return err
	}
	f.sent = append(f.sent, msg)
	return nil
}

var jobClock = func() time.Time {
	return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
}

func newShift(eventID uuid.UUID, date, start string) *model.Shift {
	return &model.Shift{
		Base:      model.Base{ID: uuid.New()},
		EventID:   eventID,
		Date:      date,
		StartTime: start,
		EndTime:   "18:00",
	}
}

func TestRunWindowBounds(t *testing.T) {
	eventID := uuid.New()
	operator := uuid.New()

	inWindow := newShift(eventID, "2026-08-29", "11:00")    // T+60
	atLower := newShift(eventID, "2026-08-29", "10:45")     // T+45, inclusive
	atUpper := newShift(eventID, "2026-08-29", "11:15")     // T+75, inclusive
	tooSoon := newShift(eventID, "2026-08-29", "10:30")     // T+30
	tooLate := newShift(eventID, "2026-08-29", "11:20")     // T+80
	wrongDay := newShift(eventID, "2026-08-30", "11:00")    // tomorrow

	shiftRepo := &fakeShiftRepo{
		shifts: []*model.Shift{inWindow, atLower, atUpper, tooSoon, tooLate, wrongDay},
		assignments: map[uuid.UUID][]uuid.UUID{
			inWindow.ID: {operator},
			atLower.ID:  {operator},
			atUpper.ID:  {operator},
			tooSoon.ID:  {operator},
			tooLate.ID:  {operator},
			wrongDay.ID: {operator},
		},
	}
	eventRepo := &fakeEventRepo{events: map[uuid.UUID]*model.Event{
		eventID: {Base: model.Base{ID: eventID}, Title: "Fiera", Address: "Via Roma 1"},
	}}
	sender := &fakeSender{}

	svc := NewService(shiftRepo, eventRepo, newFakeLedger(), sender, jobClock)

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.ShiftsChecked)
	assert.Equal(t, 3, summary.NotificationsSent)
	require.Len(t, sender.sent, 3)
}

func TestRunIsIdempotent(t *testing.T) {
	eventID := uuid.New()
	op1, op2 := uuid.New(), uuid.New()
	shift := newShift(eventID, "2026-08-29", "11:00")

	shiftRepo := &fakeShiftRepo{
		shifts:      []*model.Shift{shift},
		assignments: map[uuid.UUID][]uuid.UUID{shift.ID: {op1, op2}},
	}
	eventRepo := &fakeEventRepo{events: map[uuid.UUID]*model.Event{
		eventID: {Base: model.Base{ID: eventID}, Title: "Fiera"},
	}}
	ledger := newFakeLedger()
	sender := &fakeSender{}

	svc := NewService(shiftRepo, eventRepo, ledger, sender, jobClock)

	first, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, first.NotificationsSent)

	second, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, second.ShiftsChecked)
	assert.Zero(t, second.NotificationsSent)

	// At most one send per (shift, operator, type), ever.
	assert.Len(t, sender.sent, 2)
}

func TestRunContinuesPastSendFailure(t *testing.T) {
	eventID := uuid.New()
	failing, healthy := uuid.New(), uuid.New()
	shift := newShift(eventID, "2026-08-29", "11:00")

	shiftRepo := &fakeShiftRepo{
		shifts:      []*model.Shift{shift},
		assignments: map[uuid.UUID][]uuid.UUID{shift.ID: {failing, healthy}},
	}
	eventRepo := &fakeEventRepo{events: map[uuid.UUID]*model.Event{
		eventID: {Base: model.Base{ID: eventID}, Title: "Fiera"},
	}}
	ledger := newFakeLedger()
	sender := &fakeSender{failFor: map[uuid.UUID]error{failing: fmt.Errorf("device gone")}}

	svc := NewService(shiftRepo, eventRepo, ledger, sender, jobClock)

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.NotificationsSent)

	// The failed pair is not in the ledger, so the next run retries it.
	exists, err := ledger.Exists(context.Background(), shift.ID, failing, model.NotificationTypeShiftReminder1h)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunContinuesPastAssignmentFailure(t *testing.T) {
	eventID := uuid.New()
	operator := uuid.New()
	broken := newShift(eventID, "2026-08-29", "11:00")
	working := newShift(eventID, "2026-08-29", "11:05")

	shiftRepo := &fakeShiftRepo{
		shifts:      []*model.Shift{broken, working},
		assignments: map[uuid.UUID][]uuid.UUID{working.ID: {operator}},
		assignErr:   map[uuid.UUID]error{broken.ID: fmt.Errorf("db hiccup")},
	}
	eventRepo := &fakeEventRepo{events: map[uuid.UUID]*model.Event{
		eventID: {Base: model.Base{ID: eventID}, Title: "Fiera"},
	}}
	sender := &fakeSender{}

	svc := NewService(shiftRepo, eventRepo, newFakeLedger(), sender, jobClock)

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.ShiftsChecked)
	assert.Equal(t, 1, summary.NotificationsSent)
}

func TestRunWindowQueryFailureIsFatal(t *testing.T) {
	shiftRepo := &fakeShiftRepo{queryErr: fmt.Errorf("connection refused")}
	sender := &fakeSender{}

	svc := NewService(shiftRepo, &fakeEventRepo{}, newFakeLedger(), sender, jobClock)

	summary, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Empty(t, sender.sent)
}

func TestRunMissingEventUsesFallbacks(t *testing.T) {
	operator := uuid.New()
	shift := newShift(uuid.New(), "2026-08-29", "11:00")

	shiftRepo := &fakeShiftRepo{
		shifts:      []*model.Shift{shift},
		assignments: map[uuid.UUID][]uuid.UUID{shift.ID: {operator}},
	}
	sender := &fakeSender{}

	svc := NewService(shiftRepo, &fakeEventRepo{events: map[uuid.UUID]*model.Event{}}, newFakeLedger(), sender, jobClock)

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.NotificationsSent)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "Turno in arrivo", msg.Title)
	assert.Equal(t, `Il tuo turno "Turno" inizia tra un'ora (11:00)`, msg.Body)
	assert.Nil(t, msg.EventID)
	require.NotNil(t, msg.ShiftID)
	assert.Equal(t, shift.ID, *msg.ShiftID)
}

func TestComposeBodyLocationPreference(t *testing.T) {
	loc := "Piazza Duomo"
	event := &model.Event{Base: model.Base{ID: uuid.New()}, Title: "Fiera", Address: "Via Roma 1"}

	withLocation := newShift(event.ID, "2026-08-29", "11:00")
	withLocation.Location = &loc
	assert.Equal(t,
		`Il tuo turno "Fiera" inizia tra un'ora (11:00) presso Piazza Duomo`,
		composeBody(withLocation, event))

	withoutLocation := newShift(event.ID, "2026-08-29", "11:00")
	assert.Equal(t,
		`Il tuo turno "Fiera" inizia tra un'ora (11:00) presso Via Roma 1`,
		composeBody(withoutLocation, event))

	bareEvent := &model.Event{Base: model.Base{ID: uuid.New()}, Title: "Fiera"}
	assert.Equal(t,
		`Il tuo turno "Fiera" inizia tra un'ora (11:00)`,
		composeBody(withoutLocation, bareEvent))
}
