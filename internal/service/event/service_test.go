package event

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezystaff/staffing-api/internal/model"
)

func buildFixtures() ([]*model.Event, []*model.Shift, []*model.Client, []*model.Brand) {
	clientA := &model.Client{Base: model.Base{ID: uuid.New()}, Name: "Acme Security"}
	clientB := &model.Client{Base: model.Base{ID: uuid.New()}, Name: "Borgo Eventi"}
	brand := &model.Brand{Base: model.Base{ID: uuid.New()}, Name: "Acme Nightlife", ClientID: &clientA.ID}

	kickoff := &model.Event{Base: model.Base{ID: uuid.New()}, Title: "Kickoff", ClientID: &clientA.ID, BrandID: &brand.ID}
	gala := &model.Event{Base: model.Base{ID: uuid.New()}, Title: "Gala", ClientID: &clientB.ID}
	empty := &model.Event{Base: model.Base{ID: uuid.New()}, Title: "No shifts yet"}

	op1, op2 := uuid.New(), uuid.New()
	shifts := []*model.Shift{
		{
			Base: model.Base{ID: uuid.New()}, EventID: kickoff.ID,
			Date: "2026-09-10", StartTime: "09:00", EndTime: "13:00",
			OperatorIDs: []uuid.UUID{op1, op2},
		},
		{
			Base: model.Base{ID: uuid.New()}, EventID: kickoff.ID,
			Date: "2026-09-09", StartTime: "14:00", EndTime: "17:00",
			OperatorIDs: []uuid.UUID{},
		},
		{
			Base: model.Base{ID: uuid.New()}, EventID: gala.ID,
			Date: "2026-09-20", StartTime: "18:00", EndTime: "23:30", PauseHours: 0.5,
			OperatorIDs: []uuid.UUID{op1},
		},
	}

	return []*model.Event{kickoff, gala, empty}, shifts,
		[]*model.Client{clientA, clientB}, []*model.Brand{brand}
}

func TestProcessDropsEventsWithoutShifts(t *testing.T) {
	events, shifts, clients, brands := buildFixtures()

	processed := Process(events, shifts, clients, brands)

	require.Len(t, processed, 2)
	for _, ev := range processed {
		assert.NotEqual(t, "No shifts yet", ev.Title)
	}
}

func TestProcessTotals(t *testing.T) {
	events, shifts, clients, brands := buildFixtures()

	processed := Process(events, shifts, clients, brands)
	require.Len(t, processed, 2)

	kickoff := processed[0]
	assert.Equal(t, "Kickoff", kickoff.Title)
	// Shift A: 4h x 2 operators, shift B: 3h x 0 operators.
	assert.Equal(t, 2, kickoff.TotalOperators)
	assert.InDelta(t, 8.0, kickoff.TotalAssignedHours, 1e-9)
	// Earliest shift date wins, not insertion order.
	assert.Equal(t, "2026-09-09", kickoff.Date)
	assert.Equal(t, "09/09/26", kickoff.DateFormatted)
	assert.Equal(t, "Acme Security", kickoff.ClientName)
	assert.Equal(t, "Acme Nightlife", kickoff.BrandName)

	gala := processed[1]
	assert.Equal(t, 1, gala.TotalOperators)
	assert.InDelta(t, 5.0, gala.TotalAssignedHours, 1e-9)
}

func TestProcessOperatorOnTwoShiftsCountsTwice(t *testing.T) {
	op := uuid.New()
	ev := &model.Event{Base: model.Base{ID: uuid.New()}, Title: "Doubles"}
	shifts := []*model.Shift{
		{Base: model.Base{ID: uuid.New()}, EventID: ev.ID, Date: "2026-01-01", StartTime: "08:00", EndTime: "12:00", OperatorIDs: []uuid.UUID{op}},
		{Base: model.Base{ID: uuid.New()}, EventID: ev.ID, Date: "2026-01-01", StartTime: "13:00", EndTime: "17:00", OperatorIDs: []uuid.UUID{op}},
	}

	processed := Process([]*model.Event{ev}, shifts, nil, nil)
	require.Len(t, processed, 1)
	assert.Equal(t, 2, processed[0].TotalOperators)
	assert.InDelta(t, 8.0, processed[0].TotalAssignedHours, 1e-9)
}

func TestProcessUnresolvedReferences(t *testing.T) {
	missingClient := uuid.New()
	ev := &model.Event{Base: model.Base{ID: uuid.New()}, Title: "Orphan", ClientID: &missingClient}
	shifts := []*model.Shift{
		{Base: model.Base{ID: uuid.New()}, EventID: ev.ID, Date: "2026-01-01", StartTime: "08:00", EndTime: "12:00"},
	}

	processed := Process([]*model.Event{ev}, shifts, nil, nil)
	require.Len(t, processed, 1)
	assert.Equal(t, "—", processed[0].ClientName)
	assert.Equal(t, "", processed[0].BrandName)
}

func TestFilterDateRange(t *testing.T) {
	events, shifts, clients, brands := buildFixtures()
	processed := Process(events, shifts, clients, brands)

	filtered := Filter(processed, model.EventFilter{StartDate: "2026-09-09", EndDate: "2026-09-15"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Kickoff", filtered[0].Title)

	// One-sided lower bound.
	filtered = Filter(processed, model.EventFilter{StartDate: "2026-09-15"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Gala", filtered[0].Title)

	// One-sided upper bound, inclusive.
	filtered = Filter(processed, model.EventFilter{EndDate: "2026-09-20"})
	assert.Len(t, filtered, 2)
}

func TestFilterIsNonDestructive(t *testing.T) {
	events, shifts, clients, brands := buildFixtures()
	processed := Process(events, shifts, clients, brands)

	before := make([]*model.ProcessedEvent, len(processed))
	copy(before, processed)

	_ = Filter(processed, model.EventFilter{StartDate: "2026-09-15", EndDate: "2026-09-16"})

	// Removing the filter returns the original set in the original order.
	after := Filter(processed, model.EventFilter{})
	require.Len(t, after, len(before))
	for i := range before {
		assert.Same(t, before[i], after[i])
	}
}

func TestFilterByClientAndBrand(t *testing.T) {
	events, shifts, clients, brands := buildFixtures()
	processed := Process(events, shifts, clients, brands)

	clientID := clients[0].ID
	filtered := Filter(processed, model.EventFilter{ClientID: &clientID})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Kickoff", filtered[0].Title)

	brandID := brands[0].ID
	filtered = Filter(processed, model.EventFilter{BrandID: &brandID})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Kickoff", filtered[0].Title)

	other := uuid.New()
	filtered = Filter(processed, model.EventFilter{ClientID: &clientID, BrandID: &other})
	assert.Empty(t, filtered)
}

func TestSortDirections(t *testing.T) {
	processed := []*model.ProcessedEvent{
		{Title: "b", Date: "2026-02-01", ClientName: "Zeta"},
		{Title: "a", Date: "2026-01-01", ClientName: "Alfa"},
		{Title: "c", Date: "2026-03-01", ClientName: "Mega"},
	}

	Sort(processed, model.SortDateAsc)
	assert.Equal(t, []string{"a", "b", "c"}, titles(processed))

	Sort(processed, model.SortDateDesc)
	assert.Equal(t, []string{"c", "b", "a"}, titles(processed))

	Sort(processed, model.SortClientAsc)
	assert.Equal(t, []string{"a", "c", "b"}, titles(processed))

	Sort(processed, model.SortClientDesc)
	assert.Equal(t, []string{"b", "c", "a"}, titles(processed))
}

func TestSortIsStable(t *testing.T) {
	processed := []*model.ProcessedEvent{
		{Title: "first", Date: "2026-01-01", ClientName: "Same"},
		{Title: "second", Date: "2026-01-01", ClientName: "Same"},
		{Title: "third", Date: "2026-01-01", ClientName: "Same"},
	}

	Sort(processed, model.SortDateAsc)
	assert.Equal(t, []string{"first", "second", "third"}, titles(processed))

	Sort(processed, model.SortDateDesc)
	assert.Equal(t, []string{"first", "second", "third"}, titles(processed))

	Sort(processed, model.SortClientDesc)
	assert.Equal(t, []string{"first", "second", "third"}, titles(processed))
}

func titles(events []*model.ProcessedEvent) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Title
	}
	return out
}
