package export

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezystaff/staffing-api/internal/model"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func fixtures() ([]*model.ProcessedEvent, []*model.Operator) {
	op1 := &model.Operator{Base: model.Base{ID: uuid.New()}, Name: "Mario Rossi"}
	op2 := &model.Operator{Base: model.Base{ID: uuid.New()}, Name: "Luca Bianchi"}

	kickoff := &model.ProcessedEvent{
		ID:         uuid.New(),
		Title:      "Kickoff",
		Date:       "2026-09-09",
		ClientName: "Acme Security",
		BrandName:  "Acme Nightlife",
		Shifts: []model.ProcessedShift{
			{
				ID: uuid.New(), StartTime: "09:00", EndTime: "17:30", PauseHours: 0.5,
				ActivityType: strPtr("Presidio"), Role: strPtr("Steward"),
				OperatorIDs: []uuid.UUID{op1.ID, op2.ID},
			},
			{
				ID: uuid.New(), StartTime: "14:00", EndTime: "17:00",
				OperatorIDs: []uuid.UUID{},
			},
		},
	}

	return []*model.ProcessedEvent{kickoff}, []*model.Operator{op1, op2}
}

func TestGenerateRowExpansion(t *testing.T) {
	events, operators := fixtures()
	svc := NewService(t.TempDir(), fixedNow)

	export, err := svc.Generate(events, []uuid.UUID{events[0].ID}, operators)
	require.NoError(t, err)
	require.NotNil(t, export)

	rows, err := export.File.GetRows(sheetName)
	require.NoError(t, err)

	// Header + 2 rows for the double-staffed shift + 1 placeholder row.
	require.Len(t, rows, 4)

	assert.Equal(t, []string{
		"Data", "Evento", "Cliente", "Brand", "Ora Inizio", "Ora Fine",
		"Tipologia Attività", "Mansione", "Operatore", "Ore Pausa", "Ore Effettive",
	}, rows[0])

	first := rows[1]
	assert.Equal(t, "09/09/26", first[0])
	assert.Equal(t, "Kickoff", first[1])
	assert.Equal(t, "Acme Security", first[2])
	assert.Equal(t, "Acme Nightlife", first[3])
	assert.Equal(t, "09:00", first[4])
	assert.Equal(t, "17:30", first[5])
	assert.Equal(t, "Presidio", first[6])
	assert.Equal(t, "Steward", first[7])
	assert.Equal(t, "Mario Rossi", first[8])
	assert.Equal(t, "0.5", first[9])
	assert.Equal(t, "8.00", first[10])

	second := rows[2]
	assert.Equal(t, "Luca Bianchi", second[8])

	placeholder := rows[3]
	assert.Equal(t, "(non assegnato)", placeholder[8])
	assert.Equal(t, "—", placeholder[6])
	assert.Equal(t, "—", placeholder[7])
	assert.Equal(t, "3.00", placeholder[10])
}

func TestGenerateUnresolvedOperator(t *testing.T) {
	events, _ := fixtures()
	svc := NewService(t.TempDir(), fixedNow)

	// Operators collection missing the assigned ids.
	export, err := svc.Generate(events, []uuid.UUID{events[0].ID}, nil)
	require.NoError(t, err)
	require.NotNil(t, export)

	rows, err := export.File.GetRows(sheetName)
	require.NoError(t, err)
	assert.Equal(t, "—", rows[1][8])
	assert.Equal(t, "—", rows[2][8])
}

func TestGenerateEmptySelectionIsNoOp(t *testing.T) {
	events, operators := fixtures()
	svc := NewService(t.TempDir(), fixedNow)

	export, err := svc.Generate(events, nil, operators)
	require.NoError(t, err)
	assert.Nil(t, export)

	// Selection of an id not in the listing is also a no-op.
	export, err = svc.Generate(events, []uuid.UUID{uuid.New()}, operators)
	require.NoError(t, err)
	assert.Nil(t, export)
}

func TestGenerateFilename(t *testing.T) {
	events, operators := fixtures()
	svc := NewService(t.TempDir(), fixedNow)

	export, err := svc.Generate(events, []uuid.UUID{events[0].ID}, operators)
	require.NoError(t, err)
	require.NotNil(t, export)
	assert.Equal(t, "programmazione_eventi_29-08-2026.xlsx", export.Filename)
}

func TestGenerateColumnWidths(t *testing.T) {
	events, operators := fixtures()
	svc := NewService(t.TempDir(), fixedNow)

	export, err := svc.Generate(events, []uuid.UUID{events[0].ID}, operators)
	require.NoError(t, err)
	require.NotNil(t, export)

	wantWidths := []float64{10, 25, 20, 15, 10, 10, 15, 15, 20, 8, 10}
	for i, want := range wantWidths {
		col := string(rune('A' + i))
		width, err := export.File.GetColWidth(sheetName, col)
		require.NoError(t, err)
		assert.InDelta(t, want, width, 0.01, "column %s", col)
	}
}

func TestGenerateFileWritesToDisk(t *testing.T) {
	events, operators := fixtures()
	dir := t.TempDir()
	svc := NewService(dir, fixedNow)

	path, err := svc.GenerateFile(events, []uuid.UUID{events[0].ID}, operators)
	require.NoError(t, err)
	assert.Contains(t, path, "programmazione_eventi_29-08-2026.xlsx")

	// Empty selection writes nothing.
	path, err = svc.GenerateFile(events, nil, operators)
	require.NoError(t, err)
	assert.Empty(t, path)
}
