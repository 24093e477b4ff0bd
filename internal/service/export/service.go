package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ezystaff/staffing-api/internal/model"
	"github.com/ezystaff/staffing-api/pkg/hours"
)

const (
	sheetName = "Programmazione"

	// Placeholders used in exported cells.
	unassignedOperator = "(non assegnato)"
	missingValue       = "—"
)

var headers = []interface{}{
	"Data", "Evento", "Cliente", "Brand", "Ora Inizio", "Ora Fine",
	"Tipologia Attività", "Mansione", "Operatore", "Ore Pausa", "Ore Effettive",
}

var columnWidths = []float64{10, 25, 20, 15, 10, 10, 15, 15, 20, 8, 10}

// Export is a generated workbook plus the filename it should be saved under.
type Export struct {
	Filename string
	File     *excelize.File
}

type Service struct {
	outputDir string
	now       func() time.Time
}

func NewService(outputDir string, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		outputDir: outputDir,
		now:       now,
	}
}

// Generate builds the roster workbook for the selected events: one row per
// operator assigned to a shift, or a single placeholder row when a shift has
// nobody assigned, so no shift ever drops out of the export. An empty
// selection produces no workbook and no error.
func (s *Service) Generate(events []*model.ProcessedEvent, selectedIDs []uuid.UUID, operators []*model.Operator) (*Export, error) {
	selected := make(map[uuid.UUID]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	toExport := make([]*model.ProcessedEvent, 0, len(selectedIDs))
	for _, ev := range events {
		if selected[ev.ID] {
			toExport = append(toExport, ev)
		}
	}
	if len(toExport) == 0 {
		return nil, nil
	}

	operatorNames := make(map[uuid.UUID]string, len(operators))
	for _, op := range operators {
		operatorNames[op.ID] = op.Name
	}

	f := excelize.NewFile()
	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	rowIdx := 2
	for _, ev := range toExport {
		for _, shift := range ev.Shifts {
			if len(shift.OperatorIDs) == 0 {
				if err := s.writeRow(f, rowIdx, ev, shift, unassignedOperator); err != nil {
					return nil, err
				}
				rowIdx++
				continue
			}

			for _, operatorID := range shift.OperatorIDs {
				name, ok := operatorNames[operatorID]
				if !ok {
					name = missingValue
				}
				if err := s.writeRow(f, rowIdx, ev, shift, name); err != nil {
					return nil, err
				}
				rowIdx++
			}
		}
	}

	return &Export{
		Filename: fmt.Sprintf("programmazione_eventi_%s.xlsx", s.now().Format("02-01-2006")),
		File:     f,
	}, nil
}

// GenerateFile writes the workbook into the configured output directory and
// returns the full path, or "" when the selection was empty.
func (s *Service) GenerateFile(events []*model.ProcessedEvent, selectedIDs []uuid.UUID, operators []*model.Operator) (string, error) {
	export, err := s.Generate(events, selectedIDs, operators)
	if err != nil {
		return "", err
	}
	if export == nil {
		return "", nil
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(s.outputDir, export.Filename)
	if err := export.File.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save export: %w", err)
	}
	return path, nil
}

func (s *Service) writeRow(f *excelize.File, rowIdx int, ev *model.ProcessedEvent, shift model.ProcessedShift, operatorName string) error {
	row := []interface{}{
		model.FormatDateDDMMYY(ev.Date),
		ev.Title,
		ev.ClientName,
		ev.BrandName,
		shift.StartTime,
		shift.EndTime,
		orDash(shift.ActivityType),
		orDash(shift.Role),
		operatorName,
		shift.PauseHours,
		fmt.Sprintf("%.2f", hours.Effective(shift.StartTime, shift.EndTime, shift.PauseHours)),
	}

	cell, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		return fmt.Errorf("failed to resolve row cell: %w", err)
	}
	if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
		return fmt.Errorf("failed to write export row: %w", err)
	}
	return nil
}

func orDash(v *string) string {
	if v == nil || *v == "" {
		return missingValue
	}
	return *v
}
