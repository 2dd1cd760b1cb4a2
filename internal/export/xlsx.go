// Package export genera la agenda del día como planilla XLSX.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	AgendaSheet    = "Agenda"
	ConflictsSheet = "Conflicts"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var agendaHeaders = []string{
	"Owner", "Pet", "Task ID", "Title", "Due", "Duration (min)", "Priority", "Status", "Recurrence",
}

// Row es una línea de la agenda ya resuelta (owner/pet por nombre).
type Row struct {
	Owner           string
	Pet             string
	TaskID          string
	Title           string
	DueAt           *time.Time
	DurationMinutes int
	Priority        int
	Status          string
	Recurrence      string
}

// Filename: agenda-YYYY-MM-DD.xlsx
func Filename(date time.Time) string {
	return "agenda-" + date.Format("2006-01-02") + ".xlsx"
}

// AgendaXLSX arma el libro: hoja Agenda (en el orden recibido) y hoja
// Conflicts con un warning por fila.
func AgendaXLSX(date time.Time, rows []Row, warnings []string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", AgendaSheet); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("export: header style: %w", err)
	}

	if err := setRow(f, AgendaSheet, 1, toAny(agendaHeaders)); err != nil {
		return nil, err
	}
	_ = f.SetRowStyle(AgendaSheet, 1, 1, header)

	for i, r := range rows {
		due := ""
		if r.DueAt != nil {
			due = r.DueAt.Format("2006-01-02 15:04")
		}
		values := []any{r.Owner, r.Pet, r.TaskID, r.Title, due, r.DurationMinutes, r.Priority, r.Status, r.Recurrence}
		if err := setRow(f, AgendaSheet, i+2, values); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(AgendaSheet, "A", "I", 16)

	if _, err := f.NewSheet(ConflictsSheet); err != nil {
		return nil, fmt.Errorf("export: new sheet: %w", err)
	}
	if err := setRow(f, ConflictsSheet, 1, []any{"Date", "Warning"}); err != nil {
		return nil, err
	}
	_ = f.SetRowStyle(ConflictsSheet, 1, 1, header)
	for i, w := range warnings {
		if err := setRow(f, ConflictsSheet, i+2, []any{date.Format("2006-01-02"), w}); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(ConflictsSheet, "B", "B", 80)

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write xlsx: %w", err)
	}
	return buf, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("export: cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("export: set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
