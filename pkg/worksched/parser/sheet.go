package parser

import (
	"log/slog"
	"strings"

	"github.com/ukaji3/worksched-go/pkg/worksched/models"
	"github.com/xuri/excelize/v2"
)

// DefaultReservedSheets are auxiliary sheets that never hold an employee.
var DefaultReservedSheets = []string{"NewEmployee", "FormTools"}

// IsReserved reports whether sheetName exactly matches one of reserved.
func IsReserved(sheetName string, reserved []string) bool {
	for _, r := range reserved {
		if sheetName == r {
			return true
		}
	}
	return false
}

// EmployeeName reads the display name from the geometry's name cell,
// falling back to the sheet name when the cell is blank.
func EmployeeName(f *excelize.File, sheetName string, geom Geometry) (string, error) {
	v, err := f.GetCellValue(sheetName, geom.NameCell)
	if err != nil {
		return "", err
	}
	if name := strings.TrimSpace(v); name != "" {
		return name, nil
	}
	return sheetName, nil
}

// ExtractSheet extracts one employee record from a sheet.
// Rows where any of start, end or location is blank are skipped, as are
// rows whose times cannot be decoded. Blocks keep source row order.
func ExtractSheet(f *excelize.File, sheetName string, geom Geometry, logger *slog.Logger) (models.EmployeeRecord, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	name, err := EmployeeName(f, sheetName, geom)
	if err != nil {
		return models.EmployeeRecord{}, err
	}

	rec := models.EmployeeRecord{Name: name, SheetName: sheetName}
	for _, wt := range []models.WeekType{models.Week1, models.Week2} {
		week, err := extractWeek(f, sheetName, geom, geom.Band(wt), logger)
		if err != nil {
			return models.EmployeeRecord{}, err
		}
		if wt == models.Week1 {
			rec.Week1 = week
		} else {
			rec.Week2 = week
		}
	}
	return rec, nil
}

func extractWeek(f *excelize.File, sheetName string, geom Geometry, band RowBand, logger *slog.Logger) (models.EmployeeWeek, error) {
	var week models.EmployeeWeek
	for row := band.First; row <= band.Last; row++ {
		for _, day := range models.Weekdays() {
			cols := geom.Days[day]
			start, err := readCell(f, sheetName, cols.Start, row)
			if err != nil {
				return week, err
			}
			end, err := readCell(f, sheetName, cols.End, row)
			if err != nil {
				return week, err
			}
			loc, err := readCell(f, sheetName, cols.Location, row)
			if err != nil {
				return week, err
			}
			if start.empty() || end.empty() || loc.empty() {
				continue
			}

			startTime, err := start.decodeTime()
			if err != nil {
				logger.Debug("skipping block with unreadable start time",
					"sheet", sheetName, "cell", start.ref, "value", start.raw, "error", err)
				continue
			}
			endTime, err := end.decodeTime()
			if err != nil {
				logger.Debug("skipping block with unreadable end time",
					"sheet", sheetName, "cell", end.ref, "value", end.raw, "error", err)
				continue
			}

			week[day] = append(week[day], models.WorkBlock{
				StartTime: startTime,
				EndTime:   endTime,
				Location:  strings.TrimSpace(loc.raw),
				Block:     row - band.First + 1,
			})
		}
	}
	return week, nil
}
