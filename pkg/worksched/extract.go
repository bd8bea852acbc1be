package worksched

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/worksched-go/pkg/worksched/models"
	"github.com/ukaji3/worksched-go/pkg/worksched/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads the workbook at path and builds the schedule model.
// On any error no schedule is returned.
func Load(ctx context.Context, path string, opts Options) (*models.Schedule, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return build(ctx, f, filepath.Base(path), opts)
}

// LoadReader is like Load but reads the workbook from r.
func LoadReader(ctx context.Context, r io.Reader, bookName string, opts Options) (*models.Schedule, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return build(ctx, f, bookName, opts)
}

func open(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return f, nil
}

func geometryOf(opts Options) (parser.Geometry, error) {
	geom := opts.Geometry
	if geom == (parser.Geometry{}) {
		geom = parser.DefaultGeometry()
	}
	if err := geom.Validate(); err != nil {
		return parser.Geometry{}, fmt.Errorf("invalid geometry: %w", err)
	}
	return geom, nil
}

func build(ctx context.Context, f *excelize.File, bookName string, opts Options) (*models.Schedule, error) {
	geom, err := geometryOf(opts)
	if err != nil {
		return nil, err
	}
	logger := opts.logger()
	reserved := opts.Reserved()

	employees := make(map[string]models.EmployeeRecord)
	for _, sheetName := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if parser.IsReserved(sheetName, reserved) {
			logger.Debug("skipping reserved sheet", "sheet", sheetName)
			continue
		}

		if _, err := parser.EmployeeName(f, sheetName, geom); err != nil {
			return nil, NewExtractionError(sheetName, "name", err)
		}
		rec, err := parser.ExtractSheet(f, sheetName, geom, logger)
		if err != nil {
			return nil, NewExtractionError(sheetName, "blocks", err)
		}

		if prev, ok := employees[rec.Name]; ok {
			logger.Warn("duplicate employee name, later sheet wins",
				"name", rec.Name, "previous_sheet", prev.SheetName, "sheet", sheetName)
		}
		employees[rec.Name] = rec
	}

	logger.Debug("schedule loaded", "book", bookName, "employees", len(employees))
	return models.NewSchedule(bookName, employees), nil
}

// SheetInfo describes one sheet of a schedule workbook.
type SheetInfo struct {
	// SheetName is the worksheet name.
	SheetName string `json:"sheet_name"`
	// Employee is the resolved display name (empty for reserved sheets).
	Employee string `json:"employee,omitempty"`
	// Reserved marks auxiliary sheets that are never extracted.
	Reserved bool `json:"reserved"`
}

// ListSheets lists the workbook's sheets in order with their resolved names.
func ListSheets(path string, opts Options) ([]SheetInfo, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	geom, err := geometryOf(opts)
	if err != nil {
		return nil, err
	}

	var result []SheetInfo
	for _, sheetName := range f.GetSheetList() {
		info := SheetInfo{SheetName: sheetName, Reserved: parser.IsReserved(sheetName, opts.Reserved())}
		if !info.Reserved {
			name, err := parser.EmployeeName(f, sheetName, geom)
			if err != nil {
				return nil, NewExtractionError(sheetName, "name", err)
			}
			info.Employee = name
		}
		result = append(result, info)
	}
	return result, nil
}
