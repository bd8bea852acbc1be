package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// cell is a single raw cell read from a sheet.
type cell struct {
	ref string
	raw string
	typ excelize.CellType
}

// readCell reads the unformatted value and type of col/row.
// Number formats are bypassed so time cells come back as serial numbers.
func readCell(f *excelize.File, sheetName, col string, row int) (cell, error) {
	ref, err := excelize.JoinCellName(col, row)
	if err != nil {
		return cell{}, err
	}
	raw, err := f.GetCellValue(sheetName, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		return cell{}, err
	}
	typ, err := f.GetCellType(sheetName, ref)
	if err != nil {
		return cell{}, err
	}
	return cell{ref: ref, raw: raw, typ: typ}, nil
}

func (c cell) empty() bool {
	return strings.TrimSpace(c.raw) == ""
}

func (c cell) decodeTime() (string, error) {
	rt, err := ReadRawTime(c.raw, c.typ)
	if err != nil {
		return "", err
	}
	return Decode(rt)
}
