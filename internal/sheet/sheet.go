// Package sheet is the tabular-source collaborator: it reads rectangular
// tables from .xlsx workbooks and writes report rows back out. Cells pass
// through as display-level strings; interpretation belongs to the core.
package sheet

import (
	"github.com/xuri/excelize/v2"

	"github.com/opsdesk/rosterdiff/pkg/errors"
	"github.com/opsdesk/rosterdiff/pkg/logging"
	"github.com/opsdesk/rosterdiff/pkg/report"
	"github.com/opsdesk/rosterdiff/pkg/roster"
)

// ReadTable reads a worksheet as a raw table: first row headers, the rest
// data rows, every cell as its display string.
func ReadTable(path, sheetName string) (roster.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn().Err(cerr).Str("path", path).Msg("closing workbook")
		}
	}()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}

	return roster.Table(rows), nil
}

// WriteReport writes a header row plus report rows to a fresh workbook at
// path, replacing any existing file. The sink is cleared and repopulated
// wholesale on every run, so stale rows from a previous report never
// survive.
func WriteReport(path, sheetName string, header report.Row, rows []report.Row) error {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn().Err(cerr).Str("path", path).Msg("closing workbook")
		}
	}()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	if err := writeRow(f, sheetName, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeRow(f, sheetName, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// writeRow writes one row at the given 1-based row number.
func writeRow(f *excelize.File, sheetName string, rowNum int, row report.Row) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return errors.NewInvalidInputError("row", rowNum, err.Error())
	}

	cells := make([]any, len(row))
	for i, v := range row {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return errors.WrapParse("xlsx", sheetName, err)
	}
	return nil
}
