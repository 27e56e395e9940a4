package cmd

import (
	"os"

	"github.com/opsdesk/rosterdiff/internal/cli/output"
	"github.com/opsdesk/rosterdiff/internal/config"
	"github.com/opsdesk/rosterdiff/internal/sheet"
	"github.com/opsdesk/rosterdiff/pkg/errors"
	"github.com/opsdesk/rosterdiff/pkg/logging"
	"github.com/opsdesk/rosterdiff/pkg/report"
	"github.com/opsdesk/rosterdiff/pkg/roster"
)

// loadTable reads the raw table at the configured workbook location.
func loadTable(src config.Source) (roster.Table, error) {
	if src.File == "" {
		return nil, errors.NewInvalidInputError("file", src.File, "no workbook path configured")
	}
	return sheet.ReadTable(src.File, src.Sheet)
}

// loadDataset reads a workbook and extracts the keyed roster dataset using
// the configured column contract.
func loadDataset(src config.Source) (*roster.Dataset, error) {
	table, err := loadTable(src)
	if err != nil {
		return nil, err
	}
	return roster.Extract(table, config.Columns())
}

// emit renders report rows to stdout in the selected output format and, when
// writeReport is set, also writes them to the configured report workbook.
func emit(header report.Row, rows []report.Row, writeReport bool) error {
	format, err := output.ParseFormat(globalFlags.Output)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(format)
	if err := formatter.Format(os.Stdout, output.FromReport(header, rows)); err != nil {
		return err
	}

	if !writeReport {
		return nil
	}
	sink := config.ReportSink()
	if sink.File == "" {
		return errors.NewInvalidInputError("report.file", sink.File, "no report workbook configured")
	}
	if err := sheet.WriteReport(sink.File, sink.Sheet, header, rows); err != nil {
		return err
	}
	logging.Info().Str("path", sink.File).Int("rows", len(rows)).Msg("report written")
	return nil
}
