// Package config resolves runtime configuration from Viper, layering
// config-file values under environment variables and flag bindings.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/opsdesk/rosterdiff/pkg/roster"
)

// Viper keys for workbook locations and column headers.
const (
	KeyCurrentFile        = "current.file"
	KeyCurrentSheet       = "current.sheet"
	KeyBaselineFile       = "baseline.file"
	KeyBaselineSheet      = "baseline.sheet"
	KeyMasterFile         = "master.file"
	KeyMasterSheet        = "master.sheet"
	KeyRegistrationsFile  = "registrations.file"
	KeyRegistrationsSheet = "registrations.sheet"
	KeyRegistrationsTeam  = "registrations.team_column"
	KeySnapshotPath       = "snapshot.path"
	KeyReportFile         = "report.file"
	KeyReportSheet        = "report.sheet"

	keyColumnPrefix = "columns."
)

// SetDefaults registers the default sheet names, snapshot path, and column
// headers with Viper. Call once during CLI init, before the config file is
// read so file values win over defaults.
func SetDefaults() {
	viper.SetDefault(KeyCurrentSheet, "Sheet1")
	viper.SetDefault(KeyBaselineSheet, "Sheet1")
	viper.SetDefault(KeyMasterSheet, "Sheet1")
	viper.SetDefault(KeyRegistrationsSheet, "Sheet1")
	viper.SetDefault(KeyRegistrationsTeam, 0)
	viper.SetDefault(KeySnapshotPath, "roster-snapshot.yaml")
	viper.SetDefault(KeyReportSheet, "Report")

	defaults := roster.DefaultColumns()
	viper.SetDefault(keyColumnPrefix+"team", defaults.Team)
	viper.SetDefault(keyColumnPrefix+"to", defaults.To)
	viper.SetDefault(keyColumnPrefix+"cc", defaults.Cc)
	for f, header := range defaults.Optional {
		viper.SetDefault(keyColumnPrefix+string(f), header)
	}
}

// Columns builds the roster column mapping from Viper, honoring overrides
// from config files and environment variables.
func Columns() roster.Columns {
	cols := roster.Columns{
		Team:     viper.GetString(keyColumnPrefix + "team"),
		To:       viper.GetString(keyColumnPrefix + "to"),
		Cc:       viper.GetString(keyColumnPrefix + "cc"),
		Optional: make(map[roster.Field]string),
	}
	for _, f := range roster.OptionalFields() {
		if header := viper.GetString(keyColumnPrefix + string(f)); header != "" {
			cols.Optional[f] = header
		}
	}
	return cols
}

// Source is a workbook location: file path plus worksheet name.
type Source struct {
	File  string
	Sheet string
}

// CurrentSource returns the current-roster workbook location.
func CurrentSource() Source {
	return Source{File: viper.GetString(KeyCurrentFile), Sheet: viper.GetString(KeyCurrentSheet)}
}

// BaselineSource returns the baseline-roster workbook location.
func BaselineSource() Source {
	return Source{File: viper.GetString(KeyBaselineFile), Sheet: viper.GetString(KeyBaselineSheet)}
}

// MasterSource returns the master-list workbook location.
func MasterSource() Source {
	return Source{File: viper.GetString(KeyMasterFile), Sheet: viper.GetString(KeyMasterSheet)}
}

// RegistrationsSource returns the registrations workbook location.
func RegistrationsSource() Source {
	return Source{File: viper.GetString(KeyRegistrationsFile), Sheet: viper.GetString(KeyRegistrationsSheet)}
}

// ReportSink returns the report workbook location.
func ReportSink() Source {
	return Source{File: viper.GetString(KeyReportFile), Sheet: viper.GetString(KeyReportSheet)}
}

// SnapshotPath returns the YAML snapshot file path.
func SnapshotPath() string {
	return viper.GetString(KeySnapshotPath)
}

// RegistrationsTeamColumn returns the zero-based column index holding team
// names in the registrations sheet.
func RegistrationsTeamColumn() int {
	return viper.GetInt(KeyRegistrationsTeam)
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}
