// Package cmd implements the rosterdiff CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opsdesk/rosterdiff/internal/cli/globals"
	"github.com/opsdesk/rosterdiff/internal/cli/output"
	"github.com/opsdesk/rosterdiff/internal/config"
	"github.com/opsdesk/rosterdiff/pkg/logging"
)

var (
	configFile  string
	globalFlags *globals.Flags

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
	// BuiltBy is the build system identifier.
	BuiltBy = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rosterdiff",
	Short: "Team roster reconciliation and duplicate detection",
	Long: `Rosterdiff reconciles team contact rosters held in spreadsheets.

It extracts keyed records from a roster sheet, validates recipient email
lists, detects duplicate team names within a sheet and across datasets,
fuzzy-matches registrations against a master list, and diffs the current
roster against a captured baseline snapshot.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date, builtBy string) {
	Version = version
	Commit = commit
	Date = date
	BuiltBy = builtBy

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.rosterdiff.yaml)")
	globalFlags = globals.AddFlags(rootCmd)

	// Workbook location flags, shared by the analysis commands.
	rootCmd.PersistentFlags().String("current", "", "Current roster workbook path")
	rootCmd.PersistentFlags().String("baseline", "", "Baseline roster workbook path")
	rootCmd.PersistentFlags().String("snapshot", "", "Baseline snapshot YAML path")
	rootCmd.PersistentFlags().String("master", "", "Master list workbook path")
	rootCmd.PersistentFlags().String("registrations", "", "Registrations workbook path")
	rootCmd.PersistentFlags().String("report-file", "", "Report workbook path for --write")

	// Bind flags to viper
	bindFlag("verbose", "verbose")
	bindFlag("quiet", "quiet")
	bindFlag(config.KeyCurrentFile, "current")
	bindFlag(config.KeyBaselineFile, "baseline")
	bindFlag(config.KeySnapshotPath, "snapshot")
	bindFlag(config.KeyMasterFile, "master")
	bindFlag(config.KeyRegistrationsFile, "registrations")
	bindFlag(config.KeyReportFile, "report-file")
}

// bindFlag routes a root persistent flag into a viper key so flag values
// override config-file and environment values.
func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("Failed to bind %s flag: %v", flag, err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults()

	if configFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(configFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".rosterdiff" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rosterdiff")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && globalFlags != nil && globalFlags.Verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

// setupCommand is called before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	// Setup output format based on terminal detection
	if globalFlags.Output == "" {
		globalFlags.Output = string(output.DetectFormat(""))
	}

	return nil
}

// configureLogging sets up the logging system based on configuration.
func configureLogging() {
	level := zerolog.InfoLevel
	if globalFlags != nil && globalFlags.Verbose || viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if globalFlags != nil && globalFlags.Quiet || viper.GetBool("quiet") {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}

	cfg := &logging.Config{
		Level:     level.String(),
		Format:    os.Getenv("LOG_FORMAT"),
		Output:    os.Getenv("LOG_OUTPUT"),
		AddCaller: level <= zerolog.DebugLevel,
	}

	if cfg.Format == "" {
		cfg.Format = "auto"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}

	logging.Configure(cfg)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		loadEnvFile(envFile)
	}
}

// loadEnvFile loads a single .env file using godotenv.
func loadEnvFile(filename string) {
	if err := godotenv.Load(filename); err == nil {
		if globalFlags != nil && globalFlags.Verbose {
			fmt.Fprintf(os.Stderr, "Loaded %s\n", filename)
		}
	}
}
