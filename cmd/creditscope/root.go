package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jamesainslie/creditscope/pkg/credits/config"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "creditscope",
		Short: "Explore AI platform credit consumption",
		Long: `Creditscope shows how an org spends platform credits across the
Batch Data Pipeline and Unstructured Data Processed meters.

By default, creditscope launches an interactive dashboard with a
consumption chart, an activity ledger, and consumption alerts.
Use --no-interactive or an explicit output format for scriptable output.

Examples:
  creditscope                         # Interactive dashboard
  creditscope -p 7d                   # Dashboard over the last 7 days
  creditscope -n -o json              # Full report as JSON
  creditscope report --date 10/31/2025 # Single-day ledger
  creditscope alerts                  # Active consumption alerts
  creditscope config show             # Show configuration`,
		Args: cobra.NoArgs,
		RunE: runDashboard,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/creditscope/config.yaml)")
	rootCmd.PersistentFlags().String("org", "", "org ID to display")
	rootCmd.PersistentFlags().StringP("period", "p", "", "reporting window: 24h, 7d, 30d, 90d, custom")
	rootCmd.PersistentFlags().StringP("feed", "f", "", "YAML feed file (default: embedded demo dataset)")
	rootCmd.PersistentFlags().String("today", "", "reference date override (M/D/YYYY)")
	rootCmd.PersistentFlags().BoolP("watch", "w", false, "reload the feed when it changes on disk")
	rootCmd.PersistentFlags().BoolP("no-interactive", "n", false, "disable dashboard, use text output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format: pretty, json, jsonl, yaml, tsv, csv, markdown")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("org_id", rootCmd.PersistentFlags().Lookup("org"))
	_ = viper.BindPFlag("period", rootCmd.PersistentFlags().Lookup("period"))
	_ = viper.BindPFlag("feed_path", rootCmd.PersistentFlags().Lookup("feed"))
	_ = viper.BindPFlag("today", rootCmd.PersistentFlags().Lookup("today"))
	_ = viper.BindPFlag("watch", rootCmd.PersistentFlags().Lookup("watch"))
	_ = viper.BindPFlag("no_interactive", rootCmd.PersistentFlags().Lookup("no-interactive"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		// Add config paths in order of precedence
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "creditscope"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "creditscope"))
		}
	}

	viper.SetEnvPrefix("CREDITSCOPE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Set defaults from config package
	viper.SetDefault("org_id", config.DefaultOrgID)
	viper.SetDefault("period", config.DefaultPeriod)
	viper.SetDefault("format", "")
	viper.SetDefault("logging.level", "info")

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
