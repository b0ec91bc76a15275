// Package cmd implements the command-line interface for gocourses.
// It provides the root command and subcommands for browsing, scraping, and
// serving the course catalog.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmdcourses "github.com/jonesrussell/gocourses/cmd/courses"
	"github.com/jonesrussell/gocourses/cmd/httpd"
	cmdreport "github.com/jonesrussell/gocourses/cmd/report"
	cmdscrape "github.com/jonesrussell/gocourses/cmd/scrape"
	cmdtopics "github.com/jonesrussell/gocourses/cmd/topics"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands
	Debug bool

	// rootCmd represents the root command for the gocourses CLI.
	rootCmd = &cobra.Command{
		Use:   "gocourses",
		Short: "A course catalog scraper and browser",
		Long:  `Scrape, index, and query online course listings from the command line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	// Parse flags early to get debug flag before creating logger
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gocourses version %s\n", viper.GetString("app.version"))
		},
	})

	rootCmd.AddCommand(cmdtopics.Command())
	rootCmd.AddCommand(cmdcourses.Command())
	rootCmd.AddCommand(cmdscrape.Command())
	rootCmd.AddCommand(cmdreport.Command())
	rootCmd.AddCommand(httpd.Command())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// Enable automatic environment variable reading before setting defaults
	// so environment variables take precedence over defaults.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional: settings can come from file, environment
	// variables, or defaults.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Config file not found: %v (using defaults and environment variables)\n", err)
	}

	if err := bindCommandLineFlags(); err != nil {
		return err
	}
	if err := bindEnvVars(); err != nil {
		return err
	}

	setupDevelopmentLogging()

	return nil
}

// bindCommandLineFlags binds command-line flags to Viper.
func bindCommandLineFlags() error {
	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}
	return nil
}

// bindEnvVars binds well-known environment variables to config keys.
func bindEnvVars() error {
	bindings := map[string][]string{
		"app.environment":     {"APP_ENV"},
		"app.debug":           {"APP_DEBUG"},
		"logger.level":        {"LOG_LEVEL"},
		"logger.encoding":     {"LOG_FORMAT"},
		"catalog.courses_dir": {"COURSES_DIR"},
		"catalog.topics_file": {"TOPICS_FILE"},
		"server.address":      {"SERVER_ADDRESS"},
		"scraper.base_url":    {"SCRAPER_BASE_URL"},
	}
	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := viper.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

// setupDevelopmentLogging configures development logging based on the
// environment and debug flag.
func setupDevelopmentLogging() {
	debugFlag := Debug || viper.GetBool("app.debug")
	isDev := viper.GetString("app.environment") == "development"

	if debugFlag {
		viper.Set("logger.level", "debug")
	}
	if isDev {
		viper.Set("logger.development", true)
		viper.Set("logger.enable_color", true)
		viper.Set("logger.encoding", "console")
	}

	Debug = debugFlag
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("app", map[string]any{
		"name":        "gocourses",
		"version":     "0.1.0",
		"environment": "production",
		"debug":       false,
	})

	viper.SetDefault("logger", map[string]any{
		"level":        "info",
		"development":  false,
		"encoding":     "json",
		"enable_color": false,
	})

	viper.SetDefault("server", map[string]any{
		"address":       ":8080",
		"read_timeout":  "15s",
		"write_timeout": "15s",
		"idle_timeout":  "60s",
	})

	viper.SetDefault("catalog", map[string]any{
		"courses_dir": "data/courses",
		"topics_file": "data/topics.csv",
	})

	viper.SetDefault("scraper", map[string]any{
		"base_url":        "https://www.udemy.com",
		"user_agent":      "gocourses/1.0",
		"delay":           "2s",
		"random_delay":    "1s",
		"parallelism":     2,
		"request_timeout": "30s",
		"max_pages":       5,
	})
}
