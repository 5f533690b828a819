package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/headcount/internal/model"
)

var (
	cfgFile   string
	verbose   bool
	format    string
	stripHTML bool
	noCache   bool
	logLevel  string

	version = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "headcount",
	Short: "headcount - check stated head counts against a name list",
	Long: `headcount finds statements of how many people appear in a story
("3人", "五名", ...) in its title, intro and body, and compares the first
count stated in each field with the number of distinct names in a name list.

Only Arabic digits and the kanji 一 to 十 are recognized. Kanji runs are
summed character by character, so 二十 reads as 12.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command
func SetVersion(v string) {
	if strings.TrimSpace(v) != "" {
		version = v
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "headcount %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.headcount/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "table", "output format (table, json, markdown)")
	rootCmd.PersistentFlags().BoolVar(&stripHTML, "strip-html", false, "treat field texts as HTML and scan only visible text")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "disable the extraction cache")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("input.strip_html", rootCmd.PersistentFlags().Lookup("strip-html"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	setDefaults(model.DefaultConfig())

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in .env, config file and ENV variables
func initConfig() {
	// Best-effort: load .env from current directory
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.headcount")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match HEADCOUNT_*
	viper.SetEnvPrefix("HEADCOUNT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	} else if err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Error reading config file %s: %v\n", cfgFile, err)
	}
}

// setDefaults registers every config key so env vars and Unmarshal see them
func setDefaults(cfg *model.Config) {
	viper.SetDefault("input.strip_html", cfg.Input.StripHTML)
	viper.SetDefault("input.max_field_bytes", cfg.Input.MaxFieldBytes)
	viper.SetDefault("names.max_bytes", cfg.Names.MaxBytes)
	viper.SetDefault("names.comment_prefix", cfg.Names.CommentPrefix)
	viper.SetDefault("cache.enabled", cfg.Cache.Enabled)
	viper.SetDefault("cache.ttl", cfg.Cache.TTL)
	viper.SetDefault("output.format", cfg.Output.Format)
	viper.SetDefault("output.verbose", cfg.Output.Verbose)
	viper.SetDefault("log.level", cfg.Log.Level)
}

// loadConfig builds the effective configuration: flags, env, file, defaults
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	return cfg, nil
}
