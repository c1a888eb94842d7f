// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the leetcode-search CLI. Run with a
// query it prints an Alfred script filter document on stdout; --tty prints
// the same results for a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/leetcode-search/internal/di"
	"github.com/pdiddy/leetcode-search/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is the diagnostic sink; it writes to stderr once the root command
// has started.
var logger = zap.NewNop()

var (
	cfgFile string
	verbose bool
)

// rootCmd runs the script filter: every argument is joined into one query.
// It has no subcommands, so no query word is ever taken as a command name.
var rootCmd = &cobra.Command{
	Use:   "leetcode-search [query...]",
	Short: "Search LeetCode problems from Alfred",
	Long: `leetcode-search looks up LeetCode problems by number or keyword and prints
the matches as an Alfred script filter document ({"items": [...]}) on stdout.

A query made only of digits is treated as a problem number; anything else is
a keyword search. Diagnostics go to stderr and never mix with the document.

Flags are read only before the first query word. Invoke it from Alfred as
  leetcode-search -- "{query}"
so that a query starting with "-" is searched rather than parsed as a flag.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", zap.String("path", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		a := di.InitializeApp(cfg, logger)
		if terminal.enabled() {
			return runTerminal(cmd, a, cfg, args)
		}
		return a.ScriptFilter(cmd.Context(), args, cmd.OutOrStdout())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = version
	// "completion" would otherwise be added on demand and shadow that query.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("leetcode-search {{.Version}}\n")

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: leetcode-search.yaml in . or ~/.config/leetcode-search/)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug diagnostics to stderr")

	// Parsing stops at the first query word or at "--".
	rootCmd.Flags().SetInterspersed(false)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("leetcode-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "leetcode-search"))
		}
	}

	setDefaults(viper.GetViper(), types.DefaultConfig())

	viper.SetEnvPrefix("LEETCODE_SEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is normal; defaults and env still apply.
	_ = viper.ReadInConfig()
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d types.Config) {
	v.SetDefault("catalog.endpoint", d.Catalog.Endpoint)
	v.SetDefault("catalog.timeout", d.Catalog.Timeout)
	v.SetDefault("catalog.user_agent", d.Catalog.UserAgent)
	v.SetDefault("catalog.referer", d.Catalog.Referer)
	v.SetDefault("search.page_size", d.Search.PageSize)
	v.SetDefault("search.id_lookup", d.Search.IDLookup)
	v.SetDefault("output.problem_host", d.Output.ProblemHost)
	v.SetDefault("output.icon", d.Output.Icon)
}

// loadConfig decodes the merged viper settings. A malformed value is logged
// and the defaults are used, so the script filter still answers.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		logger.Warn("invalid configuration, using defaults", zap.Error(err))
		cfg = types.DefaultConfig()
	}
	cfg.Normalize()
	return cfg
}

// newLogger builds a console logger on stderr, at debug level when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
