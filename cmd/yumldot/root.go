package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:           "yumldot",
	Short:         "yUML to Graphviz DOT translator",
	Long:          "yumldot translates yUML class, use-case, activity, state, deployment and package diagrams into Graphviz DOT.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// logger is replaced in initConfig once flags are parsed.
var logger = zap.NewNop()

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")
	rootCmd.PersistentFlags().String("config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("font", "Helvetica", "Font name for the digraph defaults")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("font", rootCmd.PersistentFlags().Lookup("font"))
}

func initConfig() {
	viper.SetEnvPrefix("YUMLDOT")
	viper.AutomaticEnv()

	if cfg := viper.GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "[config] %v\n", err)
		}
	}

	logger = newLogger(viper.GetBool("verbose"), viper.GetBool("debug"))
}

// newLogger returns a development logger writing to stderr when verbose or
// debug output is requested, and a no-op logger otherwise.
func newLogger(verbose, debug bool) *zap.Logger {
	if !verbose && !debug {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
