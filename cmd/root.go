package cmd

import (
	"fmt"
	"os"

	"rosterfill/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "rosterfill",
	Short: "Roster matching and fill tool",
	Long: `rosterfill completes a partially anonymized roster from a complete
reference list. Both files are joined on a key column of your choosing and
selected reference columns are copied into the roster, overwriting existing
columns or appended as new ones.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level: pretty CLI output with ISO8601
		// timestamps instead of epoch seconds.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
