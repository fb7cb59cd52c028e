package main

import (
	"fmt"
	"interview-scheduler/internal/app/config"
	"interview-scheduler/internal/app/services/core/schedule"
	"interview-scheduler/internal/app/services/shared/schedulerapi"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

var (
	// Global flags
	apiBaseURL string
	timeout    time.Duration
	verbose    bool

	logger *zap.Logger

	// newController is swapped in tests to avoid a real scheduler API.
	newController = func(baseURL string, callTimeout time.Duration, log *zap.Logger) *schedule.Controller {
		client := schedulerapi.NewSchedulerAPIClient(baseURL, callTimeout, log)
		return schedule.NewController(client, callTimeout, log)
	}
)

var rootCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Browse and book interview appointments",
	Long: `scheduler talks to the interview scheduler API.

Days carry a fixed set of appointment slots. Each slot holds at most one
interview: a student name and one of the interviewers available that day.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			logger = zap.NewNop()
			return nil
		}

		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	internalConfig := config.NewInternalConfig()

	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", internalConfig.Client.APIBaseURL, "Scheduler API base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Duration(internalConfig.Client.CallTimeoutInSeconds)*time.Second, "Timeout for each API call")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable development logging")

	rootCmd.AddCommand(
		daysCmd,
		showCmd,
		bookCmd,
		cancelCmd,
		versionCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
