// Package cli defines the Cobra command for the mindful program.
// This file contains the root command, its flags and the wiring from flags
// to the menu.
package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindful-dev/mindful/internal/activity"
	"github.com/mindful-dev/mindful/internal/clock"
	"github.com/mindful-dev/mindful/internal/config"
	"github.com/mindful-dev/mindful/internal/console"
	"github.com/mindful-dev/mindful/internal/log"
	"github.com/mindful-dev/mindful/internal/menu"
)

var version = "dev" // set via ldflags at build time

// options holds the root command flags.
type options struct {
	configPath string
	logFile    string
	seed       int64
}

// NewRootCmd builds the root command. The menu reads the command's input
// and writes to its output, which default to stdin and stdout.
func NewRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "mindful",
		Short: "Guided breathing, reflection and listing exercises",
		Long: `Mindful offers timed, guided self-reflection exercises from a text menu.
Pick an activity, say how long you want it to last, and follow along.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML file overriding activity timings")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Append JSON session events to this file")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for prompt selection (random when unset)")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.ReadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger, err := log.NewLogger(opts.logFile)
	if err != nil {
		return err
	}
	defer logger.Close()

	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
	env := activity.NewEnv(con, clock.System{}, rand.New(rand.NewSource(opts.seed)), cfg, logger)

	if err := menu.New(env, menu.DefaultOptions()).Run(); err != nil {
		return fmt.Errorf("mindful: %w", err)
	}
	return nil
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
