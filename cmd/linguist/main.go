package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/linguist/internal/cli"
	"codeberg.org/snonux/linguist/internal/logging"
	"codeberg.org/snonux/linguist/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(os.Stderr, flags.Debug)

	// Create processor
	proc := processor.NewProcessor(flags, logger)

	switch {
	case flags.Archive:
		return proc.ArchiveHistory()
	case flags.ListLanguages:
		proc.ListLanguages()
		return nil
	case flags.ListModels:
		return proc.ListModels(ctx)
	case flags.ShowHistory:
		return proc.ListHistory()
	case flags.ExportFile != "":
		return proc.ExportHistory(flags.ExportFile)
	case flags.TUIMode:
		return proc.RunTUIMode(ctx)
	case len(args) > 0:
		return proc.ProcessText(ctx, cli.InputText(args))
	default:
		// No input provided - launch GUI mode by default
		return proc.RunGUIMode()
	}
}
