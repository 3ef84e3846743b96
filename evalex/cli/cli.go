// Package cli implements the evalex command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// SignalContext is a global context for terminating the application by an
// interrupt signal.
var SignalContext context.Context

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "evalex",
	Short: "An arithmetic expression evaluator",
	Long: `Welcome to evalex V0.1 (experimental)

evalex evaluates arithmetic expressions over named constants.

evalex is able to run in interactive mode or evaluate one or more
expressions given as arguments in batch-mode. If run in interactive mode,
it will prompt for user input in a terminal REPL.

`,
	Run: runEvalexCmd,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called exactly once by evalex.main().
func Execute() {
	if rootCmd.Execute() != nil {
		exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
}

func runEvalexCmd(cmd *cobra.Command, args []string) {
	repl := newRepl()
	if len(args) > 0 {
		for _, arg := range args {
			repl.InterpretCommand(arg)
		}
		if interactive, _ := cmd.Flags().GetBool("interactive"); !interactive {
			return
		}
	}
	repl.Prompt()
}

// exit exits the application.
func exit(errcode int) {
	os.Exit(errcode)
}
