// Package main provides the interactive FridgeSavvy CLI.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"fridgesavvy/internal/app"
	"fridgesavvy/internal/config"
	"fridgesavvy/internal/database"
	"fridgesavvy/internal/metrics"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fridgesavvy [script]",
	Short: "FridgeSavvy is a kitchen inventory and meal planning assistant",
	Long: `FridgeSavvy manages a pantry, a recipe book and a meal plan through
line commands. Run it without arguments for an interactive session, or
pass a script file to execute its lines and exit.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewFromEnv()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		db, err := database.Open(cfg.MetricsDB)
		if err != nil {
			return fmt.Errorf("open metrics database: %w", err)
		}
		defer db.Close()

		session := app.New(cfg, metrics.NewStore(db.SQL), nil)

		in := cmd.InOrStdin()
		interactive := len(args) == 0
		if !interactive {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			in = f
		}

		return runLoop(session, in, cmd.OutOrStdout(), interactive)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fridgesavvy v0.1.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// runLoop reads lines from in and feeds them to the session until the
// session asks to stop or input runs out.
func runLoop(session *app.App, in io.Reader, out io.Writer, interactive bool) error {
	if interactive {
		fmt.Fprintln(out, "FridgeSavvy – Smart kitchen inventory and meal planning assistant")
		fmt.Fprintln(out, "Type 'help' to see available commands. Type 'exit' to quit.")
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			// EOF ends the session the same way 'exit' does.
			if interactive {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, "Goodbye!")
			return scanner.Err()
		}

		resp, cont := session.HandleLine(scanner.Text())
		fmt.Fprintln(out, resp)
		if !cont {
			return nil
		}
	}
}
