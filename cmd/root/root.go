// Package root contains the root command for the application
package root

import (
	"fjacquet/ccstmt-csv/cmd/common"
	"fjacquet/ccstmt-csv/internal/config"
	"fjacquet/ccstmt-csv/internal/container"

	"github.com/spf13/cobra"
)

// Cmd is the root command
var Cmd = NewCommand()

// NewCommand builds the ccstmt-csv command. It takes one or more statement
// files and has no flags; settings come from the config file and environment.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ccstmt-csv FILE...",
		Short: "Extract purchases from credit-card statement PDFs as CSV.",
		Long: `ccstmt-csv reads credit-card statement PDFs and writes one CSV row per
purchase: date, merchant, state, itinerary and amount.

Travel itinerary lines and foreign-exchange annotations are attached to the
purchase they belong to, and MM/DD dates get their year from the statement's
Opening/Closing Date. Files are processed in argument order.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

// Execute runs the root command.
func Execute() error {
	return Cmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}

	return common.ProcessFiles(
		c.GetParser(),
		c.GetReportGenerator(),
		args,
		cfg.Output.Format,
		cmd.OutOrStdout(),
		c.GetLogger(),
	)
}
