package cli

import (
	"github.com/spf13/cobra"

	"github.com/mistakeknot/formshell/internal/formshell/cli/commands"
)

func Execute() error {
	return NewRoot().Execute()
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "formshell",
		Short:         "Terminal multi-step form engine",
		Long:          "FormShell runs declarative multi-step forms in the terminal, validates every answer and optionally posts the result to an HTTP endpoint.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		commands.RunCmd(),
		commands.FillCmd(),
		commands.ValidateCmd(),
		commands.SinkCmd(),
	)
	return root
}
