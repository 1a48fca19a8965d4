package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mistakeknot/formshell/internal/formshell/form"
)

func ValidateCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "validate <form.yaml>",
		Short: "Check a form definition without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			for {
				if err := validateOnce(cmd, path); err != nil {
					if !watch {
						return err
					}
					fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				}
				if !watch {
					return nil
				}
				if err := waitForChange(cmd, path); err != nil {
					return err
				}
			}
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "revalidate whenever the definition file changes")
	return cmd
}

func validateOnce(cmd *cobra.Command, path string) error {
	def, warnings, err := form.LoadDefinition(path)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", warning)
	}
	required := 0
	for _, step := range def.Steps {
		if step.Required == nil || *step.Required {
			required++
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d steps, %d required, %d warnings)\n",
		path, len(def.Steps), required, len(warnings))
	return nil
}
