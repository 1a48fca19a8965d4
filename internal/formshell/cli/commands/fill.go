package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mistakeknot/formshell/internal/formshell/config"
	"github.com/mistakeknot/formshell/internal/formshell/form"
)

func FillCmd() *cobra.Command {
	var (
		answersFile string
		endpoint    string
		submit      bool
	)
	cmd := &cobra.Command{
		Use:   "fill <form.yaml>",
		Short: "Fill a form non-interactively from an answers file",
		Long: `Fill a form non-interactively from an answers file.

The answers file maps field ids to values:

  name: Ada Lovelace
  color: green
  topics: [1, 3]
  newsletter: yes

Required fields must be present; optional fields without an answer are
skipped. With --submit the collected data is posted to the endpoint and
the server response printed, otherwise the collected data is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.LoadFromRoot(cwd)
			if err != nil {
				return err
			}
			def, warnings, err := form.LoadDefinition(args[0])
			if err != nil {
				return err
			}
			for _, warning := range warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", warning)
			}
			answers, err := loadAnswers(answersFile)
			if err != nil {
				return err
			}
			ctrl, _, err := form.NewController(def, form.ControllerOptions{
				Endpoint: resolveEndpoint(endpoint, def.Endpoint, cfg.Endpoint),
			})
			if err != nil {
				return err
			}
			if err := ctrl.Start(); err != nil {
				return err
			}
			session := ctrl.Session()
			for !session.Completed() {
				step := session.Current()
				id := step.Field.ID()
				switch candidate, ok := answers[id]; {
				case ok:
					if err := ctrl.Answer(normalizeAnswer(candidate)); err != nil {
						return fmt.Errorf("field %q: %s", id, err)
					}
				case !step.Field.Value().IsAbsent():
					// No answer given; keep the configured default.
					if err := ctrl.Answer(step.Field.Value()); err != nil {
						return fmt.Errorf("field %q: %s", id, err)
					}
				case step.Field.Required():
					return fmt.Errorf("field %q: no answer provided", id)
				default:
					if err := ctrl.Skip(); err != nil {
						return fmt.Errorf("field %q: %s", id, err)
					}
				}
				if !ctrl.ConfirmAdvance(ctrl.ScheduleAdvance()) {
					return fmt.Errorf("field %q: advance failed", id)
				}
			}
			var result any = session.Data()
			if submit {
				result, err = ctrl.Submit(cmd.Context())
				if err != nil {
					return err
				}
			}
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&answersFile, "answers", "", "YAML file mapping field ids to answers")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "submission endpoint (overrides form and config)")
	cmd.Flags().BoolVar(&submit, "submit", false, "post the collected data to the endpoint")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

func loadAnswers(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var answers map[string]any
	if err := yaml.Unmarshal(raw, &answers); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return answers, nil
}

// normalizeAnswer reshapes YAML sequences for multiple-choice fields. A list
// of whole numbers becomes an index-token string ("1 3"); anything else
// becomes a string slice of literal option values.
func normalizeAnswer(candidate any) any {
	list, ok := candidate.([]any)
	if !ok {
		return candidate
	}
	allInts := len(list) > 0
	for _, item := range list {
		if _, ok := item.(int); !ok {
			allInts = false
			break
		}
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, fmt.Sprint(item))
	}
	if allInts {
		return strings.Join(out, " ")
	}
	return out
}
