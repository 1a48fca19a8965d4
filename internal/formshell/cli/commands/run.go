package commands

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mistakeknot/formshell/internal/formshell/config"
	"github.com/mistakeknot/formshell/internal/formshell/form"
	"github.com/mistakeknot/formshell/internal/formshell/tui"
)

var runTUI = tui.Run

func RunCmd() *cobra.Command {
	var (
		endpoint string
		watch    bool
	)
	cmd := &cobra.Command{
		Use:   "run <form.yaml>",
		Short: "Run a form interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.LoadFromRoot(cwd)
			if err != nil {
				return err
			}
			for {
				def, warnings, err := form.LoadDefinition(path)
				if err != nil {
					if !watch {
						return err
					}
					fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				} else {
					for _, warning := range warnings {
						fmt.Fprintln(cmd.ErrOrStderr(), "warning:", warning)
					}
					opts := tui.Options{
						Endpoint:      resolveEndpoint(endpoint, def.Endpoint, cfg.Endpoint),
						AdvanceDelay:  cfg.ParsedAdvanceDelay(),
						SubmitTimeout: cfg.SubmitTimeout(),
						Theme:         cfg.GlamourStyle(),
					}
					if err := runTUI(def, opts); err != nil {
						return err
					}
				}
				if !watch {
					return nil
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "watching", path, "for changes (ctrl+c to stop)")
				if err := waitForChange(cmd, path); err != nil {
					return err
				}
			}
		},
	}
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "submission endpoint (overrides form and config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "rerun the form whenever the definition file changes")
	return cmd
}

// resolveEndpoint applies the precedence flag > definition > config. The
// returned value is only passed down when it should override the definition.
func resolveEndpoint(flag, definition, configured string) string {
	if flag != "" {
		return flag
	}
	if definition == "" {
		return configured
	}
	return ""
}

// waitForChange blocks until the definition file is written or replaced.
// Editors that rename-and-swap drop the watch on the old inode, so the
// parent directory is watched and events filtered by name.
func waitForChange(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(watchDir(path)); err != nil {
		return err
	}
	for {
		select {
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !sameFile(event.Name, path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "watch error:", err)
		}
	}
}
