package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mistakeknot/formshell/internal/formshell/config"
	"github.com/mistakeknot/formshell/internal/formshell/sink"
)

func SinkCmd() *cobra.Command {
	var (
		addr    string
		logFile string
	)
	cmd := &cobra.Command{
		Use:   "sink",
		Short: "Serve a local submission sink for development",
		Long: `Serve a local submission sink for development.

The sink accepts form submissions on POST /api/submissions, keeps them in
memory and lists them on GET /api/submissions. It only binds loopback
addresses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.LoadFromRoot(cwd)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Sink.Addr
			}
			if logFile == "" {
				logFile = cfg.Sink.LogFile
			}
			s, err := sink.New(logFile)
			if err != nil {
				return err
			}
			return s.ListenAndServe(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (loopback only, default from config)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append JSON logs to this file")
	return cmd
}
