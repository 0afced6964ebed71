package root

import (
	"github.com/spf13/cobra"

	"github.com/flarebyte/workers/cli"
	"github.com/flarebyte/workers/cmd/workers/add"
	"github.com/flarebyte/workers/cmd/workers/display"
	"github.com/flarebyte/workers/cmd/workers/selectcmd"
	"github.com/flarebyte/workers/cmd/workers/version"
	"github.com/flarebyte/workers/internal/buildinfo"
	"github.com/flarebyte/workers/internal/config"
)

// NewRootCmd creates the root command for workers.
func NewRootCmd(env *cli.Env) *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:     "workers",
		Short:   "Keep a roster of workers in a JSON data file",
		Version: buildinfo.Resolved(),
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := config.ParseLogLevel(logLevel)
			if err != nil {
				return err
			}
			env.Config.LogLevel = lvl
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand the roster is only loaded.
			d, err := env.Dispatcher(cmd, "")
			if err != nil {
				return err
			}
			return d.Run(nil)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	// Subcommands
	cmd.AddCommand(add.NewCmd(env))
	cmd.AddCommand(display.NewCmd(env))
	cmd.AddCommand(selectcmd.NewCmd(env))
	cmd.AddCommand(version.NewCmd())

	return cmd
}

// Execute runs the root command with provided args against the process
// environment.
func Execute(args []string) error {
	return ExecuteWith(cli.DefaultEnv(), args)
}

// ExecuteWith runs the root command with an explicit environment.
func ExecuteWith(env *cli.Env, args []string) error {
	cmd := NewRootCmd(env)
	cmd.SetArgs(args)
	return classify(cmd.Execute())
}
