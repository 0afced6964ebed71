package display

import (
	"github.com/spf13/cobra"

	"github.com/flarebyte/workers/cli"
	"github.com/flarebyte/workers/internal/app"
)

// NewCmd builds `workers display`.
func NewCmd(env *cli.Env) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:           "display",
		Short:         "Display all workers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := env.Dispatcher(cmd, data)
			if err != nil {
				return err
			}
			return d.Run(app.DisplayAll())
		},
	}
	cli.AddDataFlag(cmd, &data)
	return cmd
}
