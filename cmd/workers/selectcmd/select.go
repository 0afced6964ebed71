// Package selectcmd implements `workers select`.
package selectcmd

import (
	"github.com/spf13/cobra"

	"github.com/flarebyte/workers/cli"
	"github.com/flarebyte/workers/internal/app"
)

// NewCmd builds `workers select`.
func NewCmd(env *cli.Env) *cobra.Command {
	var (
		data   string
		period int
	)
	cmd := &cobra.Command{
		Use:           "select",
		Short:         "Select the workers with at least the given tenure",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := env.Dispatcher(cmd, data)
			if err != nil {
				return err
			}
			return d.Run(app.SelectByTenure(period, env.CurrentYear()))
		},
	}
	cli.AddDataFlag(cmd, &data)
	cmd.Flags().IntVarP(&period, "period", "P", 0, "The required period in years")
	_ = cmd.MarkFlagRequired("period")
	return cmd
}
