package add

import (
	"github.com/spf13/cobra"

	"github.com/flarebyte/workers/cli"
	"github.com/flarebyte/workers/internal/app"
	"github.com/flarebyte/workers/internal/roster"
)

// NewCmd builds `workers add`.
func NewCmd(env *cli.Env) *cobra.Command {
	var (
		data    string
		surname string
		name    string
		number  string
		year    int
	)
	cmd := &cobra.Command{
		Use:           "add",
		Short:         "Add a new worker",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := env.Dispatcher(cmd, data)
			if err != nil {
				return err
			}
			return d.Run(app.AddWorker(roster.NewWorker(surname, name, number, year)))
		},
	}
	cli.AddDataFlag(cmd, &data)
	cmd.Flags().StringVarP(&surname, "surname", "s", "", "The worker's surname")
	cmd.Flags().StringVarP(&name, "name", "n", "", "The worker's name")
	cmd.Flags().StringVarP(&number, "number", "z", "", "The worker's phone number")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "The year of hiring")
	_ = cmd.MarkFlagRequired("surname")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}
