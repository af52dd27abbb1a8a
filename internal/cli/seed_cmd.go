package cli

import (
	"fmt"

	"github.com/alexanderramin/intake/internal/seed"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo data into an empty database",
		Long: "Load demo data into an empty database. Without --file the built-in\n" +
			"demo dataset is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Seeder == nil {
				return fmt.Errorf("seeding is not available")
			}

			var (
				ds  *seed.Dataset
				err error
			)
			if file != "" {
				ds, err = seed.LoadFile(file)
			} else {
				ds, err = seed.Demo()
			}
			if err != nil {
				return err
			}

			sum, err := app.Seeder.Apply(cmd.Context(), ds)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d requests, %d projects, %d tickets, %d requirements\n",
				sum.Requests, sum.Projects, sum.Tickets, sum.Requirements)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML dataset to load instead of the demo data")

	return cmd
}
