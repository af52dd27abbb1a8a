package cli

import (
	"fmt"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/spf13/cobra"
)

func newRequirementCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "req",
		Aliases: []string{"requirement"},
		Short:   "Edit a ticket's requirement checklist",
	}

	cmd.AddCommand(
		newRequirementAddCmd(app),
		newRequirementToggleCmd(app),
		newRequirementRemoveCmd(app),
	)

	return cmd
}

func newRequirementAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <ticket-id> <text>",
		Short: "Append a requirement",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRequirements(cmd, app, args[0], func(id string) (*domain.Ticket, error) {
				return app.Tickets.AddRequirement(cmd.Context(), id, args[1])
			})
		},
	}
}

func newRequirementToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <ticket-id> <requirement-id>",
		Short: "Flip a requirement between open and completed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRequirements(cmd, app, args[0], func(id string) (*domain.Ticket, error) {
				return app.Tickets.ToggleRequirement(cmd.Context(), id, args[1])
			})
		},
	}
}

func newRequirementRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <ticket-id> <requirement-id>",
		Aliases: []string{"remove"},
		Short:   "Delete a requirement",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRequirements(cmd, app, args[0], func(id string) (*domain.Ticket, error) {
				return app.Tickets.RemoveRequirement(cmd.Context(), id, args[1])
			})
		},
	}
}

// editRequirements resolves the ticket, applies edit and prints the
// resulting checklist.
func editRequirements(cmd *cobra.Command, app *App, ticketInput string, edit func(id string) (*domain.Ticket, error)) error {
	id, err := resolveTicketID(cmd.Context(), app, ticketInput)
	if err != nil {
		return err
	}

	t, err := edit(id)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTicketDetail(t))
	return nil
}
