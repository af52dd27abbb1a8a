package cli

import (
	"fmt"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/spf13/cobra"
)

func newTicketCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Manage tickets and their requirements",
	}

	cmd.AddCommand(
		newTicketAddCmd(app),
		newTicketListCmd(app),
		newTicketBoardCmd(app),
		newTicketShowCmd(app),
		newTicketMoveCmd(app),
		newTicketAssignCmd(app),
		newRequirementCmd(app),
	)

	return cmd
}

func newTicketAddCmd(app *App) *cobra.Command {
	var projectInput, title, businessContext string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a ticket directly on a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, projectInput)
			if err != nil {
				return err
			}

			t, err := app.Tickets.Create(ctx, projectID, title, businessContext)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created ticket %s in %s\n", t.ID, formatter.ColumnLabel(t.Column))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectInput, "project", "", "Project ID or prefix")
	cmd.Flags().StringVar(&title, "title", "", "Ticket title")
	cmd.Flags().StringVar(&businessContext, "context", "", "Business context")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTicketListCmd(app *App) *cobra.Command {
	var projectInput string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's tickets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, projectInput)
			if err != nil {
				return err
			}

			tickets, err := app.Tickets.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTicketList(tickets))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectInput, "project", "", "Project ID or prefix")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTicketBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board <project-id>",
		Short: "Show a project's tickets grouped by column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			board, err := app.Tickets.Board(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBoard(board))
			return nil
		},
	}
}

func newTicketShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <ticket-id>",
		Short: "Show a ticket with its requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTicketID(ctx, app, args[0])
			if err != nil {
				return err
			}

			t, err := app.Tickets.Get(ctx, id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTicketDetail(t))
			return nil
		},
	}
}

func newTicketMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "move <ticket-id> <column>",
		Short:     "Move a ticket to another board column",
		Args:      cobra.ExactArgs(2),
		ValidArgs: columnNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			column, err := domain.ParseColumn(args[1])
			if err != nil {
				return err
			}
			id, err := resolveTicketID(ctx, app, args[0])
			if err != nil {
				return err
			}

			t, err := app.Tickets.Move(ctx, id, column)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", t.Title, formatter.ColumnPill(t.Column))
			return nil
		},
	}
}

func columnNames() []string {
	names := make([]string, len(domain.Columns))
	for i, c := range domain.Columns {
		names[i] = string(c)
	}
	return names
}

func newTicketAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <ticket-id> [assignee]",
		Short: "Assign a ticket, or clear the assignee when none is given",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTicketID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var assignee string
			if len(args) == 2 {
				assignee = args[1]
			}

			t, err := app.Tickets.Assign(ctx, id, assignee)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if t.Assignee == nil {
				fmt.Fprintf(out, "Unassigned %s\n", t.Title)
				return nil
			}
			fmt.Fprintf(out, "Assigned %s to %s\n", t.Title, *t.Assignee)
			return nil
		},
	}
}
