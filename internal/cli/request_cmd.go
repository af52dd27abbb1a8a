package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/service"
	"github.com/spf13/cobra"
)

func newRequestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "request",
		Aliases: []string{"req"},
		Short:   "Submit and triage intake requests",
	}

	cmd.AddCommand(
		newRequestSubmitCmd(app),
		newRequestListCmd(app),
		newRequestShowCmd(app),
		newRequestTriageCmd(app),
		newRequestConvertCmd(app),
	)

	return cmd
}

func newRequestSubmitCmd(app *App) *cobra.Command {
	var in domain.NewRequest
	impact := newEnumFlag(domain.ImpactAreas, domain.ImpactProduct)
	urgency := newEnumFlag(domain.Urgencies, domain.UrgencyMedium)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a new intake request",
		Long: "Submit a new intake request. With no --title on an interactive\n" +
			"terminal a form is shown instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.ImpactArea = impact.String()
			in.Urgency = urgency.String()

			if !cmd.Flags().Changed("title") && app.interactive() {
				if err := requestForm(&in).Run(); err != nil {
					return err
				}
			}

			req, err := app.Requests.Create(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Submitted request %s %s\n", req.ID, formatter.StatusPill(req.Status))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Request title")
	cmd.Flags().StringVar(&in.BusinessContext, "context", "", "Business context")
	cmd.Flags().StringVar(&in.RequesterName, "requester", "", "Requester name")
	cmd.Flags().Var(impact, "impact", impact.usage("Impact area"))
	cmd.Flags().Var(urgency, "urgency", urgency.usage("Urgency"))

	return cmd
}

func newRequestListCmd(app *App) *cobra.Command {
	status := newEnumFlag(domain.RequestStatuses, "")

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List intake requests, most recently updated first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				reqs []*domain.IntakeRequest
				err  error
			)
			if s := status.String(); s != "" {
				reqs, err = app.Requests.ListByStatus(ctx, domain.RequestStatus(s))
			} else {
				reqs, err = app.Requests.List(ctx)
			}
			if err != nil {
				return err
			}

			counts, err := app.Requests.StatusCounts(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatRequestList(reqs))
			fmt.Fprintln(out, formatter.FormatStatusCounts(counts))
			return nil
		},
	}

	cmd.Flags().Var(status, "status", status.usage("Only show requests with this status"))

	return cmd
}

func newRequestShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <request-id>",
		Short: "Show a request and its linked ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveRequestID(ctx, app, args[0])
			if err != nil {
				return err
			}

			req, err := app.Requests.Get(ctx, id)
			if err != nil {
				return err
			}

			ticket, err := app.Tickets.GetByIntakeRequest(ctx, id)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRequestDetail(req, ticket))
			return nil
		},
	}
}

func newRequestTriageCmd(app *App) *cobra.Command {
	action := newEnumFlag(domain.TriageActions, "")
	var note string

	cmd := &cobra.Command{
		Use:   "triage <request-id>",
		Short: "Accept, defer, reject or ask for clarification on a request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveRequestID(ctx, app, args[0])
			if err != nil {
				return err
			}

			req, err := app.Requests.Triage(ctx, id, domain.TriageAction(action.String()), note)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Request %s is now %s\n", req.ID, formatter.StatusPill(req.Status))
			return nil
		},
	}

	cmd.Flags().Var(action, "action", action.usage("Triage decision"))
	cmd.Flags().StringVar(&note, "note", "", "Review note (blank keeps the current note)")
	_ = cmd.MarkFlagRequired("action")

	return cmd
}

func newRequestConvertCmd(app *App) *cobra.Command {
	var projectInput, newProject, description string

	cmd := &cobra.Command{
		Use:   "convert <request-id>",
		Short: "Turn an accepted request into a ticket",
		Long: "Turn an accepted request into a ticket on an existing project (--project)\n" +
			"or on a project created for it (--new-project). Converting twice returns\n" +
			"the ticket from the first conversion.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			reqID, err := resolveRequestID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var conv *service.Conversion
			if newProject != "" {
				conv, err = app.Conversions.ConvertToNewProject(ctx, newProject, description, reqID)
			} else {
				projectID, rerr := resolveProjectID(ctx, app, projectInput)
				if rerr != nil {
					return rerr
				}
				conv, err = app.Conversions.ConvertToTicket(ctx, projectID, reqID)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if conv.Project != nil {
				fmt.Fprintf(out, "Created project %s [%s]\n", conv.Project.Name, conv.Project.ID)
			}
			if conv.Created {
				fmt.Fprintf(out, "Created ticket %s\n", conv.Ticket.ID)
			} else {
				fmt.Fprintf(out, "Request already converted: ticket %s\n", conv.Ticket.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectInput, "project", "", "Target project ID or prefix")
	cmd.Flags().StringVar(&newProject, "new-project", "", "Name of a project to create for this request")
	cmd.Flags().StringVar(&description, "description", "", "Description for --new-project")
	cmd.MarkFlagsOneRequired("project", "new-project")
	cmd.MarkFlagsMutuallyExclusive("project", "new-project")

	return cmd
}
