package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gigshift/gigshift/internal/api"
)

func applicationsCommand() *cli.Command {
	return &cli.Command{
		Name:    "applications",
		Aliases: []string{"apps"},
		Usage:   "manage shift applications",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list your applications, or a shift's applicants with --shift",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Usage: "filter by status, e.g. pending"},
					&cli.Int64Flag{Name: "shift", Usage: "list applicants for this shift (venues)"},
				},
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					var (
						apps []api.Application
						err  error
					)
					if cmd.IsSet("shift") {
						apps, err = s.client().GetShiftApplications(ctx, cmd.Int64("shift"))
					} else {
						apps, err = s.client().GetMyApplications(ctx, cmd.String("status"))
					}
					if err != nil {
						return err
					}
					return s.out.result(apps, func() {
						s.out.table("No applications.", applicationHeaders, applicationRows(apps))
					})
				}),
			},
			applicationDecision("accept", "accept an applicant (venues)", "Accepted",
				func(ctx context.Context, c *api.Client, id int64, _ *cli.Command) (*api.Application, error) {
					return c.AcceptApplication(ctx, id)
				}),
			applicationDecision("reject", "reject an applicant (venues)", "Rejected",
				func(ctx context.Context, c *api.Client, id int64, cmd *cli.Command) (*api.Application, error) {
					return c.RejectApplication(ctx, id, optional(cmd, "reason"))
				},
				&cli.StringFlag{Name: "reason", Usage: "reason shown to the applicant"}),
			applicationDecision("withdraw", "withdraw your application", "Withdrew",
				func(ctx context.Context, c *api.Client, id int64, _ *cli.Command) (*api.Application, error) {
					return c.WithdrawApplication(ctx, id)
				}),
		},
	}
}

type decisionFunc func(ctx context.Context, c *api.Client, applicationID int64, cmd *cli.Command) (*api.Application, error)

func applicationDecision(name, usage, verb string, do decisionFunc, flags ...cli.Flag) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "APPLICATION_ID",
		Flags:     flags,
		Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
			applicationID, err := argID(cmd, 0, "application ID")
			if err != nil {
				return err
			}
			application, err := do(ctx, s.client(), applicationID, cmd)
			if err != nil {
				return err
			}
			return s.out.result(application, func() {
				s.out.success("%s application %d (now %s).", verb, application.ID, application.Status)
			})
		}),
	}
}
