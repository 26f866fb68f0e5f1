package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func dashboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "profile, upcoming shifts, applications and unread notifications at a glance",
		Action: withSession(func(ctx context.Context, _ *cli.Command, s *session) error {
			d, err := s.app.Dashboard(ctx)
			if err != nil {
				return err
			}
			d.Notifications = unread(d.Notifications)

			return s.out.result(d, func() {
				s.out.title(fmt.Sprintf("Hi, %s", displayName(d.Profile)))
				s.out.fields("Rating", rating(d.Profile.Rating), "Role", d.Profile.Role)
				fmt.Fprintln(s.out.w)

				s.out.title(fmt.Sprintf("Upcoming shifts (%d)", len(d.Upcoming)))
				s.out.table("Nothing booked. Try `gigshift shifts search`.", shiftHeaders, shiftRows(d.Upcoming))

				s.out.title(fmt.Sprintf("Pending applications (%d)", len(d.Applications)))
				s.out.table("No pending applications.", applicationHeaders, applicationRows(d.Applications))

				s.out.title(fmt.Sprintf("Unread notifications (%d)", len(d.Notifications)))
				s.out.table("You're all caught up.", notificationHeaders, notificationRows(d.Notifications))
			})
		}),
	}
}
