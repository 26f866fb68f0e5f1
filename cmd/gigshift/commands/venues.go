package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/gigshift/gigshift/internal/api"
)

func venuesCommand() *cli.Command {
	return &cli.Command{
		Name:  "venues",
		Usage: "venues you manage",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list venues",
				Action: withSession(func(ctx context.Context, _ *cli.Command, s *session) error {
					venues, err := s.client().GetVenues(ctx)
					if err != nil {
						return err
					}
					return s.out.result(venues, func() {
						rows := make([][]string, 0, len(venues))
						for _, v := range venues {
							rows = append(rows, []string{id(v.ID), v.Name, v.Address, v.City})
						}
						s.out.table("No venues.", []string{"ID", "Name", "Address", "City"}, rows)
					})
				}),
			},
			{
				Name:  "create",
				Usage: "register a venue",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "venue name", Required: true},
					&cli.StringFlag{Name: "address", Usage: "street address", Required: true},
					&cli.StringFlag{Name: "city", Usage: "city"},
					&cli.StringFlag{Name: "description", Usage: "short description"},
				},
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					venue, err := s.client().CreateVenue(ctx, api.VenueInput{
						Name:        cmd.String("name"),
						Address:     cmd.String("address"),
						City:        optional(cmd, "city"),
						Description: optional(cmd, "description"),
					})
					if err != nil {
						return err
					}
					return s.out.result(venue, func() {
						s.out.success("Created venue %d (%s).", venue.ID, venue.Name)
					})
				}),
			},
			{
				Name:      "team",
				Usage:     "list a venue's team",
				ArgsUsage: "VENUE_ID",
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					venueID, err := argID(cmd, 0, "venue ID")
					if err != nil {
						return err
					}
					members, err := s.client().GetTeamMembers(ctx, venueID)
					if err != nil {
						return err
					}
					return s.out.result(members, func() {
						rows := make([][]string, 0, len(members))
						for _, m := range members {
							rows = append(rows, []string{id(m.UserID), m.Name, m.Email, m.Role})
						}
						s.out.table("No team members.", []string{"User", "Name", "Email", "Role"}, rows)
					})
				}),
			},
			{
				Name:      "add-member",
				Usage:     "invite someone to a venue's team",
				ArgsUsage: "VENUE_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "member email", Required: true},
					&cli.StringFlag{Name: "role", Usage: "team role, e.g. manager"},
				},
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					venueID, err := argID(cmd, 0, "venue ID")
					if err != nil {
						return err
					}
					member, err := s.client().AddTeamMember(ctx, venueID, api.TeamMemberInput{
						Email: cmd.String("email"),
						Role:  optional(cmd, "role"),
					})
					if err != nil {
						return err
					}
					return s.out.result(member, func() {
						s.out.success("Added %s to venue %d.", member.Email, venueID)
					})
				}),
			},
			{
				Name:      "remove-member",
				Usage:     "remove someone from a venue's team",
				ArgsUsage: "VENUE_ID USER_ID",
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					venueID, err := argID(cmd, 0, "venue ID")
					if err != nil {
						return err
					}
					userID, err := argID(cmd, 1, "user ID")
					if err != nil {
						return err
					}
					if err := s.client().RemoveTeamMember(ctx, venueID, userID); err != nil {
						return err
					}
					return s.out.result(map[string]int64{"removed": userID}, func() {
						s.out.success("Removed user %d from venue %d.", userID, venueID)
					})
				}),
			},
		},
	}
}

func ratingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "ratings",
		Usage: "ratings after completed shifts",
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "show a user's ratings",
				ArgsUsage: "USER_ID",
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					userID, err := argID(cmd, 0, "user ID")
					if err != nil {
						return err
					}
					ratings, err := s.client().GetUserRatings(ctx, userID)
					if err != nil {
						return err
					}
					return s.out.result(ratings, func() {
						rows := make([][]string, 0, len(ratings))
						for _, r := range ratings {
							rows = append(rows, []string{id(r.ShiftID), fmt.Sprintf("%d/5", r.Score), truncate(r.Comment, 60), when(r.CreatedAt)})
						}
						s.out.table("No ratings yet.", []string{"Shift", "Score", "Comment", "Date"}, rows)
					})
				}),
			},
			{
				Name:  "submit",
				Usage: "rate the other side of a completed shift",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "shift", Usage: "shift ID", Required: true},
					&cli.Int64Flag{Name: "user", Usage: "user being rated", Required: true},
					&cli.IntFlag{Name: "score", Usage: "1 to 5", Required: true},
					&cli.StringFlag{Name: "comment", Usage: "optional comment"},
				},
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					r, err := s.client().SubmitRating(ctx, api.RatingInput{
						ShiftID: cmd.Int64("shift"),
						RateeID: cmd.Int64("user"),
						Score:   cmd.Int("score"),
						Comment: optional(cmd, "comment"),
					})
					if err != nil {
						return err
					}
					return s.out.result(r, func() {
						s.out.success("Rating submitted.")
					})
				}),
			},
		},
	}
}

func disputesCommand() *cli.Command {
	return &cli.Command{
		Name:  "disputes",
		Usage: "contest hours, pay or conduct on a shift",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list your disputes",
				Action: withSession(func(ctx context.Context, _ *cli.Command, s *session) error {
					disputes, err := s.client().GetDisputes(ctx)
					if err != nil {
						return err
					}
					return s.out.result(disputes, func() {
						rows := make([][]string, 0, len(disputes))
						for _, d := range disputes {
							rows = append(rows, []string{id(d.ID), id(d.ShiftID), d.Reason, d.Status, when(d.CreatedAt)})
						}
						s.out.table("No disputes.", []string{"ID", "Shift", "Reason", "Status", "Opened"}, rows)
					})
				}),
			},
			{
				Name:  "open",
				Usage: "open a dispute",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "shift", Usage: "shift ID", Required: true},
					&cli.StringFlag{Name: "reason", Usage: "short reason, e.g. unpaid_hours", Required: true},
					&cli.StringFlag{Name: "description", Usage: "what happened"},
				},
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					d, err := s.client().CreateDispute(ctx, api.DisputeInput{
						ShiftID:     cmd.Int64("shift"),
						Reason:      cmd.String("reason"),
						Description: optional(cmd, "description"),
					})
					if err != nil {
						return err
					}
					return s.out.result(d, func() {
						s.out.success("Opened dispute %d.", d.ID)
					})
				}),
			},
			{
				Name:      "evidence",
				Usage:     "attach a file to a dispute",
				ArgsUsage: "DISPUTE_ID FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "description", Usage: "what the file shows"},
				},
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					disputeID, err := argID(cmd, 0, "dispute ID")
					if err != nil {
						return err
					}
					f, err := fileArg(cmd, 1)
					if err != nil {
						return err
					}
					res, err := s.client().UploadDisputeEvidence(ctx, disputeID, f, cmd.String("description"))
					if err != nil {
						return err
					}
					return s.out.result(res, func() {
						s.out.success("Attached %s to dispute %d.", f.Name, disputeID)
					})
				}),
			},
		},
	}
}
