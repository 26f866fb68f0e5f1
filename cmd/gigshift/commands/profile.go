package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime/types"
	"github.com/urfave/cli/v3"

	"github.com/gigshift/gigshift/internal/api"
)

func profileCommand() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "view and edit profiles",
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "show a user's public profile",
				ArgsUsage: "USER_ID",
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					userID, err := argID(cmd, 0, "user ID")
					if err != nil {
						return err
					}
					user, err := s.client().GetUser(ctx, userID)
					if err != nil {
						return err
					}
					return s.out.result(user, func() {
						s.out.title(displayName(user))
						s.out.fields("Role", user.Role, "Rating", rating(user.Rating), "Verified", yesNo(user.Verified), "Bio", user.Bio)
					})
				}),
			},
			{
				Name:  "update",
				Usage: "change your profile",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "display name"},
					&cli.StringFlag{Name: "phone", Usage: "contact phone number"},
					&cli.StringFlag{Name: "bio", Usage: "short bio"},
					&cli.StringSliceFlag{Name: "skill", Usage: "skill, repeatable"},
				},
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					update := api.ProfileUpdate{
						Name:   optional(cmd, "name"),
						Phone:  optional(cmd, "phone"),
						Bio:    optional(cmd, "bio"),
						Skills: cmd.StringSlice("skill"),
					}
					if update.Name == nil && update.Phone == nil && update.Bio == nil && len(update.Skills) == 0 {
						return errors.New("nothing to update")
					}
					user, err := s.client().UpdateProfile(ctx, update)
					if err != nil {
						return err
					}
					return s.out.result(user, func() {
						s.out.success("Profile updated.")
					})
				}),
			},
		},
	}
}

func matchesCommand() *cli.Command {
	return &cli.Command{
		Name:  "matches",
		Usage: "shifts recommended for you",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Usage: "maximum number of matches"},
		},
		Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
			matches, err := s.client().GetMatches(ctx, cmd.Int("limit"))
			if err != nil {
				return err
			}
			return s.out.result(matches, func() {
				rows := make([][]string, 0, len(matches))
				for _, m := range matches {
					row := shiftRows([]api.Shift{m.Shift})[0]
					rows = append(rows, append(row, strings.Join(m.Reasons, ", ")))
				}
				s.out.table("No matches right now.", append(append([]string{}, shiftHeaders...), "Why"), rows)
			})
		}),
	}
}

func availabilityCommand() *cli.Command {
	return &cli.Command{
		Name:  "availability",
		Usage: "when you can work",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "show your availability",
				Action: withSession(availabilityShowAction),
			},
			{
				Name:      "set",
				Usage:     "replace your availability",
				ArgsUsage: "DATE[@HH:MM-HH:MM]...",
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					slots := make([]api.AvailabilitySlot, 0, cmd.NArg())
					for _, arg := range cmd.Args().Slice() {
						slot, err := parseSlot(arg)
						if err != nil {
							return err
						}
						slots = append(slots, slot)
					}
					saved, err := s.client().SetAvailability(ctx, slots)
					if err != nil {
						return err
					}
					return s.out.result(saved, func() { printAvailability(s.out, saved) })
				}),
			},
		},
	}
}

func availabilityShowAction(ctx context.Context, _ *cli.Command, s *session) error {
	slots, err := s.client().GetAvailability(ctx)
	if err != nil {
		return err
	}
	return s.out.result(slots, func() { printAvailability(s.out, slots) })
}

func printAvailability(p *printer, slots []api.AvailabilitySlot) {
	rows := make([][]string, 0, len(slots))
	for _, sl := range slots {
		window := "all day"
		if sl.Start != "" || sl.End != "" {
			window = sl.Start + "-" + sl.End
		}
		rows = append(rows, []string{sl.Date.Format("Mon 02 Jan 2006"), window, yesNo(sl.Available)})
	}
	p.table("No availability set.", []string{"Date", "Hours", "Available"}, rows)
}

// parseSlot reads "2026-11-06" or "2026-11-06@18:00-23:00".
func parseSlot(arg string) (api.AvailabilitySlot, error) {
	day, window, hasWindow := strings.Cut(arg, "@")
	t, err := time.Parse(types.DateFormat, day)
	if err != nil {
		return api.AvailabilitySlot{}, errors.New("invalid date " + day + ": want YYYY-MM-DD")
	}

	slot := api.AvailabilitySlot{Date: types.Date{Time: t}, Available: true}
	if hasWindow {
		start, end, ok := strings.Cut(window, "-")
		if !ok {
			return api.AvailabilitySlot{}, errors.New("invalid window " + window + ": want HH:MM-HH:MM")
		}
		slot.Start, slot.End = start, end
	}
	return slot, nil
}
