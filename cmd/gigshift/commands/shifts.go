package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/oapi-codegen/runtime/types"
	"github.com/urfave/cli/v3"

	"github.com/gigshift/gigshift/internal/api"
)

func shiftsCommand() *cli.Command {
	return &cli.Command{
		Name:  "shifts",
		Usage: "find, post and work shifts",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "search open shifts",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "role", Usage: "role, e.g. bartender"},
					&cli.FloatFlag{Name: "min-rate", Usage: "minimum hourly rate"},
					&cli.FloatFlag{Name: "max-rate", Usage: "maximum hourly rate"},
					&cli.StringFlag{Name: "start-date", Usage: "earliest date (YYYY-MM-DD)"},
					&cli.StringFlag{Name: "end-date", Usage: "latest date (YYYY-MM-DD)"},
					&cli.StringFlag{Name: "location", Usage: "area or city"},
					&cli.Int64Flag{Name: "venue", Usage: "venue ID"},
				},
				Action: withSession(searchShiftsAction),
			},
			{
				Name:      "show",
				Usage:     "show a shift",
				ArgsUsage: "SHIFT_ID",
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					shiftID, err := argID(cmd, 0, "shift ID")
					if err != nil {
						return err
					}
					shift, err := s.client().GetShift(ctx, shiftID)
					if err != nil {
						return err
					}
					return s.out.result(shift, func() { printShift(s.out, shift) })
				}),
			},
			{
				Name:  "mine",
				Usage: "list your shifts",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Usage: "filter by status, e.g. upcoming or completed"},
				},
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					shifts, err := s.client().GetMyShifts(ctx, cmd.String("status"))
					if err != nil {
						return err
					}
					return s.out.result(shifts, func() {
						s.out.table("You have no shifts.", shiftHeaders, shiftRows(shifts))
					})
				}),
			},
			{
				Name:      "venue",
				Usage:     "list a venue's shifts",
				ArgsUsage: "VENUE_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Usage: "filter by status"},
				},
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					venueID, err := argID(cmd, 0, "venue ID")
					if err != nil {
						return err
					}
					shifts, err := s.client().GetVenueShifts(ctx, venueID, cmd.String("status"))
					if err != nil {
						return err
					}
					return s.out.result(shifts, func() {
						s.out.table("This venue has no shifts.", shiftHeaders, shiftRows(shifts))
					})
				}),
			},
			{
				Name:      "apply",
				Usage:     "apply for a shift",
				ArgsUsage: "SHIFT_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "note", Usage: "message to the venue"},
				},
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					shiftID, err := argID(cmd, 0, "shift ID")
					if err != nil {
						return err
					}
					application, err := s.client().ApplyToShift(ctx, shiftID, optional(cmd, "note"))
					if err != nil {
						return err
					}
					return s.out.result(application, func() {
						s.out.success("Applied for shift %d (application %d, %s).", shiftID, application.ID, application.Status)
					})
				}),
			},
			attendanceCommand("checkin", "check in to a shift", (*api.Client).CheckIn),
			attendanceCommand("checkout", "check out of a shift", (*api.Client).CheckOut),
			{
				Name:  "create",
				Usage: "post a new shift (venues)",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "venue", Usage: "venue ID", Required: true},
					&cli.StringFlag{Name: "role", Usage: "role to fill", Required: true},
					&cli.FloatFlag{Name: "rate", Usage: "hourly rate", Required: true},
					&cli.TimestampFlag{
						Name: "start", Usage: "start time (RFC 3339)", Required: true,
						Config: cli.TimestampConfig{Layouts: []string{time.RFC3339, "2006-01-02T15:04"}},
					},
					&cli.TimestampFlag{
						Name: "end", Usage: "end time (RFC 3339)", Required: true,
						Config: cli.TimestampConfig{Layouts: []string{time.RFC3339, "2006-01-02T15:04"}},
					},
					&cli.StringFlag{Name: "location", Usage: "where to report"},
					&cli.StringFlag{Name: "description", Usage: "details for workers"},
					&cli.IntFlag{Name: "positions", Usage: "number of workers needed"},
				},
				Action: withSession(createShiftAction),
			},
			{
				Name:      "cancel",
				Usage:     "cancel a posted shift (venues)",
				ArgsUsage: "SHIFT_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "reason", Usage: "reason shown to applicants"},
				},
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					shiftID, err := argID(cmd, 0, "shift ID")
					if err != nil {
						return err
					}
					shift, err := s.client().CancelShift(ctx, shiftID, optional(cmd, "reason"))
					if err != nil {
						return err
					}
					return s.out.result(shift, func() {
						s.out.success("Shift %d cancelled.", shift.ID)
					})
				}),
			},
		},
	}
}

func searchShiftsAction(ctx context.Context, cmd *cli.Command, s *session) error {
	params := api.SearchShiftsParams{
		Role:     cmd.String("role"),
		Location: cmd.String("location"),
		VenueID:  cmd.Int64("venue"),
	}
	if cmd.IsSet("min-rate") {
		v := cmd.Float("min-rate")
		params.MinRate = &v
	}
	if cmd.IsSet("max-rate") {
		v := cmd.Float("max-rate")
		params.MaxRate = &v
	}

	var err error
	if params.StartDate, err = dateFlag(cmd, "start-date"); err != nil {
		return err
	}
	if params.EndDate, err = dateFlag(cmd, "end-date"); err != nil {
		return err
	}

	shifts, err := s.client().SearchShifts(ctx, params)
	if err != nil {
		return err
	}
	return s.out.result(shifts, func() {
		s.out.table("No shifts match your search.", shiftHeaders, shiftRows(shifts))
	})
}

func createShiftAction(ctx context.Context, cmd *cli.Command, s *session) error {
	in := api.ShiftInput{
		VenueID:     cmd.Int64("venue"),
		Role:        cmd.String("role"),
		HourlyRate:  cmd.Float("rate"),
		StartTime:   cmd.Timestamp("start"),
		EndTime:     cmd.Timestamp("end"),
		Location:    optional(cmd, "location"),
		Description: optional(cmd, "description"),
	}
	if cmd.IsSet("positions") {
		n := cmd.Int("positions")
		in.Positions = &n
	}

	shift, err := s.client().CreateShift(ctx, in)
	if err != nil {
		return err
	}
	return s.out.result(shift, func() {
		s.out.success("Posted shift %d.", shift.ID)
		printShift(s.out, shift)
	})
}

type attendanceFunc func(c *api.Client, ctx context.Context, shiftID int64, loc *api.Location) (*api.Attendance, error)

func attendanceCommand(name, usage string, do attendanceFunc) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "SHIFT_ID",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "lat", Usage: "current latitude"},
			&cli.FloatFlag{Name: "lng", Usage: "current longitude"},
		},
		Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
			shiftID, err := argID(cmd, 0, "shift ID")
			if err != nil {
				return err
			}

			var loc *api.Location
			if cmd.IsSet("lat") || cmd.IsSet("lng") {
				if !cmd.IsSet("lat") || !cmd.IsSet("lng") {
					return fmt.Errorf("--lat and --lng must be given together")
				}
				loc = &api.Location{Latitude: cmd.Float("lat"), Longitude: cmd.Float("lng")}
			}

			att, err := do(s.client(), ctx, shiftID, loc)
			if err != nil {
				return err
			}
			return s.out.result(att, func() {
				s.out.success("Shift %d: %s.", att.ShiftID, att.Status)
				s.out.fields(
					"Checked in", when(att.CheckedInAt),
					"Checked out", when(att.CheckedOutAt),
					"Hours", hours(att.HoursWorked),
				)
			})
		}),
	}
}

func printShift(p *printer, shift *api.Shift) {
	p.title(fmt.Sprintf("%s #%d", shift.Role, shift.ID))
	filled := ""
	if shift.Positions > 0 {
		filled = fmt.Sprintf("%d of %d", shift.FilledPositions, shift.Positions)
	}
	p.fields(
		"Venue", shift.VenueName,
		"When", span(shift.StartTime, shift.EndTime),
		"Rate", money(shift.HourlyRate),
		"Location", shift.Location,
		"Status", shift.Status,
		"Filled", filled,
		"Details", shift.Description,
	)
}

func dateFlag(cmd *cli.Command, name string) (*types.Date, error) {
	if !cmd.IsSet(name) {
		return nil, nil
	}
	t, err := time.Parse(types.DateFormat, cmd.String(name))
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: want YYYY-MM-DD", name)
	}
	return &types.Date{Time: t}, nil
}

func hours(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", v)
}
