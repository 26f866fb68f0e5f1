package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gigshift/gigshift/internal/api"
)

func chatCommand() *cli.Command {
	return &cli.Command{
		Name:  "chat",
		Usage: "shift chat threads",
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "show a shift's messages",
				ArgsUsage: "SHIFT_ID",
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					shiftID, err := argID(cmd, 0, "shift ID")
					if err != nil {
						return err
					}
					messages, err := s.client().GetChatMessages(ctx, shiftID)
					if err != nil {
						return err
					}
					return s.out.result(messages, func() {
						rows := make([][]string, 0, len(messages))
						for _, m := range messages {
							from := m.SenderName
							if from == "" {
								from = id(m.SenderID)
							}
							rows = append(rows, []string{when(m.SentAt), from, m.Text})
						}
						s.out.table("No messages yet.", []string{"Sent", "From", "Message"}, rows)
					})
				}),
			},
			{
				Name:      "send",
				Usage:     "post a message to a shift thread",
				ArgsUsage: "SHIFT_ID TEXT...",
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					shiftID, err := argID(cmd, 0, "shift ID")
					if err != nil {
						return err
					}
					text := strings.TrimSpace(strings.Join(cmd.Args().Tail(), " "))
					if text == "" {
						return errors.New("message text is required")
					}
					msg, err := s.client().SendChatMessage(ctx, shiftID, text)
					if err != nil {
						return err
					}
					return s.out.result(msg, func() {
						s.out.success("Sent.")
					})
				}),
			},
		},
	}
}

func notificationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "notifications",
		Usage: "your notifications",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list notifications",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "unread", Usage: "only unread notifications"},
				},
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					notes, err := s.client().GetNotifications(ctx, cmd.Bool("unread"))
					if err != nil {
						return err
					}
					return s.out.result(notes, func() {
						s.out.table("You're all caught up.", notificationHeaders, notificationRows(notes))
					})
				}),
			},
			{
				Name:      "read",
				Usage:     "mark a notification, or all with --all, as read",
				ArgsUsage: "[NOTIFICATION_ID]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "all", Usage: "mark every notification as read"},
				},
				Action: withSession(markReadAction),
			},
		},
	}
}

func markReadAction(ctx context.Context, cmd *cli.Command, s *session) error {
	if cmd.Bool("all") {
		if cmd.Args().Present() {
			return errors.New("give a notification ID or --all, not both")
		}
		if err := s.client().MarkAllNotificationsRead(ctx); err != nil {
			return err
		}
		return s.out.result(map[string]bool{"all_read": true}, func() {
			s.out.success("All notifications marked as read.")
		})
	}

	notificationID, err := argID(cmd, 0, "notification ID")
	if err != nil {
		return err
	}
	if err := s.client().MarkNotificationRead(ctx, notificationID); err != nil {
		return err
	}
	return s.out.result(map[string]int64{"read": notificationID}, func() {
		s.out.success("Notification %d marked as read.", notificationID)
	})
}

// unread filters notifications the server returned as unread.
func unread(notes []api.Notification) []api.Notification {
	out := make([]api.Notification, 0, len(notes))
	for _, n := range notes {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}
