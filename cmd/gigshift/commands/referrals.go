package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v3"
)

func referralsCommand() *cli.Command {
	return &cli.Command{
		Name:  "referrals",
		Usage: "invite friends and redeem codes",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "people you referred",
				Action: withSession(func(ctx context.Context, _ *cli.Command, s *session) error {
					referrals, err := s.client().GetReferrals(ctx)
					if err != nil {
						return err
					}
					return s.out.result(referrals, func() {
						rows := make([][]string, 0, len(referrals))
						for _, r := range referrals {
							reward := ""
							if r.RewardAmount > 0 {
								reward = fmt.Sprintf("%.2f", r.RewardAmount)
							}
							rows = append(rows, []string{r.ReferredName, r.Status, reward, when(r.CreatedAt)})
						}
						s.out.table("No referrals yet. Share your code with `gigshift referrals code`.",
							[]string{"Name", "Status", "Reward", "Joined"}, rows)
					})
				}),
			},
			{
				Name:  "code",
				Usage: "show your referral code",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "copy", Usage: "copy the invite link to the clipboard"},
				},
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					code, err := s.client().GetReferralCode(ctx)
					if err != nil {
						return err
					}

					copied := false
					if cmd.Bool("copy") {
						link := code.URL
						if link == "" {
							link = code.Code
						}
						if err := clipboard.WriteAll(link); err != nil {
							return fmt.Errorf("copying to clipboard: %w", err)
						}
						copied = true
					}

					return s.out.result(code, func() {
						s.out.title(code.Code)
						uses := ""
						if code.Uses > 0 {
							uses = fmt.Sprint(code.Uses)
						}
						s.out.fields("Link", code.URL, "Used", uses)
						if copied {
							s.out.success("Copied to clipboard.")
						}
					})
				}),
			},
			{
				Name:      "redeem",
				Usage:     "redeem a referral code",
				ArgsUsage: "CODE",
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					code := strings.TrimSpace(cmd.Args().First())
					if code == "" {
						return errors.New("missing referral code")
					}
					referral, err := s.client().RedeemReferralCode(ctx, code)
					if err != nil {
						return err
					}
					return s.out.result(referral, func() {
						s.out.success("Code %s redeemed (%s).", code, referral.Status)
					})
				}),
			},
		},
	}
}
