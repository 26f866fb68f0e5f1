package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/gigshift/gigshift/internal/api"
)

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "create an account and sign in",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "account email", Required: true},
			&cli.StringFlag{Name: "password", Usage: "account password (prompted when omitted)"},
			&cli.StringFlag{Name: "name", Usage: "display name", Required: true},
			&cli.StringFlag{Name: "role", Usage: "account type (worker|venue)", Value: "worker"},
			&cli.StringFlag{Name: "phone", Usage: "contact phone number"},
			&cli.StringFlag{Name: "referral-code", Usage: "referral code from an existing member"},
		},
		Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
			password, err := passwordFrom(cmd)
			if err != nil {
				return err
			}

			resp, err := s.client().Register(ctx, api.RegisterRequest{
				Email:        cmd.String("email"),
				Password:     password,
				Name:         cmd.String("name"),
				Role:         cmd.String("role"),
				Phone:        optional(cmd, "phone"),
				ReferralCode: optional(cmd, "referral-code"),
			})
			if err != nil {
				return err
			}
			return s.out.result(resp.User, func() {
				s.out.success("Welcome to gigshift, %s.", displayName(resp.User))
			})
		}),
	}
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "sign in and store the session token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "account email", Required: true},
			&cli.StringFlag{Name: "password", Usage: "account password (prompted when omitted)"},
		},
		Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
			password, err := passwordFrom(cmd)
			if err != nil {
				return err
			}

			resp, err := s.client().Login(ctx, cmd.String("email"), password)
			if err != nil {
				return err
			}
			return s.out.result(resp.User, func() {
				s.out.success("Signed in as %s.", displayName(resp.User))
			})
		}),
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "forget the stored session token",
		Action: withSession(func(ctx context.Context, _ *cli.Command, s *session) error {
			if err := s.client().Logout(ctx); err != nil {
				return err
			}
			return s.out.result(map[string]bool{"logged_out": true}, func() {
				s.out.success("Signed out.")
			})
		}),
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the signed-in account",
		Action: withSession(func(ctx context.Context, _ *cli.Command, s *session) error {
			in, err := s.client().LoggedIn(ctx)
			if err != nil {
				return err
			}
			if !in {
				return errors.New("not signed in, run `gigshift login`")
			}

			user, err := s.client().GetProfile(ctx)
			if err != nil {
				return err
			}
			return s.out.result(user, func() {
				s.out.title(displayName(user))
				s.out.fields(
					"ID", id(user.ID),
					"Email", user.Email,
					"Role", user.Role,
					"Phone", user.Phone,
					"Rating", rating(user.Rating),
					"Verified", yesNo(user.Verified),
				)
			})
		}),
	}
}

// passwordFrom returns --password, or prompts for it. Terminal input is not echoed.
func passwordFrom(cmd *cli.Command) (string, error) {
	if cmd.IsSet("password") {
		return cmd.String("password"), nil
	}

	in := cmd.Root().Reader
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.Root().ErrWriter, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.Root().ErrWriter)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is required")
	}
	return password, nil
}

func displayName(u *api.User) string {
	switch {
	case u == nil:
		return "your account"
	case u.Name != "":
		return u.Name
	case u.Email != "":
		return u.Email
	default:
		return "user " + id(u.ID)
	}
}

func rating(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f / 5", v)
}
