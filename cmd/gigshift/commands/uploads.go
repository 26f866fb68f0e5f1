package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/gigshift/gigshift/internal/api"
)

func uploadCommand() *cli.Command {
	return &cli.Command{
		Name:  "upload",
		Usage: "upload profile documents",
		Commands: []*cli.Command{
			uploadFileCommand("cv", "upload your CV", nil,
				func(ctx context.Context, c *api.Client, f *api.File, _ *cli.Command) (*api.UploadResult, error) {
					return c.UploadCV(ctx, f)
				}),
			uploadFileCommand("photo", "upload a profile photo", nil,
				func(ctx context.Context, c *api.Client, f *api.File, _ *cli.Command) (*api.UploadResult, error) {
					return c.UploadProfilePhoto(ctx, f)
				}),
			uploadFileCommand("verification", "upload an identity or right-to-work document",
				[]cli.Flag{&cli.StringFlag{Name: "type", Usage: "document type, e.g. passport", Required: true}},
				func(ctx context.Context, c *api.Client, f *api.File, cmd *cli.Command) (*api.UploadResult, error) {
					return c.UploadVerificationDocument(ctx, f, cmd.String("type"))
				}),
		},
	}
}

type uploadFunc func(ctx context.Context, c *api.Client, f *api.File, cmd *cli.Command) (*api.UploadResult, error)

func uploadFileCommand(name, usage string, flags []cli.Flag, do uploadFunc) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "FILE",
		Flags:     flags,
		Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
			f, err := fileArg(cmd, 0)
			if err != nil {
				return err
			}
			res, err := do(ctx, s.client(), f, cmd)
			if err != nil {
				return err
			}
			return s.out.result(res, func() {
				s.out.success("Uploaded %s.", f.Name)
				s.out.fields("URL", res.URL, "Status", res.Status)
			})
		}),
	}
}

func fileArg(cmd *cli.Command, i int) (*api.File, error) {
	path := cmd.Args().Get(i)
	if path == "" {
		return nil, errors.New("missing file argument")
	}
	f, err := api.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return f, nil
}
