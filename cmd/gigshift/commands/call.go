package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gigshift/gigshift/internal/api"
)

func callCommand() *cli.Command {
	return &cli.Command{
		Name:      "call",
		Usage:     "invoke any endpoint by name and print the raw response",
		ArgsUsage: "ENDPOINT",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "param", Aliases: []string{"p"}, Usage: "path or query variable as key=value, repeatable"},
			&cli.StringFlag{Name: "data", Aliases: []string{"d"}, Usage: "JSON request body"},
			&cli.StringFlag{Name: "file", Usage: "file to upload (upload endpoints)"},
			&cli.StringSliceFlag{Name: "field", Usage: "multipart text field as key=value, repeatable"},
		},
		Action: withSession(callAction),
	}
}

func callAction(ctx context.Context, cmd *cli.Command, s *session) error {
	name := cmd.Args().First()
	ep, ok := api.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown endpoint %q, see `gigshift endpoints`", name)
	}

	params, err := keyValues(cmd.StringSlice("param"))
	if err != nil {
		return err
	}
	req := api.Request{Params: params}

	if data := cmd.String("data"); data != "" {
		if !json.Valid([]byte(data)) {
			return fmt.Errorf("--data is not valid JSON")
		}
		req.Body = json.RawMessage(data)
	}

	if ep.Multipart() {
		path := cmd.String("file")
		if path == "" {
			return fmt.Errorf("%s uploads a file, pass --file", ep.Name)
		}
		if req.File, err = api.LoadFile(path); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if req.Fields, err = keyValues(cmd.StringSlice("field")); err != nil {
			return err
		}
	}

	raw, err := s.client().Invoke(ctx, ep, req)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	_, err = fmt.Fprintln(s.out.w, string(raw))
	return err
}

func keyValues(pairs []string) (map[string]string, error) {
	m := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid key=value %q", pair)
		}
		m[k] = v
	}
	return m, nil
}

func endpointsCommand() *cli.Command {
	return &cli.Command{
		Name:  "endpoints",
		Usage: "list the endpoints `gigshift call` can invoke",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print as JSON"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			eps := api.Endpoints()
			out := &printer{w: cmd.Root().Writer, format: "text"}
			if cmd.Bool("json") || cmd.String("output") == "json" {
				out.format = "json"
			}

			return out.result(eps, func() {
				rows := make([][]string, 0, len(eps))
				for _, ep := range eps {
					codes := make([]string, len(ep.Success))
					for i, c := range ep.Success {
						codes[i] = strconv.Itoa(c)
					}
					payload := ep.PayloadKey
					if ep.Multipart() {
						payload = "upload:" + ep.FileField
					}
					rows = append(rows, []string{ep.Name, ep.Method, ep.Path, yesNo(ep.Auth), strings.Join(codes, ","), payload})
				}
				out.table("", []string{"Name", "Method", "Path", "Auth", "Success", "Payload"}, rows)
			})
		},
	}
}
