package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/weaveworks/beerctl/pkg/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "print the beerctl version",
		UsageText: "beerctl version [--short | --output json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "short",
				Usage: "Print only major.minor.patch.",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format. text|json",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("short") {
				v, err := version.ParseVersion(version.GetVersion())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(c.App.Writer, "%d.%d.%d\n", v.Major(), v.Minor(), v.Patch())
				return err
			}
			if c.String("output") == "json" {
				_, err := fmt.Fprintln(c.App.Writer, version.String())
				return err
			}
			_, err := fmt.Fprintf(c.App.Writer, "beerctl version %s\n", version.GetVersion())
			return err
		},
	}
}
