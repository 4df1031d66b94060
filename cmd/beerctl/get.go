package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func getCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "get a beer by id",
		UsageText: "beerctl get [--show-inventory --output table|json|yaml --out <FILE>] <ID> \n\n" +
			"   example: beerctl get 0a818933-087d-47f2-ad83-2f986ed087eb",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "show-inventory",
				Usage: "Include the quantity on hand.",
			},
		}, outputFlags()...),
		Action: func(c *cli.Context) error {
			id, err := parseID(c)
			if err != nil {
				_ = cli.ShowCommandHelp(c, "get")
				return err
			}
			s, err := newSession(c)
			if err != nil {
				return err
			}
			defer s.close(c)

			beer, err := s.manager.GetBeerByID(c.Context, id, c.Bool("show-inventory"))
			if err != nil {
				return err
			}
			out, err := formatBeer(beer, outputFormat(c, s.config))
			if err != nil {
				return err
			}
			return writeOutput(c, out)
		},
	}
}

func upcCmd() *cli.Command {
	return &cli.Command{
		Name:  "upc",
		Usage: "get a beer by upc",
		UsageText: "beerctl upc [--output table|json|yaml --out <FILE>] <UPC> \n\n" +
			"   example: beerctl upc 0631234200036",
		Flags: outputFlags(),
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 1 {
				_ = cli.ShowCommandHelp(c, "upc")
				return fmt.Errorf("upc must be provided")
			}
			s, err := newSession(c)
			if err != nil {
				return err
			}
			defer s.close(c)

			beer, err := s.manager.GetBeerByUPC(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			out, err := formatBeer(beer, outputFormat(c, s.config))
			if err != nil {
				return err
			}
			return writeOutput(c, out)
		},
	}
}

func parseID(c *cli.Context) (uuid.UUID, error) {
	if c.Args().Len() < 1 {
		return uuid.Nil, fmt.Errorf("beer id must be provided")
	}
	id, err := uuid.Parse(c.Args().First())
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid beer id %q: %w", c.Args().First(), err)
	}
	return id, nil
}
