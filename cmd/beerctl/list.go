package main

import (
	"github.com/urfave/cli/v2"

	"github.com/weaveworks/beerctl/pkg/catalog"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list beers in the catalog",
		UsageText: "beerctl list [--page-number 0 --page-size 25 --name <NAME> --style <STYLE> --show-inventory --output table|json|yaml --out <FILE>] \n\n" +
			"   example: beerctl list --style IPA",
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:  "page-number",
				Usage: "Zero based page to fetch.",
			},
			&cli.IntFlag{
				Name:  "page-size",
				Usage: "Number of beers per page.",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Only list beers whose name matches.",
			},
			&cli.StringFlag{
				Name:  "style",
				Usage: "Only list beers of this style, e.g. IPA.",
			},
			&cli.BoolFlag{
				Name:  "show-inventory",
				Usage: "Include the quantity on hand.",
			},
		}, outputFlags()...),
		Action: func(c *cli.Context) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			defer s.close(c)

			page, err := s.manager.ListBeers(c.Context, listOptions(c))
			if err != nil {
				return err
			}
			out, err := formatPage(page, outputFormat(c, s.config))
			if err != nil {
				return err
			}
			return writeOutput(c, out)
		},
	}
}

// listOptions only carries the flags the user set.
func listOptions(c *cli.Context) catalog.ListOptions {
	var opts catalog.ListOptions
	if c.IsSet("page-number") {
		opts.PageNumber = catalog.Int(c.Int("page-number"))
	}
	if c.IsSet("page-size") {
		opts.PageSize = catalog.Int(c.Int("page-size"))
	}
	if c.IsSet("name") {
		opts.BeerName = catalog.String(c.String("name"))
	}
	if c.IsSet("style") {
		opts.BeerStyle = catalog.String(c.String("style"))
	}
	if c.IsSet("show-inventory") {
		opts.ShowInventory = catalog.Bool(c.Bool("show-inventory"))
	}
	return opts
}
