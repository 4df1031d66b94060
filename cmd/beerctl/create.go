package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/weaveworks/beerctl/pkg/catalog"
)

func beerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "The name of the beer.",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "style",
			Usage:    "The style of the beer, e.g. IPA.",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "upc",
			Usage:    "The universal product code of the beer.",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "price",
			Usage:    "The price of the beer, e.g. 12.95.",
			Required: true,
		},
	}
}

func beerFromFlags(c *cli.Context) (catalog.Beer, error) {
	price, err := decimal.NewFromString(c.String("price"))
	if err != nil {
		return catalog.Beer{}, fmt.Errorf("invalid price %q: %w", c.String("price"), err)
	}
	return catalog.Beer{
		BeerName:  c.String("name"),
		BeerStyle: c.String("style"),
		UPC:       c.String("upc"),
		Price:     price,
	}, nil
}

func createCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "add a beer to the catalog",
		UsageText: "beerctl create --name <NAME> --style <STYLE> --upc <UPC> --price <PRICE> \n\n" +
			"   example: beerctl create --name \"Mango Bobs\" --style ALE --upc 0631234200036 --price 12.95",
		Flags: beerFlags(),
		Action: func(c *cli.Context) error {
			beer, err := beerFromFlags(c)
			if err != nil {
				return err
			}
			s, err := newSession(c)
			if err != nil {
				return err
			}
			defer s.close(c)

			s.logger.Actionf("creating beer %q", beer.BeerName)
			ack, err := s.manager.CreateBeer(c.Context, beer)
			if err != nil {
				return err
			}
			s.logger.Successf("created beer %q", beer.BeerName)
			if ack.Location != "" {
				return writeOutput(c, ack.Location)
			}
			return nil
		},
	}
}
