package main

import (
	"github.com/urfave/cli/v2"
)

func updateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "replace a beer in the catalog",
		UsageText: "beerctl update --name <NAME> --style <STYLE> --upc <UPC> --price <PRICE> <ID> \n\n" +
			"   example: beerctl update --name \"Mango Bobs\" --style ALE --upc 0631234200036 --price 13.50 0a818933-087d-47f2-ad83-2f986ed087eb",
		Flags: beerFlags(),
		Action: func(c *cli.Context) error {
			id, err := parseID(c)
			if err != nil {
				_ = cli.ShowCommandHelp(c, "update")
				return err
			}
			beer, err := beerFromFlags(c)
			if err != nil {
				return err
			}
			s, err := newSession(c)
			if err != nil {
				return err
			}
			defer s.close(c)

			s.logger.Actionf("updating beer %s", id)
			if _, err := s.manager.UpdateBeer(c.Context, id, beer); err != nil {
				return err
			}
			s.logger.Successf("updated beer %s", id)
			return nil
		},
	}
}
