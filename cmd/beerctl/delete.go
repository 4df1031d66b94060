package main

import (
	"github.com/urfave/cli/v2"
)

func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "delete a beer from the catalog",
		UsageText: "beerctl delete <ID> \n\n" +
			"   example: beerctl delete 0a818933-087d-47f2-ad83-2f986ed087eb",
		Action: func(c *cli.Context) error {
			id, err := parseID(c)
			if err != nil {
				_ = cli.ShowCommandHelp(c, "delete")
				return err
			}
			s, err := newSession(c)
			if err != nil {
				return err
			}
			defer s.close(c)

			s.logger.Actionf("deleting beer %s", id)
			if _, err := s.manager.DeleteBeerByID(c.Context, id); err != nil {
				return err
			}
			s.logger.Successf("deleted beer %s", id)
			return nil
		},
	}
}
