package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
)

func docgenCmd() *cli.Command {
	return &cli.Command{
		Name:      "docgen",
		Usage:     "generate the cli doc pages",
		UsageText: "beerctl docgen --path <relative-path-of-dir-to-write-docs>",
		Hidden:    true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "The relative path to write the docs out. Default: pwd.",
			},
		},
		Action: func(c *cli.Context) error {
			outPath := c.String("path")
			if outPath != "" {
				if err := os.MkdirAll(outPath, 0755); err != nil {
					return err
				}
			}

			out := c.App.Writer
			defer func() { c.App.Writer = out }()
			for _, command := range c.App.Commands {
				if command.Name == "help" || command.Hidden {
					continue
				}

				fileName := fmt.Sprintf("beerctl-%s-cmd.md", command.Name)
				if err := writeCommandFile(c, command.Name, filepath.Join(outPath, fileName)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func writeCommandFile(c *cli.Context, command, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, "# beerctl %s\n\n```\n", command); err != nil {
		return err
	}

	c.App.Writer = f
	if err := cli.ShowCommandHelp(c, command); err != nil {
		return err
	}

	_, err = io.WriteString(f, "```\n")
	return err
}
