package main

import (
	"errors"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/weaveworks/beerctl/pkg/catalog"
	"github.com/weaveworks/beerctl/pkg/log"
	"github.com/weaveworks/beerctl/pkg/version"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		reportError(log.StderrLogger{Stderr: app.ErrWriter}, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "beerctl",
		Usage:   "A cli tool for interacting with the beer catalog service",
		Version: version.GetVersion(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			listCmd(),
			getCmd(),
			upcCmd(),
			createCmd(),
			updateCmd(),
			deleteCmd(),
			versionCmd(),
			docgenCmd(),
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

func reportError(logger log.Logger, err error) {
	switch {
	case catalog.IsNotFound(err):
		logger.Failuref("beer not found (%v)", err)
	case errors.Is(err, catalog.ErrMethodNotAllowed):
		logger.Failuref("the catalog service does not allow this operation (%v)", err)
	default:
		logger.Failuref("%v", err)
	}
}
