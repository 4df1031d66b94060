package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/weaveworks/beerctl/pkg/catalog"
	"github.com/weaveworks/beerctl/pkg/client"
	"github.com/weaveworks/beerctl/pkg/config"
	"github.com/weaveworks/beerctl/pkg/log"
)

func globalFlags() []cli.Flag {
	configFlag := &cli.StringFlag{
		Name:  "config",
		Usage: "Path to the beerctl config file (optional)",
	}
	if path := config.DefaultPath(); path != "" {
		configFlag.Value = path
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:    "base-url",
			EnvVars: []string{config.EnvBaseURL},
			Usage:   fmt.Sprintf("Base url of the catalog service. Default: %s", client.DefaultBaseURL),
		},
		configFlag,
		&cli.StringFlag{
			Name:  "env-file",
			Value: ".env",
			Usage: "Dotenv file with BEERCTL_* settings (optional)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Timeout of a single request. 0 leaves it to the transport.",
		},
		&cli.Float64Flag{
			Name:  "rate-limit",
			Usage: "Maximum requests per second sent to the catalog service. 0 disables the limit.",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log every request to stderr",
		},
		&cli.BoolFlag{
			Name:  "metrics",
			Usage: "Print client metrics in prometheus text format to stderr when done",
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format. table|json|yaml",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "Filename to write the output to instead of stdout.",
		},
	}
}

// session holds everything a command needs to talk to the catalog service.
type session struct {
	config   config.Config
	manager  catalog.CatalogManager
	logger   log.Logger
	zap      *zap.Logger
	registry *prometheus.Registry
}

func newSession(c *cli.Context) (*session, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	s := &session{
		config: cfg,
		logger: log.StderrLogger{Stderr: c.App.ErrWriter},
		zap:    zap.NewNop(),
	}
	if c.Bool("verbose") {
		if s.zap, err = newZapLogger(); err != nil {
			return nil, err
		}
	}

	options := cfg.ServiceOptions()
	options.Logger = s.zap
	if c.Bool("metrics") {
		s.registry = prometheus.NewRegistry()
		options.Registerer = s.registry
	}
	catalogClient, err := client.NewFromOptions(options)
	if err != nil {
		return nil, err
	}
	s.manager = catalog.NewManager(catalogClient)
	return s, nil
}

// close flushes the debug log and prints the collected metrics.
func (s *session) close(c *cli.Context) {
	_ = s.zap.Sync()
	if s.registry == nil {
		return
	}
	families, err := s.registry.Gather()
	if err != nil {
		s.logger.Warningf("failed to gather metrics: %v", err)
		return
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(c.App.ErrWriter, mf); err != nil {
			s.logger.Warningf("failed to print metrics: %v", err)
			return
		}
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(config.Options{
		Path:    c.String("config"),
		EnvFile: c.String("env-file"),
	})
	if err != nil {
		return config.Config{}, err
	}
	if c.IsSet("base-url") {
		cfg.BaseURL = c.String("base-url")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("rate-limit") {
		cfg.RateLimit = c.Float64("rate-limit")
	}
	return cfg, cfg.Validate()
}

func newZapLogger() (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	zc.EncoderConfig.TimeKey = "timestamp"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// outputFormat prefers the command flag over the configured default.
func outputFormat(c *cli.Context, cfg config.Config) string {
	if c.IsSet("output") {
		return c.String("output")
	}
	return cfg.Output
}
