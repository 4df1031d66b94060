package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/weaveworks/beerctl/pkg/client"
	"github.com/weaveworks/beerctl/pkg/config"
)

var _ = Describe("Load", func() {
	var (
		dir     string
		environ map[string]string
		opts    config.Options
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "beerctl-config")
		Expect(err).NotTo(HaveOccurred())
		environ = map[string]string{}
		opts = config.Options{
			Path:    filepath.Join(dir, "config.yaml"),
			EnvFile: filepath.Join(dir, ".env"),
			LookupEnv: func(key string) (string, bool) {
				v, ok := environ[key]
				return v, ok
			},
		}
	})

	AfterEach(func() {
		_ = os.RemoveAll(dir)
	})

	writeFile := func(name, content string) {
		Expect(os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)).To(Succeed())
	}

	When("nothing is configured", func() {
		It("returns the defaults", func() {
			cfg, err := config.Load(opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(config.Default()))
			Expect(cfg.BaseURL).To(Equal(client.DefaultBaseURL))
			Expect(cfg.Timeout).To(BeZero())
		})
	})

	When("a config file exists", func() {
		It("overrides the defaults", func() {
			writeFile("config.yaml", `baseURL: http://localhost:8080
timeout: 5s
rateLimit: 2.5
rateBurst: 3
output: json
`)
			cfg, err := config.Load(opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(config.Config{
				BaseURL:   "http://localhost:8080",
				Timeout:   5 * time.Second,
				RateLimit: 2.5,
				RateBurst: 3,
				Output:    "json",
			}))
		})

		It("keeps defaults for keys the file does not set", func() {
			writeFile("config.yaml", "timeout: 1m\n")
			cfg, err := config.Load(opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Timeout).To(Equal(time.Minute))
			Expect(cfg.BaseURL).To(Equal(client.DefaultBaseURL))
		})

		It("fails on malformed yaml", func() {
			writeFile("config.yaml", "baseURL: [unterminated\n")
			_, err := config.Load(opts)
			Expect(err).To(MatchError(ContainSubstring("failed to parse config file")))
		})

		It("fails on unknown keys", func() {
			writeFile("config.yaml", "baseUrl: http://localhost:8080\n")
			_, err := config.Load(opts)
			Expect(err).To(MatchError(ContainSubstring("failed to parse config file")))
		})
	})

	When("a dotenv file exists", func() {
		It("overrides the config file", func() {
			writeFile("config.yaml", "baseURL: http://from-file\n")
			writeFile(".env", "BEERCTL_BASE_URL=http://from-dotenv\nBEERCTL_RATE_LIMIT=4\n")
			cfg, err := config.Load(opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.BaseURL).To(Equal("http://from-dotenv"))
			Expect(cfg.RateLimit).To(Equal(4.0))
		})

		It("is overridden by the process environment", func() {
			writeFile(".env", "BEERCTL_BASE_URL=http://from-dotenv\n")
			environ[config.EnvBaseURL] = "http://from-env"
			cfg, err := config.Load(opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.BaseURL).To(Equal("http://from-env"))
		})
	})

	When("the environment holds invalid values", func() {
		It("fails on an invalid timeout", func() {
			environ[config.EnvTimeout] = "soon"
			_, err := config.Load(opts)
			Expect(err).To(MatchError(ContainSubstring(`invalid BEERCTL_TIMEOUT "soon"`)))
		})

		It("fails on an invalid rate limit", func() {
			environ[config.EnvRateLimit] = "fast"
			_, err := config.Load(opts)
			Expect(err).To(MatchError(ContainSubstring(`invalid BEERCTL_RATE_LIMIT "fast"`)))
		})

		It("fails on a negative rate limit", func() {
			environ[config.EnvRateLimit] = "-1"
			_, err := config.Load(opts)
			Expect(err).To(MatchError("rate limit must not be negative, got -1"))
		})
	})

	When("the output format is unknown", func() {
		It("fails validation", func() {
			writeFile("config.yaml", "output: xml\n")
			_, err := config.Load(opts)
			Expect(err).To(MatchError(`unsupported output format "xml"`))
		})
	})

	It("converts into client options", func() {
		cfg := config.Config{BaseURL: "http://localhost:8080", Timeout: time.Second, RateLimit: 1, RateBurst: 2}
		Expect(cfg.ServiceOptions()).To(Equal(client.ServiceOptions{
			BaseURL:   "http://localhost:8080",
			Timeout:   time.Second,
			RateLimit: 1,
			RateBurst: 2,
		}))
	})
})
