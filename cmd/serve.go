package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memorise/nlpdemo/internal/config"
	"github.com/memorise/nlpdemo/internal/detector"
	"github.com/memorise/nlpdemo/internal/logger"
	"github.com/memorise/nlpdemo/internal/nlp"
	"github.com/memorise/nlpdemo/internal/resolver"
	"github.com/memorise/nlpdemo/internal/server"
)

var (
	cfgFile string
	port    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the demo web server",
	Long: `Start the web server hosting the demo UI and its JSON API.

Configuration is read from an optional YAML file (--config, or ./config.yaml)
and NLPDEMO_-prefixed environment variables; the remote service base URLs
default to the deployed MEMORISE endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if port != 0 {
			cfg.Server.Port = port
		}

		logger.SetLevel(cfg.Log.Level)
		log := logger.Get()

		// Loads every lingua language model; done once, shared read-only.
		log.Info("loading language detection models")
		det := detector.New()

		mt := nlp.NewTranslateClient(cfg.Services.MTURL, cfg.Services.Timeout)
		state := &server.State{
			Semtag:   nlp.NewSemtagClient(cfg.Services.SemtagURL, cfg.Services.Timeout),
			NER:      nlp.NewNERClient(cfg.Services.NERURL, cfg.Services.Timeout),
			MT:       mt,
			Resolver: resolver.New(det, mt),
		}

		srv := server.Create(cfg, state)
		log.Infof("listening on %s", srv.Addr)
		return srv.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&cfgFile, "config", "", "path to config file")
	serveCmd.Flags().IntVar(&port, "port", 0, "override the listen port")
}
