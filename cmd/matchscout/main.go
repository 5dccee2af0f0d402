package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shanehull/matchscout/internal/ai"
	"github.com/shanehull/matchscout/internal/analysis"
	"github.com/shanehull/matchscout/internal/config"
	"github.com/shanehull/matchscout/internal/logging"
	"github.com/shanehull/matchscout/internal/notify"
	"github.com/shanehull/matchscout/internal/session"
	"github.com/shanehull/matchscout/internal/web"
)

const shutdownTimeout = 10 * time.Second

var (
	port    string
	model   string
	timeout time.Duration
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "matchscout",
	Short: "Search-grounded football match analysis server",
	Long: `matchscout serves a web form and JSON API that ask Gemini, with Google Search
enabled, for a structured betting analysis of one fixture.

Configuration is read from .env and the environment (GEMINI_API_KEY is required);
flags override the environment.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		if cmd.Flags().Changed("model") {
			cfg.GeminiModel = model
		}
		if cmd.Flags().Changed("timeout") {
			cfg.AnalysisTimeout = timeout
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err := logging.New(verbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		zap.ReplaceGlobals(logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg, logger)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&port, "port", "p", ":8080", "listen address (overrides PORT)")
	rootCmd.Flags().StringVarP(&model, "model", "m", ai.DefaultModel, "Gemini model id (overrides GEMINI_MODEL)")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", analysis.DefaultTimeout, "per-analysis timeout (overrides ANALYSIS_TIMEOUT)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	client, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return err
	}

	analyzer := analysis.NewAnalyzer(client, cfg.AnalysisTimeout, logger)
	sessions := session.NewManager(cfg.SessionTTL)

	var notifier *notify.Notifier
	if cfg.Email.Enabled {
		notifier = notify.NewNotifier(notify.NewHTMLEmailRenderer(), notify.NewEmailSender(cfg.Email), logger)
		logger.Info("Report emails enabled",
			zap.String("smtp", fmt.Sprintf("%s:%d", cfg.Email.SMTPServer, cfg.Email.SMTPPort)),
			zap.String("to", cfg.Email.ToEmail))
	}

	// keep the interface nil when email is disabled
	var handlerNotifier web.Notifier
	if notifier != nil {
		handlerNotifier = notifier
	}

	handler := web.NewHandler(analyzer, sessions, handlerNotifier, logger)
	router := web.NewRouter(handler, cfg.CORSOrigins, logger)
	srv := web.NewServer(cfg.Port, router, cfg.AnalysisTimeout+15*time.Second, logger)

	logger.Info("matchscout ready",
		zap.String("addr", cfg.Port),
		zap.String("env", cfg.Env),
		zap.String("model", client.Model()),
		zap.Duration("analysis_timeout", cfg.AnalysisTimeout))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		notifier.Wait()
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("Shutdown complete")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
