package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/speakpipe/speakpipe/internal/server"
)

func newServeCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the transcription HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.cfg.Engine.Simplify = resolveSimplify(cmd, app.cfg.Engine.Simplify)

			engine, err := app.buildEngine()
			if err != nil {
				return err
			}

			srv := server.New(engine, server.Options{
				Addr:     app.cfg.Server.Addr,
				APIKey:   app.cfg.Server.APIKey,
				Simplify: app.cfg.Engine.Simplify,
				Logger:   app.log(),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			app.log().Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				app.log().Warn("shutdown was not clean", zap.Error(err))
			}
			return nil
		},
	}

	bindEngineFlags(cmd, app)
	cmd.Flags().StringVar(&app.addr, "addr", "", "Listen address (default :8000)")
	cmd.Flags().StringVar(&app.apiKey, "api-key", "", "Require this X-API-Key on requests")
	bindSimplifyFlags(cmd)

	return cmd
}

func bindSimplifyFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("simplify", true, "Convert transcripts to simplified Chinese")
	cmd.Flags().Bool("no-simplify", false, "Do not convert transcripts to simplified Chinese")
}

// resolveSimplify lays the --simplify/--no-simplify pair over the config
// value. Flags left at their defaults leave the config alone, so a
// config file can disable conversion and the flag can re-enable it;
// --no-simplify wins when both are given.
func resolveSimplify(cmd *cobra.Command, configured bool) bool {
	if off, _ := cmd.Flags().GetBool("no-simplify"); off {
		return false
	}
	if cmd.Flags().Changed("simplify") {
		on, _ := cmd.Flags().GetBool("simplify")
		return on
	}
	return configured
}
