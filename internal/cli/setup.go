package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/speakpipe/speakpipe/internal/modelstore"
)

func newSetupCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Download and verify the configured engine's model files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			modelDir, err := app.modelStorageDir()
			if err != nil {
				return err
			}

			backend := modelstore.Backend(app.cfg.Engine.Name)
			if app.cfg.Engine.Name == "openai" {
				fmt.Fprintln(cmd.OutOrStdout(), "The openai engine has no local models; nothing to set up.")
				return nil
			}

			app.log().Info("setting up model",
				zap.String("backend", string(backend)),
				zap.String("model", app.cfg.Engine.Model),
				zap.String("store", modelDir),
			)

			resolved, err := modelstore.Fetch(cmd.Context(), modelDir, backend, app.cfg.Engine.Model, modelstore.FetchOptions{
				NoProgress: app.noProgress,
				Logger:     app.log(),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Model %s ready at %s\n", resolved.Name, resolved.Dir)
			return nil
		},
	}

	bindEngineFlags(cmd, app)

	return cmd
}
