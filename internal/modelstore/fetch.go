package modelstore

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/speakpipe/speakpipe/internal/download"
)

type FetchOptions struct {
	NoProgress bool
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Fetch downloads whatever files of the model are still missing under
// the store root, and re-hashes files that are already on disk when the
// registry carries a checksum for them; corrupt files are replaced.
// Models that are not downloadable fail with provisioning instructions.
func Fetch(ctx context.Context, root string, backend Backend, name string, opts FetchOptions) (Resolved, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	resolved, err := Resolve(root, backend, name)
	if err != nil {
		return Resolved{}, err
	}

	corrupt := verifyChecksums(resolved)
	if resolved.Ready() && len(corrupt) == 0 {
		opts.Logger.Info("model already present", zap.String("model", resolved.Name), zap.String("dir", resolved.Dir))
		return resolved, nil
	}

	if !resolved.Downloadable() {
		return Resolved{}, fmt.Errorf("model %s cannot be downloaded automatically; place %v under %s",
			resolved.Name, resolved.Missing, resolved.Dir)
	}

	need := make(map[string]bool, len(resolved.Missing)+len(corrupt))
	for _, name := range resolved.Missing {
		need[name] = true
	}
	for _, name := range corrupt {
		opts.Logger.Warn("model file failed checksum verification, replacing it",
			zap.String("model", resolved.Name),
			zap.String("file", name),
		)
		_ = os.Remove(filepath.Join(resolved.Dir, name))
		need[name] = true
	}

	for _, f := range resolved.Files {
		if !need[f.Name] {
			continue
		}

		opts.Logger.Info("downloading model file",
			zap.String("model", resolved.Name),
			zap.String("file", f.Name),
		)

		err := download.DownloadFile(ctx, download.Options{
			URL:            f.URL,
			Destination:    filepath.Join(resolved.Dir, f.Name),
			ExpectedSHA256: f.SHA256,
			NoProgress:     opts.NoProgress,
			HTTPClient:     opts.HTTPClient,
			Logger:         opts.Logger,
		})
		if err != nil {
			return Resolved{}, fmt.Errorf("download %s: %w", f.Name, err)
		}
	}

	return Resolve(root, backend, name)
}

// verifyChecksums re-hashes the model files that are present on disk and
// carry a published checksum, returning the names whose content does not
// match.
func verifyChecksums(resolved Resolved) []string {
	missing := make(map[string]bool, len(resolved.Missing))
	for _, name := range resolved.Missing {
		missing[name] = true
	}

	var corrupt []string
	for _, f := range resolved.Files {
		if f.SHA256 == "" || missing[f.Name] {
			continue
		}
		if err := download.VerifyFileChecksum(filepath.Join(resolved.Dir, f.Name), f.SHA256); err != nil {
			corrupt = append(corrupt, f.Name)
		}
	}
	return corrupt
}
