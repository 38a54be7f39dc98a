package asr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// lookupTool resolves an external runner binary. An environment override
// wins; otherwise the name is searched on PATH.
func lookupTool(envVar, name string) (string, error) {
	if override := strings.TrimSpace(os.Getenv(envVar)); override != "" {
		if err := ensureExecutable(override); err != nil {
			return "", fmt.Errorf("%s is not executable: %w", envVar, err)
		}
		return override, nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH (set %s to point at it): %w", name, envVar, err)
	}
	return path, nil
}

func ensureExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if runtime.GOOS != "windows" && info.Mode()&0o111 == 0 {
		return fmt.Errorf("%s is not executable", path)
	}
	return nil
}

// runTool executes a runner binary, discarding stdout and classifying
// the common ways native inference binaries die on the wrong machine.
func runTool(ctx context.Context, logger *zap.Logger, executable string, args []string) error {
	cmd := exec.CommandContext(ctx, executable, args...)
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	logger.Debug("running engine", zap.String("executable", executable), zap.Strings("args", args))
	if err := cmd.Run(); err != nil {
		errText := strings.TrimSpace(stderr.String())
		if isMissingSharedLibraryError(errText) {
			return fmt.Errorf("%s is missing required shared libraries (%s); check LD_LIBRARY_PATH and CUDA_PATH, see the doctor command", executable, errText)
		}
		if isIllegalInstructionError(errText) || isIllegalInstructionError(err.Error()) {
			return fmt.Errorf("%s crashed with an illegal CPU instruction; rebuild it for this CPU", executable)
		}
		return fmt.Errorf("%s failed: %w (%s)", executable, err, errText)
	}

	return nil
}

func isMissingSharedLibraryError(stderr string) bool {
	value := strings.ToLower(strings.TrimSpace(stderr))
	if value == "" {
		return false
	}

	patterns := []string{
		"error while loading shared libraries",
		"cannot open shared object file",
		"dyld: library not loaded",
		"image not found",
	}

	for _, pattern := range patterns {
		if strings.Contains(value, pattern) {
			return true
		}
	}

	return false
}

func isIllegalInstructionError(stderr string) bool {
	return strings.Contains(strings.ToLower(stderr), "illegal instruction")
}
