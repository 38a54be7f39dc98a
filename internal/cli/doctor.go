package cli

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/speakpipe/speakpipe/internal/gpuenv"
	"github.com/speakpipe/speakpipe/internal/modelstore"
)

func newDoctorCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose engines, models, GPU libraries, and desktop tools",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			reportModels(out, app)
			reportRunners(out)
			reportGPU(out)
			reportDesktopTools(out)

			return nil
		},
	}

	bindEngineFlags(cmd, app)

	return cmd
}

func reportModels(out io.Writer, app *appState) {
	fmt.Fprintln(out, "== model store ==")

	modelDir, err := app.modelStorageDir()
	if err != nil {
		fmt.Fprintf(out, "cannot resolve model store: %v\n\n", err)
		return
	}
	fmt.Fprintf(out, "root: %s\n", modelDir)

	for _, backend := range modelstore.Backends() {
		resolved, err := modelstore.Resolve(modelDir, backend, "")
		if err != nil {
			fmt.Fprintf(out, "  %-16s error: %v\n", backend, err)
			continue
		}
		if resolved.Ready() {
			fmt.Fprintf(out, "  %-16s ok (%s)\n", backend, resolved.Name)
			continue
		}
		fmt.Fprintf(out, "  %-16s missing %v\n", backend, resolved.Missing)
	}
	fmt.Fprintln(out)
}

func reportRunners(out io.Writer) {
	fmt.Fprintln(out, "== engine runners ==")

	runners := []struct {
		name   string
		envVar string
	}{
		{"whisper-cli", "SPEAKPIPE_WHISPER_CLI"},
		{"whisper-ctranslate2", "SPEAKPIPE_FASTER_WHISPER"},
		{"funasr", "SPEAKPIPE_FUNASR"},
	}

	for _, r := range runners {
		if path, err := exec.LookPath(r.name); err == nil {
			fmt.Fprintf(out, "  %-22s %s\n", r.name, path)
		} else {
			fmt.Fprintf(out, "  %-22s not on PATH (override with %s)\n", r.name, r.envVar)
		}
	}
	fmt.Fprintln(out)
}

func reportGPU(out io.Writer) {
	fmt.Fprintln(out, "== GPU environment ==")

	report := gpuenv.Inspect()
	if report.CUDAPath != "" {
		fmt.Fprintf(out, "CUDA_PATH: %s\n", report.CUDAPath)
	} else {
		fmt.Fprintln(out, "CUDA_PATH: not set")
	}

	for _, lib := range report.Libraries {
		if lib.Found {
			fmt.Fprintf(out, "  %-10s %s\n", lib.Name, lib.Path)
		} else {
			fmt.Fprintf(out, "  %-10s not found on the library search path\n", lib.Name)
		}
	}

	if report.NvidiaSMIPath == "" {
		fmt.Fprintln(out, "nvidia-smi: not found")
	} else if report.DriverOK {
		fmt.Fprintf(out, "nvidia-smi: %s (driver responding)\n", report.NvidiaSMIPath)
	} else {
		fmt.Fprintf(out, "nvidia-smi: %s (driver NOT responding)\n", report.NvidiaSMIPath)
	}

	if report.GPUReady() {
		fmt.Fprintln(out, "GPU inference: ready")
	} else {
		fmt.Fprintln(out, "GPU inference: unavailable, engines will run on CPU")
	}
	fmt.Fprintln(out)
}

func reportDesktopTools(out io.Writer) {
	fmt.Fprintln(out, "== desktop tools ==")

	for _, tool := range []string{"wl-copy", "xclip", "pbcopy"} {
		if path, err := exec.LookPath(tool); err == nil {
			fmt.Fprintf(out, "  %-10s %s\n", tool, path)
		} else {
			fmt.Fprintf(out, "  %-10s not on PATH\n", tool)
		}
	}
}
