// Package gpuenv inspects the CUDA/cuDNN runtime environment that
// GPU-accelerated engines need at process start. It only diagnoses;
// provisioning the libraries stays an operator concern.
package gpuenv

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Libraries the GPU engines dlopen at startup. Listed by stem so both
// versioned (libcudart.so.12) and unversioned names match.
var requiredLibraries = []string{
	"libcudart",
	"libcublas",
	"libcudnn",
}

type LibraryStatus struct {
	Name  string
	Path  string
	Found bool
}

type Report struct {
	CUDAPath      string
	SearchPath    []string
	Libraries     []LibraryStatus
	NvidiaSMIPath string
	DriverOK      bool
}

// GPUReady reports whether every required library was found and the
// driver responded.
func (r Report) GPUReady() bool {
	if !r.DriverOK {
		return false
	}
	for _, lib := range r.Libraries {
		if !lib.Found {
			return false
		}
	}
	return true
}

// Inspect probes the current process environment.
func Inspect() Report {
	return inspect(os.Getenv, exec.LookPath, runNvidiaSMI)
}

func inspect(getenv func(string) string, lookPath func(string) (string, error), probeDriver func(string) bool) Report {
	report := Report{
		CUDAPath:   getenv("CUDA_PATH"),
		SearchPath: SearchDirs(getenv("LD_LIBRARY_PATH"), getenv("CUDA_PATH")),
	}

	for _, name := range requiredLibraries {
		path, found := FindLibrary(report.SearchPath, name)
		report.Libraries = append(report.Libraries, LibraryStatus{Name: name, Path: path, Found: found})
	}

	if smi, err := lookPath("nvidia-smi"); err == nil {
		report.NvidiaSMIPath = smi
		report.DriverOK = probeDriver(smi)
	}

	return report
}

// SearchDirs builds the shared-library search list from LD_LIBRARY_PATH
// plus the conventional lib64/lib subdirectories of CUDA_PATH.
func SearchDirs(ldLibraryPath, cudaPath string) []string {
	var dirs []string
	seen := map[string]bool{}

	add := func(dir string) {
		dir = strings.TrimSpace(dir)
		if dir == "" || seen[dir] {
			return
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}

	for _, dir := range filepath.SplitList(ldLibraryPath) {
		add(dir)
	}

	if cudaPath != "" {
		add(filepath.Join(cudaPath, "lib64"))
		add(filepath.Join(cudaPath, "lib"))
		add(filepath.Join(cudaPath, "targets", "x86_64-linux", "lib"))
	}

	return dirs
}

// FindLibrary scans dirs for a shared object whose file name starts with
// the given stem, e.g. "libcudnn" matches libcudnn.so.9.1.0.
func FindLibrary(dirs []string, stem string) (string, bool) {
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if strings.HasPrefix(name, stem+".so") || strings.HasPrefix(name, stem+".dylib") {
				return filepath.Join(dir, name), true
			}
		}
	}
	return "", false
}

// Provider returns "cuda" when an NVIDIA GPU is usable, otherwise "cpu".
// Used to pick the inference provider for ONNX engines.
func Provider() string {
	if devices := os.Getenv("NVIDIA_VISIBLE_DEVICES"); devices != "" && devices != "void" {
		if err := exec.Command("nvidia-smi").Run(); err == nil {
			return "cuda"
		}
	}
	return "cpu"
}

func runNvidiaSMI(path string) bool {
	return exec.Command(path, "-L").Run() == nil
}
