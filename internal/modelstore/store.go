// Package modelstore manages the on-disk model layout shared by every
// engine: <root>/<backend>/<model-name>/<files>. Engines refuse to start
// until their model directory is complete, so resolution reports exactly
// which files are missing.
package modelstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Backend names the engine family a model belongs to. The backend is the
// first path element under the store root.
type Backend string

const (
	BackendWhisper        Backend = "whisper"
	BackendFasterWhisper  Backend = "faster-whisper"
	BackendParaformer     Backend = "paraformer"
	BackendParaformerONNX Backend = "paraformer-onnx"
)

// Backends lists the known backends in display order.
func Backends() []Backend {
	return []Backend{BackendWhisper, BackendFasterWhisper, BackendParaformer, BackendParaformerONNX}
}

// File is one artifact of a model. URL may be empty for artifacts that
// have to be provisioned manually (ModelScope exports, converted
// checkpoints); SHA256 may be empty when upstream publishes none.
type File struct {
	Name   string
	URL    string
	SHA256 string
}

type Model struct {
	Name    string
	Backend Backend
	Files   []File
}

// Downloadable reports whether every file of the model has a URL.
func (m Model) Downloadable() bool {
	if len(m.Files) == 0 {
		return false
	}
	for _, f := range m.Files {
		if f.URL == "" {
			return false
		}
	}
	return true
}

var registry = map[Backend][]Model{
	BackendWhisper: {
		{
			Name:    "whisper-large-v3-turbo",
			Backend: BackendWhisper,
			Files: []File{
				{Name: "ggml-large-v3-turbo.bin", URL: "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-large-v3-turbo.bin"},
			},
		},
		{
			Name:    "whisper-small",
			Backend: BackendWhisper,
			Files: []File{
				{
					Name:   "ggml-small.bin",
					URL:    "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-small.bin",
					SHA256: "1be3a9b2063867b937e64e2ec7483364a79917e157fa98c5d94b5c1fffea987b",
				},
			},
		},
	},
	BackendFasterWhisper: {
		{
			Name:    "faster-whisper-large-v3-turbo-ct2",
			Backend: BackendFasterWhisper,
			Files: []File{
				{Name: "model.bin", URL: "https://huggingface.co/mobiuslabsgmbh/faster-whisper-large-v3-turbo/resolve/main/model.bin"},
				{Name: "config.json", URL: "https://huggingface.co/mobiuslabsgmbh/faster-whisper-large-v3-turbo/resolve/main/config.json"},
				{Name: "tokenizer.json", URL: "https://huggingface.co/mobiuslabsgmbh/faster-whisper-large-v3-turbo/resolve/main/tokenizer.json"},
				{Name: "vocabulary.txt", URL: "https://huggingface.co/mobiuslabsgmbh/faster-whisper-large-v3-turbo/resolve/main/vocabulary.txt"},
			},
		},
	},
	BackendParaformer: {
		{
			// ModelScope export with bundled VAD and punctuation models;
			// provisioned by the funasr tooling, not downloadable here.
			Name:    "speech_paraformer-large-vad-punc_asr_nat-zh-cn-16k-common-vocab8404-pytorch",
			Backend: BackendParaformer,
			Files: []File{
				{Name: "model.pt"},
				{Name: "config.yaml"},
				{Name: "am.mvn"},
				{Name: "tokens.json"},
			},
		},
	},
	BackendParaformerONNX: {
		{
			Name:    "speech_paraformer-large_asr_nat-zh-cn-16k-common-vocab8404-onnx",
			Backend: BackendParaformerONNX,
			Files: []File{
				{Name: "model.int8.onnx"},
				{Name: "config.yaml"},
				{Name: "am.mvn"},
				{Name: "tokens.txt"},
			},
		},
	},
}

// Lookup finds a model by backend and name. An empty name selects the
// backend's default (first registered) model.
func Lookup(backend Backend, name string) (Model, error) {
	models, ok := registry[backend]
	if !ok || len(models) == 0 {
		return Model{}, fmt.Errorf("unknown backend %q (known: %s)", backend, backendNames())
	}

	if strings.TrimSpace(name) == "" {
		return models[0], nil
	}

	for _, m := range models {
		if m.Name == name {
			return m, nil
		}
	}

	known := make([]string, 0, len(models))
	for _, m := range models {
		known = append(known, m.Name)
	}
	sort.Strings(known)
	return Model{}, fmt.Errorf("unknown model %q for backend %s (known: %s)", name, backend, strings.Join(known, ", "))
}

// Resolved is a model bound to a concrete store location.
type Resolved struct {
	Model
	Dir     string
	Missing []string
}

// Ready reports whether every file of the model is present on disk.
func (r Resolved) Ready() bool {
	return len(r.Missing) == 0
}

// Resolve locates a model under the store root and checks which of its
// files are present.
func Resolve(root string, backend Backend, name string) (Resolved, error) {
	model, err := Lookup(backend, name)
	if err != nil {
		return Resolved{}, err
	}

	dir := ModelDir(root, model)
	resolved := Resolved{Model: model, Dir: dir}

	for _, f := range model.Files {
		if _, err := os.Stat(filepath.Join(dir, f.Name)); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				resolved.Missing = append(resolved.Missing, f.Name)
				continue
			}
			return Resolved{}, fmt.Errorf("stat model file %s: %w", f.Name, err)
		}
	}

	return resolved, nil
}

// ModelDir returns <root>/<backend>/<model-name>.
func ModelDir(root string, m Model) string {
	return filepath.Join(root, string(m.Backend), m.Name)
}

// ErrModelIncomplete wraps Resolve results into the error engines return
// when refusing to start.
var ErrModelIncomplete = errors.New("model directory incomplete")

// Require resolves a model and fails when any file is missing, naming
// the gaps so the operator knows what to provision.
func Require(root string, backend Backend, name string) (Resolved, error) {
	resolved, err := Resolve(root, backend, name)
	if err != nil {
		return Resolved{}, err
	}

	if !resolved.Ready() {
		return Resolved{}, fmt.Errorf("%w: %s is missing %s (expected under %s)",
			ErrModelIncomplete, resolved.Name, strings.Join(resolved.Missing, ", "), resolved.Dir)
	}

	return resolved, nil
}

func backendNames() string {
	names := make([]string, 0, len(registry))
	for b := range registry {
		names = append(names, string(b))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
