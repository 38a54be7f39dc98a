//go:build !cgo

package asr

import "errors"

func newParaformerONNX(Options) (Engine, error) {
	return nil, errors.New("paraformer-onnx requires a cgo build (sherpa-onnx); rebuild with CGO_ENABLED=1 or pick another engine")
}
