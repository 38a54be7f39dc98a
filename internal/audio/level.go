package audio

import "math"

// Metrics summarizes the signal level of a run of samples.
type Metrics struct {
	RMSdBFS  float64
	PeakdBFS float64
	Samples  int
}

// Measure computes RMS and peak level of 16-bit PCM samples.
func Measure(samples []int16) Metrics {
	if len(samples) == 0 {
		return Metrics{RMSdBFS: math.Inf(-1), PeakdBFS: math.Inf(-1)}
	}

	var peak float64
	var sumSquares float64
	for _, s := range samples {
		v := float64(s) / 32768.0
		abs := math.Abs(v)
		if abs > peak {
			peak = abs
		}
		sumSquares += v * v
	}

	rms := math.Sqrt(sumSquares / float64(len(samples)))
	return Metrics{
		RMSdBFS:  amplitudeToDBFS(rms),
		PeakdBFS: amplitudeToDBFS(peak),
		Samples:  len(samples),
	}
}

// IsSilentWAV reports whether a WAV file carries no signal above the
// dBFS threshold. Near-silent recordings are skipped before they reach
// an engine; hallucinated transcripts on silence are a known ASR failure
// mode.
func IsSilentWAV(path string, thresholdDBFS float64) (bool, Metrics, error) {
	samples, _, err := ReadFilePCM16(path)
	if err != nil {
		return false, Metrics{}, err
	}

	metrics := Measure(samples)
	if metrics.Samples == 0 {
		return true, metrics, nil
	}

	// Peak gets slack above the RMS threshold so a single click does not
	// defeat the gate.
	peakGate := thresholdDBFS + 6
	return metrics.RMSdBFS <= thresholdDBFS && metrics.PeakdBFS <= peakGate, metrics, nil
}

func amplitudeToDBFS(amplitude float64) float64 {
	if amplitude <= 0 {
		return math.Inf(-1)
	}
	return 20.0 * math.Log10(amplitude)
}
