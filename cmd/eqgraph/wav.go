package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
	"github.com/golang/glog"
)

// irHeadroom is the peak level an impulse response is normalized to when it
// would otherwise clip.
const irHeadroom = 0.99

// writeImpulseWAV writes ir as a mono 16-bit WAV file.
func writeImpulseWAV(path string, ir []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data := normalizeImpulse(ir)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: 1,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return nil
}

// normalizeImpulse converts ir to float32, scaling it down when its peak
// exceeds irHeadroom.
func normalizeImpulse(ir []float64) []float32 {
	peak := 0.0
	for _, v := range ir {
		peak = math.Max(peak, math.Abs(v))
	}

	scaled := ir
	if peak > irHeadroom {
		gain := irHeadroom / peak
		scaled = make([]float64, len(ir))
		vecmath.ScaleBlock(scaled, ir, gain)
		glog.Infof("impulse response peak %.3f, normalized by %+.2f dB", peak, 20*math.Log10(gain))
	}

	out := make([]float32, len(scaled))
	for i, v := range scaled {
		out[i] = float32(v)
	}
	return out
}
