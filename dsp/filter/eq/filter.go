package eq

// Filter describes one equalizer band. It is a value type; the With*
// methods return modified copies.
type Filter struct {
	Kind Kind    `json:"type"`
	Freq float64 `json:"freq"` // Hz
	Gain float64 `json:"gain"` // dB
	Q    float64 `json:"q"`
}

// WithFreq returns a copy of f with the frequency replaced.
func (f Filter) WithFreq(freq float64) Filter {
	f.Freq = freq
	return f
}

// WithGain returns a copy of f with the gain replaced.
func (f Filter) WithGain(gain float64) Filter {
	f.Gain = gain
	return f
}

// WithQ returns a copy of f with Q replaced.
func (f Filter) WithQ(q float64) Filter {
	f.Q = q
	return f
}

// Audible reports whether f changes the response at all. Bypassed bands and
// gain-driven bands at 0 dB are flat and can be skipped by callers.
func (f Filter) Audible() bool {
	if f.Kind == Bypass {
		return false
	}
	if f.Gain == 0 && !f.Kind.IgnoresGain() {
		return false
	}
	return true
}
