package eq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned for filter kinds outside the catalog.
var ErrUnknownKind = errors.New("eq: unknown filter kind")

// Kind identifies a filter shape. Values match the device wire codes.
type Kind uint8

const (
	Bypass     Kind = 0x00
	HighShelf1 Kind = 0x01
	HighShelf2 Kind = 0x02
	LowShelf1  Kind = 0x03
	LowShelf2  Kind = 0x04
	Notch      Kind = 0x05
	Peak       Kind = 0x06
	Highpass1  Kind = 0x07
	Highpass2  Kind = 0x08
	Lowpass1   Kind = 0x09
	Lowpass2   Kind = 0x0a
	Bandpass   Kind = 0x0b
	Gain       Kind = 0x0c
)

var kindNames = map[Kind]string{
	Bypass:     "BYPASS",
	HighShelf1: "HIGHSHELF1",
	HighShelf2: "HIGHSHELF2",
	LowShelf1:  "LOWSHELF1",
	LowShelf2:  "LOWSHELF2",
	Notch:      "NOTCH",
	Peak:       "PEAK",
	Highpass1:  "HIGHPASS1",
	Highpass2:  "HIGHPASS2",
	Lowpass1:   "LOWPASS1",
	Lowpass2:   "LOWPASS2",
	Bandpass:   "BANDPASS",
	Gain:       "GAIN",
}

// Kinds returns every known kind ordered by wire code.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := Bypass; k <= Gain; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is part of the catalog.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(0x%02x)", uint8(k))
}

// ParseKind resolves a kind name case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return Bypass, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// IgnoresGain reports whether the gain parameter has no effect on the shape.
func (k Kind) IgnoresGain() bool {
	switch k {
	case Lowpass1, Lowpass2, Highpass1, Highpass2, Bandpass, Notch:
		return true
	default:
		return false
	}
}

// IgnoresQ reports whether the Q parameter has no effect on the shape.
func (k Kind) IgnoresQ() bool {
	switch k {
	case LowShelf1, LowShelf2, HighShelf1, HighShelf2, Highpass1, Lowpass1, Gain:
		return true
	default:
		return false
	}
}

// IgnoresFreq reports whether the response is frequency independent.
func (k Kind) IgnoresFreq() bool {
	return k == Gain
}

// IsPass reports whether k is a pass or notch filter. Control points of
// these kinds sit on the 0 dB line.
func (k Kind) IsPass() bool {
	switch k {
	case Lowpass1, Lowpass2, Highpass1, Highpass2, Bandpass, Notch:
		return true
	default:
		return false
	}
}
