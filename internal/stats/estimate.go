package stats

import (
	"fmt"
	"math"
)

// MagnetizationMode selects how magnetization enters ⟨m⟩ and χ.
type MagnetizationMode int

const (
	// Absolute uses ⟨|M|⟩. On finite lattices ⟨M⟩ averages to zero over
	// long runs, so this is the usual choice.
	Absolute MagnetizationMode = iota
	// Signed uses ⟨M⟩.
	Signed
)

func (m MagnetizationMode) String() string {
	switch m {
	case Absolute:
		return "absolute"
	case Signed:
		return "signed"
	default:
		return fmt.Sprintf("MagnetizationMode(%d)", int(m))
	}
}

// ParseMagnetizationMode maps "absolute" or "signed" to its mode.
func ParseMagnetizationMode(name string) (MagnetizationMode, error) {
	switch name {
	case "absolute", "":
		return Absolute, nil
	case "signed":
		return Signed, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// MarshalText implements encoding.TextMarshaler.
func (m MagnetizationMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MagnetizationMode) UnmarshalText(text []byte) error {
	v, err := ParseMagnetizationMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Estimates are the per-site thermodynamic quantities at one temperature.
type Estimates struct {
	Temperature float64 `json:"temperature"`
	Samples     int     `json:"samples"`
	// Epsilon is ⟨ε⟩ = ⟨E⟩/N.
	Epsilon float64 `json:"expected_epsilon"`
	// Magnetization is ⟨|m|⟩ or ⟨m⟩ depending on the mode.
	Magnetization  float64 `json:"expected_m"`
	SpecificHeat   float64 `json:"C_v"`
	Susceptibility float64 `json:"chi"`
}

// Estimate computes ⟨ε⟩, ⟨m⟩, C_v and χ from paired energy and
// magnetization samples of a lattice with the given number of sites.
func Estimate(energy, magnetization []int, sites int, T float64, mode MagnetizationMode) (Estimates, error) {
	if len(energy) == 0 {
		return Estimates{}, ErrNoSamples
	}
	if len(energy) != len(magnetization) {
		return Estimates{}, fmt.Errorf("%w: %d energies, %d magnetizations", ErrLengthMismatch, len(energy), len(magnetization))
	}
	if sites <= 0 {
		return Estimates{}, fmt.Errorf("%w, got %d", ErrInvalidSites, sites)
	}
	if math.IsNaN(T) || T <= 0 {
		return Estimates{}, fmt.Errorf("%w, got %g", ErrInvalidTemperature, T)
	}

	meanE, _ := ExpectedValue(energy, nil)
	meanE2, _ := ExpectedValue(energy, Square[int])
	meanM2, _ := ExpectedValue(magnetization, Square[int])

	var meanM float64
	switch mode {
	case Signed:
		meanM, _ = ExpectedValue(magnetization, nil)
	default:
		meanM, _ = ExpectedValue(magnetization, Abs[int])
	}

	n := float64(sites)
	return Estimates{
		Temperature:    T,
		Samples:        len(energy),
		Epsilon:        meanE / n,
		Magnetization:  meanM / n,
		SpecificHeat:   (meanE2 - meanE*meanE) / (n * T * T),
		Susceptibility: (meanM2 - meanM*meanM) / (n * T),
	}, nil
}
