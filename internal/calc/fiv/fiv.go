package fiv

import (
	"fmt"
)

// Constants per TEMA/ASME/ISO standards.
const (
	Gravity           = 9.81 // m/s²
	SpeedOfSoundWater = 1481 // m/s
	FEIConstant       = 3.0  // ASME Sec III Div 1 N-1321
)

type Pattern string

const (
	PatternTriangular        Pattern = "Triangular"
	PatternSquare            Pattern = "Square"
	PatternRotatedSquare     Pattern = "Rotated Square"
	PatternRotatedTriangular Pattern = "Rotated Triangular"
)

// TEMA RCB-4.521
var strouhalNumbers = map[Pattern]float64{
	PatternTriangular:        0.33,
	PatternSquare:            0.21,
	PatternRotatedSquare:     0.24,
	PatternRotatedTriangular: 0.35,
}

// Input holds the design parameters of one analysis run (TEMA CEM type).
// Geometry in mm, densities in kg/mm³, stresses and moduli in N/mm²,
// velocity in m/s.
type Input struct {
	TubeODMM              float64 `json:"tube_od_mm"`
	TubeThicknessMM       float64 `json:"tube_thickness_mm"`
	TubeLengthMM          float64 `json:"tube_length_mm"`
	TubeDensityKgMM3      float64 `json:"tube_density_kg_mm3"`
	PermissibleStressMPa  float64 `json:"permissible_stress_mpa"`
	ModulusMPa            float64 `json:"modulus_mpa"`
	BaffleThicknessMM     float64 `json:"baffle_thickness_mm"`
	BaffleSpacingInletMM  float64 `json:"baffle_spacing_inlet_mm"`
	BaffleSpacingMidMM    float64 `json:"baffle_spacing_mid_mm"`
	BaffleSpacingOutletMM float64 `json:"baffle_spacing_outlet_mm"`
	ShellDensityKgMM3     float64 `json:"shell_density_kg_mm3"`
	TubeFluidDensityKgMM3 float64 `json:"tube_fluid_density_kg_mm3"` // reserved, no current formula reads it
	FlowVelocityMS        float64 `json:"flow_velocity_ms"`
	TubePitchMM           float64 `json:"tube_pitch_mm"`
	DiametralClearanceMM  float64 `json:"diametral_clearance_mm"`
	Pattern               Pattern `json:"pattern"`
	DampingRatio          float64 `json:"damping_ratio"`
}

// TubeIDMM is the derived inner diameter.
func (in Input) TubeIDMM() float64 {
	return in.TubeODMM - 2*in.TubeThicknessMM
}

// Validate performs the boundary range checks. Calculate assumes a
// validated Input and only guards its own divisors, so callers that accept
// external data must call Validate first.
func (in Input) Validate() error {
	if in.TubeODMM <= 0 {
		return fmt.Errorf("tube_od_mm must be positive")
	}
	if in.TubeThicknessMM <= 0 {
		return fmt.Errorf("tube_thickness_mm must be positive")
	}
	if in.TubeThicknessMM >= in.TubeODMM/2 {
		return fmt.Errorf("tube_thickness_mm must be less than half of tube_od_mm")
	}
	if in.TubeLengthMM <= 0 {
		return fmt.Errorf("tube_length_mm must be positive")
	}
	if in.TubeDensityKgMM3 <= 0 {
		return fmt.Errorf("tube_density_kg_mm3 must be positive")
	}
	if in.PermissibleStressMPa <= 0 {
		return fmt.Errorf("permissible_stress_mpa must be positive")
	}
	if in.ModulusMPa <= 0 {
		return fmt.Errorf("modulus_mpa must be positive")
	}
	if in.BaffleThicknessMM <= 0 {
		return fmt.Errorf("baffle_thickness_mm must be positive")
	}
	if in.BaffleSpacingInletMM <= 0 || in.BaffleSpacingMidMM <= 0 || in.BaffleSpacingOutletMM <= 0 {
		return fmt.Errorf("baffle spacings must be positive")
	}
	if in.ShellDensityKgMM3 <= 0 {
		return fmt.Errorf("shell_density_kg_mm3 must be positive")
	}
	if in.TubeFluidDensityKgMM3 <= 0 {
		return fmt.Errorf("tube_fluid_density_kg_mm3 must be positive")
	}
	if in.FlowVelocityMS <= 0 {
		return fmt.Errorf("flow_velocity_ms must be positive")
	}
	if in.TubePitchMM <= 0 {
		return fmt.Errorf("tube_pitch_mm must be positive")
	}
	if in.DiametralClearanceMM <= 0 {
		return fmt.Errorf("diametral_clearance_mm must be positive")
	}
	if in.DampingRatio <= 0 || in.DampingRatio >= 1 {
		return fmt.Errorf("damping_ratio must be in (0, 1)")
	}
	if _, ok := strouhalNumbers[in.Pattern]; !ok {
		return &ConfigurationError{Pattern: string(in.Pattern)}
	}
	return nil
}

// Patterns lists the supported tube array patterns in display order.
func Patterns() []Pattern {
	return []Pattern{PatternTriangular, PatternSquare, PatternRotatedSquare, PatternRotatedTriangular}
}
