package fiv

import "math"

// Result holds the derived vibration quantities of one run.
type Result struct {
	NaturalFrequencyHz  float64 `json:"natural_frequency_hz"`
	StrouhalNumber      float64 `json:"strouhal_number"`
	VortexSheddingHz    float64 `json:"vortex_shedding_frequency_hz"`
	BuffetingForceN     float64 `json:"turbulent_buffeting_force_n"`
	InstabilityFactor   float64 `json:"fluid_elastic_instability_factor"`
	CriticalVelocityMS  float64 `json:"critical_reduced_velocity_ms"`
	AxialResonanceHz    float64 `json:"axial_acoustic_resonance_hz"`
	AngularResonanceHz  float64 `json:"angular_acoustic_resonance_hz"`
	MaxDisplacementMM   float64 `json:"max_midspan_displacement_mm"`
	WearContactEvents   int     `json:"wear_contact_events"`
	FatigueStressMPa    float64 `json:"fatigue_stress_mpa"`
	NoiseLevelDB        float64 `json:"noise_level_db"`
	PressureDropBar     float64 `json:"pressure_drop_bar"`
}

// Calculate evaluates the ten FIV mechanisms for a tube bundle. Pure and
// deterministic; it never clamps an input, it fails with a DomainError when
// a divisor would be zero or negative and with a ConfigurationError when the
// pattern has no Strouhal number.
func Calculate(in Input) (Result, error) {
	strouhal, ok := strouhalNumbers[in.Pattern]
	if !ok {
		return Result{}, &ConfigurationError{Pattern: string(in.Pattern)}
	}

	// Convert units to SI
	od := in.TubeODMM / 1000
	id := in.TubeIDMM() / 1000
	length := in.TubeLengthMM / 1000
	pitch := in.TubePitchMM / 1000
	thickness := in.TubeThicknessMM / 1000

	if od <= 0 {
		return Result{}, &DomainError{Field: "tube_od_mm", Reason: "tube outer diameter must be positive"}
	}
	if thickness <= 0 {
		return Result{}, &DomainError{Field: "tube_thickness_mm", Reason: "tube wall thickness must be positive"}
	}
	if id <= 0 {
		return Result{}, &DomainError{Field: "tube_thickness_mm", Reason: "wall thickness leaves no inner diameter"}
	}
	if length <= 0 {
		return Result{}, &DomainError{Field: "tube_length_mm", Reason: "tube length must be positive"}
	}
	if pitch <= 0 {
		return Result{}, &DomainError{Field: "tube_pitch_mm", Reason: "tube pitch must be positive"}
	}
	if in.ShellDensityKgMM3 <= 0 {
		return Result{}, &DomainError{Field: "shell_density_kg_mm3", Reason: "shell side fluid density must be positive"}
	}
	if in.BaffleSpacingMidMM <= 0 {
		return Result{}, &DomainError{Field: "baffle_spacing_mid_mm", Reason: "mid baffle spacing must be positive"}
	}
	if in.FlowVelocityMS*100 <= 0 {
		return Result{}, &DomainError{Field: "flow_velocity_ms", Reason: "noise level needs a positive flow velocity"}
	}

	shellDensity := in.ShellDensityKgMM3 * 1e9 // kg/mm³ to kg/m³
	E := in.ModulusMPa * 1e6                   // N/mm² to N/m²
	v := in.FlowVelocityMS

	// Tube section properties (ASME BPVC Section VIII Div 2)
	area := math.Pi * (od*od - id*id) / 4
	massPerLength := area * in.TubeDensityKgMM3 * 1e9
	inertia := math.Pi * (math.Pow(od, 4) - math.Pow(id, 4)) / 64

	var res Result
	res.StrouhalNumber = strouhal

	// 1. Natural frequency, first mode (ASME Sec III Div 1 N-1300)
	res.NaturalFrequencyHz = (3.516 / (2 * math.Pi)) * math.Sqrt(E*inertia/(massPerLength*math.Pow(length, 4)))

	// 2. Vortex shedding (TEMA RCB-4.52)
	res.VortexSheddingHz = strouhal * v / od

	// 3. Turbulent buffeting (TEMA RCB-4.53)
	res.BuffetingForceN = 0.5 * shellDensity * v * v * od * length

	// 4. Fluid elastic instability (ASME Sec III Div 1 N-1321)
	massDamping := (2 * math.Pi * in.DampingRatio * massPerLength) / (shellDensity * od * od)
	res.InstabilityFactor = FEIConstant * math.Sqrt(massDamping)
	res.CriticalVelocityMS = res.InstabilityFactor * res.NaturalFrequencyHz * od

	// 5. Acoustic resonance (TEMA RCB-4.54)
	res.AxialResonanceHz = SpeedOfSoundWater / (2 * length)
	res.AngularResonanceHz = SpeedOfSoundWater / (2 * pitch)

	// 6. Mid-span deflection, simply supported under self weight (ISO 19904)
	res.MaxDisplacementMM = (5 * massPerLength * Gravity * math.Pow(length, 4)) / (384 * E * inertia) * 1000

	// 7. Wear damage (ASME Sec III Div 1 N-1500). A heuristic contact-rate
	// proxy truncated toward zero, not a physical count.
	res.WearContactEvents = int(1e6 * math.Pow(v, 3) * (in.BaffleThicknessMM / 1000))

	// 8. Fatigue stress from dynamic pressure (ASME BPVC Section VIII Div 2)
	dynamicPressure := 0.5 * shellDensity * v * v
	res.FatigueStressMPa = dynamicPressure * od / (2 * thickness) / 1e6

	// 9. Noise level, empirical proxy (OSHA 1910.95)
	res.NoiseLevelDB = 20 * math.Log10(v*100)

	// 10. Pressure drop (TEMA Class R)
	res.PressureDropBar = 0.1 * (length / (in.BaffleSpacingMidMM / 1000)) * shellDensity * v * v / 1e5

	return res, nil
}
