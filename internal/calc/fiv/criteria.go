package fiv

import "fmt"

// Criterion is one acceptance check: the verdict plus the observed value
// and the limit it was held against, formatted for display.
type Criterion struct {
	Acceptable bool   `json:"acceptable"`
	Value      string `json:"value"`
	Limit      string `json:"limit"`
}

// Criteria is the fixed set of ten acceptance checks.
type Criteria struct {
	VortexShedding          Criterion `json:"vortex_shedding"`
	TurbulentBuffeting      Criterion `json:"turbulent_buffeting"`
	FluidElasticInstability Criterion `json:"fluid_elastic_instability"`
	AcousticResonance       Criterion `json:"acoustic_resonance"`
	MidspanCollision        Criterion `json:"midspan_collision"`
	WearDamage              Criterion `json:"wear_damage"`
	FatigueFailure          Criterion `json:"fatigue_failure"`
	ExcessiveNoise          Criterion `json:"excessive_noise"`
	PressureDrop            Criterion `json:"pressure_drop"`
	StressCorrosion         Criterion `json:"stress_corrosion"`
}

// Row pairs a criterion with its mechanism name for tabular rendering.
type Row struct {
	Mechanism string
	Criterion Criterion
}

// Rows returns the criteria in report order.
func (c Criteria) Rows() []Row {
	return []Row{
		{"Vortex Shedding", c.VortexShedding},
		{"Turbulent Buffeting", c.TurbulentBuffeting},
		{"Fluid Elastic Instability", c.FluidElasticInstability},
		{"Acoustic Resonance", c.AcousticResonance},
		{"Mid-span Collision", c.MidspanCollision},
		{"Wear Damage", c.WearDamage},
		{"Fatigue Failure", c.FatigueFailure},
		{"Excessive Noise", c.ExcessiveNoise},
		{"Pressure Drop", c.PressureDrop},
		{"Stress Corrosion", c.StressCorrosion},
	}
}

// Evaluate applies the ten acceptance checks to a computed Result. For the
// vortex shedding and acoustic resonance checks "acceptable" means the
// frequency ratio falls OUTSIDE the resonance band; a ratio sitting exactly
// on a band edge is not acceptable. The comparisons are strict throughout.
func Evaluate(in Input, res Result) Criteria {
	var c Criteria

	// 1. Vortex shedding (TEMA RCB-4.521)
	ratio := res.VortexSheddingHz / res.NaturalFrequencyHz
	c.VortexShedding = Criterion{
		Acceptable: ratio < 0.5 || ratio > 1.5,
		Value:      fmt.Sprintf("%.2f", ratio),
		Limit:      "0.5-1.5",
	}

	// 2. Turbulent buffeting (TEMA RCB-4.531)
	c.TurbulentBuffeting = Criterion{
		Acceptable: res.BuffetingForceN < 1000,
		Value:      fmt.Sprintf("%.1f N", res.BuffetingForceN),
		Limit:      "<1000 N",
	}

	// 3. Fluid elastic instability (ASME N-1321)
	velocityRatio := in.FlowVelocityMS / res.CriticalVelocityMS
	c.FluidElasticInstability = Criterion{
		Acceptable: velocityRatio < 0.5,
		Value:      fmt.Sprintf("%.2f", velocityRatio),
		Limit:      "<0.5",
	}

	// 4. Acoustic resonance (TEMA RCB-4.541)
	axialRatio := res.VortexSheddingHz / res.AxialResonanceHz
	angularRatio := res.VortexSheddingHz / res.AngularResonanceHz
	c.AcousticResonance = Criterion{
		Acceptable: (axialRatio < 0.8 || axialRatio > 1.2) && (angularRatio < 0.8 || angularRatio > 1.2),
		Value:      fmt.Sprintf("Axial: %.2f, Angular: %.2f", axialRatio, angularRatio),
		Limit:      "0.8-1.2",
	}

	// 5. Mid-span collision (ISO 19904)
	maxDeflection := in.DiametralClearanceMM / 2
	c.MidspanCollision = Criterion{
		Acceptable: res.MaxDisplacementMM < maxDeflection,
		Value:      fmt.Sprintf("%.2f mm", res.MaxDisplacementMM),
		Limit:      fmt.Sprintf("<%.2f mm", maxDeflection),
	}

	// 6. Wear damage (ASME Sec III Div 1 N-1521)
	c.WearDamage = Criterion{
		Acceptable: res.WearContactEvents < 10000,
		Value:      fmt.Sprintf("%d", res.WearContactEvents),
		Limit:      "<10000",
	}

	// 7. Fatigue failure (ASME BPVC Section VIII Div 2)
	c.FatigueFailure = Criterion{
		Acceptable: res.FatigueStressMPa < 0.5*in.PermissibleStressMPa,
		Value:      fmt.Sprintf("%.1f MPa", res.FatigueStressMPa),
		Limit:      fmt.Sprintf("<%.1f MPa", 0.5*in.PermissibleStressMPa),
	}

	// 8. Excessive noise (OSHA 1910.95)
	c.ExcessiveNoise = Criterion{
		Acceptable: res.NoiseLevelDB < 85,
		Value:      fmt.Sprintf("%.1f dB", res.NoiseLevelDB),
		Limit:      "<85 dB",
	}

	// 9. Pressure drop (TEMA Class R)
	c.PressureDrop = Criterion{
		Acceptable: res.PressureDropBar < 1.0,
		Value:      fmt.Sprintf("%.2f bar", res.PressureDropBar),
		Limit:      "<1.0 bar",
	}

	// 10. Stress corrosion (ASME Sec III Div 1 N-1331)
	c.StressCorrosion = Criterion{
		Acceptable: res.FatigueStressMPa < 0.3*in.PermissibleStressMPa,
		Value:      fmt.Sprintf("%.1f MPa", res.FatigueStressMPa),
		Limit:      fmt.Sprintf("<%.1f MPa", 0.3*in.PermissibleStressMPa),
	}

	return c
}
