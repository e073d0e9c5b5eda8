package fiv

import "testing"

func TestEvaluateReferenceCase(t *testing.T) {
	in := referenceInput()
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	c := Evaluate(in, res)

	// At 0.5 m/s in water the bundle clears everything except fluid
	// elastic instability (critical velocity is tiny for this bundle) and
	// the mid-span clearance check.
	verdicts := []struct {
		name string
		got  bool
		want bool
	}{
		{"vortex shedding", c.VortexShedding.Acceptable, true},
		{"turbulent buffeting", c.TurbulentBuffeting.Acceptable, true},
		{"fluid elastic instability", c.FluidElasticInstability.Acceptable, false},
		{"acoustic resonance", c.AcousticResonance.Acceptable, true},
		{"mid-span collision", c.MidspanCollision.Acceptable, false},
		{"wear damage", c.WearDamage.Acceptable, true},
		{"fatigue failure", c.FatigueFailure.Acceptable, true},
		{"excessive noise", c.ExcessiveNoise.Acceptable, true},
		{"pressure drop", c.PressureDrop.Acceptable, true},
		{"stress corrosion", c.StressCorrosion.Acceptable, true},
	}
	for _, v := range verdicts {
		if v.got != v.want {
			t.Errorf("%s acceptable = %v, want %v", v.name, v.got, v.want)
		}
	}

	if c.VortexShedding.Value != "6.09" {
		t.Errorf("vortex shedding value = %q, want %q", c.VortexShedding.Value, "6.09")
	}
	if c.VortexShedding.Limit != "0.5-1.5" {
		t.Errorf("vortex shedding limit = %q, want %q", c.VortexShedding.Limit, "0.5-1.5")
	}
	if c.TurbulentBuffeting.Value != "8.7 N" {
		t.Errorf("buffeting value = %q, want %q", c.TurbulentBuffeting.Value, "8.7 N")
	}
	if c.FluidElasticInstability.Value != "19.79" {
		t.Errorf("instability value = %q, want %q", c.FluidElasticInstability.Value, "19.79")
	}
	if c.AcousticResonance.Value != "Axial: 0.04, Angular: 0.00" {
		t.Errorf("acoustic value = %q, want %q", c.AcousticResonance.Value, "Axial: 0.04, Angular: 0.00")
	}
	if c.MidspanCollision.Value != "20.70 mm" {
		t.Errorf("collision value = %q, want %q", c.MidspanCollision.Value, "20.70 mm")
	}
	if c.MidspanCollision.Limit != "<0.25 mm" {
		t.Errorf("collision limit = %q, want %q", c.MidspanCollision.Limit, "<0.25 mm")
	}
	if c.WearDamage.Value != "1984" {
		t.Errorf("wear value = %q, want %q", c.WearDamage.Value, "1984")
	}
	if c.ExcessiveNoise.Value != "34.0 dB" {
		t.Errorf("noise value = %q, want %q", c.ExcessiveNoise.Value, "34.0 dB")
	}
	if c.ExcessiveNoise.Limit != "<85 dB" {
		t.Errorf("noise limit = %q, want %q", c.ExcessiveNoise.Limit, "<85 dB")
	}
	if c.PressureDrop.Value != "0.00 bar" {
		t.Errorf("pressure drop value = %q, want %q", c.PressureDrop.Value, "0.00 bar")
	}
	if c.StressCorrosion.Limit != "<16.2 MPa" {
		t.Errorf("stress corrosion limit = %q, want %q", c.StressCorrosion.Limit, "<16.2 MPa")
	}
}

func TestCriteriaRows(t *testing.T) {
	in := referenceInput()
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	rows := Evaluate(in, res).Rows()
	if len(rows) != 10 {
		t.Fatalf("rows = %d, want 10", len(rows))
	}
	for _, row := range rows {
		if row.Mechanism == "" {
			t.Error("empty mechanism name")
		}
		if row.Criterion.Value == "" {
			t.Errorf("%s: empty value string", row.Mechanism)
		}
		if row.Criterion.Limit == "" {
			t.Errorf("%s: empty limit string", row.Mechanism)
		}
	}
}

// The vortex shedding check holds "acceptable" to mean the ratio lies
// strictly outside the 0.5-1.5 resonance band, so both edges are failures.
func TestVortexSheddingBoundary(t *testing.T) {
	in := referenceInput()
	cases := []struct {
		ratio float64
		want  bool
	}{
		{0.49, true},
		{0.5, false},
		{1.0, false},
		{1.5, false},
		{1.51, true},
	}
	for _, c := range cases {
		res := Result{NaturalFrequencyHz: 1, VortexSheddingHz: c.ratio}
		got := Evaluate(in, res).VortexShedding.Acceptable
		if got != c.want {
			t.Errorf("ratio %v: acceptable = %v, want %v", c.ratio, got, c.want)
		}
	}
}

func TestAcousticResonanceBoundary(t *testing.T) {
	in := referenceInput()
	// Shedding frequency 12 Hz against resonances chosen so the ratios are
	// exact: 16 Hz -> 0.75, 15 Hz -> 0.8, 12 Hz -> 1.0, 10 Hz -> 1.2.
	cases := []struct {
		axialHz, angularHz float64
		want               bool
	}{
		{16, 16, true},  // both outside the band
		{15, 16, false}, // axial exactly on the lower edge
		{10, 16, false}, // axial exactly on the upper edge
		{16, 12, false}, // angular inside the band
		{12, 12, false}, // both inside
	}
	for _, c := range cases {
		res := Result{
			VortexSheddingHz:   12,
			AxialResonanceHz:   c.axialHz,
			AngularResonanceHz: c.angularHz,
		}
		got := Evaluate(in, res).AcousticResonance.Acceptable
		if got != c.want {
			t.Errorf("axial %v Hz angular %v Hz: acceptable = %v, want %v", c.axialHz, c.angularHz, got, c.want)
		}
	}
}

func TestInstabilityBoundary(t *testing.T) {
	in := referenceInput()
	in.FlowVelocityMS = 1
	cases := []struct {
		critical float64
		want     bool
	}{
		{2.1, true},  // ratio 0.476
		{2.0, false}, // ratio exactly 0.5
		{1.9, false}, // ratio 0.526
	}
	for _, c := range cases {
		res := Result{CriticalVelocityMS: c.critical}
		got := Evaluate(in, res).FluidElasticInstability.Acceptable
		if got != c.want {
			t.Errorf("critical %v: acceptable = %v, want %v", c.critical, got, c.want)
		}
	}
}
