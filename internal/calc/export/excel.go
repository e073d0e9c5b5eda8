package export

import (
	"fmt"

	fiv "github.com/no1Abhay/HEAT-EXCHANGER-ANALYSIS/internal/calc/fiv"
	"github.com/xuri/excelize/v2"
)

// Workbook builds a single-run workbook with Parameters, Results and
// Criteria sheets.
func Workbook(in fiv.Input, res fiv.Result, criteria fiv.Criteria) (*excelize.File, error) {
	f := excelize.NewFile()

	const paramSheet = "Parameters"
	f.SetSheetName("Sheet1", paramSheet)
	params := []struct {
		name  string
		value interface{}
	}{
		{"Tube OD (mm)", in.TubeODMM},
		{"Tube thickness (mm)", in.TubeThicknessMM},
		{"Tube ID (mm)", in.TubeIDMM()},
		{"Tube length (mm)", in.TubeLengthMM},
		{"Tube material density (kg/mm3)", in.TubeDensityKgMM3},
		{"Permissible stress (N/mm2)", in.PermissibleStressMPa},
		{"Modulus of elasticity (N/mm2)", in.ModulusMPa},
		{"Baffle thickness (mm)", in.BaffleThicknessMM},
		{"Baffle spacing inlet (mm)", in.BaffleSpacingInletMM},
		{"Baffle spacing mid (mm)", in.BaffleSpacingMidMM},
		{"Baffle spacing outlet (mm)", in.BaffleSpacingOutletMM},
		{"Shell side fluid density (kg/mm3)", in.ShellDensityKgMM3},
		{"Tube side fluid density (kg/mm3)", in.TubeFluidDensityKgMM3},
		{"Flow velocity (m/s)", in.FlowVelocityMS},
		{"Tube pitch (mm)", in.TubePitchMM},
		{"Diametral clearance (mm)", in.DiametralClearanceMM},
		{"Tube array pattern", string(in.Pattern)},
		{"Damping ratio", in.DampingRatio},
	}
	if err := writeHeader(f, paramSheet, "Parameter", "Value"); err != nil {
		return nil, err
	}
	for i, p := range params {
		row := i + 2
		if err := f.SetCellValue(paramSheet, fmt.Sprintf("A%d", row), p.name); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(paramSheet, fmt.Sprintf("B%d", row), p.value); err != nil {
			return nil, err
		}
	}

	const resultSheet = "Results"
	if _, err := f.NewSheet(resultSheet); err != nil {
		return nil, err
	}
	results := []struct {
		name  string
		value interface{}
	}{
		{"Natural Frequency (Hz)", res.NaturalFrequencyHz},
		{"Strouhal Number", res.StrouhalNumber},
		{"Vortex Shedding Frequency (Hz)", res.VortexSheddingHz},
		{"Turbulent Buffeting Force (N)", res.BuffetingForceN},
		{"Fluid Elastic Instability Factor", res.InstabilityFactor},
		{"Critical Reduced Velocity (m/s)", res.CriticalVelocityMS},
		{"Axial Acoustic Resonance (Hz)", res.AxialResonanceHz},
		{"Angular Acoustic Resonance (Hz)", res.AngularResonanceHz},
		{"Max Mid-span Displacement (mm)", res.MaxDisplacementMM},
		{"Wear Contact Events", res.WearContactEvents},
		{"Fatigue Stress (MPa)", res.FatigueStressMPa},
		{"Noise Level (dB)", res.NoiseLevelDB},
		{"Pressure Drop (bar)", res.PressureDropBar},
	}
	if err := writeHeader(f, resultSheet, "Quantity", "Value"); err != nil {
		return nil, err
	}
	for i, rr := range results {
		row := i + 2
		if err := f.SetCellValue(resultSheet, fmt.Sprintf("A%d", row), rr.name); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(resultSheet, fmt.Sprintf("B%d", row), rr.value); err != nil {
			return nil, err
		}
	}

	const criteriaSheet = "Criteria"
	if _, err := f.NewSheet(criteriaSheet); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(criteriaSheet, "A1", "Mechanism"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(criteriaSheet, "B1", "Value"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(criteriaSheet, "C1", "Limit"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(criteriaSheet, "D1", "Status"); err != nil {
		return nil, err
	}
	for i, row := range criteria.Rows() {
		n := i + 2
		status := "ACCEPTABLE"
		if !row.Criterion.Acceptable {
			status = "NOT ACCEPTABLE"
		}
		if err := f.SetCellValue(criteriaSheet, fmt.Sprintf("A%d", n), row.Mechanism); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(criteriaSheet, fmt.Sprintf("B%d", n), row.Criterion.Value); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(criteriaSheet, fmt.Sprintf("C%d", n), row.Criterion.Limit); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(criteriaSheet, fmt.Sprintf("D%d", n), status); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeHeader(f *excelize.File, sheet, a, b string) error {
	if err := f.SetCellValue(sheet, "A1", a); err != nil {
		return err
	}
	return f.SetCellValue(sheet, "B1", b)
}
