package report

import (
	"fmt"
	"math"

	fiv "github.com/no1Abhay/HEAT-EXCHANGER-ANALYSIS/internal/calc/fiv"
	"github.com/phpdave11/gofpdf"
)

// Build renders the full FIV analysis report: title page, output summary,
// tube layout, vibration response and the acceptance criteria table.
func Build(in fiv.Input, res fiv.Result, criteria fiv.Criteria) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	titlePage(pdf)
	summaryPage(pdf, res, criteria)
	layoutPage(pdf, in)
	waveformPage(pdf, res)
	criteriaPage(pdf, criteria)
	return pdf
}

func titlePage(pdf *gofpdf.Fpdf) {
	pdf.AddPage()
	pdf.SetY(100)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "CEM Heat Exchanger FIV Analysis Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 10, "TEMA/ASME/ISO Standards Compliance", "", 1, "C", false, 0, "")
}

func statusLine(pdf *gofpdf.Fpdf, label string, acceptable bool) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, 6, label, "", 0, "L", false, 0, "")
	if acceptable {
		pdf.SetTextColor(0, 128, 0)
		pdf.CellFormat(0, 6, "ACCEPTABLE", "", 1, "L", false, 0, "")
	} else {
		pdf.SetTextColor(200, 0, 0)
		pdf.CellFormat(0, 6, "NOT ACCEPTABLE", "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

func summaryPage(pdf *gofpdf.Fpdf, res fiv.Result, criteria fiv.Criteria) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "OUTPUT SUMMARY", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "FLOW INDUCED VIBRATION MECHANISMS", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "VORTEX SHEDDING", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("I) Natural Frequency = %.2f Hz", res.NaturalFrequencyHz), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("II) Strouhal number = %.2f", res.StrouhalNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("III) Vortex shedding frequency = %.2f Hz", res.VortexSheddingHz), "", 1, "L", false, 0, "")
	statusLine(pdf, "STATUS OF VORTEX SHEDDING:", criteria.VortexShedding.Acceptable)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "TURBULENT BUFFETING", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("I) Turbulent Buffeting Force = %.1f N", res.BuffetingForceN), "", 1, "L", false, 0, "")
	statusLine(pdf, "STATUS OF TURBULENT BUFFETING:", criteria.TurbulentBuffeting.Acceptable)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "FLUID ELASTIC INSTABILITY", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("I) Fluid Elastic Instability Factor = %.2f", res.InstabilityFactor), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("II) Critical Reduced Velocity = %.2f m/s", res.CriticalVelocityMS), "", 1, "L", false, 0, "")
	statusLine(pdf, "STATUS OF FLUID ELASTIC INSTABILITY:", criteria.FluidElasticInstability.Acceptable)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "ACOUSTIC RESONANCE", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Axial Resonance = %.2f Hz", res.AxialResonanceHz), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Angular Resonance = %.2f Hz", res.AngularResonanceHz), "", 1, "L", false, 0, "")
	statusLine(pdf, "STATUS OF ACOUSTIC RESONANCE:", criteria.AcousticResonance.Acceptable)
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "POSSIBILITY DAMAGING EFFECT OF THE FIV ON HEAT EXCHANGER", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("I) Max Displacement = %.2f mm", res.MaxDisplacementMM), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("II) Mid-span Collision Risk = %s", yesNo(!criteria.MidspanCollision.Acceptable)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("III) Wear Contact Events = %d", res.WearContactEvents), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("IV) Noise Level = %.1f dB", res.NoiseLevelDB), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("V) Pressure Drop = %.2f bar", res.PressureDropBar), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("VI) Stress Corrosion Cracking Risk = %s", highLow(!criteria.StressCorrosion.Acceptable)), "", 1, "L", false, 0, "")
}

// layoutPage draws the first 10x10 tubes of the bundle to scale.
func layoutPage(pdf *gofpdf.Fpdf, in fiv.Input) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Tube Layout (%s Pitch)", in.Pattern), "", 1, "C", false, 0, "")

	const rows, cols = 10, 10
	centers := TubeCenters(in, rows, cols)

	// Fit the bundle into a 160 mm drawing square.
	extent := float64(cols) * in.TubePitchMM
	scale := 160.0 / extent
	const originX, originY = 25.0, 30.0

	pdf.SetDrawColor(0, 0, 200)
	for _, c := range centers {
		pdf.Circle(originX+c.X*scale, originY+c.Y*scale, in.TubeODMM/2*scale, "D")
	}
	pdf.SetDrawColor(0, 0, 0)
}

// waveformPage plots one second of the first-mode response
// x(t) = A sin(2 pi f t) at the computed amplitude and natural frequency.
func waveformPage(pdf *gofpdf.Fpdf, res fiv.Result) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Tube Vibration Response", "", 1, "C", false, 0, "")

	const (
		plotX = 25.0
		plotY = 40.0
		plotW = 160.0
		plotH = 80.0
	)

	// Axes
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(plotX, plotY+plotH/2, plotX+plotW, plotY+plotH/2)
	pdf.Line(plotX, plotY, plotX, plotY+plotH)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(plotX+plotW/2-8, plotY+plotH+8, "Time (s)")
	pdf.TransformBegin()
	pdf.TransformRotate(90, plotX-8, plotY+plotH/2)
	pdf.Text(plotX-8, plotY+plotH/2, "Displacement (mm)")
	pdf.TransformEnd()

	samples := WaveformSamples(res, 1000)
	amplitude := res.MaxDisplacementMM
	if amplitude == 0 {
		amplitude = 1
	}
	pdf.SetDrawColor(0, 0, 200)
	for i := 1; i < len(samples); i++ {
		x0 := plotX + samples[i-1].X*plotW
		y0 := plotY + plotH/2 - samples[i-1].Y/amplitude*plotH/2
		x1 := plotX + samples[i].X*plotW
		y1 := plotY + plotH/2 - samples[i].Y/amplitude*plotH/2
		pdf.Line(x0, y0, x1, y1)
	}
	pdf.SetDrawColor(0, 0, 0)
}

func criteriaPage(pdf *gofpdf.Fpdf, criteria fiv.Criteria) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Acceptance Criteria Summary", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	widths := []float64{55, 55, 35, 45}
	headers := []string{"Mechanism", "Value", "Limit", "Status"}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range criteria.Rows() {
		pdf.CellFormat(widths[0], 8, row.Mechanism, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, row.Criterion.Value, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 8, row.Criterion.Limit, "1", 0, "C", false, 0, "")
		status := "ACCEPTABLE"
		if row.Criterion.Acceptable {
			pdf.SetFillColor(144, 238, 144)
		} else {
			status = "NOT ACCEPTABLE"
			pdf.SetFillColor(240, 128, 128)
		}
		pdf.CellFormat(widths[3], 8, status, "1", 1, "C", true, 0, "")
	}
}

// Point is a 2D coordinate in the drawing's source units.
type Point struct {
	X, Y float64
}

// TubeCenters lays out rows x cols tube centers on the pitch grid, odd rows
// staggered by half a pitch, row spacing pitch*sin(60 deg). Units are mm.
func TubeCenters(in fiv.Input, rows, cols int) []Point {
	rowSpacing := in.TubePitchMM * math.Sin(math.Pi/3)
	centers := make([]Point, 0, rows*cols)
	for i := 0; i < rows; i++ {
		offset := 0.0
		if i%2 == 1 {
			offset = in.TubePitchMM / 2
		}
		for j := 0; j < cols; j++ {
			centers = append(centers, Point{
				X: float64(j)*in.TubePitchMM + offset,
				Y: float64(i) * rowSpacing,
			})
		}
	}
	return centers
}

// WaveformSamples samples x(t) = A sin(2 pi f t) over one second at the
// computed displacement amplitude and natural frequency. X is the time in
// seconds, Y the displacement in mm.
func WaveformSamples(res fiv.Result, n int) []Point {
	if n < 2 {
		n = 2
	}
	samples := make([]Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		samples[i] = Point{
			X: t,
			Y: res.MaxDisplacementMM * math.Sin(2*math.Pi*res.NaturalFrequencyHz*t),
		}
	}
	return samples
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func highLow(b bool) string {
	if b {
		return "HIGH"
	}
	return "LOW"
}
