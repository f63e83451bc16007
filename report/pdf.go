package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/soypat/scissor"
)

// WritePDF writes a one page A4 summary of an evaluation: inputs, resolved
// geometry, actuator stroke and force and the diagnostics list.
func WritePDF(w io.Writer, title string, res scissor.Result, u Units) error {
	if title == "" {
		title = "Scissor Lift Report"
	}
	p := res.Params
	lu, fu := u.Length, u.Force
	length := func(m float64) string { return num(lu.FromMeters(m), 3) + " " + lu.Label() }
	force := func(n float64) string { return num(fu.FromNewtons(n), 0) + " " + fu.Label() }

	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252 encoded.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)

	section := func(name string, rows [][2]string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, tr(name))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, r := range rows {
			pdf.CellFormat(70, 6, tr(r[0]), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, tr(r[1]), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}
	drive := fmt.Sprintf("angle %s deg", num(p.Theta, 2))
	if p.ActuatorDriven {
		drive = "actuator length " + length(p.TargetLength)
	}
	section("Inputs", [][2]string{
		{"Bar length L", length(p.L)},
		{"Stages N", fmt.Sprint(p.N)},
		{"Theta limits", fmt.Sprintf("%s to %s deg", num(p.ThetaMin, 2), num(p.ThetaMax, 2))},
		{"Drive", drive},
		{"Platform / base width", length(p.PlatformWidth) + " / " + length(p.BaseWidth)},
		{"Payload / platform / arm weight", force(p.PayloadWeight) + " / " + force(p.PlatformWeight) + " / " + force(p.ArmWeight)},
		{"Friction / safety factor", num(p.FrictionPct, 1) + " % / " + num(p.SafetyFactor, 2)},
		{"Actuators", fmt.Sprintf("%d, %s to %s", p.Actuators, p.Actuator.Base, p.Actuator.Move)},
	})
	sol := res.Solution
	section("Geometry", [][2]string{
		{"Theta", num(res.ThetaDeg, 3) + " deg"},
		{"Stage rise h / span w", length(sol.Rise) + " / " + length(sol.Span)},
		{"Platform height H", length(sol.H)},
		{"H range", length(res.AtMin.H) + " to " + length(res.AtMax.H)},
	})
	section("Actuator", [][2]string{
		{"Length", length(res.ActuatorLength)},
		{"Stroke used / total", length(res.StrokeUsed) + " / " + length(res.Stroke.Total())},
		{"Total weight", force(res.TotalWeight)},
		{"Force raw", force(res.Force.Raw)},
		{"Force rated", force(res.Force.Rated)},
		{"Force per actuator", force(res.Force.PerActuator)},
	})

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Diagnostics")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, d := range res.Diagnostics {
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("[%s] %s", d.Severity, d.Format(lu, fu))), "", "L", false)
	}
	return pdf.Output(w)
}

// num formats v with prec decimals or an em dash if v is not finite.
func num(v float64, prec int) string {
	if !scissor.IsFinite(v) {
		return "—"
	}
	s := fmt.Sprintf("%.*f", prec, v)
	if strings.HasPrefix(s, "-") && strings.Trim(s, "-0.") == "" {
		s = s[1:]
	}
	return s
}
