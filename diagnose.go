package scissor

import (
	"fmt"
	"math"
)

// Severity of a diagnostic.
type Severity uint8

const (
	Info     Severity = iota // nothing to act on
	Warning                  // advisory, the result is usable
	Blocking                 // the result should not be relied upon
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "ok"
	case Warning:
		return "warn"
	case Blocking:
		return "bad"
	}
	return "unknown"
}

// Code identifies the rule that produced a diagnostic so callers may
// render their own message in display units.
type Code uint8

const (
	CodeNoWarnings Code = iota
	CodeNearCollapse
	CodeLowTheta
	CodeBaseWidth
	CodePlatformWidth
	CodeTargetClamped
	CodeInvalidEndpoints
	CodeSingular
	CodeNonMonotonic
	CodeForceExtreme
	CodeForceHigh
)

// Diagnostic is a single advisory or blocking condition of a solved state.
// Value and Limit hold the SI quantities compared by the rule, if any:
// widths and spans in meters, force thresholds in newtons, angles in degrees.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Value    float64
	Limit    float64
	// Message is the diagnostic text in meters and newtons.
	Message string
}

var diagnosticText = [...]string{
	CodeNoWarnings:       "No warnings triggered.",
	CodeNearCollapse:     "θ is very close to θ_min. Near-collapse region: force sensitivity is high.",
	CodeLowTheta:         "Low θ (< %g°): expect major force spike near collapse.",
	CodeBaseWidth:        "Base width (%.2f %s) exceeds current scissor span w (%.2f %s). If your base pivots are fixed, this is a geometry mismatch.",
	CodePlatformWidth:    "Platform width (%.2f %s) exceeds current scissor span w (%.2f %s). If your platform pivots are fixed, this is a geometry mismatch.",
	CodeTargetClamped:    "Requested actuator length was outside achievable range for this placement; it was clamped to match θ limits.",
	CodeInvalidEndpoints: "Actuator endpoints invalid for current stage count.",
	CodeSingular:         "Actuator placement is near-singular (dℓ/dθ ≈ 0). Required actuator force spikes extremely high.",
	CodeNonMonotonic:     "Actuator length reverses direction within the θ range; the drive angle for this length is ambiguous.",
	CodeForceExtreme:     "Per-actuator force is extremely high (> %.0f %s).",
	CodeForceHigh:        "Per-actuator force is high (> %.0f %s).",
}

// Format returns the diagnostic text with lengths and forces expressed
// in the given units.
func (d Diagnostic) Format(lu LengthUnit, fu ForceUnit) string {
	if int(d.Code) >= len(diagnosticText) {
		return d.Message
	}
	text := diagnosticText[d.Code]
	switch d.Code {
	case CodeLowTheta:
		return fmt.Sprintf(text, d.Limit)
	case CodeBaseWidth, CodePlatformWidth:
		return fmt.Sprintf(text, lu.FromMeters(d.Value), lu.Label(), lu.FromMeters(d.Limit), lu.Label())
	case CodeForceExtreme, CodeForceHigh:
		return fmt.Sprintf(text, fu.FromNewtons(d.Limit), fu.Label())
	}
	return text
}

// Diagnostic thresholds.
const (
	// CollapseMarginDeg is the distance to θ_min under which the lift is
	// considered to be in the near-collapse region.
	CollapseMarginDeg = 2.0
	// LowThetaDeg is the absolute drive angle under which force spikes are expected.
	LowThetaDeg = 10.0
	// ForceHigh and ForceExtreme are per-actuator force tiers in newtons.
	ForceHigh    = 20e3
	ForceExtreme = 50e3
)

// Outcome is the part of an evaluation pass inspected by Diagnose
// besides the parameters and forward solution.
type Outcome struct {
	ThetaDeg       float64 // resolved drive angle
	ActuatorDriven bool
	Inverse        ThetaResult
	ActuatorLength float64
	Force          ForceResult
}

// Diagnose evaluates the diagnostic rules against a solved state in a fixed
// order. The returned slice is never empty: if no rule fires it holds a
// single Info diagnostic.
func Diagnose(p Parameters, sol Solution, out Outcome) []Diagnostic {
	var diags []Diagnostic
	add := func(s Severity, c Code, value, limit float64) {
		d := Diagnostic{Severity: s, Code: c, Value: value, Limit: limit}
		d.Message = d.Format(Metric, Newton)
		diags = append(diags, d)
	}
	nan := math.NaN()
	theta := out.ThetaDeg
	switch {
	case theta < p.ThetaMin+CollapseMarginDeg:
		add(Blocking, CodeNearCollapse, theta, p.ThetaMin+CollapseMarginDeg)
	case theta < LowThetaDeg:
		add(Warning, CodeLowTheta, theta, LowThetaDeg)
	}
	if p.BaseWidth > sol.Span {
		add(Warning, CodeBaseWidth, p.BaseWidth, sol.Span)
	}
	if p.PlatformWidth > sol.Span {
		add(Warning, CodePlatformWidth, p.PlatformWidth, sol.Span)
	}
	if out.ActuatorDriven {
		if out.Inverse.Clamped {
			add(Warning, CodeTargetClamped, nan, nan)
		}
		if !IsFinite(out.ActuatorLength) {
			add(Blocking, CodeInvalidEndpoints, out.ActuatorLength, nan)
		}
		if !IsFinite(out.Force.Raw) {
			add(Blocking, CodeSingular, out.Force.Raw, nan)
		}
		if out.Inverse.Reason == ReasonNonMonotonic {
			add(Blocking, CodeNonMonotonic, nan, nan)
		}
	}
	if per := out.Force.PerActuator; IsFinite(per) {
		switch {
		case per > ForceExtreme:
			add(Blocking, CodeForceExtreme, per, ForceExtreme)
		case per > ForceHigh:
			add(Warning, CodeForceHigh, per, ForceHigh)
		}
	}
	if len(diags) == 0 {
		add(Info, CodeNoWarnings, nan, nan)
	}
	return diags
}

// Blocked returns true if any diagnostic is Blocking.
func Blocked(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == Blocking {
			return true
		}
	}
	return false
}
