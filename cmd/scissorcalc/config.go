package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/soypat/scissor"
	"github.com/soypat/scissor/report"
)

// envPrefix prefixes the dotenv key of every flag: flag -thetamin is read
// from SCISSOR_THETAMIN, -act-base from SCISSOR_ACT_BASE.
const envPrefix = "SCISSOR_"

type config struct {
	env string

	units, load string
	// Lengths and loads in display units.
	L, platformWidth, baseWidth        float64
	payload, platformWeight, armWeight float64
	target                             float64
	n, actuators                       int
	thetaMin, thetaMax, theta          float64
	friction, safetyFactor             float64
	actBase, actMove                   string

	baseOffX, baseOffY float64
	moveOffX, moveOffY float64

	sweep   int
	animate string
	strict  bool

	svg, stl, plot, xlsx, pdf string
	labels                    bool
	stlScale                  float64
}

func (c *config) register(fs *flag.FlagSet) {
	d := scissor.DefaultParameters()
	fs.StringVar(&c.env, "env", "", "dotenv file with SCISSOR_* defaults for flags not given on the command line")
	fs.StringVar(&c.units, "units", "metric", "geometry units: metric (m) or us (in)")
	fs.StringVar(&c.load, "load", "N", "load and force units: N or lbf")
	fs.Float64Var(&c.L, "L", d.L, "bar length, end pivot to end pivot")
	fs.IntVar(&c.n, "n", d.N, "number of stages")
	fs.Float64Var(&c.thetaMin, "thetamin", d.ThetaMin, "minimum drive angle in degrees")
	fs.Float64Var(&c.thetaMax, "thetamax", d.ThetaMax, "maximum drive angle in degrees")
	fs.Float64Var(&c.theta, "theta", d.Theta, "drive angle in degrees, ignored when -target is set")
	fs.Float64Var(&c.platformWidth, "platform", d.PlatformWidth, "platform width")
	fs.Float64Var(&c.baseWidth, "base", d.BaseWidth, "base width")
	fs.Float64Var(&c.payload, "payload", d.PayloadWeight, "payload weight")
	fs.Float64Var(&c.platformWeight, "platform-weight", d.PlatformWeight, "platform weight")
	fs.Float64Var(&c.armWeight, "arm-weight", d.ArmWeight, "arm weight per stage")
	fs.Float64Var(&c.friction, "friction", d.FrictionPct, "friction allowance in percent")
	fs.Float64Var(&c.safetyFactor, "sf", d.SafetyFactor, "safety factor")
	fs.IntVar(&c.actuators, "actuators", d.Actuators, "number of actuators sharing the load")
	fs.StringVar(&c.actBase, "act-base", d.Actuator.Base.String(), "actuator base attachment key, e.g. A0 or AP_1")
	fs.StringVar(&c.actMove, "act-move", "", "actuator moving attachment key (default P1, or P0 for one stage)")
	fs.Float64Var(&c.baseOffX, "base-dx", 0, "actuator base horizontal offset")
	fs.Float64Var(&c.baseOffY, "base-dy", 0, "actuator base vertical offset")
	fs.Float64Var(&c.moveOffX, "move-dx", 0, "actuator moving end horizontal offset")
	fs.Float64Var(&c.moveOffY, "move-dy", 0, "actuator moving end vertical offset")
	fs.Float64Var(&c.target, "target", 0, "actuator length; if positive the lift is actuator driven")
	fs.IntVar(&c.sweep, "sweep", 61, "number of angles sampled for -plot and -xlsx")
	fs.StringVar(&c.animate, "animate", "", "animate the drive towards a limit: up or down")
	fs.BoolVar(&c.strict, "strict", false, "exit with status 1 if any diagnostic is blocking")
	fs.StringVar(&c.svg, "svg", "", "write side view drawing to this SVG file")
	fs.BoolVar(&c.labels, "labels", false, "label midpoints in the SVG drawing")
	fs.StringVar(&c.stl, "stl", "", "write 3D mesh to this binary STL file")
	fs.Float64Var(&c.stlScale, "stl-scale", 1000, "STL coordinate scale from meters (1000 gives mm)")
	fs.StringVar(&c.plot, "plot", "", "write height and force curves to this PNG file")
	fs.StringVar(&c.xlsx, "xlsx", "", "write sweep table to this XLSX file")
	fs.StringVar(&c.pdf, "pdf", "", "write summary report to this PDF file")
}

// applyEnv sets every flag not given on the command line whose dotenv
// key is present in the file at path.
func applyEnv(fs *flag.FlagSet, path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("reading env file: %w", err)
	}
	given := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })
	var errs []error
	fs.VisitAll(func(f *flag.Flag) {
		if given[f.Name] || f.Name == "env" {
			return
		}
		v, ok := env[envKey(f.Name)]
		if !ok {
			return
		}
		if err := fs.Set(f.Name, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", envKey(f.Name), err))
		}
	})
	return errors.Join(errs...)
}

func envKey(flagName string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

func (c *config) reportUnits() (report.Units, error) {
	var u report.Units
	switch strings.ToLower(c.units) {
	case "metric", "m", "si":
		u.Length = scissor.Metric
	case "us", "in", "imperial":
		u.Length = scissor.US
	default:
		return u, fmt.Errorf("unknown geometry units %q", c.units)
	}
	switch strings.ToLower(c.load) {
	case "n", "newton":
		u.Force = scissor.Newton
	case "lbf", "lb":
		u.Force = scissor.PoundForce
	default:
		return u, fmt.Errorf("unknown load units %q", c.load)
	}
	return u, nil
}

// parameters converts the configuration to SI parameters.
func (c *config) parameters(u report.Units) (scissor.Parameters, error) {
	lu, fu := u.Length, u.Force
	p := scissor.Parameters{
		L:              lu.ToMeters(c.L),
		N:              c.n,
		ThetaMin:       c.thetaMin,
		ThetaMax:       c.thetaMax,
		Theta:          c.theta,
		PlatformWidth:  lu.ToMeters(c.platformWidth),
		BaseWidth:      lu.ToMeters(c.baseWidth),
		PayloadWeight:  fu.ToNewtons(c.payload),
		PlatformWeight: fu.ToNewtons(c.platformWeight),
		ArmWeight:      fu.ToNewtons(c.armWeight),
		FrictionPct:    c.friction,
		SafetyFactor:   c.safetyFactor,
		Actuators:      c.actuators,
		ActuatorDriven: c.target > 0,
		TargetLength:   lu.ToMeters(c.target),
	}
	var err error
	p.Actuator = scissor.DefaultActuator(c.n)
	p.Actuator.Base, err = scissor.ParseKey(c.actBase)
	if err != nil {
		return p, err
	}
	if c.actMove != "" {
		p.Actuator.Move, err = scissor.ParseKey(c.actMove)
		if err != nil {
			return p, err
		}
	}
	p.Actuator.BaseOffset.X = lu.ToMeters(c.baseOffX)
	p.Actuator.BaseOffset.Y = lu.ToMeters(c.baseOffY)
	p.Actuator.MoveOffset.X = lu.ToMeters(c.moveOffX)
	p.Actuator.MoveOffset.Y = lu.ToMeters(c.moveOffY)
	return p, p.Validate()
}
