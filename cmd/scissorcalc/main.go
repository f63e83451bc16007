// Command scissorcalc evaluates a stacked scissor lift and optionally writes
// a drawing, 3D mesh, curve plots and reports of it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/soypat/scissor"
	"github.com/soypat/scissor/render"
	"github.com/soypat/scissor/report"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("scissorcalc: ")
	var c config
	fs := flag.NewFlagSet("scissorcalc", flag.ExitOnError)
	c.register(fs)
	fs.Parse(os.Args[1:])
	if c.env != "" {
		if err := applyEnv(fs, c.env); err != nil {
			log.Fatal(err)
		}
	}
	u, err := c.reportUnits()
	if err != nil {
		log.Fatal(err)
	}
	p, err := c.parameters(u)
	if err != nil {
		log.Fatal(err)
	}

	res := scissor.Evaluate(p)
	printResult(os.Stdout, res, u)
	if c.animate != "" {
		if err := animate(p, res, c.animate, u); err != nil {
			log.Fatal(err)
		}
	}
	if err := writeOutputs(&c, res, u); err != nil {
		log.Fatal(err)
	}
	if c.strict && scissor.Blocked(res.Diagnostics) {
		os.Exit(1)
	}
}

func printResult(w io.Writer, res scissor.Result, u report.Units) {
	lu, fu := u.Length, u.Force
	ll, fl := lu.Label(), fu.Label()
	sol := res.Solution
	fmt.Fprintf(w, "θ                 %8.3f deg\n", res.ThetaDeg)
	fmt.Fprintf(w, "stage rise h      %8.3f %s\n", lu.FromMeters(sol.Rise), ll)
	fmt.Fprintf(w, "stage span w      %8.3f %s\n", lu.FromMeters(sol.Span), ll)
	fmt.Fprintf(w, "platform height H %8.3f %s (%.3f to %.3f)\n", lu.FromMeters(sol.H), ll, lu.FromMeters(res.AtMin.H), lu.FromMeters(res.AtMax.H))
	if res.Params.ActuatorDriven {
		act := res.Params.Actuator
		fmt.Fprintf(w, "actuator          %s to %s\n", act.Base.Label(), act.Move.Label())
		fmt.Fprintf(w, "actuator length   %8.3f %s (stroke %.3f of %.3f)\n", lu.FromMeters(res.ActuatorLength), ll, lu.FromMeters(res.StrokeUsed), lu.FromMeters(res.Stroke.Total()))
		fmt.Fprintf(w, "total weight      %8.0f %s\n", fu.FromNewtons(res.TotalWeight), fl)
		fmt.Fprintf(w, "force raw/rated   %8.0f / %.0f %s\n", fu.FromNewtons(res.Force.Raw), fu.FromNewtons(res.Force.Rated), fl)
		fmt.Fprintf(w, "per actuator      %8.0f %s\n", fu.FromNewtons(res.Force.PerActuator), fl)
	}
	for _, d := range res.Diagnostics {
		fmt.Fprintf(w, "[%s] %s\n", d.Severity, d.Format(lu, fu))
	}
}

// animate drives the angle, or the actuator length when actuator driven,
// towards the limit in direction dir in real time, printing the platform
// height twice a second. Interrupt stops the animation.
func animate(p scissor.Parameters, res scissor.Result, dir string, u report.Units) error {
	sign := 1
	switch dir {
	case "up":
	case "down":
		sign = -1
	default:
		return fmt.Errorf("bad animate direction %q, want up or down", dir)
	}
	var drive *scissor.Drive
	if p.ActuatorDriven {
		st := res.Stroke
		if !st.Valid() {
			return fmt.Errorf("cannot animate actuator with invalid stroke")
		}
		// Lifting moves towards the length at θ_max.
		if st.AtMax < st.AtMin {
			sign = -sign
		}
		drive = scissor.NewLengthDrive(st.Lo(), st.Hi(), res.ActuatorLength, sign)
	} else {
		p.Theta = res.ThetaDeg
		drive = scissor.NewThetaDrive(p, sign)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	var frames int
	err := drive.Run(ctx, time.Second/60, func(v float64) {
		if p.ActuatorDriven {
			p.TargetLength = v
		} else {
			p.Theta = v
		}
		frames++
		if frames%30 == 0 || drive.Done() {
			r := scissor.Evaluate(p)
			fmt.Printf("θ=%6.2f deg H=%7.3f %s\n", r.ThetaDeg, u.Length.FromMeters(r.Solution.H), u.Length.Label())
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func writeOutputs(c *config, res scissor.Result, u report.Units) error {
	p := res.Params
	act := p.Actuator
	var actp *scissor.Actuator
	if p.ActuatorDriven {
		actp = &act
	}
	if c.svg != "" {
		err := writeFile(c.svg, func(w io.Writer) error {
			return render.WriteSVG(w, res.Solution, render.SVGOptions{Labels: c.labels, Actuator: actp, Units: u.Length})
		})
		if err != nil {
			return err
		}
	}
	if c.stl != "" {
		cfg := render.DefaultMeshConfig(p.L)
		cfg.Actuator = actp
		cfg.Scale = float32(c.stlScale)
		model, err := render.Mesh(res.Solution, cfg)
		if err != nil {
			return err
		}
		if err = render.CreateSTL(c.stl, render.NewMeshRenderer(model)); err != nil {
			return err
		}
	}
	var samples []scissor.Sample
	if c.plot != "" || c.xlsx != "" {
		samples = scissor.Sweep(p, c.sweep)
	}
	if c.plot != "" {
		cfg := render.DefaultPlotConfig()
		cfg.Length, cfg.Force = u.Length, u.Force
		err := writeFile(c.plot, func(w io.Writer) error { return render.PlotSweep(w, samples, cfg) })
		if err != nil {
			return err
		}
	}
	if c.xlsx != "" {
		err := writeFile(c.xlsx, func(w io.Writer) error { return report.WriteXLSX(w, p, samples, u) })
		if err != nil {
			return err
		}
	}
	if c.pdf != "" {
		err := writeFile(c.pdf, func(w io.Writer) error { return report.WritePDF(w, "", res, u) })
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(w io.Writer) error) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(fp); err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Printf("wrote %s", path)
	return fp.Close()
}
