package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/soypat/scissor"
	"github.com/soypat/scissor/report"
)

func TestPrintResultUnits(t *testing.T) {
	p := scissor.DefaultParameters()
	p.BaseWidth = 2
	res := scissor.Evaluate(p)
	res.Diagnostics = scissor.Diagnose(p, res.Solution, scissor.Outcome{
		ThetaDeg: res.ThetaDeg,
		Force:    scissor.ForceResult{Raw: 1, Rated: 1, PerActuator: 30e3},
	})
	var b bytes.Buffer
	printResult(&b, res, report.Units{Length: scissor.US, Force: scissor.PoundForce})
	out := b.String()
	for _, want := range []string{"32.250 in", "Base width (78.74 in)", "(> 4496 lbf)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	for _, bad := range []string{" m)", " N)"} {
		if strings.Contains(out, bad) {
			t.Errorf("output contains SI text %q:\n%s", bad, out)
		}
	}

	b.Reset()
	printResult(&b, res, report.Units{})
	if out := b.String(); !strings.Contains(out, "Base width (2.00 m)") || !strings.Contains(out, "(> 20000 N)") {
		t.Errorf("metric output:\n%s", out)
	}
}
