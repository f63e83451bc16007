// Package report exports lift evaluations as spreadsheets and printable
// summaries.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/soypat/scissor"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSweep  = "Sweep"
	sheetParams = "Parameters"
)

// Units selects the display units of exported values.
type Units struct {
	Length scissor.LengthUnit
	Force  scissor.ForceUnit
}

// sweepColumns is the number of columns of a sweep sheet row.
const sweepColumns = 8

func sweepHeader(u Units) []interface{} {
	l, f := u.Length.Label(), u.Force.Label()
	return []interface{}{
		"θ (deg)",
		"h (" + l + ")",
		"w (" + l + ")",
		"H (" + l + ")",
		"Actuator length (" + l + ")",
		"F raw (" + f + ")",
		"F rated (" + f + ")",
		"F per actuator (" + f + ")",
	}
}

// WriteXLSX writes a workbook with the sweep samples on the first sheet and
// the input parameters on the second. Non-finite values are left blank.
func WriteXLSX(w io.Writer, p scissor.Parameters, samples []scissor.Sample, u Units) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = f.SetSheetName("Sheet1", sheetSweep); err != nil {
		return err
	}
	if _, err = f.NewSheet(sheetParams); err != nil {
		return err
	}
	row := sweepHeader(u)
	if err = f.SetSheetRow(sheetSweep, "A1", &row); err != nil {
		return err
	}
	lu, fu := u.Length, u.Force
	for i, s := range samples {
		row = []interface{}{
			s.ThetaDeg,
			cell(lu.FromMeters(s.Rise)),
			cell(lu.FromMeters(s.Span)),
			cell(lu.FromMeters(s.H)),
			cell(lu.FromMeters(s.ActuatorLength)),
			cell(fu.FromNewtons(s.Force.Raw)),
			cell(fu.FromNewtons(s.Force.Rated)),
			cell(fu.FromNewtons(s.Force.PerActuator)),
		}
		if err = setRow(f, sheetSweep, i+2, row); err != nil {
			return err
		}
	}

	params := [][]interface{}{
		{"Parameter", "Value", "Unit"},
		{"Bar length L", lu.FromMeters(p.L), lu.Label()},
		{"Stages N", p.N, ""},
		{"θ min", p.ThetaMin, "deg"},
		{"θ max", p.ThetaMax, "deg"},
		{"Platform width", lu.FromMeters(p.PlatformWidth), lu.Label()},
		{"Base width", lu.FromMeters(p.BaseWidth), lu.Label()},
		{"Payload weight", fu.FromNewtons(p.PayloadWeight), fu.Label()},
		{"Platform weight", fu.FromNewtons(p.PlatformWeight), fu.Label()},
		{"Arm weight per stage", fu.FromNewtons(p.ArmWeight), fu.Label()},
		{"Friction", p.FrictionPct, "%"},
		{"Safety factor", p.SafetyFactor, ""},
		{"Actuators", p.Actuators, ""},
		{"Actuator base", p.Actuator.Base.String(), ""},
		{"Actuator move", p.Actuator.Move.String(), ""},
	}
	for i, r := range params {
		if err = setRow(f, sheetParams, i+1, r); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// ReadSweepXLSX reads the sweep sheet of a workbook written by WriteXLSX
// back into samples in SI units. Blank cells read as NaN. Force rows are
// only partially restored: DlDTheta is always NaN.
func ReadSweepXLSX(r io.Reader, u Units) ([]scissor.Sample, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := f.GetRows(sheetSweep, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New("empty sweep sheet")
	}
	samples := make([]scissor.Sample, 0, len(rows)-1)
	for i, row := range rows[1:] {
		var v [sweepColumns]float64
		for j := range v {
			v[j] = math.NaN()
			if j >= len(row) || row[j] == "" {
				continue
			}
			v[j], err = strconv.ParseFloat(row[j], 64)
			if err != nil {
				return nil, fmt.Errorf("sweep row %d column %d: %w", i+2, j+1, err)
			}
		}
		lu, fu := u.Length, u.Force
		samples = append(samples, scissor.Sample{
			ThetaDeg:       v[0],
			Rise:           lu.ToMeters(v[1]),
			Span:           lu.ToMeters(v[2]),
			H:              lu.ToMeters(v[3]),
			ActuatorLength: lu.ToMeters(v[4]),
			Force: scissor.ForceResult{
				Raw:         fu.ToNewtons(v[5]),
				Rated:       fu.ToNewtons(v[6]),
				PerActuator: fu.ToNewtons(v[7]),
				DlDTheta:    math.NaN(),
			},
		})
	}
	return samples, nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// cell returns v or nil for a blank cell if v is not finite.
func cell(v float64) interface{} {
	if scissor.IsFinite(v) {
		return v
	}
	return nil
}
