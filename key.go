package scissor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/soypat/scissor/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Feature is an addressable point of a stage: one of its five joints
// or the midpoint of one of the four half-arms meeting at the center pivot P.
type Feature uint8

const (
	JointA Feature = iota // bottom-left joint
	JointB                // bottom-right joint
	JointC                // top-right joint
	JointD                // top-left joint
	JointP                // center joint
	MidAP                 // midpoint of A→P
	MidPC                 // midpoint of P→C
	MidBP                 // midpoint of B→P
	MidPD                 // midpoint of P→D
	numFeatures
)

// enumeration order of features within a stage.
var featureOrder = [numFeatures]Feature{JointA, JointB, JointP, JointD, JointC, MidAP, MidPC, MidBP, MidPD}

var featureNames = [numFeatures]string{
	JointA: "A", JointB: "B", JointC: "C", JointD: "D", JointP: "P",
	MidAP: "AP", MidPC: "PC", MidBP: "BP", MidPD: "PD",
}

var featureDescriptions = [numFeatures]string{
	JointA: "Bottom-Left joint",
	JointB: "Bottom-Right joint",
	JointC: "Top-Right joint",
	JointD: "Top-Left joint",
	JointP: "Center joint",
	MidAP:  "Mid(A→P)",
	MidPC:  "Mid(P→C)",
	MidBP:  "Mid(B→P)",
	MidPD:  "Mid(P→D)",
}

// IsMidpoint returns true if f addresses a half-arm midpoint instead of a joint.
func (f Feature) IsMidpoint() bool { return f >= MidAP && f < numFeatures }

func (f Feature) valid() bool { return f < numFeatures }

func (f Feature) String() string {
	if !f.valid() {
		return "Feature(" + strconv.Itoa(int(f)) + ")"
	}
	return featureNames[f]
}

// Key addresses a point on the mechanism where an actuator may attach.
type Key struct {
	Feature Feature
	Stage   int
}

// String returns the textual form of the key: "A0".."P0" for joints and
// "AP_0".."PD_0" for midpoints.
func (k Key) String() string {
	if k.Feature.IsMidpoint() {
		return k.Feature.String() + "_" + strconv.Itoa(k.Stage)
	}
	return k.Feature.String() + strconv.Itoa(k.Stage)
}

// Label returns a human readable description of the key.
func (k Key) Label() string {
	if !k.Feature.valid() {
		return k.String()
	}
	return k.String() + " — " + featureDescriptions[k.Feature]
}

// ValidFor returns true if the key addresses a point of a lift with n stages.
func (k Key) ValidFor(n int) bool {
	return k.Feature.valid() && k.Stage >= 0 && k.Stage < n
}

var errBadKey = errors.New("bad attachment key")

// ParseKey parses the textual form returned by Key.String.
func ParseKey(s string) (Key, error) {
	var name, idx string
	if i := strings.LastIndexByte(s, '_'); i >= 0 {
		name, idx = s[:i], s[i+1:]
	} else if len(s) > 1 {
		name, idx = s[:1], s[1:]
	}
	for f := Feature(0); f < numFeatures; f++ {
		if featureNames[f] != name {
			continue
		}
		if f.IsMidpoint() != strings.Contains(s, "_") {
			break
		}
		if idx == "" || strings.Trim(idx, "0123456789") != "" {
			break
		}
		stage, err := strconv.Atoi(idx)
		if err != nil {
			break
		}
		return Key{Feature: f, Stage: stage}, nil
	}
	return Key{}, fmt.Errorf("%w %q", errBadKey, s)
}

// Resolve returns the point addressed by key in sol. It returns false
// if the key's stage is not present in the solution.
func Resolve(sol Solution, key Key) (r2.Vec, bool) {
	if !key.ValidFor(len(sol.Stages)) {
		return r2.Vec{}, false
	}
	st := sol.Stages[key.Stage]
	switch key.Feature {
	case JointA:
		return st.A, true
	case JointB:
		return st.B, true
	case JointC:
		return st.C, true
	case JointD:
		return st.D, true
	case JointP:
		return st.P, true
	case MidAP:
		return d2.Lerp(st.A, st.P, 0.5), true
	case MidPC:
		return d2.Lerp(st.P, st.C, 0.5), true
	case MidBP:
		return d2.Lerp(st.B, st.P, 0.5), true
	case MidPD:
		return d2.Lerp(st.P, st.D, 0.5), true
	}
	return r2.Vec{}, false
}

// EnumerateKeys returns every valid key for a lift of n stages, 9 per stage.
// Within a stage the order is A, B, P, D, C, AP, PC, BP, PD.
func EnumerateKeys(n int) []Key {
	if n < 1 {
		return nil
	}
	keys := make([]Key, 0, len(featureOrder)*n)
	for i := 0; i < n; i++ {
		for _, f := range featureOrder {
			keys = append(keys, Key{Feature: f, Stage: i})
		}
	}
	return keys
}

// DefaultBaseKey is the actuator base attachment used when none is chosen: A0.
func DefaultBaseKey() Key { return Key{Feature: JointA, Stage: 0} }

// DefaultMoveKey is the actuator moving attachment used when none is chosen:
// P1 for lifts with two or more stages, else P0.
func DefaultMoveKey(n int) Key {
	if n >= 2 {
		return Key{Feature: JointP, Stage: 1}
	}
	return Key{Feature: JointP, Stage: 0}
}

// Rebind returns key if it is valid for n stages, else fallback.
func Rebind(key Key, n int, fallback Key) Key {
	if key.ValidFor(n) {
		return key
	}
	return fallback
}
