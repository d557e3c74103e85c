// Package gore computes flat gore patterns for envelopes shaped as solids
// of revolution, such as airship hulls built from an airfoil profile.
//
// The pipeline is Profile.Resample -> Solve -> Generate, wrapped by Build.
// Every stage is a pure function of its input and returns new values.
package gore

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Parms groups the parameters of a full pipeline run.
type Parms struct {
	Sample SampleParms
	Gore   GoreParms
}

// Envelope is the result of flattening a profile into gores.
type Envelope struct {
	Profile *Profile
	// Samples are the resampled profile points the hull was solved from.
	Samples []r2.Vec
	Hull    Hull
	Outline Outline
}

// Build runs the full pipeline on a profile. Gore parameters are checked
// before any resampling takes place.
func Build(p *Profile, parms Parms) (*Envelope, error) {
	if parms.Gore.Gores < 3 {
		return nil, &InsufficientGoreCountError{Gores: parms.Gore.Gores}
	}
	if !(parms.Gore.Shrinkage > 0) {
		return nil, &InvalidFactorError{Name: "shrinkage factor", Value: parms.Gore.Shrinkage}
	}
	samples, err := p.Resample(parms.Sample)
	if err != nil {
		return nil, fmt.Errorf("resampling %q: %w", p.Name(), err)
	}
	hull, err := Solve(samples)
	if err != nil {
		return nil, fmt.Errorf("solving hull: %w", err)
	}
	outline, err := Generate(hull, parms.Gore)
	if err != nil {
		return nil, fmt.Errorf("generating gores: %w", err)
	}
	return &Envelope{
		Profile: p,
		Samples: samples,
		Hull:    hull,
		Outline: outline,
	}, nil
}

// FabricArea returns the total panel area needed for all gores, without seam allowance.
func (e *Envelope) FabricArea() float64 {
	return float64(e.Outline.Gores) * e.Outline.Area()
}
