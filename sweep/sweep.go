// Package sweep evaluates the Sigmund and Zalm yield models over a range of
// incident energies for one projectile/target pair.
//
// The model packages perform no validation and no regime selection. Both
// happen here: Params.Validate rejects unphysical inputs before any formula
// is evaluated and SelectRegime applies Sigmund's validity ranges.
package sweep

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"sputtering/constants"
	"sputtering/sigmund"
	"sputtering/zalm"
)

var (
	// ErrDomain marks inputs outside the physical domain of the formulas.
	ErrDomain = errors.New("outside physical domain")

	// ErrOutOfRegime marks energies where neither Sigmund formula applies.
	ErrOutOfRegime = errors.New("energy outside model validity")
)

// Regime selects which of Sigmund's formulas is evaluated.
type Regime string

const (
	// RegimeHigh always uses the high energy formula.
	RegimeHigh Regime = "high"
	// RegimeLow always uses the low energy formula.
	RegimeLow Regime = "low"
	// RegimeAuto picks the formula from the incident and binding energy.
	RegimeAuto Regime = "auto"
)

// SelectRegime returns the Sigmund regime valid for incident energy e and
// surface binding energy ub, both in eV: high from 1 keV up, low between
// 10·ub and 1 keV.
func SelectRegime(e, ub float64) (Regime, error) {
	switch {
	case e >= constants.KeV:
		return RegimeHigh, nil
	case e > 10*ub:
		return RegimeLow, nil
	}
	return "", fmt.Errorf("%w: %g eV is not above 10·Ub = %g eV", ErrOutOfRegime, e, 10*ub)
}

// Species is an incident particle or target atom.
type Species struct {
	Symbol string  `json:"symbol,omitempty" yaml:"symbol"`
	Z      float64 `json:"atomic_number" yaml:"atomic_number"`
	M      float64 `json:"mass" yaml:"mass"`
}

// String returns the symbol or, without one, the Z/M pair.
func (s Species) String() string {
	if s.Symbol != "" {
		return s.Symbol
	}
	return fmt.Sprintf("Z=%g M=%g", s.Z, s.M)
}

// Target is a sputtered species with its surface binding energy in eV.
type Target struct {
	Species `yaml:",inline"`
	Ub      float64 `json:"surface_binding_energy" yaml:"surface_binding_energy"`
}

// Range is the half open energy interval [From, To) in eV sampled every Step.
type Range struct {
	From float64 `json:"from" yaml:"from"`
	To   float64 `json:"to" yaml:"to"`
	Step float64 `json:"step" yaml:"step"`
}

// Energies returns From, From+Step, ... below To.
func (r Range) Energies() []float64 {
	var es []float64
	for i := 0; ; i++ {
		e := r.From + float64(i)*r.Step
		if e >= r.To {
			break
		}
		es = append(es, e)
	}
	return es
}

// Params describes one sweep.
type Params struct {
	Projectile Species `json:"projectile"`
	Target     Target  `json:"target"`
	Range      Range   `json:"range"`
	Regime     Regime  `json:"regime"`

	// Samples > 0 averages every point over that many projectile isotopes
	// drawn by natural abundance. Requires Projectile.Symbol.
	Samples int   `json:"samples,omitempty"`
	Seed    int64 `json:"seed,omitempty"`
}

func positive(what string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%w: %s must be positive and finite, got %g", ErrDomain, what, v)
	}
	return nil
}

// Validate checks the inputs the formulas leave to the caller.
func (p Params) Validate() error {
	checks := []struct {
		what string
		v    float64
	}{
		{"projectile atomic number", p.Projectile.Z},
		{"projectile mass", p.Projectile.M},
		{"target atomic number", p.Target.Z},
		{"target mass", p.Target.M},
		{"surface binding energy", p.Target.Ub},
		{"start energy", p.Range.From},
		{"energy step", p.Range.Step},
	}
	for _, c := range checks {
		if err := positive(c.what, c.v); err != nil {
			return err
		}
	}
	if !(p.Range.To > p.Range.From) || math.IsInf(p.Range.To, 1) {
		return fmt.Errorf("%w: end energy %g must be finite and above start energy %g", ErrDomain, p.Range.To, p.Range.From)
	}
	switch p.Regime {
	case "", RegimeHigh, RegimeLow, RegimeAuto:
	default:
		return fmt.Errorf("unknown regime %q", p.Regime)
	}
	if p.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", p.Samples)
	}
	if p.Samples > 0 && p.Projectile.Symbol == "" {
		return errors.New("isotope sampling needs a projectile symbol")
	}
	return nil
}

// Factors holds the energy independent quantities of one projectile/target
// pair. They are computed once and reused for every energy of a sweep.
type Factors struct {
	Projectile Species
	Target     Target

	ScreeningLength     float64
	AlphaApos           float64
	CrossSectionFactor  float64
	ReducedEnergyFactor float64
}

// NewFactors derives the energy independent quantities for p hitting t.
func NewFactors(p Species, t Target) Factors {
	a := sigmund.LindhardScreeningLength(p.Z, t.Z)
	return Factors{
		Projectile:          p,
		Target:              t,
		ScreeningLength:     a,
		AlphaApos:           sigmund.AlphaApos(p.M, t.M),
		CrossSectionFactor:  sigmund.NuclearCrossSectionFactor(a, p.Z, t.Z, p.M, t.M),
		ReducedEnergyFactor: sigmund.ReducedEnergyFactor(a, p.Z, t.Z, p.M, t.M),
	}
}

// Point is the result of both models at one incident energy.
type Point struct {
	Energy        float64 `json:"energy_ev"`
	ReducedEnergy float64 `json:"reduced_energy"`
	Regime        Regime  `json:"regime"`
	Sigmund       float64 `json:"sigmund"`
	Zalm          float64 `json:"zalm"`
}

// Evaluate computes both yields at incident energy e in eV. With RegimeAuto
// energies outside Sigmund's validity return ErrOutOfRegime.
func (f Factors) Evaluate(e float64, regime Regime) (Point, error) {
	if regime == "" {
		regime = RegimeHigh
	}
	if regime == RegimeAuto {
		r, err := SelectRegime(e, f.Target.Ub)
		if err != nil {
			return Point{}, err
		}
		regime = r
	}

	eps := f.ReducedEnergyFactor * e
	pt := Point{
		Energy:        e,
		ReducedEnergy: eps,
		Regime:        regime,
		Zalm:          zalm.TotalYieldHighEnergy(f.Projectile.Z, f.Target.Z, f.Target.Ub, eps),
	}
	switch regime {
	case RegimeHigh:
		sigma := f.CrossSectionFactor * sigmund.ThomasFermiScreening(eps)
		pt.Sigmund = sigmund.TotalYieldHighEnergy(f.AlphaApos, sigma, f.Target.Ub)
	case RegimeLow:
		pt.Sigmund = sigmund.TotalYieldLowEnergy(f.AlphaApos, f.Target.Ub, f.Projectile.M, f.Target.M, e)
	default:
		return Point{}, fmt.Errorf("unknown regime %q", regime)
	}
	return pt, nil
}

// Results is a completed sweep.
type Results struct {
	Params Params  `json:"params"`
	Points []Point `json:"points"`
}

// Run validates p and evaluates both models at every energy of p.Range.
// Points outside Sigmund's validity are skipped when p.Regime is RegimeAuto.
func Run(p Params, log *zap.Logger) (Results, error) {
	if err := p.Validate(); err != nil {
		return Results{}, err
	}
	if p.Regime == "" {
		p.Regime = RegimeHigh
	}

	eval, err := evaluator(p)
	if err != nil {
		return Results{}, err
	}

	energies := p.Range.Energies()
	log.Info("Sweep started",
		zap.Stringer("projectile", p.Projectile),
		zap.Stringer("target", p.Target.Species),
		zap.Float64("ub", p.Target.Ub),
		zap.String("regime", string(p.Regime)),
		zap.Int("samples", p.Samples),
		zap.Int("energies", len(energies)))

	res := Results{Params: p, Points: make([]Point, 0, len(energies))}
	for _, e := range energies {
		pt, err := eval(e)
		if errors.Is(err, ErrOutOfRegime) {
			log.Warn("Skipping energy", zap.Float64("energy", e), zap.Error(err))
			continue
		}
		if err != nil {
			return Results{}, fmt.Errorf("evaluate %g eV: %w", e, err)
		}
		log.Debug("Point",
			zap.Float64("energy", pt.Energy),
			zap.Float64("reduced_energy", pt.ReducedEnergy),
			zap.Float64("sigmund", pt.Sigmund),
			zap.Float64("zalm", pt.Zalm))
		res.Points = append(res.Points, pt)
	}

	sum := res.Summary()
	log.Info("Sweep finished",
		zap.Int("points", sum.Points),
		zap.Float64("sigmund_mean", sum.Sigmund.Mean),
		zap.Float64("zalm_mean", sum.Zalm.Mean),
		zap.Float64("ratio_min", sum.RatioMin),
		zap.Float64("ratio_max", sum.RatioMax))
	return res, nil
}

// evaluator returns the per-energy evaluation for p: the plain models, or
// the isotope sampled average when p.Samples > 0.
func evaluator(p Params) (func(e float64) (Point, error), error) {
	if p.Samples == 0 {
		f := NewFactors(p.Projectile, p.Target)
		return func(e float64) (Point, error) { return f.Evaluate(e, p.Regime) }, nil
	}
	s, err := NewIsotopeSampler(p)
	if err != nil {
		return nil, err
	}
	return func(e float64) (Point, error) { return s.Average(e, p.Samples) }, nil
}
