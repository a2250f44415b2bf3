package sweep

import (
	"errors"
	"fmt"

	"sputtering/element"
)

// isotopeSpecies returns the projectile p with the mass of iso.
func isotopeSpecies(el *element.Element, p Species, iso element.Isotope) Species {
	return Species{Symbol: el.Name(iso), Z: p.Z, M: float64(iso.MassNumber)}
}

// IsotopeAverage returns the yields at energy e averaged over the natural
// isotopes of the projectile element, weighted by abundance.
func IsotopeAverage(p Params, el *element.Element, e float64) (Point, error) {
	isos, err := el.NaturalIsotopes()
	if err != nil {
		return Point{}, err
	}
	var avg Point
	for _, iso := range isos {
		f := NewFactors(isotopeSpecies(el, p.Projectile, iso), p.Target)
		pt, err := f.Evaluate(e, p.Regime)
		if err != nil {
			return Point{}, err
		}
		avg.Regime = pt.Regime
		avg.ReducedEnergy += iso.Abundance * pt.ReducedEnergy
		avg.Sigmund += iso.Abundance * pt.Sigmund
		avg.Zalm += iso.Abundance * pt.Zalm
	}
	avg.Energy = e
	return avg, nil
}

// IsotopeSampler estimates isotope averaged yields by Monte Carlo: projectile
// isotopes are drawn by natural abundance and their yields averaged.
type IsotopeSampler struct {
	params  Params
	sampler *element.Sampler
	factors map[int]Factors // by mass number
}

// NewIsotopeSampler resolves p.Projectile.Symbol in the element table and
// seeds the sampler with p.Seed.
func NewIsotopeSampler(p Params) (*IsotopeSampler, error) {
	if p.Projectile.Symbol == "" {
		return nil, errors.New("isotope sampling needs a projectile symbol")
	}
	el, err := element.Lookup(p.Projectile.Symbol)
	if err != nil {
		return nil, err
	}
	s, err := element.NewSampler(el, p.Seed)
	if err != nil {
		return nil, fmt.Errorf("projectile: %w", err)
	}
	return &IsotopeSampler{params: p, sampler: s, factors: make(map[int]Factors)}, nil
}

// Average draws n isotopes and returns the mean yields at energy e.
func (s *IsotopeSampler) Average(e float64, n int) (Point, error) {
	if n <= 0 {
		return Point{}, fmt.Errorf("sample count must be positive, got %d", n)
	}
	el := s.sampler.Element()
	var avg Point
	for i := 0; i < n; i++ {
		iso := s.sampler.Pick()
		f, ok := s.factors[iso.MassNumber]
		if !ok {
			f = NewFactors(isotopeSpecies(el, s.params.Projectile, iso), s.params.Target)
			s.factors[iso.MassNumber] = f
		}
		pt, err := f.Evaluate(e, s.params.Regime)
		if err != nil {
			return Point{}, err
		}
		avg.Regime = pt.Regime
		avg.ReducedEnergy += pt.ReducedEnergy
		avg.Sigmund += pt.Sigmund
		avg.Zalm += pt.Zalm
	}
	avg.Energy = e
	avg.ReducedEnergy /= float64(n)
	avg.Sigmund /= float64(n)
	avg.Zalm /= float64(n)
	return avg, nil
}
