package element

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/mroth/weightedrand"
)

var (
	// ErrUnknownElement is returned when a symbol is not in the table.
	ErrUnknownElement = errors.New("unknown element")

	// ErrNoIsotopes is returned when an element has no tabulated natural isotopes.
	ErrNoIsotopes = errors.New("no natural isotopes")
)

// Element is a chemical element as used by the yield models.
type Element struct {
	// Usually described as "X" in chemistry.
	Symbol string `json:"symbol"`

	// Atomic number, number of protons. Described as "Z".
	Number int `json:"atomic_number"`

	// Standard atomic weight in amu. Described as "M".
	Mass float64 `json:"mass"`

	// Surface binding energy in eV. Zero for elements that are not
	// tabulated as sputtering targets.
	SurfaceBinding float64 `json:"surface_binding_energy,omitempty"`

	Isotopes []Isotope `json:"isotopes,omitempty"`
}

// Isotope is a naturally occurring variant of an element.
type Isotope struct {
	// Mass number, protons + neutrons. Described as "A". Used as the
	// isotope mass in amu.
	MassNumber int `json:"mass_number"`

	// Natural abundance in percent.
	Abundance float64 `json:"abundance"`
}

// Name is symbol of an element + mass number of the isotope, e.g. "Ar-40".
func (el *Element) Name(iso Isotope) string {
	return fmt.Sprintf("%s-%d", el.Symbol, iso.MassNumber)
}

// IsTarget reports whether the element has a tabulated surface binding energy.
func (el *Element) IsTarget() bool {
	return el.SurfaceBinding > 0
}

// Elements returns the elements parsed from elements.json.
// Parsing occurs only once.
func Elements() ([]*Element, error) {
	once.Do(func() {
		data, err := file.ReadFile("elements.json")
		if err != nil {
			loadErr = err
			return
		}
		var els []*Element
		if err := json.Unmarshal(data, &els); err != nil {
			loadErr = fmt.Errorf("parse elements.json: %w", err)
			return
		}
		instance = els
	})
	return instance, loadErr
}

// Lookup returns the element with the given symbol. Case is ignored.
func Lookup(symbol string) (*Element, error) {
	els, err := Elements()
	if err != nil {
		return nil, err
	}
	for _, el := range els {
		if strings.EqualFold(el.Symbol, symbol) {
			return el, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
}

// weight converts a percent abundance into a weightedrand weight with a
// resolution of 0.001 %. Isotopes rarer than that get weight 0.
func weight(abundance float64) uint {
	return uint(math.Round(abundance * 1000))
}

// NaturalIsotopes returns the isotopes with a non-zero sampling weight and
// their abundances normalized to fractions summing to 1.
func (el *Element) NaturalIsotopes() ([]Isotope, error) {
	var isos []Isotope
	var sum float64
	for _, iso := range el.Isotopes {
		if weight(iso.Abundance) == 0 {
			continue
		}
		isos = append(isos, iso)
		sum += iso.Abundance
	}
	if len(isos) == 0 {
		return nil, fmt.Errorf("%s: %w", el.Symbol, ErrNoIsotopes)
	}
	for i := range isos {
		isos[i].Abundance /= sum
	}
	return isos, nil
}

// Sampler draws isotopes of an element by natural abundance.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	el      *Element
	chooser *weightedrand.Chooser
	rnd     *rand.Rand
}

// NewSampler returns a sampler for the isotopes of el seeded with seed.
func NewSampler(el *Element, seed int64) (*Sampler, error) {
	isos, err := el.NaturalIsotopes()
	if err != nil {
		return nil, err
	}
	choices := make([]weightedrand.Choice, 0, len(isos))
	for _, iso := range el.Isotopes {
		if w := weight(iso.Abundance); w > 0 {
			choices = append(choices, weightedrand.NewChoice(iso, w))
		}
	}
	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", el.Symbol, err)
	}
	return &Sampler{
		el:      el,
		chooser: chooser,
		rnd:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Element returns the element the sampler draws from.
func (s *Sampler) Element() *Element {
	return s.el
}

// Pick returns a random isotope.
func (s *Sampler) Pick() Isotope {
	iso, _ := s.chooser.PickSource(s.rnd).(Isotope)
	return iso
}

//go:embed elements.json
var file embed.FS

var (
	instance []*Element // singleton
	loadErr  error
	once     sync.Once
)
