package sigmund

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"sputtering/constants"
)

func TestTotalYieldHighEnergy(t *testing.T) {
	assert.Equal(t, 0.042, TotalYieldHighEnergy(1, 1, 1))

	cases := []struct{ alpha, sigma, ub float64 }{
		{0.28, 1, 1},
		{0.93, 152.3, 6.82},
		{1.7, 0.004, 3.49},
		{-2, 10, 8.9},
	}
	for _, c := range cases {
		want := 0.042 * c.alpha * c.sigma / c.ub
		assert.Equal(t, want, TotalYieldHighEnergy(c.alpha, c.sigma, c.ub))
	}
}

func TestTotalYieldHighEnergyZeroBinding(t *testing.T) {
	assert.True(t, math.IsInf(TotalYieldHighEnergy(1, 1, 0), 1))
	assert.True(t, math.IsNaN(TotalYieldHighEnergy(0, 1, 0)))
}

func TestTotalYieldLowEnergyFactor(t *testing.T) {
	pi2 := math.Pi * math.Pi
	assert.InDelta(t, 3/(pi2*4), TotalYieldLowEnergyFactor(1, 1, 1, 1), 1e-16)

	// symmetric in the masses
	assert.Equal(t, TotalYieldLowEnergyFactor(0.5, 6.82, 12, 99), TotalYieldLowEnergyFactor(0.5, 6.82, 99, 12))
}

func TestTotalYieldLowEnergyLinear(t *testing.T) {
	alpha, ub, m1, m2 := AlphaApos(12, 99), 6.82, 12.0, 99.0
	f := TotalYieldLowEnergyFactor(alpha, ub, m1, m2)
	for _, e := range []float64{0, 1, 68.2, 500, 999.9, -3} {
		assert.Equal(t, f*e, TotalYieldLowEnergy(alpha, ub, m1, m2, e), "e=%v", e)
	}
}

func TestLindhardScreeningLength(t *testing.T) {
	assert.Equal(t, 0.468/math.Sqrt(2), LindhardScreeningLength(1, 1))
	assert.Equal(t, LindhardScreeningLength(2, 45), LindhardScreeningLength(45, 2))

	// heavier partners screen more strongly
	assert.Less(t, LindhardScreeningLength(2, 45), LindhardScreeningLength(2, 6))
}

func TestLindhardScreeningLengthZero(t *testing.T) {
	assert.True(t, math.IsInf(LindhardScreeningLength(0, 0), 1))
	assert.True(t, math.IsNaN(LindhardScreeningLength(-1, -1)))
}

func TestAlphaApos(t *testing.T) {
	assert.Equal(t, 0.28, AlphaApos(1, 1))
	assert.Equal(t, 0.93, AlphaApos(2, 12))
	assert.True(t, math.IsInf(AlphaApos(0, 1), 1))
}

func TestNuclearCrossSectionFactor(t *testing.T) {
	want := constants.ESquared * 4 * math.Pi / 2
	// a is not used
	for _, a := range []float64{0, 1, 0.1234, -7, math.NaN(), math.Inf(1)} {
		assert.InDelta(t, want, NuclearCrossSectionFactor(a, 1, 1, 1, 1), 1e-12, "a=%v", a)
	}
	assert.Equal(t, NuclearCrossSectionFactor(0, 2, 45, 12, 99), NuclearCrossSectionFactor(math.NaN(), 2, 45, 12, 99))
}

func TestReducedEnergyFactor(t *testing.T) {
	assert.InDelta(t, 1/(constants.ESquared*2), ReducedEnergyFactor(1, 1, 1, 1, 1), 1e-16)
}

func TestReducedEnergyLinear(t *testing.T) {
	a := LindhardScreeningLength(2, 45)
	f := ReducedEnergyFactor(a, 2, 45, 12, 99)
	for _, e := range []float64{0, 1, 1000, 5500, 10900} {
		assert.Equal(t, f*e, ReducedEnergy(a, 2, 45, 12, 99, e), "e=%v", e)
	}
}

func TestThomasFermiScreening(t *testing.T) {
	assert.Equal(t, 0.0, ThomasFermiScreening(0))

	want := 3.441 * math.Log(3.718) / (1 + 6.355 + 6.881 - 1.708)
	assert.InDelta(t, want, ThomasFermiScreening(1), 1e-12)

	for _, eps := range []float64{1e-4, 0.01, 0.3, 1, 10, 100} {
		v := ThomasFermiScreening(eps)
		assert.Greater(t, v, 0.0, "eps=%v", eps)
		assert.Less(t, v, 1.0, "eps=%v", eps)
	}
	assert.True(t, math.IsNaN(ThomasFermiScreening(-1)))
}

func TestNuclearCrossSection(t *testing.T) {
	a := LindhardScreeningLength(2, 45)
	fTF := ThomasFermiScreening(0.5)
	want := NuclearCrossSectionFactor(a, 2, 45, 12, 99) * fTF
	assert.Equal(t, want, NuclearCrossSection(a, 2, 45, 12, 99, fTF))
	assert.Equal(t, 0.0, NuclearCrossSection(a, 2, 45, 12, 99, 0))
}

func TestIdempotent(t *testing.T) {
	a := LindhardScreeningLength(2, 45)
	eps := ReducedEnergy(a, 2, 45, 12, 99, 1000)
	fTF := ThomasFermiScreening(eps)
	sigma := NuclearCrossSection(a, 2, 45, 12, 99, fTF)
	alpha := AlphaApos(12, 99)

	for i := 0; i < 3; i++ {
		assert.Equal(t, a, LindhardScreeningLength(2, 45))
		assert.Equal(t, eps, ReducedEnergy(a, 2, 45, 12, 99, 1000))
		assert.Equal(t, fTF, ThomasFermiScreening(eps))
		assert.Equal(t, sigma, NuclearCrossSection(a, 2, 45, 12, 99, fTF))
		assert.Equal(t, alpha, AlphaApos(12, 99))
		assert.Equal(t, TotalYieldHighEnergy(alpha, sigma, 6.82), TotalYieldHighEnergy(alpha, sigma, 6.82))
		assert.Equal(t, TotalYieldLowEnergy(alpha, 6.82, 12, 99, 500), TotalYieldLowEnergy(alpha, 6.82, 12, 99, 500))
	}
}
