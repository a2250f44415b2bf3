package zalm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalYieldHighEnergy(t *testing.T) {
	want := (1.0 / 3.0) * 0.5 * math.Log(2) / 1.14
	assert.InDelta(t, want, TotalYieldHighEnergy(1, 1, 1, 1), 5e-5)
}

func TestTotalYieldHighEnergyScaling(t *testing.T) {
	base := TotalYieldHighEnergy(2, 45, 6.82, 0.2)

	// inversely proportional to the binding energy
	assert.InDelta(t, base/2, TotalYieldHighEnergy(2, 45, 13.64, 0.2), 1e-12)
	// symmetric in the atomic numbers
	assert.Equal(t, base, TotalYieldHighEnergy(45, 2, 6.82, 0.2))
}

func TestTotalYieldHighEnergyDomain(t *testing.T) {
	assert.True(t, math.IsInf(TotalYieldHighEnergy(1, 1, 0, 1), 1))
	assert.True(t, math.IsNaN(TotalYieldHighEnergy(1, 1, 1, -0.5)))
	assert.True(t, math.IsNaN(TotalYieldHighEnergy(1, 1, 1, 0)))
}

func TestTotalYieldHighEnergyIdempotent(t *testing.T) {
	v := TotalYieldHighEnergy(2, 45, 6.82, 0.013)
	for i := 0; i < 3; i++ {
		assert.Equal(t, v, TotalYieldHighEnergy(2, 45, 6.82, 0.013))
	}
}
