// Package sigmund implements Sigmund's total sputtering yield formula and
// the intermediate quantities it is built from.
//
// Every function is a pure computation on float64 values. No input is
// validated: outside a formula's domain (zero masses, zero binding energy,
// zero atomic numbers, negative reduced energy) the result is NaN or ±Inf
// and it propagates to the caller unchanged.
//
// The package does not pick an energy regime. Callers use
// TotalYieldHighEnergy for incident energies above 1 keV and
// TotalYieldLowEnergy for energies below 1 keV and above ten times the
// surface binding energy.
package sigmund

import (
	"math"

	"sputtering/constants"
)

// LindhardScreeningLength returns Lindhard's screening length in Å for the
// atomic numbers of the incident particle z1 and the target z2.
func LindhardScreeningLength(z1, z2 float64) float64 {
	return 0.468 / math.Sqrt(math.Pow(z1, 2.0/3.0)+math.Pow(z2, 2.0/3.0))
}

// AlphaApos returns the dimensionless factor α′ for incident mass m1 and
// target mass m2.
func AlphaApos(m1, m2 float64) float64 {
	return 0.15 + 0.13*m2/m1
}

// NuclearCrossSectionFactor returns the energy independent part of the
// nuclear cross section.
//
// The screening length a is part of the signature but does not enter the
// result.
func NuclearCrossSectionFactor(a, z1, z2, m1, m2 float64) float64 {
	return 4 * math.Pi * z1 * z2 * constants.ESquared * m1 / (m1 + m2)
}

// ReducedEnergyFactor returns the factor that turns an incident energy in eV
// into the dimensionless reduced energy ε.
func ReducedEnergyFactor(a, z1, z2, m1, m2 float64) float64 {
	return (m2 / (m1 + m2)) * (a / (z1 * z2 * constants.ESquared))
}

// ReducedEnergy returns the reduced energy ε for incident energy e in eV.
func ReducedEnergy(a, z1, z2, m1, m2, e float64) float64 {
	return ReducedEnergyFactor(a, z1, z2, m1, m2) * e
}

// ThomasFermiScreening evaluates the Thomas-Fermi nuclear stopping function
// at reduced energy eps. It is zero at eps = 0.
func ThomasFermiScreening(eps float64) float64 {
	sq := math.Sqrt(eps)
	num := 3.441 * sq * math.Log(eps+2.718)
	den := 1 + 6.355*sq + eps*(6.881*sq-1.708)
	return num / den
}

// NuclearCrossSection scales the cross section factor by the screening
// function value fTF.
func NuclearCrossSection(a, z1, z2, m1, m2, fTF float64) float64 {
	return NuclearCrossSectionFactor(a, z1, z2, m1, m2) * fTF
}

// TotalYieldHighEnergy is Sigmund's total yield for incident energies above
// 1 keV, in atoms per incident ion.
//
// sigma is the nuclear cross section and ub the surface binding energy of
// the target in eV.
func TotalYieldHighEnergy(alphaApos, sigma, ub float64) float64 {
	return 0.042 * alphaApos * sigma / ub
}

// TotalYieldLowEnergyFactor is the energy independent part of
// TotalYieldLowEnergy.
func TotalYieldLowEnergyFactor(alphaApos, ub, m1, m2 float64) float64 {
	return (3 / (math.Pi * math.Pi)) * (alphaApos / ub) * (m1 * m2 / ((m1 + m2) * (m1 + m2)))
}

// TotalYieldLowEnergy is Sigmund's total yield for incident energies e below
// 1 keV and above 10·ub. The yield is linear in e.
func TotalYieldLowEnergy(alphaApos, ub, m1, m2, e float64) float64 {
	return TotalYieldLowEnergyFactor(alphaApos, ub, m1, m2) * e
}
