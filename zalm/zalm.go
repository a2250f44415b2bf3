// Package zalm implements Zalm's closed form total sputtering yield.
//
// Unless otherwise specified lengths are in Å, energies in eV and masses in
// amu.
package zalm

import "math"

// TotalYieldHighEnergy returns Zalm's total yield in atoms per incident ion.
//
// z1 and z2 are the atomic numbers of the incident particle and the target,
// ub is the surface binding energy of the target and eps the reduced
// energy. The model does not derive eps itself; pass one computed with
// sigmund.ReducedEnergy so both models see the same value. Inputs are not
// checked: ub = 0 or eps < 0 yield NaN or ±Inf.
func TotalYieldHighEnergy(z1, z2, ub, eps float64) float64 {
	f1 := math.Pow(z1*z2, 5.0/6.0) / (3.0 * ub)
	f2 := 0.5 * math.Log(1.0+eps) / (eps + 0.14*math.Pow(eps, 0.42))
	return f1 * f2
}
