// Package constants holds the physical constants shared by the yield models.
//
// Unless stated otherwise lengths are in Å, energies in eV and masses in amu.
package constants

// ESquared is the squared elementary charge e² in eV·Å.
const ESquared float64 = 14.4

// KeV is one kiloelectronvolt in eV.
const KeV float64 = 1000
