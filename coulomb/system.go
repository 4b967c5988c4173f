package coulomb

import (
	"fmt"
	"math"
)

// System is an atomic structure: one atomic number and one Cartesian
// position (in Ångström) per atom.
type System struct {
	Numbers   []int
	Positions [][3]float64
}

// NAtoms returns the number of atoms in the system.
func (s System) NAtoms() int { return len(s.Numbers) }

func (s System) validate() error {
	if len(s.Numbers) != len(s.Positions) {
		return fmt.Errorf("%w: %d atomic numbers but %d positions",
			ErrMalformedSystem, len(s.Numbers), len(s.Positions))
	}
	return nil
}

// distance returns the Euclidean distance between atoms i and j.
func (s System) distance(i, j int) float64 {
	dx := s.Positions[i][0] - s.Positions[j][0]
	dy := s.Positions[i][1] - s.Positions[j][1]
	dz := s.Positions[i][2] - s.Positions[j][2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
