package models

// AltlocPolicy selects how alternate-location atoms are handled when a
// structure is imported from the engine.
type AltlocPolicy string

const (
	// AltlocFirst keeps, per residue, only atoms bearing the first altloc ID
	// encountered in that residue.
	AltlocFirst AltlocPolicy = "first"
	// AltlocOccupancy keeps, per residue, only the atoms with the highest
	// occupancy.
	AltlocOccupancy AltlocPolicy = "occupancy"
	// AltlocAll keeps every atom, including altloc duplicates.
	AltlocAll AltlocPolicy = "all"
)

// residueID identifies one residue within a structure.
type residueID struct {
	chain string
	res   int
	ins   string
}

// FilterFirstAltloc returns a mask keeping atoms whose altloc ID is empty or
// equal to the first non-empty altloc ID encountered in their residue.
func FilterFirstAltloc(chainID []string, resID []int, insCode []string, altlocID []string) []bool {
	keep := make([]bool, len(chainID))
	first := make(map[residueID]string)
	for i := range chainID {
		alt := ""
		if altlocID != nil {
			alt = altlocID[i]
		}
		if alt == "" || alt == "." {
			keep[i] = true
			continue
		}
		key := residueID{chainID[i], resID[i], insCode[i]}
		if f, ok := first[key]; ok {
			keep[i] = f == alt
		} else {
			first[key] = alt
			keep[i] = true
		}
	}
	return keep
}

// FilterHighestOccupancyAltloc returns a mask keeping atoms whose altloc ID
// is empty or whose occupancy equals the maximum among altloc-tagged atoms of
// their residue. Without occupancy values it falls back to FilterFirstAltloc.
func FilterHighestOccupancyAltloc(
	chainID []string, resID []int, insCode []string, altlocID []string, occupancy []float64,
) []bool {
	if occupancy == nil {
		return FilterFirstAltloc(chainID, resID, insCode, altlocID)
	}

	maxOcc := make(map[residueID]float64)
	for i := range chainID {
		alt := ""
		if altlocID != nil {
			alt = altlocID[i]
		}
		if alt == "" || alt == "." {
			continue
		}
		key := residueID{chainID[i], resID[i], insCode[i]}
		if occ, ok := maxOcc[key]; !ok || occupancy[i] > occ {
			maxOcc[key] = occupancy[i]
		}
	}

	keep := make([]bool, len(chainID))
	for i := range chainID {
		alt := ""
		if altlocID != nil {
			alt = altlocID[i]
		}
		if alt == "" || alt == "." {
			keep[i] = true
			continue
		}
		key := residueID{chainID[i], resID[i], insCode[i]}
		keep[i] = occupancy[i] == maxOcc[key]
	}
	return keep
}
