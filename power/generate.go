package power

import "sort"

// Generate produces at least targetCount distinct power triplets.
//
// The search radius delta grows by one each round. For every power p in the
// table and i in {delta, -delta}, the complement j = p - i already sums to a
// power; every k in [-delta, delta] that makes i+k and j+k powers of two
// completes a triplet. The final round keeps all matches found at that
// radius, so the result may overshoot targetCount.
//
// The result is sorted by (A, B, C) and then rotated left by 3/5 of its
// length. Rotation interleaves small- and large-magnitude triplets so that a
// later contiguous partitioning of the pool does not starve any partition of
// variety.
func Generate(table *Table, targetCount int) []Triplet {
	seen := make(map[Triplet]struct{})

	for delta := int64(1); len(seen) < targetCount; delta++ {
		for _, p := range table.Powers() {
			for _, i := range [2]int64{delta, -delta} {
				j := p - i
				if i == j {
					continue
				}

				for k := -delta; k <= delta; k++ {
					if k == 0 || k == i || k == j {
						continue
					}

					if IsPowerOfTwo(i+k) && IsPowerOfTwo(j+k) {
						seen[NewTriplet(i, j, k)] = struct{}{}
					}
				}
			}
		}
	}

	triplets := make([]Triplet, 0, len(seen))
	for tri := range seen {
		triplets = append(triplets, tri)
	}

	sort.Slice(triplets, func(i, j int) bool {
		return triplets[i].Less(triplets[j])
	})

	return rotate(triplets, len(triplets)*3/5)
}

// rotate moves the first mid elements to the end.
func rotate(triplets []Triplet, mid int) []Triplet {
	if len(triplets) == 0 {
		return triplets
	}

	rotated := make([]Triplet, 0, len(triplets))
	rotated = append(rotated, triplets[mid:]...)
	rotated = append(rotated, triplets[:mid]...)

	return rotated
}
