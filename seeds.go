package strokeseg

// SlowClusterRadius is the distance within which consecutive slow points
// are merged into one, keeping the slower of the two.
const SlowClusterRadius = 20.0

// SlowPoints returns the indices of samples slower than speedMultiplier
// times the mean speed of the stroke, in stroke order.
//
// A slow point closer than SlowClusterRadius to the previously retained one
// replaces it only if it is strictly slower; otherwise it is dropped. Runs
// of slow samples therefore collapse onto their local speed minimum.
func SlowPoints(stroke Stroke, speedMultiplier float64) []int {
	threshold := speedMultiplier * stroke.MeanSpeed()

	var slow []int
	for i := 0; i < stroke.Len(); i++ {
		smp := stroke.At(i)
		if smp.Speed >= threshold {
			continue
		}
		if len(slow) == 0 {
			slow = append(slow, i)
			continue
		}
		last := slow[len(slow)-1]
		prev := stroke.At(last)
		if prev.Point().Distance(smp.Point()) < SlowClusterRadius {
			if prev.Speed > smp.Speed {
				slow[len(slow)-1] = i
			}
			continue
		}
		slow = append(slow, i)
	}
	return slow
}

// FastPoints returns, for each consecutive pair of slow points, the index
// of the fastest sample between them (both ends included). Pairs without
// interior samples, or whose samples all have zero speed, yield nothing.
// Consecutive duplicates are collapsed.
func FastPoints(stroke Stroke, slow []int) []int {
	var fast []int
	for k := 1; k < len(slow); k++ {
		from, to := slow[k-1], slow[k]
		if to-from < 2 {
			continue
		}
		best := -1
		bestSpeed := 0.0
		for i := from; i <= to; i++ {
			if sp := stroke.At(i).Speed; sp > bestSpeed {
				best = i
				bestSpeed = sp
			}
		}
		if best < 0 {
			continue
		}
		if len(fast) > 0 && fast[len(fast)-1] == best {
			continue
		}
		fast = append(fast, best)
	}
	return fast
}

// Seeds returns the region seeds of a stroke: the fast points between its
// slow points.
func Seeds(stroke Stroke, speedMultiplier float64) []int {
	return FastPoints(stroke, SlowPoints(stroke, speedMultiplier))
}
