package segment

import (
	"math"
	"sort"
)

// ReassignAll atomically applies a batch of label reassignments: every
// coordinate carrying a source label is retagged to that label's final
// destination, the destinations' statistics are recombined exactly
// (count-weighted mean, pooled second moments), and the source labels are
// dropped from the label set.
//
// plan maps each label to remove onto the label that absorbs it. Chains
// (a→b while b→c) are allowed and resolved iteratively; cycles and
// self-mappings yield ErrBadPlan, unknown labels ErrUnknownLabel. All
// validation happens before any mutation, so a failed call leaves the
// Result untouched.
// Complexity: O(P + L) — one retag pass plus per-label stat folding.
func (r *Result) ReassignAll(plan map[Label]Label) error {
	if len(plan) == 0 {
		return nil
	}
	for from, to := range plan {
		if from == to {
			return ErrBadPlan
		}
		if _, ok := r.stats[from]; !ok {
			return ErrUnknownLabel
		}
		if _, ok := r.stats[to]; !ok {
			return ErrUnknownLabel
		}
	}

	// Resolve each source to its final, surviving destination.
	resolved := make(map[Label]Label, len(plan))
	for from := range plan {
		seen := map[Label]bool{from: true}
		to := plan[from]
		for {
			next, ok := plan[to]
			if !ok {
				break
			}
			if seen[to] {
				return ErrBadPlan
			}
			seen[to] = true
			to = next
		}
		resolved[from] = to
	}

	// Group sources per destination and fold their stats in ascending
	// label order so repeated runs recombine identically.
	sources := make(map[Label][]Label)
	for from, to := range resolved {
		sources[to] = append(sources[to], from)
	}
	merged := make(map[Label]RegionStats, len(sources))
	for to, froms := range sources {
		sort.Slice(froms, func(i, j int) bool { return froms[i] < froms[j] })
		acc := r.stats[to]
		for _, from := range froms {
			acc = mergeStats(acc, r.stats[from])
		}
		merged[to] = acc
	}

	// Commit: retag the dense map, then swap the stats entries.
	for i, l := range r.labels {
		if to, ok := resolved[l]; ok {
			r.labels[i] = to
		}
	}
	for from := range resolved {
		delete(r.stats, from)
	}
	for to, st := range merged {
		r.stats[to] = st
	}

	return nil
}

// mergeStats combines two regions' statistics exactly using the pairwise
// update of Chan et al.: counts add, means recombine count-weighted, and
// second moments pool with the between-means correction term.
func mergeStats(dst, src RegionStats) RegionStats {
	na, nb := float64(dst.Count), float64(src.Count)
	n := na + nb
	delta := src.Mean - dst.Mean

	out := RegionStats{
		Label: dst.Label,
		Count: dst.Count + src.Count,
		Mean:  dst.Mean + delta*nb/n,
	}
	m2 := secondMoment(dst) + secondMoment(src) + delta*delta*na*nb/n
	if out.Count > 1 {
		out.StdDev = math.Sqrt(m2 / float64(out.Count-1))
	}

	return out
}

// secondMoment recovers Σ(x−mean)² from a sample standard deviation.
func secondMoment(s RegionStats) float64 {
	if s.Count > 1 {
		return s.StdDev * s.StdDev * float64(s.Count-1)
	}

	return 0
}
