package layout

import "sort"

// Allocate divides extent cells between siblings described by dims.
//
// Every child receives at least its Min (unless the minimums alone exceed
// extent, in which case children are shrunk toward zero in ascending-weight
// order). Space beyond the minimums is handed out round-robin, weight cells
// per turn, so two children with weights 1 and 2 end up sized 1:2 exactly.
// No child is ever grown past its Max; if every child saturates its Max the
// remainder is left unassigned and the caller paints it as decoration.
//
// The returned slice always has len(dims) entries summing to at most extent.
func Allocate(extent int, dims []Dimension) []int {
	sizes := make([]int, len(dims))
	if extent <= 0 || len(dims) == 0 {
		return sizes
	}

	total := 0
	for i, d := range dims {
		sizes[i] = d.Min
		total += d.Min
	}

	if total > extent {
		shrink(extent, total, sizes, dims)
		return sizes
	}

	remaining := extent - total
	for remaining > 0 {
		progressed := false
		for i, d := range dims {
			if remaining == 0 {
				break
			}
			if d.Weight <= 0 || sizes[i] >= d.Max {
				continue
			}
			grant := min(d.Weight, min(remaining, d.Max-sizes[i]))
			sizes[i] += grant
			remaining -= grant
			progressed = true
		}
		if !progressed {
			break // everyone saturated; remainder becomes decoration
		}
	}
	return sizes
}

// shrink resolves minimum overflow: children give space back in ascending
// weight order, down to a floor of zero, until the sizes fit.
func shrink(extent, total int, sizes []int, dims []Dimension) {
	order := make([]int, len(dims))
	for i := range order {
		order[i] = i
	}
	// Lowest weight loses space first; between equal weights the later
	// child is shrunk first.
	sort.SliceStable(order, func(a, b int) bool {
		if dims[order[a]].Weight != dims[order[b]].Weight {
			return dims[order[a]].Weight < dims[order[b]].Weight
		}
		return order[a] > order[b]
	})

	excess := total - extent
	for _, i := range order {
		if excess == 0 {
			return
		}
		cut := min(sizes[i], excess)
		sizes[i] -= cut
		excess -= cut
	}
}
