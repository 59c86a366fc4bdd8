package layout

import "fmt"

// MaxSize is the stand-in for "no declared maximum". It is large enough to
// never constrain a real terminal but small enough that summing dimensions
// cannot overflow.
const MaxSize = 1 << 24

// Dimension describes how a node may be sized along one axis.
//
// The allocator honors Min first, then shares remaining space between
// siblings proportionally to Weight, never exceeding Max. Preferred is the
// size a node reports upward when it is not competing for space (e.g. the
// natural height of its content).
type Dimension struct {
	Min       int
	Preferred int
	Max       int
	Weight    int
}

// Flex returns a Dimension with no constraints and weight 1: any size from
// zero up, competing equally with its siblings.
func Flex() Dimension {
	return Dimension{Max: MaxSize, Weight: 1}
}

// Exact returns a Dimension fixed to exactly n cells.
func Exact(n int) Dimension {
	return Dimension{Min: n, Preferred: n, Max: n, Weight: 1}
}

// Zero returns a Dimension representing no size, used for hidden nodes.
func Zero() Dimension {
	return Dimension{}
}

// Range returns a Dimension bounded by min and max with the given preferred
// size and weight 1.
func Range(min, preferred, max int) Dimension {
	return Dimension{Min: min, Preferred: preferred, Max: max, Weight: 1}
}

// WithWeight returns a copy of d with the given weight.
func (d Dimension) WithWeight(w int) Dimension {
	d.Weight = w
	return d
}

// IsZero returns true if this Dimension represents no size at all.
// Zero-size nodes are skipped when combining sibling dimensions so that an
// invisible node does not shrink its siblings.
func (d Dimension) IsZero() bool {
	return d.Preferred == 0 && d.Max == 0
}

// IsExact returns true if the dimension admits exactly one size.
func (d Dimension) IsExact() bool {
	return d.Min == d.Max
}

// Validate reports a configuration that no allocation can satisfy.
// The returned Dimension is a clamped best effort that the caller can keep
// painting with; the error is for reporting only.
func (d Dimension) Validate() (Dimension, error) {
	fixed := d
	var err error
	switch {
	case d.Min < 0 || d.Max < 0 || d.Preferred < 0:
		err = fmt.Errorf("layout: negative dimension %+v", d)
		fixed.Min = max(fixed.Min, 0)
		fixed.Max = max(fixed.Max, 0)
		fixed.Preferred = max(fixed.Preferred, 0)
	case d.Min > d.Max:
		err = fmt.Errorf("layout: dimension minimum %d exceeds maximum %d", d.Min, d.Max)
		fixed.Max = fixed.Min
	}
	if fixed.Preferred < fixed.Min {
		fixed.Preferred = fixed.Min
	}
	if fixed.Preferred > fixed.Max {
		fixed.Preferred = fixed.Max
	}
	if fixed.Weight < 0 {
		fixed.Weight = 0
	}
	return fixed, err
}

// Clamp restricts n to the dimension's [Min, Max] interval.
func (d Dimension) Clamp(n int) int {
	if n < d.Min {
		n = d.Min
	}
	if n > d.Max {
		n = d.Max
	}
	return n
}

// Sum combines dimensions along an axis (stacked children).
func Sum(dims []Dimension) Dimension {
	var out Dimension
	for _, d := range dims {
		out.Min += d.Min
		out.Preferred += d.Preferred
		out.Max += d.Max
	}
	if out.Max > MaxSize {
		out.Max = MaxSize
	}
	out.Weight = 1
	return out
}

// Max combines dimensions across an axis (side-by-side children sharing the
// cross extent). Zero-size dimensions are ignored so invisible children do
// not constrain the rest; if all are zero the result is zero.
func Max(dims []Dimension) Dimension {
	visible := make([]Dimension, 0, len(dims))
	for _, d := range dims {
		if !d.IsZero() {
			visible = append(visible, d)
		}
	}
	if len(visible) == 0 {
		if len(dims) == 0 {
			return Flex()
		}
		return dims[0]
	}

	out := Dimension{Max: MaxSize, Weight: 1}
	for i, d := range visible {
		if i == 0 || d.Min > out.Min {
			out.Min = d.Min
		}
		if i == 0 || d.Preferred > out.Preferred {
			out.Preferred = d.Preferred
		}
		if i == 0 || d.Max < out.Max {
			out.Max = d.Max
		}
	}
	// Children with conflicting constraints can leave min above max;
	// the larger min wins so no content is squeezed to nothing.
	if out.Max < out.Min {
		out.Max = out.Min
	}
	if out.Preferred > out.Max {
		out.Preferred = out.Max
	}
	return out
}
