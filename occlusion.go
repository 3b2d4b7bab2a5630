package pie3d

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// RoundedRule selects which slices form the second rounded-wall block, the
// walls of the front-left quarter painted after the front-right ones.
type RoundedRule int

const (
	// RoundedCovering takes every slice starting in [0, π) that is not
	// already in the first block. The clamped arcs of both blocks then tile
	// the front half [0, π] exactly, including a slice that straddles π/2.
	RoundedCovering RoundedRule = iota

	// RoundedStartStop takes slices starting in [π/2, π) whose stop lies
	// past π/2.
	RoundedStartStop

	// RoundedStartOnly takes slices starting in [π/2, π). A slice that
	// straddles π/2 gets no rounded wall.
	RoundedStartOnly
)

var roundedRuleNames = [...]string{
	RoundedCovering:  "covering",
	RoundedStartStop: "start-stop",
	RoundedStartOnly: "start-only",
}

// String returns the string representation of a RoundedRule.
func (r RoundedRule) String() string {
	if r >= 0 && int(r) < len(roundedRuleNames) {
		return roundedRuleNames[r]
	}
	return "Unknown"
}

// ParseRoundedRule parses "covering", "start-stop" or "start-only".
func ParseRoundedRule(s string) (RoundedRule, error) {
	for i, name := range roundedRuleNames {
		if name == s {
			return RoundedRule(i), nil
		}
	}
	return RoundedCovering, fmt.Errorf("%w: unknown rounded rule %q", ErrInvalidConfig, s)
}

// Order lists, back to front, the slices whose side walls are visible.
// Entries are indices into the geometry slice given to ResolveOrder.
type Order struct {
	// Start holds slices whose leading flat wall faces the viewer.
	Start []int
	// Stop holds slices whose trailing flat wall faces the viewer.
	Stop []int
	// Rounded holds slices whose curved front wall is visible.
	Rounded []int
}

// ResolveOrder computes the painter's-algorithm order of the side walls
// from the canonical angles of each slice. Ties keep input order.
//
// Start walls are the slices starting in the left half (π/2, 3π/2), painted
// from the largest angle down. Stop walls are the slices stopping in the
// right half (3π/2, 2π] ∪ [0, π/2), painted with increasing angle once the
// [0, π/2) part is moved past 2π. Rounded walls are two consecutive blocks:
// slices stopping in (0, π/2] by increasing stop, then the block chosen by
// rule by decreasing start.
func ResolveOrder(geoms []Geometry, rule RoundedRule) Order {
	var o Order

	for i := range geoms {
		if inStartWalls(&geoms[i]) {
			o.Start = append(o.Start, i)
		}
	}
	slices.SortStableFunc(o.Start, func(a, b int) int {
		return cmp.Compare(geoms[b].CanonStart, geoms[a].CanonStart)
	})

	for i := range geoms {
		if _, ok := stopWallKey(&geoms[i]); ok {
			o.Stop = append(o.Stop, i)
		}
	}
	slices.SortStableFunc(o.Stop, func(a, b int) int {
		ka, _ := stopWallKey(&geoms[a])
		kb, _ := stopWallKey(&geoms[b])
		return cmp.Compare(ka, kb)
	})

	var right, left []int
	for i := range geoms {
		g := &geoms[i]
		switch {
		case inRoundedRight(g):
			right = append(right, i)
		case inRoundedLeft(g, rule):
			left = append(left, i)
		}
	}
	slices.SortStableFunc(right, func(a, b int) int {
		return cmp.Compare(geoms[a].CanonStop, geoms[b].CanonStop)
	})
	slices.SortStableFunc(left, func(a, b int) int {
		return cmp.Compare(geoms[b].CanonStart, geoms[a].CanonStart)
	})
	o.Rounded = append(right, left...)

	return o
}

func inStartWalls(g *Geometry) bool {
	return g.CanonStart > halfPi && g.CanonStart < threeHalfPi
}

// stopWallKey returns the sort key of a visible stop wall.
func stopWallKey(g *Geometry) (float64, bool) {
	switch a := g.CanonStop; {
	case a > threeHalfPi && a <= twoPi:
		return a, true
	case a >= 0 && a < halfPi:
		return a + twoPi, true
	}
	return 0, false
}

// inRoundedRight is the first rounded block: walls ending in the
// front-right quarter.
func inRoundedRight(g *Geometry) bool {
	return g.CanonStop > 0 && g.CanonStop <= halfPi
}

// inRoundedLeft is the second rounded block. Callers check the first block
// before this one so a slice never lands in both.
func inRoundedLeft(g *Geometry, rule RoundedRule) bool {
	switch rule {
	case RoundedStartStop:
		return g.CanonStart >= halfPi && g.CanonStart < math.Pi && g.frontStop() > halfPi
	case RoundedStartOnly:
		return g.CanonStart >= halfPi && g.CanonStart < math.Pi
	default:
		return g.CanonStart >= 0 && g.CanonStart < math.Pi
	}
}

// roundedSpan returns the clamped angles a rounded wall is traced between:
// walls starting in the back half start at the front-right edge (2π), and
// walls stopping past π stop at the front-left edge.
func roundedSpan(g *Geometry) (start, stop float64, clampedStop bool) {
	start = g.Start
	if g.CanonStart >= math.Pi && g.CanonStart < twoPi {
		start = twoPi
	}
	stop = g.Stop
	if g.frontStop() > math.Pi {
		stop = math.Pi
		clampedStop = true
	}
	return start, stop, clampedStop
}
