package terrain

import "sort"

// LoadSet is the set of chunk coordinates that should be materialized.
// It is rebuilt wholesale on every Recompute, never patched.
type LoadSet struct {
	coords map[ChunkCoord]struct{}
	center ChunkCoord
	radius int
}

// NewLoadSet creates an empty set
func NewLoadSet() *LoadSet {
	return &LoadSet{coords: make(map[ChunkCoord]struct{})}
}

// Recompute replaces the set with the square neighborhood of center.
// radius is inclusive, giving (2r+1)^2 coordinates.
func (s *LoadSet) Recompute(center ChunkCoord, radius int) {
	if radius < 0 {
		radius = 0
	}
	side := 2*radius + 1
	coords := make(map[ChunkCoord]struct{}, side*side)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			coords[center.Add(dx, dy)] = struct{}{}
		}
	}
	s.coords = coords
	s.center = center
	s.radius = radius
}

// Contains reports whether c is wanted
func (s *LoadSet) Contains(c ChunkCoord) bool {
	_, ok := s.coords[c]
	return ok
}

// Len returns the number of wanted chunks
func (s *LoadSet) Len() int { return len(s.coords) }

// Center returns the chunk the set was last computed around
func (s *LoadSet) Center() ChunkCoord { return s.center }

// Radius returns the radius the set was last computed with
func (s *LoadSet) Radius() int { return s.radius }

// Coords returns the wanted coordinates sorted by Y then X
func (s *LoadSet) Coords() []ChunkCoord {
	out := make([]ChunkCoord, 0, len(s.coords))
	for c := range s.coords {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
