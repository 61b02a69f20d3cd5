package random

// Scripted replays fixed values, for tests that need exact rolls. Floats and
// Ints are consumed independently and wrap around when exhausted. IntN values
// are reduced modulo n so a script never produces an out-of-range result.
type Scripted struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

// Float64 returns the next scripted float, or 0 when none are scripted.
func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

// IntN returns the next scripted int modulo n, or 0 when none are scripted.
func (s *Scripted) IntN(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	if v < 0 {
		v = -v
	}
	return v % n
}
