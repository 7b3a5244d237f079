package combat

// Status names a per-actor modifier tracked as an integer magnitude.
type Status string

const (
	StatusStrength   Status = "strength"
	StatusDexterity  Status = "dexterity"
	StatusVulnerable Status = "vulnerable"
	StatusWeak       Status = "weak"
	StatusPoison     Status = "poison"
	StatusRitual     Status = "ritual"
)

// StatusSet maps status names to magnitudes. An absent key reads as 0
// and stored magnitudes never go below 0: decrements that would cross
// zero clamp and drop the key.
type StatusSet map[Status]int

func NewStatusSet() StatusSet {
	return make(StatusSet)
}

// Get returns the magnitude for a status, 0 when absent.
func (s StatusSet) Get(status Status) int {
	return s[status]
}

// Add raises (or, with a negative value, lowers) a status magnitude,
// clamping the stored result at 0. Returns the new magnitude.
func (s StatusSet) Add(status Status, value int) int {
	next := s[status] + value
	if next <= 0 {
		delete(s, status)
		return 0
	}
	s[status] = next
	return next
}

// Decay lowers a status magnitude by one, clamping at 0.
func (s StatusSet) Decay(status Status) int {
	return s.Add(status, -1)
}

// Clear removes every status.
func (s StatusSet) Clear() {
	for k := range s {
		delete(s, k)
	}
}
