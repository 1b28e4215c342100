package generation

// RNG is a seeded random number generator with a single 32-bit state.
// Every draw advances the state by one fixed integer mix and derives one
// float from it, so identical seeds yield identical streams on every
// platform. Generators thread one instance explicitly; there is no
// package-level randomness.
type RNG struct {
	state uint32
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{state: uint32(seed)}
}

// next advances the state and returns the mixed 32-bit value.
func (r *RNG) next() uint32 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns a pseudo-random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.next()) / 4294967296.0
}

// Intn returns a pseudo-random int in [0, n), or 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}

// IntRange returns a pseudo-random int in [min, max].
func (r *RNG) IntRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}

// Pick returns a random element from a slice.
func (r *RNG) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[r.Intn(len(items))]
}

// Shuffle randomly reorders n elements through the swap callback.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}
