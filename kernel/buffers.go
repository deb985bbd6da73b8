// Package kernel assembles the per-frame state bundle, solves for the
// next winter solstice, and exposes the auxiliary ephemeris primitives —
// each behind its own thread-local buffer so the hot path never
// allocates and so one entry point's buffer is never invalidated by a
// call to a different entry point.
package kernel

import "github.com/orbitaldeck/astrokernel/internal/tls"

func newStore2() *tls.Store[[2]float64] {
	return tls.NewStore(func() *[2]float64 { return &[2]float64{} })
}

func newStore3() *tls.Store[[3]float64] {
	return tls.NewStore(func() *[3]float64 { return &[3]float64{} })
}

func newStore8() *tls.Store[[8]float64] {
	return tls.NewStore(func() *[8]float64 { return &[8]float64{} })
}

// One store per auxiliary entry point. Declaring them individually (rather
// than keying a shared map by name) keeps every buffer's identity static
// and avoids any data race on first use from concurrent goroutines.
var (
	frameStore = tls.NewStore(func() *[11]float64 { return &[11]float64{} })

	sunPositionStore      = newStore3()
	moonPositionStore     = newStore3()
	planetPositionStore   = newStore3()
	plutoPositionStore    = newStore3()
	nutationStore         = newStore2()
	orbitalElementsStore  = newStore8()
	precessionEclStore    = newStore2()
	precessionEquStore    = newStore2()
	equatorialStore       = newStore2()
)
