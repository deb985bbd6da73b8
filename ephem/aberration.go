package ephem

// AnnualAberrationLongitude returns the classical scalar correction to
// ecliptic longitude from annual aberration, in radians, given the Sun's
// distance from Earth in AU. This is the simple −20.49552″/R correction
// (the constant of aberration divided by the instantaneous Sun-Earth
// distance), not the full relativistic vector aberration: the kernel only
// ever applies it to the Sun's apparent longitude inside the solstice
// solver, where the scalar form is exactly what's wanted.
func AnnualAberrationLongitude(sunDistanceAU float64) float64 {
	const constantOfAberrationArcsec = -20.49552
	return (constantOfAberrationArcsec / sunDistanceAU) * arcsec2rad
}
