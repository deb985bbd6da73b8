package ephem

import (
	"math"
	"testing"
)

func TestSunSemidiameterAtOneAU(t *testing.T) {
	sd := SunSemidiameter(1.0)
	wantRad := 959.63 * arcsec2rad
	if math.Abs(sd-wantRad) > 1e-12 {
		t.Errorf("SunSemidiameter(1.0) = %e rad, want %e rad", sd, wantRad)
	}
}

func TestPlanetSemidiameterOutOfRangeIsZero(t *testing.T) {
	if sd := PlanetSemidiameter(Planet(-1), 1.0); sd != 0 {
		t.Errorf("PlanetSemidiameter(-1, 1.0) = %f, want 0", sd)
	}
	if sd := PlanetSemidiameter(Planet(8), 1.0); sd != 0 {
		t.Errorf("PlanetSemidiameter(8, 1.0) = %f, want 0", sd)
	}
}

func TestPlanetSemidiameterDecreasesWithDistance(t *testing.T) {
	near := PlanetSemidiameter(Jupiter, 4.0)
	far := PlanetSemidiameter(Jupiter, 8.0)
	if far >= near {
		t.Errorf("PlanetSemidiameter(Jupiter) at 8 AU (%e) should be smaller than at 4 AU (%e)", far, near)
	}
}

func TestMoonSemidiameterAtMeanDistance(t *testing.T) {
	sd := MoonSemidiameter(385000.56)
	sdArcmin := sd * rad2deg * 60
	if sdArcmin < 15 || sdArcmin > 16 {
		t.Errorf("MoonSemidiameter(385000.56) = %f arcmin, want ~15.5", sdArcmin)
	}
}

func TestMoonHorizontalParallaxAtMeanDistance(t *testing.T) {
	p := MoonHorizontalParallax(385000.56)
	pArcmin := p * rad2deg * 60
	if pArcmin < 56.5 || pArcmin > 57.5 {
		t.Errorf("MoonHorizontalParallax(385000.56) = %f arcmin, want ~56.95", pArcmin)
	}
}

func TestAsinSafeClampsOutOfDomain(t *testing.T) {
	if v := asinSafe(1.5); math.Abs(v-math.Pi/2) > 1e-12 {
		t.Errorf("asinSafe(1.5) = %f, want π/2 (clamped)", v)
	}
	if v := asinSafe(-1.5); math.Abs(v+math.Pi/2) > 1e-12 {
		t.Errorf("asinSafe(-1.5) = %f, want -π/2 (clamped)", v)
	}
}
