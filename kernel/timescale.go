package kernel

import "github.com/orbitaldeck/astrokernel/timescale"

// UTCToTTJD converts a UTC Julian date to a Terrestrial Time Julian
// date. Non-finite input yields NaN.
func UTCToTTJD(jdUTC float64) float64 {
	if !isFinite(jdUTC) {
		return nan()
	}
	return timescale.UTCToTTJD(jdUTC)
}

// TTToUTCJD converts a Terrestrial Time Julian date to a UTC Julian
// date. Non-finite input yields NaN.
func TTToUTCJD(jdTT float64) float64 {
	if !isFinite(jdTT) {
		return nan()
	}
	return timescale.TTToUTCJD(jdTT)
}

func setTAIMinusUTCOverride(seconds float64) {
	if isFinite(seconds) && seconds >= 0 {
		timescale.SetTAIMinusUTCOverride(seconds)
		return
	}
	timescale.ClearTAIMinusUTCOverride()
}

func clearTAIMinusUTCOverride() {
	timescale.ClearTAIMinusUTCOverride()
}
