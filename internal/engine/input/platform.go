//go:build !js

package input

// DetectedPlatform returns the platform flags for native builds.
// Touch support is reported by the host window layer.
func DetectedPlatform(touchSupported bool) Platform {
	return Platform{TouchSupported: touchSupported}
}
