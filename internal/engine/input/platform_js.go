//go:build js

package input

// DetectedPlatform returns the platform flags for browser builds, which
// always pan and zoom with the mouse.
func DetectedPlatform(touchSupported bool) Platform {
	return Platform{TouchSupported: touchSupported, Browser: true}
}
