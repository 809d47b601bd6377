//go:build !linux

package pointer

// Open reports ErrNoPointerDevice on platforms without evdev support.
// Pointer input is Linux-only; hosts fall back to a static cursor.
func Open(device string) (Source, error) {
	return nil, ErrNoPointerDevice
}

// Discover reports ErrNoPointerDevice on platforms without evdev support.
func Discover() (string, error) {
	return "", ErrNoPointerDevice
}
