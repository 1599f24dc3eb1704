// Package options holds validation helpers shared by packages that
// expose functional options.
package options

import "errors"

// ValidateSingleInputSource checks that exactly one input source was
// selected. Each entry in sources reports whether one particular source
// was set; the two messages become the error text for the zero-source
// and multi-source cases.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	selected := 0
	for _, isSet := range sources {
		if isSet {
			selected++
		}
	}
	switch {
	case selected == 0:
		return errors.New(noSourceMsg)
	case selected > 1:
		return errors.New(multiSourceMsg)
	}
	return nil
}
