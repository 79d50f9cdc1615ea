// Package common holds the scheme registry, the compiled-map type, and the
// other primitives shared by the detector, engines, and aksara analyzer.
package common

import (
	"github.com/rs/zerolog"
)

// logger is the package-level logger of common.
var logger zerolog.Logger = zerolog.Nop()

// SetLogger installs l as the package-level logger. Call it once at startup;
// the default is a no-op logger so the library is silent unless configured.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// GetLogger returns the currently installed package-level logger.
func GetLogger() zerolog.Logger {
	return logger
}