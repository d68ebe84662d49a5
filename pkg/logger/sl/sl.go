// Package sl holds small slog attribute helpers shared across the service.
package sl

import "log/slog"

// Err turns an error into a slog attribute under the "error" key.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}

	return slog.String("error", err.Error())
}
