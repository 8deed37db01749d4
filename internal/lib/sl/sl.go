package sl

import (
	"log/slog"
)

// Err renders err under the "error" key, nil becomes an empty string.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
