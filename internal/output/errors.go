package output

import "errors"

// ErrUnsupportedFormat is returned when no formatter is registered under a name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ErrNoResult is returned when a report is requested before anything was computed.
var ErrNoResult = errors.New("nothing has been calculated yet")
