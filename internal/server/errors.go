package server

import "errors"

// ErrUnknownDefaultStyle is returned when the configured default style is not
// registered.
var ErrUnknownDefaultStyle = errors.New("unknown default style")
