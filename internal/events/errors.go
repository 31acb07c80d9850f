package events

import "errors"

// ErrBrokerClosed is returned when publishing to a closed broker.
var ErrBrokerClosed = errors.New("event broker closed")
