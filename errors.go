package bookmyshow

import (
	"errors"

	"github.com/jaydeepparmar2244/BookMyShow-FE/api"
)

var (
	// ErrSessionExpired reports that the credential is no longer live,
	// whether detected locally or by an upstream rejection. It is the same
	// sentinel the gateway wraps, so errors.Is works across layers.
	ErrSessionExpired = api.ErrSessionExpired

	// ErrNotAuthenticated is an exported constant or variable used by the booking client.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrStaleResult is an exported constant or variable used by the booking client.
	ErrStaleResult = errors.New("stale result discarded")
	// ErrCityRequired is an exported constant or variable used by the booking client.
	ErrCityRequired = errors.New("city must not be empty")
	// ErrClientClosed is an exported constant or variable used by the booking client.
	ErrClientClosed = errors.New("client is closed")
)
