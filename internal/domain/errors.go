package domain

import "errors"

var (
	// ErrCatalogUnavailable indicates the provider fetch failed and no
	// snapshot has ever been obtained.
	ErrCatalogUnavailable = errors.New("product catalog unavailable")
	// ErrCompletionFailed indicates the completion call failed, timed out
	// or returned an empty completion.
	ErrCompletionFailed = errors.New("completion failed")
)
