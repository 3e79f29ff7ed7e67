package errors

import "net/http"

var (
	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found",
		http.StatusNotFound,
	)

	ErrNotOwner = New(
		"NOT_OWNER",
		"Caller is not the owner of this resource",
		http.StatusForbidden,
	)

	ErrDuplicateAddress = New(
		"DUPLICATE_ADDRESS",
		"A place with this address is already registered by this creator",
		http.StatusConflict,
	)

	ErrInvalidLikeTarget = New(
		"INVALID_LIKE_TARGET",
		"Exactly one of place_id or route_id must be provided",
		http.StatusBadRequest,
	)

	ErrInvalidStops = New(
		"INVALID_STOPS",
		"One or more stops reference an unknown place",
		http.StatusBadRequest,
	)

	// ErrConflict is reserved for optimistic-concurrency failures and
	// wraps aborted multi-row transactions.
	ErrConflict = New(
		"CONFLICT",
		"Operation conflicted with concurrent changes",
		http.StatusConflict,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
