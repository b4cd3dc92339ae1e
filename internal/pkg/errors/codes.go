package errors

import "net/http"

// Code describes an error code with its HTTP status and default message.
type Code struct {
	Code    int
	Status  int
	Message string
}

// Error codes, grouped by module.
const (
	Success = 0

	// Common errors (1000-1999)
	ErrInternalServer = 1000
	ErrInvalidParams  = 1001
	ErrNotFound       = 1002

	// Lookup errors (2000-2999)
	ErrNoResults    = 2000
	ErrRenderFailed = 2001

	// Search errors (3000-3999)
	ErrSearchUnavailable = 3000
)

var codeMap = map[int]Code{
	Success: {Success, http.StatusOK, "Success"},

	ErrInternalServer: {ErrInternalServer, http.StatusInternalServerError, "Internal server error"},
	ErrInvalidParams:  {ErrInvalidParams, http.StatusBadRequest, "Invalid parameters"},
	ErrNotFound:       {ErrNotFound, http.StatusNotFound, "Resource not found"},

	ErrNoResults:    {ErrNoResults, http.StatusNotFound, "No results found"},
	ErrRenderFailed: {ErrRenderFailed, http.StatusInternalServerError, "Failed to process sheet music"},

	ErrSearchUnavailable: {ErrSearchUnavailable, http.StatusServiceUnavailable, "Search provider unavailable"},
}

// GetHTTPStatus returns the HTTP status for an error code.
func GetHTTPStatus(code int) int {
	if c, ok := codeMap[code]; ok {
		return c.Status
	}
	return http.StatusInternalServerError
}

// GetMessage returns the default message for an error code.
func GetMessage(code int) string {
	if c, ok := codeMap[code]; ok {
		return c.Message
	}
	return "Unknown error"
}
