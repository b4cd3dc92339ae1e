package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrNoResults, "nothing matched")
	assert.Equal(t, ErrNoResults, err.Code)
	assert.Equal(t, "No results found", err.Message)
	assert.Equal(t, "nothing matched", err.Details)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus())
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, ErrSearchUnavailable)

	assert.True(t, Is(err, ErrSearchUnavailable))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrSearchUnavailable, ExtractCode(err))
	assert.Equal(t, "connection refused", GetDetails(err))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternalServer))
}

func TestExtractCode_PlainError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, ExtractCode(errors.New("boom")))
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrInvalidParams))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(ErrRenderFailed))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(99999))
}
