package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "CONFLICT", MakeUpperCaseWithUnderscores("Conflict"))
}

func TestConstructors(t *testing.T) {
	conflict := NewConflictError("Email is already subscribed")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.Equal(t, "CONFLICT", conflict.Code)
	assert.True(t, conflict.Override)

	notFound := NewNotFoundError("Subscription not found", true, nil)
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, "NOT_FOUND", notFound.Code)

	code := "CUSTOM_CODE"
	badRequest := NewBadRequestError("Validation failed", true, &code, []FieldError{
		{Field: "email", Error: "Please provide a valid email"},
	})
	assert.Equal(t, "CUSTOM_CODE", badRequest.Code)
	assert.Len(t, badRequest.Errors, 1)
}

func TestHTTPError_ErrorsAs(t *testing.T) {
	var httpErr *HTTPError
	err := error(NewConflictError("dup"))
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "dup", httpErr.Error())
}
