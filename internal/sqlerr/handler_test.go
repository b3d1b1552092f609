package sqlerr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/focusflow/backend/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "subscriptions",
		ConstraintName: "subscriptions_email_key",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "SUBSCRIPTION_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Subscription with this Email already exists", httpErr.Message)
}

func TestHandleError_NotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		TableName:  "contacts",
		ColumnName: "email",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "CONTACT_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "email", httpErr.Errors[0].Field)
}

func TestHandleError_CheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23514",
		Severity:   "ERROR",
		TableName:  "subscriptions",
		ColumnName: "status",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestHandleError_NoRows(t *testing.T) {
	err := HandleError(pgx.ErrNoRows)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleError_PassthroughHTTPError(t *testing.T) {
	original := errs.NewConflictError("Email is already subscribed")

	err := HandleError(original)

	assert.Same(t, original, err.(*errs.HTTPError))
}

func TestHandleError_UnknownError(t *testing.T) {
	err := HandleError(errors.New("boom"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("subscriptions_email_key"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_subscriptions_email"))
	assert.Equal(t, "", extractColumnForUniqueViolation("pk_subscriptions"))
}
