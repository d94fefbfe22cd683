package apierror_test

import (
	"net/http"
	"testing"

	"github.com/mdouchement/checklist/internal/apierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, apierror.StatusCode(apierror.Unauthenticated("Unauthorized")))
	assert.Equal(t, http.StatusUnauthorized, apierror.StatusCode(apierror.InvalidToken()))
	assert.Equal(t, http.StatusNotFound, apierror.StatusCode(apierror.NotFound("nope")))
	assert.Equal(t, http.StatusConflict, apierror.StatusCode(apierror.Conflict("dup")))
	assert.Equal(t, http.StatusBadRequest, apierror.StatusCode(apierror.Validation("bad")))

	// Anything untyped is an internal failure.
	assert.Equal(t, http.StatusInternalServerError, apierror.StatusCode(errors.New("boom")))
}

func TestError(t *testing.T) {
	err := apierror.NotFound("Todo not found or does not belong to the user")
	assert.EqualError(t, err, "Todo not found or does not belong to the user")
}
