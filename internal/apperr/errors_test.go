package apperr

import (
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(Validation("bad %s", "input")))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("campsite")))
	assert.Equal(t, http.StatusConflict, Status(Conflict("busy")))
	assert.Equal(t, http.StatusServiceUnavailable, Status(Cancelled("reply", nil)))
	assert.Equal(t, http.StatusInternalServerError, Status(Internal("db", sql.ErrConnDone)))
	assert.Equal(t, http.StatusInternalServerError, Status(fmt.Errorf("plain")))
}

func TestIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("load: %w", NotFound("trip itinerary"))
	assert.True(t, Is(err, TypeNotFound))
	assert.False(t, Is(err, TypeConflict))
	assert.Equal(t, http.StatusNotFound, Status(err))
	assert.False(t, Is(nil, TypeNotFound))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "not_found: campsite 3 not found", NotFound("campsite 3").Error())
	err := Internal("query failed", sql.ErrConnDone)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "query failed")
}
