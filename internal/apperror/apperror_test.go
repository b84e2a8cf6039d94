package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"not found", NotFound(), http.StatusNotFound, "Not Found"},
		{"biz", Biz("Drone id %s not found", "abc"), http.StatusOK, "Drone id abc not found"},
		{"database", Database(cause), http.StatusInternalServerError, "Database error: connection refused"},
		{"internal", Internal(cause), http.StatusInternalServerError, "Error: connection refused"},
		{"plain", cause, http.StatusInternalServerError, "connection refused"},
		{"wrapped biz", fmt.Errorf("handler: %w", Biz("bad")), http.StatusOK, "handler: bad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusCode(tt.err))
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	assert.ErrorIs(t, Database(cause), cause)
	assert.ErrorIs(t, Internal(cause), cause)
	assert.True(t, IsBiz(Biz("x")))
	assert.False(t, IsBiz(Database(cause)))
}
