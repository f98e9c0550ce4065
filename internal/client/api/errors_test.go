package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adminsuite/tenantconsole/internal/common"
)

func TestError_UnwrapsToSentinels(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"transport failure", 0, common.ErrorUnavailable},
		{"unauthorized", http.StatusUnauthorized, common.ErrorUnauthorized},
		{"not found", http.StatusNotFound, common.ErrorNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := &Error{Message: "boom", Status: tc.status}
			assert.True(t, errors.Is(err, tc.want))
		})
	}
}

func TestError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("load clients: %w", &Error{Message: "boom", Status: http.StatusNotFound})
	assert.True(t, errors.Is(err, common.ErrorNotFound))
	assert.True(t, IsStatus(err, http.StatusNotFound))
}

func TestError_OtherStatusHasNoSentinel(t *testing.T) {
	err := &Error{Message: "boom", Status: http.StatusBadRequest}
	assert.False(t, errors.Is(err, common.ErrorNotFound))
	assert.False(t, errors.Is(err, common.ErrorUnauthorized))
}
