package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminsuite/tenantconsole/internal/client/api"
)

func TestHealthService_Ping(t *testing.T) {
	gw := newFakeGateway(t)
	gw.respond("GET", "/api/health", `{"status": "healthy"}`)

	assert.NoError(t, NewHealthService(gw).Ping(context.Background()))
}

func TestHealthService_PingUnreachable(t *testing.T) {
	gw := newFakeGateway(t)
	gw.fail("GET", "/api/health", &api.Error{Message: "connection refused"})

	assert.Error(t, NewHealthService(gw).Ping(context.Background()))
}

func TestHealthService_Stats(t *testing.T) {
	gw := newFakeGateway(t)
	gw.respond("GET", "/api/dashboard/stats",
		`{"totalClients": 12, "totalUsers": 40, "activeDatabases": 7}`)

	stats, err := NewHealthService(gw).Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalClients)
	assert.Equal(t, 40, stats.TotalUsers)
	assert.Equal(t, 7, stats.ActiveDatabases)
}
