package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminsuite/tenantconsole/internal/client/models"
)

func TestDatabaseService_GetAllMapsWireShape(t *testing.T) {
	gw := newFakeGateway(t)
	gw.respond("GET", databasePath, `[
		{"Id": 1, "Project_name": "billing", "Db_name": "billing_prod", "isActive": true,
		 "ServerName": "db01", "Port": 1433, "DatabaseType": "mssql",
		 "ConnectionString": "Server=db01;****"},
		{"Id": 2, "Project_name": "archive", "Db_name": "archive_old", "isActive": false}
	]`)

	dbs, err := NewDatabaseService(gw).GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, dbs, 2)
	assert.Equal(t, "billing", dbs[0].ProjectName)
	assert.Equal(t, "billing_prod", dbs[0].DBName)
	assert.True(t, dbs[0].IsActive)
	assert.Equal(t, "db01", dbs[0].ServerName)
	assert.Equal(t, 1433, dbs[0].Port)
	assert.Equal(t, "Server=db01;****", dbs[0].ConnectionString)
	assert.False(t, dbs[1].IsActive)
	assert.Empty(t, dbs[1].ServerName)
}

func TestDatabaseService_CreateSendsWireCasing(t *testing.T) {
	gw := newFakeGateway(t)
	gw.respond("POST", databasePath, `{"Id": 3, "Project_name": "crm", "Db_name": "crm_db", "isActive": true}`)

	created, err := NewDatabaseService(gw).Create(context.Background(), models.NewDatabase{
		ProjectName: "crm", DBName: "crm_db", IsActive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	wire, ok := gw.calls[0].Body.(newDatabaseWire)
	require.True(t, ok)
	assert.Equal(t, "crm", wire.ProjectName)
	assert.Equal(t, "crm_db", wire.DBName)
	assert.True(t, wire.IsActive)
}

func TestDatabaseService_MaintenanceActions(t *testing.T) {
	gw := newFakeGateway(t)
	gw.respond("POST", databasePath+"/5/test", `{"success": true, "message": "connected"}`)
	gw.respond("POST", databasePath+"/5/backup", `{"success": false, "message": "disk full"}`)

	svc := NewDatabaseService(gw)

	test, err := svc.TestConnection(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, test.Success)
	assert.Equal(t, "connected", test.Message)

	backup, err := svc.Backup(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, backup.Success)
	assert.Equal(t, "disk full", backup.Message)
}

func TestDatabaseService_DeleteUsesIDPath(t *testing.T) {
	gw := newFakeGateway(t)

	require.NoError(t, NewDatabaseService(gw).Delete(context.Background(), 9))

	require.Len(t, gw.calls, 1)
	assert.Equal(t, "DELETE", gw.calls[0].Method)
	assert.Equal(t, databasePath+"/9", gw.calls[0].Path)
}
