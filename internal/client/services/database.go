package services

import (
	"context"
	"fmt"

	"github.com/adminsuite/tenantconsole/internal/client/models"
)

const databasePath = "/api/RegisterDb"

// DatabaseService manages registered tenant databases, including the
// server-side connection test and backup actions.
type DatabaseService interface {
	GetAll(ctx context.Context) ([]models.Database, error)
	GetByID(ctx context.Context, id int64) (*models.Database, error)
	Create(ctx context.Context, draft models.NewDatabase) (*models.Database, error)
	Update(ctx context.Context, id int64, draft models.NewDatabase) (*models.Database, error)
	Delete(ctx context.Context, id int64) error
	TestConnection(ctx context.Context, id int64) (*models.OpResult, error)
	Backup(ctx context.Context, id int64) (*models.OpResult, error)
}

type databaseService struct {
	gw Gateway
}

func NewDatabaseService(gw Gateway) DatabaseService {
	return &databaseService{gw: gw}
}

// databaseWire mirrors the backend shape; note the lone camelCase isActive
// among PascalCase fields, and the optional connection metadata. The
// connection string arrives masked.
type databaseWire struct {
	ID               int64  `json:"Id"`
	ProjectName      string `json:"Project_name"`
	DBName           string `json:"Db_name"`
	IsActive         bool   `json:"isActive"`
	ServerName       string `json:"ServerName,omitempty"`
	Port             int    `json:"Port,omitempty"`
	DatabaseType     string `json:"DatabaseType,omitempty"`
	ConnectionString string `json:"ConnectionString,omitempty"`
}

type newDatabaseWire struct {
	ProjectName  string `json:"Project_name"`
	DBName       string `json:"Db_name"`
	IsActive     bool   `json:"isActive"`
	ServerName   string `json:"ServerName,omitempty"`
	Port         int    `json:"Port,omitempty"`
	DatabaseType string `json:"DatabaseType,omitempty"`
}

type opResultWire struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func databaseFromWire(w databaseWire) models.Database {
	return models.Database{
		ID:               w.ID,
		ProjectName:      w.ProjectName,
		DBName:           w.DBName,
		IsActive:         w.IsActive,
		ServerName:       w.ServerName,
		Port:             w.Port,
		DatabaseType:     w.DatabaseType,
		ConnectionString: w.ConnectionString,
	}
}

func databaseToWire(d models.NewDatabase) newDatabaseWire {
	return newDatabaseWire{
		ProjectName:  d.ProjectName,
		DBName:       d.DBName,
		IsActive:     d.IsActive,
		ServerName:   d.ServerName,
		Port:         d.Port,
		DatabaseType: d.DatabaseType,
	}
}

func (s *databaseService) GetAll(ctx context.Context) ([]models.Database, error) {
	var wires []databaseWire
	if err := s.gw.Get(ctx, databasePath, &wires); err != nil {
		return nil, err
	}
	out := make([]models.Database, 0, len(wires))
	for _, w := range wires {
		out = append(out, databaseFromWire(w))
	}
	return out, nil
}

func (s *databaseService) GetByID(ctx context.Context, id int64) (*models.Database, error) {
	var w databaseWire
	if err := s.gw.Get(ctx, fmt.Sprintf("%s/%d", databasePath, id), &w); err != nil {
		return nil, err
	}
	db := databaseFromWire(w)
	return &db, nil
}

func (s *databaseService) Create(ctx context.Context, draft models.NewDatabase) (*models.Database, error) {
	var w databaseWire
	if err := s.gw.Post(ctx, databasePath, databaseToWire(draft), &w); err != nil {
		return nil, err
	}
	db := databaseFromWire(w)
	return &db, nil
}

func (s *databaseService) Update(ctx context.Context, id int64, draft models.NewDatabase) (*models.Database, error) {
	var w databaseWire
	if err := s.gw.Put(ctx, fmt.Sprintf("%s/%d", databasePath, id), databaseToWire(draft), &w); err != nil {
		return nil, err
	}
	db := databaseFromWire(w)
	return &db, nil
}

func (s *databaseService) Delete(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("%s/%d", databasePath, id))
}

func (s *databaseService) TestConnection(ctx context.Context, id int64) (*models.OpResult, error) {
	var w opResultWire
	if err := s.gw.Post(ctx, fmt.Sprintf("%s/%d/test", databasePath, id), nil, &w); err != nil {
		return nil, err
	}
	return &models.OpResult{Success: w.Success, Message: w.Message}, nil
}

func (s *databaseService) Backup(ctx context.Context, id int64) (*models.OpResult, error) {
	var w opResultWire
	if err := s.gw.Post(ctx, fmt.Sprintf("%s/%d/backup", databasePath, id), nil, &w); err != nil {
		return nil, err
	}
	return &models.OpResult{Success: w.Success, Message: w.Message}, nil
}
