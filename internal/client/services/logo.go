package services

import (
	"context"
	"fmt"

	"github.com/adminsuite/tenantconsole/internal/client/api"
	"github.com/adminsuite/tenantconsole/internal/client/models"
)

const logoPath = "/api/Logo"

// LogoService manages the single tenant logo: upload, replace, delete.
// There is no list beyond "current".
type LogoService interface {
	Current(ctx context.Context) (*models.Logo, error)
	Upload(ctx context.Context, file models.FileAttachment) (*models.Logo, error)
	Replace(ctx context.Context, id int64, file models.FileAttachment) (*models.Logo, error)
	Delete(ctx context.Context, id int64) error
}

type logoService struct {
	gw Gateway
}

func NewLogoService(gw Gateway) LogoService {
	return &logoService{gw: gw}
}

type logoWire struct {
	ID           int64  `json:"Id"`
	FileName     string `json:"FileName"`
	ContentType  string `json:"ContentType"`
	URL          string `json:"Url"`
	UploadedDate string `json:"UploadedDate"`
}

func logoFromWire(w logoWire) models.Logo {
	return models.Logo{
		ID:           w.ID,
		FileName:     w.FileName,
		ContentType:  w.ContentType,
		URL:          w.URL,
		UploadedDate: w.UploadedDate,
	}
}

// Current fetches the logo collection and returns the newest record, or nil
// when the tenant has no logo yet.
func (s *logoService) Current(ctx context.Context) (*models.Logo, error) {
	var wires []logoWire
	if err := s.gw.Get(ctx, logoPath, &wires); err != nil {
		return nil, err
	}
	if len(wires) == 0 {
		return nil, nil
	}
	l := logoFromWire(wires[len(wires)-1])
	return &l, nil
}

func logoFields(file models.FileAttachment) []api.Field {
	return []api.Field{
		api.File{
			Name:        "File",
			FileName:    file.Name,
			ContentType: file.ContentType,
			Data:        file.Data,
		},
	}
}

func (s *logoService) Upload(ctx context.Context, file models.FileAttachment) (*models.Logo, error) {
	var w logoWire
	if err := s.gw.PostForm(ctx, logoPath+"/upload", logoFields(file), &w); err != nil {
		return nil, err
	}
	l := logoFromWire(w)
	return &l, nil
}

func (s *logoService) Replace(ctx context.Context, id int64, file models.FileAttachment) (*models.Logo, error) {
	var w logoWire
	if err := s.gw.PutForm(ctx, fmt.Sprintf("%s/update/%d", logoPath, id), logoFields(file), &w); err != nil {
		return nil, err
	}
	l := logoFromWire(w)
	return &l, nil
}

func (s *logoService) Delete(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("%s/delete/%d", logoPath, id))
}
