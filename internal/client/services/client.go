package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adminsuite/tenantconsole/internal/client/api"
	"github.com/adminsuite/tenantconsole/internal/client/models"
)

const clientPath = "/api/ClientDetail"

// ClientService manages tenant client records.
//
// Create and Update return the same normalized view-model as GetAll, so
// screens never branch on call origin.
type ClientService interface {
	GetAll(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	Create(ctx context.Context, draft models.NewClient) (*models.Client, error)
	Update(ctx context.Context, id int64, draft models.NewClient) (*models.Client, error)
	Delete(ctx context.Context, id int64) error
}

type clientService struct {
	gw Gateway
}

func NewClientService(gw Gateway) ClientService {
	return &clientService{gw: gw}
}

// clientWire mirrors the backend's list shape, which mixes snake_case and
// PascalCase per field. The casing is the backend's contract; only the
// view-model is consistent.
type clientWire struct {
	ClientID       int64  `json:"client_id"`
	ClientName     string `json:"client_name"`
	DBName         string `json:"db_name"`
	Owner          string `json:"Owner"`
	Address        string `json:"Address"`
	PrimaryPhone   string `json:"Primary_phone"`
	SecondaryPhone string `json:"Secondary_phone"`
	PrimaryEmail   string `json:"Primary_email"`
	SecondaryEmail string `json:"Secondary_email"`
	SMSService     bool   `json:"SMS_service"`
	ApprovalSystem bool   `json:"ApprovalSystem"`
	CollectionApp  bool   `json:"CollectionApp"`
	Logo           string `json:"Logo"`
	CreatedBy      int64  `json:"created_by"`
	ModifiedBy     int64  `json:"modified_by"`
	CreatedDate    string `json:"created_date"`
	ModifiedDate   string `json:"modified_date"`
}

// newClientWire is the outgoing create/update shape, which the backend
// expects in snake_case throughout.
type newClientWire struct {
	ClientName     string `json:"client_name"`
	DBName         string `json:"db_name"`
	Owner          string `json:"owner"`
	Address        string `json:"address"`
	PrimaryPhone   string `json:"primary_phone"`
	SecondaryPhone string `json:"secondary_phone"`
	PrimaryEmail   string `json:"primary_email"`
	SecondaryEmail string `json:"secondary_email"`
	SMSService     bool   `json:"sms_service"`
	ApprovalSystem bool   `json:"approval_system"`
	CollectionApp  bool   `json:"collection_app"`
}

func clientFromWire(w clientWire) models.Client {
	return models.Client{
		ID:             w.ClientID,
		Name:           w.ClientName,
		DBName:         w.DBName,
		Owner:          w.Owner,
		Address:        w.Address,
		PrimaryPhone:   w.PrimaryPhone,
		SecondaryPhone: w.SecondaryPhone,
		PrimaryEmail:   w.PrimaryEmail,
		SecondaryEmail: w.SecondaryEmail,
		SMSService:     w.SMSService,
		ApprovalSystem: w.ApprovalSystem,
		CollectionApp:  w.CollectionApp,
		Logo:           w.Logo,
		CreatedBy:      w.CreatedBy,
		ModifiedBy:     w.ModifiedBy,
		CreatedDate:    w.CreatedDate,
		ModifiedDate:   w.ModifiedDate,
	}
}

func clientToWire(d models.NewClient) newClientWire {
	return newClientWire{
		ClientName:     d.Name,
		DBName:         d.DBName,
		Owner:          d.Owner,
		Address:        d.Address,
		PrimaryPhone:   d.PrimaryPhone,
		SecondaryPhone: d.SecondaryPhone,
		PrimaryEmail:   d.PrimaryEmail,
		SecondaryEmail: d.SecondaryEmail,
		SMSService:     d.SMSService,
		ApprovalSystem: d.ApprovalSystem,
		CollectionApp:  d.CollectionApp,
	}
}

// clientFormFields renders the draft as multipart fields: every scalar is a
// string part, the logo is the single file part.
func clientFormFields(d models.NewClient) []api.Field {
	fields := []api.Field{
		api.Text{Name: "client_name", Value: d.Name},
		api.Text{Name: "db_name", Value: d.DBName},
		api.Text{Name: "owner", Value: d.Owner},
		api.Text{Name: "address", Value: d.Address},
		api.Text{Name: "primary_phone", Value: d.PrimaryPhone},
		api.Text{Name: "secondary_phone", Value: d.SecondaryPhone},
		api.Text{Name: "primary_email", Value: d.PrimaryEmail},
		api.Text{Name: "secondary_email", Value: d.SecondaryEmail},
		api.Text{Name: "sms_service", Value: strconv.FormatBool(d.SMSService)},
		api.Text{Name: "approval_system", Value: strconv.FormatBool(d.ApprovalSystem)},
		api.Text{Name: "collection_app", Value: strconv.FormatBool(d.CollectionApp)},
	}
	if d.LogoFile != nil {
		fields = append(fields, api.File{
			Name:        "logo",
			FileName:    d.LogoFile.Name,
			ContentType: d.LogoFile.ContentType,
			Data:        d.LogoFile.Data,
		})
	}
	return fields
}

func (s *clientService) GetAll(ctx context.Context) ([]models.Client, error) {
	var wires []clientWire
	if err := s.gw.Get(ctx, clientPath, &wires); err != nil {
		return nil, err
	}
	out := make([]models.Client, 0, len(wires))
	for _, w := range wires {
		out = append(out, clientFromWire(w))
	}
	return out, nil
}

func (s *clientService) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	var w clientWire
	if err := s.gw.Get(ctx, fmt.Sprintf("%s/%d", clientPath, id), &w); err != nil {
		return nil, err
	}
	c := clientFromWire(w)
	return &c, nil
}

func (s *clientService) Create(ctx context.Context, draft models.NewClient) (*models.Client, error) {
	var w clientWire
	if draft.LogoFile != nil {
		if err := s.gw.PostForm(ctx, clientPath, clientFormFields(draft), &w); err != nil {
			return nil, err
		}
	} else {
		if err := s.gw.Post(ctx, clientPath, clientToWire(draft), &w); err != nil {
			return nil, err
		}
	}
	c := clientFromWire(w)
	return &c, nil
}

func (s *clientService) Update(ctx context.Context, id int64, draft models.NewClient) (*models.Client, error) {
	path := fmt.Sprintf("%s/update/%d", clientPath, id)
	var w clientWire
	if draft.LogoFile != nil {
		if err := s.gw.PutForm(ctx, path, clientFormFields(draft), &w); err != nil {
			return nil, err
		}
	} else {
		if err := s.gw.Put(ctx, path, clientToWire(draft), &w); err != nil {
			return nil, err
		}
	}
	c := clientFromWire(w)
	return &c, nil
}

func (s *clientService) Delete(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("%s/delete/%d", clientPath, id))
}
