package services

import (
	"context"
	"fmt"

	"github.com/adminsuite/tenantconsole/internal/client/models"
)

const userPath = "/api/User"

// UserService manages the tenant's managed accounts.
type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, draft models.NewUser) (*models.User, error)
	Update(ctx context.Context, id int64, draft models.NewUser) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	ToggleStatus(ctx context.Context, id int64) (*models.User, error)
}

type userService struct {
	gw Gateway
}

func NewUserService(gw Gateway) UserService {
	return &userService{gw: gw}
}

// userWire mirrors the backend's PascalCase account shape.
type userWire struct {
	ID            int64  `json:"Id"`
	Username      string `json:"Username"`
	FullName      string `json:"FullName"`
	Email         string `json:"Email"`
	Phone         string `json:"Phone"`
	Gender        string `json:"Gender"`
	Role          string `json:"Role"`
	Remarks       string `json:"Remarks"`
	IsActive      bool   `json:"IsActive"`
	CreatedDate   string `json:"CreatedDate"`
	LastLoginDate string `json:"LastLoginDate"`
}

type newUserWire struct {
	Username        string `json:"Username"`
	Password        string `json:"Password,omitempty"`
	ConfirmPassword string `json:"ConfirmPassword,omitempty"`
	FullName        string `json:"FullName"`
	Email           string `json:"Email"`
	Phone           string `json:"Phone"`
	Gender          string `json:"Gender"`
	Role            string `json:"Role"`
	Remarks         string `json:"Remarks"`
	IsActive        bool   `json:"IsActive"`
}

func userFromWire(w userWire) models.User {
	return models.User{
		ID:            w.ID,
		Username:      w.Username,
		FullName:      w.FullName,
		Email:         w.Email,
		Phone:         w.Phone,
		Gender:        w.Gender,
		Role:          w.Role,
		Remarks:       w.Remarks,
		IsActive:      w.IsActive,
		CreatedDate:   w.CreatedDate,
		LastLoginDate: w.LastLoginDate,
	}
}

func userToWire(d models.NewUser) newUserWire {
	return newUserWire{
		Username:        d.Username,
		Password:        d.Password,
		ConfirmPassword: d.ConfirmPassword,
		FullName:        d.FullName,
		Email:           d.Email,
		Phone:           d.Phone,
		Gender:          d.Gender,
		Role:            d.Role,
		Remarks:         d.Remarks,
		IsActive:        d.IsActive,
	}
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	var wires []userWire
	if err := s.gw.Get(ctx, userPath, &wires); err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(wires))
	for _, w := range wires {
		out = append(out, userFromWire(w))
	}
	return out, nil
}

func (s *userService) Create(ctx context.Context, draft models.NewUser) (*models.User, error) {
	var w userWire
	if err := s.gw.Post(ctx, userPath, userToWire(draft), &w); err != nil {
		return nil, err
	}
	u := userFromWire(w)
	return &u, nil
}

func (s *userService) Update(ctx context.Context, id int64, draft models.NewUser) (*models.User, error) {
	var w userWire
	if err := s.gw.Put(ctx, fmt.Sprintf("%s/%d", userPath, id), userToWire(draft), &w); err != nil {
		return nil, err
	}
	u := userFromWire(w)
	return &u, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("%s/%d", userPath, id))
}

// ToggleStatus flips the account's active flag server-side and returns the
// refreshed record.
func (s *userService) ToggleStatus(ctx context.Context, id int64) (*models.User, error) {
	var w userWire
	if err := s.gw.Patch(ctx, fmt.Sprintf("%s/%d/toggle-status", userPath, id), nil, &w); err != nil {
		return nil, err
	}
	u := userFromWire(w)
	return &u, nil
}
