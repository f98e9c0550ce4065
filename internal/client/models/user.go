package models

// User is the view-model for a managed account.
type User struct {
	ID            int64
	Username      string
	FullName      string
	Email         string
	Phone         string
	Gender        string
	Role          string
	Remarks       string
	IsActive      bool
	CreatedDate   string
	LastLoginDate string
}

// NewUser is the create/edit draft for a managed account.
type NewUser struct {
	Username        string
	Password        string
	ConfirmPassword string
	FullName        string
	Email           string
	Phone           string
	Gender          string
	Role            string
	Remarks         string
	IsActive        bool
}
