// Package models defines the view-model types handed between the service
// layer and the console screens. Wire-format translation lives in the
// services package; nothing here depends on backend field casing except
// Profile, which is persisted verbatim in the session file.
package models

import "time"

// Profile is the authenticated user's detail as issued by the login endpoint.
// The JSON tags match the backend shape because the profile is persisted
// as-is in the session store and sent back in the tenant header.
type Profile struct {
	ID          int64  `json:"Id"`
	Username    string `json:"Username"`
	FullName    string `json:"FullName"`
	CompanyName string `json:"CompanyName"`
	BranchName  string `json:"BranchName"`
	BranchID    int64  `json:"Branchid"`
	IsActive    bool   `json:"IsActive"`
	Email       string `json:"Email"`
	Gender      string `json:"Gender"`
	Phone       string `json:"Phone"`
	Remarks     string `json:"Remarks"`
	Role        string `json:"Role"`
}

// Credentials is the login form payload. CompanyCode is the numeric tenant
// selector; it is validated client-side before any network call.
type Credentials struct {
	UserName    string
	Password    string
	CompanyCode string
}

// LoginResult is the normalized outcome of a successful login, regardless of
// which of the two response shapes the backend produced. ExpiresAt is zero
// when the server did not report an expiry.
type LoginResult struct {
	Token     string
	User      Profile
	ExpiresAt time.Time
}
