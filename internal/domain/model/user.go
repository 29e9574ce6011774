// Package model defines the view records exposed by the HTTP API and the
// declarative validation applied to incoming payloads.
package model

import (
	"strings"
	"time"
)

// Password policy constants.
const (
	MinPasswordLength = 8
)

// Profile carries the user fields shared by every user payload.
type Profile struct {
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
}

// Validate checks the declarative constraints on a profile.
func (p Profile) Validate() FieldErrors {
	var errs FieldErrors
	if strings.TrimSpace(p.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "field is required"})
	}
	return errs
}

// NewUser is the payload accepted on user creation. The password is
// accepted and discarded; it is never echoed back.
type NewUser struct {
	Profile
	Password string `json:"password"`
}

// Validate checks the declarative constraints on a creation payload.
func (u NewUser) Validate() FieldErrors {
	errs := u.Profile.Validate()
	switch {
	case u.Password == "":
		errs = append(errs, FieldError{Field: "password", Message: "field is required"})
	case len(u.Password) < MinPasswordLength:
		errs = append(errs, FieldError{Field: "password", Message: "must be at least 8 characters"})
	}
	return errs
}

// UserView is the record returned by all user-facing reads and writes.
type UserView struct {
	Profile
	ID        int       `json:"id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
