package models

import "strings"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// OwnerEmail is the store owner's address; it always classifies as ADMIN.
const OwnerEmail = "varshithasomashekar22@gmail.com"

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ClassifyRole derives a role from an email address. It is the single
// source of truth for admin detection: an address containing "admin"
// (any case) or equal to OwnerEmail is ADMIN, everything else CUSTOMER.
func ClassifyRole(email string) Role {
	lower := strings.ToLower(email)
	if strings.Contains(lower, "admin") || lower == OwnerEmail {
		return RoleAdmin
	}
	return RoleCustomer
}

// DisplayNameFromEmail returns the local part of an address.
func DisplayNameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
