package comics

import "strings"

// Comic is one catalog entry. The code is its identity: two comics are the
// same record iff their codes match (comparison is case-insensitive, storage
// keeps the original casing).
type Comic struct {
	Code      string `json:"code"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	Price     int    `json:"price"`
	Kind      string `json:"kind"`
}

// SameCode reports whether c and other carry the same code.
func (c Comic) SameCode(other Comic) bool {
	return CodeEqual(c.Code, other.Code)
}

// CodeEqual compares two comic codes, ignoring case.
func CodeEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Role distinguishes the two kinds of registered users. All authorization
// lives in the policy table, not on the role itself.
type Role int

const (
	RoleAdmin Role = iota + 1
	RoleCustomer
)

// String returns the user-facing label, kept in Spanish to match the report
// file layout.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleCustomer:
		return "Cliente"
	}
	return "No válido"
}

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User is a registered person. The id is the national id and identifies the
// user; its check digit compares case-insensitively.
type User struct {
	ID         string `json:"id"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Role       Role   `json:"role"`
}
