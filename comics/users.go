package comics

import (
	"regexp"
	"strings"
)

// idPattern is the national-id shape: one or two digits, two dotted groups of
// three, a dash, and a check digit that may be k or K.
var idPattern = regexp.MustCompile(`^\d{1,2}\.\d{3}\.\d{3}-[0-9kK]$`)

// ValidID reports whether id matches the national-id format.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// UserDirectory maps national ids to registered users. Registration is
// insertion-only for the lifetime of the session; the directory remembers
// registration order so reports list users deterministically.
type UserDirectory struct {
	byID  map[string]User
	order []string
}

// NewUserDirectory returns an empty directory.
func NewUserDirectory() *UserDirectory {
	return &UserDirectory{byID: make(map[string]User)}
}

// Register validates and stores u. It refuses empty fields (ErrInvalidField),
// a malformed id (ErrInvalidID), and an id already present (ErrDuplicateID).
// On any refusal the directory is unchanged.
func (d *UserDirectory) Register(u User) error {
	if strings.TrimSpace(u.GivenName) == "" || strings.TrimSpace(u.FamilyName) == "" || !u.Role.Valid() {
		return ErrInvalidField
	}
	if !ValidID(u.ID) {
		return ErrInvalidID
	}
	key := idKey(u.ID)
	if _, exists := d.byID[key]; exists {
		return ErrDuplicateID
	}
	d.byID[key] = u
	d.order = append(d.order, key)
	return nil
}

// Find returns the user registered under id, if any.
func (d *UserDirectory) Find(id string) (User, bool) {
	u, ok := d.byID[idKey(id)]
	return u, ok
}

// All returns every registered user in registration order.
func (d *UserDirectory) All() []User {
	users := make([]User, 0, len(d.order))
	for _, key := range d.order {
		users = append(users, d.byID[key])
	}
	return users
}

// Len returns the number of registered users.
func (d *UserDirectory) Len() int { return len(d.byID) }

// idKey folds the check digit so 1.111.111-k and 1.111.111-K collide.
func idKey(id string) string { return strings.ToUpper(id) }
