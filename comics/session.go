package comics

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"
)

// Session drives one interactive session. It owns the user directory, the
// inventory, and the code minter, holds the optional active user, and runs
// every command through the policy table before touching any component.
//
// The session is single-threaded: wrap it in a mutex if it is ever shared.
type Session struct {
	store     *CatalogStore
	minter    *CodeMinter
	inv       *Inventory
	users     *UserDirectory
	reports   ReportWriter
	reportDir string
	log       *slog.Logger

	active *User
	now    func() time.Time
}

// Listing is the three-compartment view returned by ListComics. Reserved is
// presented in title order.
type Listing struct {
	Available []Comic
	Reserved  []Comic
	Sold      []Comic
}

// NewSession loads the catalog from store into a fresh inventory and returns
// a session with no active user. A load failure is soft: it is logged and
// the session starts with an empty available compartment. Every loaded code
// is marked in the minter so new comics never collide with the file.
func NewSession(store *CatalogStore, reportDir string, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}

	catalog, err := store.Load()
	if err != nil {
		log.Warn("catalog load failed, starting empty", "path", store.Path(), "error", err)
	}

	minter := NewCodeMinter()
	for _, c := range catalog {
		minter.Mark(c.Code)
	}

	return &Session{
		store:     store,
		minter:    minter,
		inv:       NewInventory(catalog),
		users:     NewUserDirectory(),
		reportDir: reportDir,
		log:       log,
		now:       time.Now,
	}
}

// ActiveUser returns the registered user driving this session.
func (s *Session) ActiveUser() (User, error) {
	if err := s.authorize(OpViewSelf); err != nil {
		return User{}, err
	}
	return *s.active, nil
}

// Register validates and stores a new user. On success the new user becomes
// the session's active user; registration is the one operation an
// unauthenticated session may perform.
func (s *Session) Register(id, given, family string, role Role) (User, error) {
	if err := s.authorize(OpRegisterUser); err != nil {
		return User{}, err
	}
	u := User{ID: strings.TrimSpace(id), GivenName: strings.TrimSpace(given), FamilyName: strings.TrimSpace(family), Role: role}
	if err := s.users.Register(u); err != nil {
		return User{}, err
	}
	s.active = &u
	return u, nil
}

// FindComic looks a code up across all three compartments.
func (s *Session) FindComic(code string) (Comic, error) {
	if err := s.authorize(OpFindComic); err != nil {
		return Comic{}, err
	}
	if strings.TrimSpace(code) == "" {
		return Comic{}, ErrInvalidField
	}
	return s.inv.Find(code)
}

// ListComics returns snapshots of all three compartments.
func (s *Session) ListComics() (Listing, error) {
	if err := s.authorize(OpListComics); err != nil {
		return Listing{}, err
	}
	return Listing{
		Available: s.inv.Available(),
		Reserved:  s.inv.ReservedByTitle(),
		Sold:      s.inv.Sold(),
	}, nil
}

// ReserveComic moves a comic from available to reserved and persists the
// shrunken available compartment.
func (s *Session) ReserveComic(code string) (Comic, error) {
	if err := s.authorize(OpReserveComic); err != nil {
		return Comic{}, err
	}
	if strings.TrimSpace(code) == "" {
		return Comic{}, ErrInvalidField
	}
	c, err := s.inv.Reserve(code)
	if err != nil {
		return Comic{}, err
	}
	return c, s.persist()
}

// PurchaseReserved moves every reserved comic to sold and returns the total
// price. The catalog file is untouched: reserved comics already left it.
func (s *Session) PurchaseReserved() (int, error) {
	if err := s.authorize(OpPurchaseReserved); err != nil {
		return 0, err
	}
	return s.inv.PurchaseReserved()
}

// AddComic validates the fields, mints a code, appends the comic to the
// available compartment, and persists the catalog.
func (s *Session) AddComic(title, author, publisher string, price int, kind string) (Comic, error) {
	if err := s.authorize(OpAddComic); err != nil {
		return Comic{}, err
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(author) == "" ||
		strings.TrimSpace(publisher) == "" || strings.TrimSpace(kind) == "" || price <= 0 {
		return Comic{}, ErrInvalidField
	}

	code, err := s.minter.Next()
	if err != nil {
		return Comic{}, err
	}
	c := Comic{Code: code, Title: title, Author: author, Publisher: publisher, Price: price, Kind: kind}
	if err := s.inv.Add(c); err != nil {
		return Comic{}, err
	}
	return c, s.persist()
}

// RemoveComic deletes a comic from the available compartment and persists
// the catalog. Reserved and sold comics cannot be removed.
func (s *Session) RemoveComic(code string) (Comic, error) {
	if err := s.authorize(OpRemoveComic); err != nil {
		return Comic{}, err
	}
	if strings.TrimSpace(code) == "" {
		return Comic{}, ErrInvalidField
	}
	c, err := s.inv.RemoveAvailable(code)
	if err != nil {
		return Comic{}, err
	}
	return c, s.persist()
}

// ExportReport writes the dated users-and-sales report and returns its path.
func (s *Session) ExportReport() (string, error) {
	if err := s.authorize(OpExportReport); err != nil {
		return "", err
	}
	now := s.now()
	path := filepath.Join(s.reportDir, DefaultReportPath(now))
	if err := s.reports.Export(path, s.users.All(), s.inv.Sold(), now); err != nil {
		return "", err
	}
	return path, nil
}

// authorize gates op on the active user. Without an active user only
// registration is allowed; otherwise the policy table decides.
func (s *Session) authorize(op Op) error {
	if s.active == nil {
		if op == OpRegisterUser {
			return nil
		}
		return ErrNotAuthenticated
	}
	if !Allows(s.active.Role, op) {
		return ErrPermissionDenied
	}
	return nil
}

// persist writes the available compartment back to the catalog file. A
// failure is logged and surfaced; the in-memory state stays as mutated.
func (s *Session) persist() error {
	if err := s.store.Save(s.inv.Available()); err != nil {
		s.log.Error("catalog save failed", "path", s.store.Path(), "error", err)
		return err
	}
	return nil
}
