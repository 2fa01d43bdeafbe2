package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"comic-collector/comics"

	"golang.org/x/term"
)

// menu is the terminal adapter around the session. Prompts are printed only
// on a real terminal so piped command scripts produce clean output.
type menu struct {
	sc          *bufio.Scanner
	session     *comics.Session
	interactive bool
}

func runMenu(session *comics.Session) {
	m := &menu{
		sc:          bufio.NewScanner(os.Stdin),
		session:     session,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}

	if m.interactive {
		fmt.Println("Welcome to the Comic Collector System!")
		fmt.Println("Available commands:")
		fmt.Println("  Users: register, my info")
		fmt.Println("  Catalog: list comics, find comic")
		fmt.Println("  Customer: reserve, purchase")
		fmt.Println("  Admin: add comic, remove comic, export report")
		fmt.Println("  System: exit")
	}

	for {
		cmd, ok := m.prompt("\n> ")
		if !ok {
			return
		}

		switch cmd {
		case "register":
			m.handleRegister()
		case "my info":
			m.handleViewSelf()
		case "list comics":
			m.handleListComics()
		case "find comic":
			m.handleFindComic()
		case "reserve":
			m.handleReserve()
		case "purchase":
			m.handlePurchase()
		case "add comic":
			m.handleAddComic()
		case "remove comic":
			m.handleRemoveComic()
		case "export report":
			m.handleExportReport()
		case "exit":
			fmt.Println("Goodbye!")
			return
		case "":
			// blank line, re-prompt
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}
	}
}

func (m *menu) prompt(label string) (string, bool) {
	if m.interactive {
		fmt.Print(label)
	}
	if !m.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.sc.Text()), true
}

func (m *menu) handleRegister() {
	id, ok := m.prompt("National id (e.g. 12.345.678-9): ")
	if !ok {
		return
	}
	given, ok := m.prompt("Given name: ")
	if !ok {
		return
	}
	family, ok := m.prompt("Family name: ")
	if !ok {
		return
	}
	roleStr, ok := m.prompt("Role (1 = admin, 2 = customer): ")
	if !ok {
		return
	}

	var role comics.Role
	switch roleStr {
	case "1":
		role = comics.RoleAdmin
	case "2":
		role = comics.RoleCustomer
	default:
		fmt.Println("Invalid role option.")
		return
	}

	u, err := m.session.Register(id, given, family, role)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Printf("Registered %s %s (%s) as %s. You are now signed in.\n", u.GivenName, u.FamilyName, u.ID, u.Role)
}

func (m *menu) handleViewSelf() {
	u, err := m.session.ActiveUser()
	if err != nil {
		m.report(err)
		return
	}
	fmt.Printf("%s - %s %s - %s\n", u.ID, u.GivenName, u.FamilyName, u.Role)
}

func (m *menu) handleListComics() {
	listing, err := m.session.ListComics()
	if err != nil {
		m.report(err)
		return
	}
	printCompartment("AVAILABLE", listing.Available)
	printCompartment("RESERVED", listing.Reserved)
	printCompartment("SOLD", listing.Sold)
}

func printCompartment(name string, comicsList []comics.Comic) {
	fmt.Printf("\n===== %s =====\n", name)
	if len(comicsList) == 0 {
		fmt.Println("(none)")
		return
	}
	fmt.Printf("%-10s %-30s %-20s %-20s %8s  %s\n", "Code", "Title", "Author", "Publisher", "Price", "Kind")
	fmt.Println(strings.Repeat("-", 100))
	for _, c := range comicsList {
		fmt.Printf("%-10s %-30s %-20s %-20s %8d  %s\n",
			c.Code, truncateString(c.Title, 30), truncateString(c.Author, 20),
			truncateString(c.Publisher, 20), c.Price, c.Kind)
	}
}

func (m *menu) handleFindComic() {
	code, ok := m.prompt("Comic code: ")
	if !ok {
		return
	}
	c, err := m.session.FindComic(code)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Printf("%s - %s - %s - %s - %d - %s\n", c.Code, c.Title, c.Author, c.Publisher, c.Price, c.Kind)
}

func (m *menu) handleReserve() {
	code, ok := m.prompt("Code of the comic to reserve: ")
	if !ok {
		return
	}
	c, err := m.session.ReserveComic(code)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Printf("Reserved '%s' (%s).\n", c.Title, c.Code)
}

func (m *menu) handlePurchase() {
	total, err := m.session.PurchaseReserved()
	if err != nil {
		m.report(err)
		return
	}
	fmt.Printf("Purchase complete. Total to pay: %d\n", total)
}

func (m *menu) handleAddComic() {
	title, ok := m.prompt("Title: ")
	if !ok {
		return
	}
	author, ok := m.prompt("Author: ")
	if !ok {
		return
	}
	publisher, ok := m.prompt("Publisher: ")
	if !ok {
		return
	}
	priceStr, ok := m.prompt("Price: ")
	if !ok {
		return
	}
	price, err := strconv.Atoi(priceStr)
	if err != nil {
		fmt.Printf("Invalid price: %s\n", priceStr)
		return
	}
	kind, ok := m.prompt("Kind (comic, graphic-novel, superheroes, science-fiction, or free text): ")
	if !ok {
		return
	}

	c, err := m.session.AddComic(title, author, publisher, price, kind)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Printf("Added '%s' with code %s.\n", c.Title, c.Code)
}

func (m *menu) handleRemoveComic() {
	code, ok := m.prompt("Code of the comic to remove: ")
	if !ok {
		return
	}
	c, err := m.session.RemoveComic(code)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Printf("Removed '%s' (%s) from the catalog.\n", c.Title, c.Code)
}

func (m *menu) handleExportReport() {
	path, err := m.session.ExportReport()
	if err != nil {
		m.report(err)
		return
	}
	fmt.Printf("Report exported to %s\n", path)
}

// report prints the one user-facing message for each error kind.
func (m *menu) report(err error) {
	switch {
	case errors.Is(err, comics.ErrNotAuthenticated):
		fmt.Println("Error: register first to use this command.")
	case errors.Is(err, comics.ErrPermissionDenied):
		fmt.Println("Error: your role does not allow this operation.")
	case errors.Is(err, comics.ErrInvalidID):
		fmt.Println("Error: the national id is not valid (expected e.g. 12.345.678-9).")
	case errors.Is(err, comics.ErrDuplicateID):
		fmt.Println("Error: that national id is already registered.")
	case errors.Is(err, comics.ErrInvalidField):
		fmt.Println("Error: a required field is empty or invalid.")
	case errors.Is(err, comics.ErrNotFound):
		fmt.Println("Error: no comic with that code was found.")
	case errors.Is(err, comics.ErrDuplicateCode):
		fmt.Println("Error: a comic with that code already exists.")
	case errors.Is(err, comics.ErrAlreadyReserved):
		fmt.Println("Error: that comic is already reserved.")
	case errors.Is(err, comics.ErrNothingReserved):
		fmt.Println("Error: there are no reserved comics to purchase.")
	case errors.Is(err, comics.ErrCodePoolExhausted):
		fmt.Println("Error: no more comic codes can be issued.")
	case errors.Is(err, comics.ErrPersistence):
		fmt.Printf("Error: the catalog could not be saved: %v\n", err)
	case errors.Is(err, comics.ErrReport):
		fmt.Printf("Error: the report could not be exported: %v\n", err)
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
