package comics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndFind(t *testing.T) {
	dir := NewUserDirectory()
	u := User{ID: "12.345.678-9", GivenName: "Jane", FamilyName: "Doe", Role: RoleCustomer}

	require.NoError(t, dir.Register(u))
	require.Equal(t, 1, dir.Len())

	found, ok := dir.Find("12.345.678-9")
	require.True(t, ok)
	require.Equal(t, u, found)
}

func TestDuplicateRegistrationLeavesDirectoryUnchanged(t *testing.T) {
	dir := NewUserDirectory()
	first := User{ID: "11.111.111-1", GivenName: "First", FamilyName: "Names", Role: RoleAdmin}
	require.NoError(t, dir.Register(first))

	second := User{ID: "11.111.111-1", GivenName: "Other", FamilyName: "Person", Role: RoleCustomer}
	require.ErrorIs(t, dir.Register(second), ErrDuplicateID)

	require.Equal(t, 1, dir.Len())
	found, ok := dir.Find("11.111.111-1")
	require.True(t, ok)
	require.Equal(t, "First", found.GivenName)
	require.Equal(t, "Names", found.FamilyName)
}

func TestCheckDigitCaseIsNotSignificant(t *testing.T) {
	dir := NewUserDirectory()
	require.NoError(t, dir.Register(User{ID: "1.234.567-k", GivenName: "Kay", FamilyName: "Low", Role: RoleCustomer}))

	_, ok := dir.Find("1.234.567-K")
	require.True(t, ok)

	err := dir.Register(User{ID: "1.234.567-K", GivenName: "Kay", FamilyName: "Up", Role: RoleCustomer})
	require.ErrorIs(t, err, ErrDuplicateID)

	// Stored casing is preserved.
	found, _ := dir.Find("1.234.567-k")
	require.Equal(t, "1.234.567-k", found.ID)
}

func TestRegisterRejectsInvalidFields(t *testing.T) {
	dir := NewUserDirectory()

	cases := map[string]User{
		"empty given name":  {ID: "12.345.678-9", GivenName: "", FamilyName: "Doe", Role: RoleCustomer},
		"empty family name": {ID: "12.345.678-9", GivenName: "Jane", FamilyName: " ", Role: RoleCustomer},
		"missing role":      {ID: "12.345.678-9", GivenName: "Jane", FamilyName: "Doe"},
	}
	for name, u := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, dir.Register(u), ErrInvalidField)
			require.Zero(t, dir.Len())
		})
	}
}

func TestNationalIDFormat(t *testing.T) {
	valid := []string{"12.345.678-9", "1.234.567-0", "1.234.567-k", "99.999.999-K"}
	for _, id := range valid {
		require.True(t, ValidID(id), "id %q should be valid", id)
	}

	invalid := []string{
		"",
		"123-4",
		"123.345.678-9", // three leading digits
		"12.345.678-",   // missing check digit
		"12.345.678-99", // check digit too long
		"12.345.678-x",  // bad check digit
		"12345678-9",    // missing dots
		"12.345.678_9",  // wrong separator
		" 12.345.678-9", // leading space
		"12.345.678-9 ", // trailing space
	}
	for _, id := range invalid {
		require.False(t, ValidID(id), "id %q should be invalid", id)
	}
}

func TestAllPreservesRegistrationOrder(t *testing.T) {
	dir := NewUserDirectory()
	ids := []string{"11.111.111-1", "22.222.222-2", "3.333.333-3"}
	for _, id := range ids {
		require.NoError(t, dir.Register(User{ID: id, GivenName: "G", FamilyName: "F", Role: RoleCustomer}))
	}

	all := dir.All()
	require.Len(t, all, 3)
	for i, id := range ids {
		require.Equal(t, id, all[i].ID)
	}
}
