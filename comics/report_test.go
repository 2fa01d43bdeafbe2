package comics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var reportDate = time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)

func TestReportLayout(t *testing.T) {
	users := []User{
		{ID: "12.345.678-9", GivenName: "Jane", FamilyName: "Doe", Role: RoleCustomer},
		{ID: "11.111.111-1", GivenName: "Ada", FamilyName: "Admin", Role: RoleAdmin},
	}
	sold := []Comic{
		{Code: "IDCOM1234", Title: "Watchmen", Author: "Alan Moore", Publisher: "DC", Price: 5000, Kind: "comic"},
	}

	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, ReportWriter{}.Export(path, users, sold, reportDate))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `===== Reporte de Usuarios =====
12.345.678-9 - Jane - Doe - Cliente
11.111.111-1 - Ada - Admin - Administrador
Total de usuarios registrados: 2

===== Reporte de Ventas =====
IDCOM1234 - Watchmen - Alan Moore - DC - 5000 - comic
Total de ventas realizadas: 1

Fecha de generación del reporte: 2026-08-28
`
	require.Equal(t, want, string(data))
}

func TestReportPlaceholdersWhenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, ReportWriter{}.Export(path, nil, nil, reportDate))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `===== Reporte de Usuarios =====
No hay usuarios registrados.

===== Reporte de Ventas =====
No hay ventas registradas.

Fecha de generación del reporte: 2026-08-28
`
	require.Equal(t, want, string(data))
}

func TestDefaultReportPath(t *testing.T) {
	require.Equal(t, "reporte_usuarios_ventas_2026-08-28.txt", DefaultReportPath(reportDate))
}

func TestReportFailureWrapsCause(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "report.txt")
	err := ReportWriter{}.Export(path, nil, nil, reportDate)
	require.ErrorIs(t, err, ErrReport)
}
