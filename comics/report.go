package comics

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

// ReportWriter serializes the user directory and the sold compartment into a
// dated plain-text report. The layout (headers, placeholders, totals, date
// line) matches the shop's established report format.
type ReportWriter struct{}

// DefaultReportPath returns the conventional report file name for the given
// day: reporte_usuarios_ventas_<YYYY-MM-DD>.txt.
func DefaultReportPath(now time.Time) string {
	return fmt.Sprintf("reporte_usuarios_ventas_%s.txt", now.Format("2006-01-02"))
}

// Export writes the report to path. Failures wrap ErrReport with the cause.
func (ReportWriter) Export(path string, users []User, sold []Comic, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReport, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintln(w, "===== Reporte de Usuarios =====")
	if len(users) == 0 {
		fmt.Fprintln(w, "No hay usuarios registrados.")
	} else {
		for _, u := range users {
			fmt.Fprintf(w, "%s - %s - %s - %s\n", u.ID, u.GivenName, u.FamilyName, u.Role)
		}
		fmt.Fprintf(w, "Total de usuarios registrados: %d\n", len(users))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "===== Reporte de Ventas =====")
	if len(sold) == 0 {
		fmt.Fprintln(w, "No hay ventas registradas.")
	} else {
		for _, c := range sold {
			fmt.Fprintf(w, "%s - %s - %s - %s - %d - %s\n", c.Code, c.Title, c.Author, c.Publisher, c.Price, c.Kind)
		}
		fmt.Fprintf(w, "Total de ventas realizadas: %d\n", len(sold))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Fecha de generación del reporte: %s\n", now.Format("2006-01-02"))

	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrReport, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrReport, err)
	}
	return nil
}
