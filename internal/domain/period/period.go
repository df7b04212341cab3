// Package period concentra el vocabulario temporal del negocio: los doce
// nombres de mes en indonesio que usa Bulan_PS y la regla de selección de
// código de agente por período.
package period

import "strings"

// Months son los doce nombres de mes en indonesio, en orden calendario.
// Bulan_PS es texto libre; la comparación contra esta tabla es exacta, los
// valores desconocidos simplemente no casan (y deben tolerarse).
var Months = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthNumber resuelve un nombre de mes (case-insensitive) a 1..12.
// Devuelve 0, false si el nombre no es un mes conocido.
func MonthNumber(name string) (int, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, m := range Months {
		if strings.ToLower(m) == lower {
			return i + 1, true
		}
	}
	return 0, false
}

// MonthName devuelve el nombre indonesio del mes 1..12, o "" fuera de rango.
func MonthName(n int) string {
	if n < 1 || n > 12 {
		return ""
	}
	return Months[n-1]
}

// CodeColumn identifica cuál columna de sales_codes aplica a un período.
// Es un conjunto cerrado: el SQL del join se construye a partir de estos
// valores, nunca de entrada externa.
type CodeColumn string

const (
	ColumnKodeAgen CodeColumn = "kode_agen"
	ColumnKodeBaru CodeColumn = "kode_baru"
)

// Rule mapea nombres de período (valores de Bulan_PS) a la columna de código
// vigente en ese período. Representa el renombramiento puntual de códigos de
// agente: históricamente "Agustus" → kode_agen y "September" → kode_baru.
//
// Un período sin entrada no selecciona código; el motor de reportes cae
// entonces al Kode_sales propio del pedido. Agregar un período nuevo es un
// cambio de configuración, no de código.
type Rule struct {
	assignments map[string]CodeColumn
}

// NewRule construye la regla a partir del mapa período→columna.
// Las claves se normalizan a minúsculas.
func NewRule(assignments map[string]CodeColumn) Rule {
	norm := make(map[string]CodeColumn, len(assignments))
	for name, col := range assignments {
		norm[strings.ToLower(strings.TrimSpace(name))] = col
	}
	return Rule{assignments: norm}
}

// DefaultRule devuelve la regla histórica Agustus/September.
func DefaultRule() Rule {
	return NewRule(map[string]CodeColumn{
		"Agustus":   ColumnKodeAgen,
		"September": ColumnKodeBaru,
	})
}

// ColumnFor devuelve la columna de código para el período dado.
func (r Rule) ColumnFor(bulanPS string) (CodeColumn, bool) {
	col, ok := r.assignments[strings.ToLower(strings.TrimSpace(bulanPS))]
	return col, ok
}

// Periods devuelve los períodos mapeados a una columna concreta, en cualquier
// orden. Lo usa el repositorio para parametrizar el CASE/JOIN del análisis
// por código.
func (r Rule) Periods(col CodeColumn) []string {
	var out []string
	for name, c := range r.assignments {
		if c == col {
			out = append(out, name)
		}
	}
	return out
}
