// Package excel lee los archivos xlsx de carga masiva: el feed de pedidos
// Data PS y el listado de códigos de agente. Las columnas se resuelven por
// nombre de cabecera (primera fila), no por posición.
package excel

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/salesops-api/internal/domain/entity"
)

// Reader implementa orders.Reader y salescodes.Reader sobre excelize.
type Reader struct{}

// NewReader construye el lector.
func NewReader() *Reader { return &Reader{} }

// ReadOrders lee el xlsx de pedidos. El feed trae más columnas de las que se
// persisten; las sobrantes se ignoran. Devuelve los pedidos y cuántas filas
// vacías descartó. Una fila sin ORDER_ID cuenta como vacía.
func (Reader) ReadOrders(r io.Reader) ([]*entity.Order, int, error) {
	rows, header, err := openSheet(r)
	if err != nil {
		return nil, 0, err
	}
	if _, ok := header["order_id"]; !ok {
		return nil, 0, fmt.Errorf("excel: falta la columna ORDER_ID")
	}

	var orders []*entity.Order
	skipped := 0
	for i, cells := range rows {
		get := cellGetter(header, cells)
		if get("order_id") == "" {
			skipped++
			continue
		}
		orderDate, err := parseCellDate(get("order_date"))
		if err != nil {
			return nil, 0, fmt.Errorf("excel: fila %d: ORDER_DATE: %w", i+2, err)
		}
		tglPS, err := parseCellDate(get("tgl_ps"))
		if err != nil {
			return nil, 0, fmt.Errorf("excel: fila %d: TGL_PS: %w", i+2, err)
		}
		lastUpdated, err := parseCellDate(get("last_updated_date"))
		if err != nil {
			return nil, 0, fmt.Errorf("excel: fila %d: LAST_UPDATED_DATE: %w", i+2, err)
		}
		orders = append(orders, &entity.Order{
			OrderID:         get("order_id"),
			Regional:        get("regional"),
			Witel:           get("witel"),
			Datel:           get("datel"),
			STO:             get("sto"),
			OrderDate:       orderDate,
			TglPS:           tglPS,
			LastUpdatedDate: lastUpdated,
			StatusMessage:   get("status_message"),
			BulanPS:         get("bulan_ps"),
			TypeTrans:       get("type_trans"),
			PackageName:     get("package_name"),
			KodeSales:       get("kode_sales"),
			NamaSA:          get("nama_sa"),
			Mitra:           get("mitra"),
			Ekosistem:       get("ekosistem"),
			CustomerName:    get("customer_name"),
			Addon:           get("addon"),
		})
	}
	return orders, skipped, nil
}

// ReadSalesCodes lee el xlsx de códigos. Una fila sin STO ni códigos cuenta
// como vacía.
func (Reader) ReadSalesCodes(r io.Reader) ([]*entity.SalesCode, int, error) {
	rows, header, err := openSheet(r)
	if err != nil {
		return nil, 0, err
	}
	if _, ok := header["sto"]; !ok {
		return nil, 0, fmt.Errorf("excel: falta la columna sto")
	}

	var codes []*entity.SalesCode
	skipped := 0
	for _, cells := range rows {
		get := cellGetter(header, cells)
		sto := get("sto")
		kodeAgen := get("kode_agen")
		kodeBaru := get("kode_baru")
		if sto == "" && kodeAgen == "" && kodeBaru == "" {
			skipped++
			continue
		}
		codes = append(codes, &entity.SalesCode{
			STO:       sto,
			KodeAgen:  kodeAgen,
			KodeBaru:  kodeBaru,
			MitraNama: get("mitra_nama"),
		})
	}
	return codes, skipped, nil
}

// openSheet abre el libro, toma la primera hoja y separa la cabecera (mapa
// nombre-normalizado → índice de columna) del resto de filas.
func openSheet(r io.Reader) ([][]string, map[string]int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("excel: abrir archivo: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("excel: el archivo no tiene hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("excel: leer hoja %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("excel: la hoja no tiene filas de datos")
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		key := normalizeHeader(name)
		if key != "" {
			header[key] = i
		}
	}
	return rows[1:], header, nil
}

// normalizeHeader "ORDER_ID", "Order Id" y "order_id" resuelven igual.
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}

func cellGetter(header map[string]int, cells []string) func(string) string {
	return func(key string) string {
		i, ok := header[key]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}
}

// Formatos de fecha que aparecen en los feeds exportados.
var cellDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"1/2/06 15:04",
	time.RFC3339,
}

func parseCellDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range cellDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("fecha no reconocida %q", s)
}
