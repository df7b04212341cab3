package dto

import "time"

// Las claves JSON de los pedidos conservan el formato de columna del feed
// original (mayúsculas con guión bajo): los clientes existentes dependen de
// ese contrato.

// OrderSummaryDTO columnas del listado paginado.
type OrderSummaryDTO struct {
	ID       int64  `json:"id"`
	OrderID  string `json:"ORDER_ID"`
	Regional string `json:"REGIONAL"`
	Witel    string `json:"WITEL"`
	Datel    string `json:"DATEL"`
	STO      string `json:"STO"`
}

// OrderListResponse página del índice de pedidos.
type OrderListResponse struct {
	Data       []OrderSummaryDTO `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// OrderDTO pedido completo.
type OrderDTO struct {
	ID              int64      `json:"id"`
	OrderID         string     `json:"ORDER_ID"`
	Regional        string     `json:"REGIONAL"`
	Witel           string     `json:"WITEL"`
	Datel           string     `json:"DATEL"`
	STO             string     `json:"STO"`
	OrderDate       *time.Time `json:"ORDER_DATE"`
	TglPS           *time.Time `json:"TGL_PS"`
	LastUpdatedDate *time.Time `json:"LAST_UPDATED_DATE"`
	StatusMessage   string     `json:"STATUS_MESSAGE"`
	BulanPS         string     `json:"Bulan_PS"`
	TypeTrans       string     `json:"TYPE_TRANS"`
	PackageName     string     `json:"PACKAGE_NAME"`
	KodeSales       string     `json:"Kode_sales"`
	NamaSA          string     `json:"NAMA_SA"`
	Mitra           string     `json:"Mitra"`
	Ekosistem       string     `json:"Ekosistem"`
	CustomerName    string     `json:"CUSTOMER_NAME"`
	Addon           string     `json:"ADDON"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// SaveOrderRequest cuerpo de create/update de pedidos. Las fechas llegan
// como texto (YYYY-MM-DD o RFC3339) y pueden venir vacías.
type SaveOrderRequest struct {
	OrderID         string `json:"ORDER_ID"`
	Regional        string `json:"REGIONAL"`
	Witel           string `json:"WITEL"`
	Datel           string `json:"DATEL"`
	STO             string `json:"STO"`
	OrderDate       string `json:"ORDER_DATE"`
	TglPS           string `json:"TGL_PS"`
	LastUpdatedDate string `json:"LAST_UPDATED_DATE"`
	StatusMessage   string `json:"STATUS_MESSAGE"`
	BulanPS         string `json:"Bulan_PS"`
	TypeTrans       string `json:"TYPE_TRANS"`
	PackageName     string `json:"PACKAGE_NAME"`
	KodeSales       string `json:"Kode_sales"`
	NamaSA          string `json:"NAMA_SA"`
	Mitra           string `json:"Mitra"`
	Ekosistem       string `json:"Ekosistem"`
	CustomerName    string `json:"CUSTOMER_NAME"`
	Addon           string `json:"ADDON"`
}

// ImportResult resultado de un import de Excel.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"` // filas vacías descartadas
}
