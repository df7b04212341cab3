package dto

import "time"

// RecentSalesCodeDTO fila del widget "códigos recientes"; Kode ya viene
// resuelto (kode_agen o kode_baru según la fecha de alta).
type RecentSalesCodeDTO struct {
	Kode      string    `json:"kode"`
	MitraNama string    `json:"mitra_nama"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentOrderDTO fila del widget "pedidos recientes".
type RecentOrderDTO struct {
	OrderID      string     `json:"ORDER_ID"`
	CustomerName string     `json:"CUSTOMER_NAME"`
	OrderDate    *time.Time `json:"ORDER_DATE"`
}

// DashboardResponse resumen del dashboard por rol. Los totales aceptan un
// rango de fechas opcional; los widgets y charts siempre cubren toda la tabla.
type DashboardResponse struct {
	TotalSalesCodes  int                  `json:"total_sales_codes"`
	TotalOrders      int                  `json:"total_orders"`
	TotalCompleted   int                  `json:"total_completed"`
	TotalPending     int                  `json:"total_pending"`
	RecentSalesCodes []RecentSalesCodeDTO `json:"recent_sales_codes"`
	RecentOrders     []RecentOrderDTO     `json:"recent_orders"`
	BarChart         ChartResponse        `json:"bar_chart"`
	PieChart         ChartResponse        `json:"pie_chart"`
}

// LandingResponse totales públicos de la página de inicio.
type LandingResponse struct {
	TotalOrders     int `json:"total_orders"`
	TotalCompleted  int `json:"total_completed"`
	TotalSalesCodes int `json:"total_sales_codes"`
}
