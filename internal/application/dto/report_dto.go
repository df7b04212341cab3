package dto

// StoAnalysisRow fila de la matriz STO×mes: un contador por nombre de mes
// (los doce meses en indonesio, 0 si no hubo pedidos) y el gran total de la
// fila. grand_total siempre es la suma de las doce columnas.
type StoAnalysisRow struct {
	STO        string         `json:"sto"`
	Months     map[string]int `json:"months"`
	GrandTotal int            `json:"grand_total"`
}

// StoAnalysisResponse respuesta del análisis por STO.
// SelectedYear solo aparece en la variante anual (agrupada por TGL_PS).
type StoAnalysisResponse struct {
	StoAnalysis  []StoAnalysisRow `json:"stoAnalysis"`
	StoList      []string         `json:"stoList"`
	SelectedSto  string           `json:"selectedSto"`
	SelectedYear int              `json:"selectedYear,omitempty"`
	ViewType     string           `json:"viewType"`
}

// MonthStoItem par (mes, sto) con su total.
type MonthStoItem struct {
	Month string `json:"month"`
	Sto   string `json:"sto"`
	Total int    `json:"total"`
}

// MonthAnalysisResponse respuesta del análisis por mes.
type MonthAnalysisResponse struct {
	MonthAnalysis []MonthStoItem `json:"month_analysis"`
	BulanList     []string       `json:"bulan_list"`
	SelectedBulan string         `json:"selected_bulan,omitempty"`
}

// CodeTotal acumulado por código efectivo de agente.
type CodeTotal struct {
	Kode  string `json:"kode"`
	Nama  string `json:"nama"`
	Total int    `json:"total"`
}

// CodeAnalysisResponse respuesta del análisis por código.
type CodeAnalysisResponse struct {
	AnalysisPerCode []CodeTotal `json:"analysis_per_code"`
	BulanList       []string    `json:"bulan_list"`
	StoList         []string    `json:"sto_list"`
	SelectedSto     string      `json:"selectedSto,omitempty"`
	SelectedBulan   string      `json:"selected_bulan,omitempty"`
}

// MitraTotal acumulado por mitra.
type MitraTotal struct {
	Mitra string `json:"mitra"`
	Total int    `json:"total"`
}

// MitraAnalysisResponse respuesta del análisis por mitra, con las listas de
// facetas para los filtros del cliente.
type MitraAnalysisResponse struct {
	BulanList     []string     `json:"bulan_list"`
	StoList       []string     `json:"sto_list"`
	MitraList     []string     `json:"mitra_list"`
	MitraAnalysis []MitraTotal `json:"mitra_analysis"`
}

// ChartResponse arreglos paralelos etiqueta/valor para los charts.
type ChartResponse struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// DayOrderDetail detalle de un pedido dentro del análisis por día.
// Las claves conservan el formato de columna original de la tabla.
type DayOrderDetail struct {
	OrderID      string `json:"ORDER_ID"`
	STO          string `json:"STO"`
	CustomerName string `json:"CUSTOMER_NAME"`
	Addon        string `json:"ADDON"`
	KodeSales    string `json:"KODE_SALES"`
	NamaSA       string `json:"NAMA_SA"`
}

// DayAnalysisItem una fecha PS con su total y el detalle de sus pedidos.
type DayAnalysisItem struct {
	TglPS   string           `json:"TGL_PS"`
	Total   int              `json:"total"`
	Details []DayOrderDetail `json:"details"`
}

// DayAnalysisResponse página del análisis por día (tamaño de página fijo 9).
type DayAnalysisResponse struct {
	Data       []DayAnalysisItem `json:"data"`
	Pagination Pagination        `json:"pagination"`
}
