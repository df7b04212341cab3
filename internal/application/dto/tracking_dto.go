package dto

import "github.com/shopspring/decimal"

// DailyPoint un día del seguimiento de metas: conteo, acumulado MTD y el
// flag "gimmick" contra el umbral del día de la semana.
type DailyPoint struct {
	Day        int    `json:"day"`
	Date       string `json:"date"` // YYYY-MM-DD
	DayName    string `json:"day_name"`
	Total      int    `json:"total"`
	Cumulative int    `json:"cumulative"`
	Gimmick    string `json:"gimmick"` // "Achieve" | "Not Achieve"
}

// PerformanceData métricas agregadas del mes en curso. Los porcentajes de
// logro van como null cuando son cero (meta sin configurar o sin
// realización), manteniendo el contrato original del API.
type PerformanceData struct {
	DailyTargetAverage      decimal.Decimal  `json:"daily_target_average"`
	MtdRealization          int              `json:"mtd_realization"`
	AchievementTargetGrowth *decimal.Decimal `json:"achievement_target_growth"`
	AchievementTargetRkap   *decimal.Decimal `json:"achievement_target_rkap"`
}

// MonthSeries un mes del seguimiento. Data solo se incluye con
// view_type=="table"; los clientes de chart piden la serie aparte.
type MonthSeries struct {
	Month    string       `json:"month"`
	Year     int          `json:"year"`
	Data     []DailyPoint `json:"data,omitempty"`
	TotalMtd int          `json:"total_mtd"`
}

// Comparison comparación mes actual vs anterior.
type Comparison struct {
	GapMtd int `json:"gap_mtd"`
}

// TargetTrackingResponse respuesta completa del seguimiento de metas.
type TargetTrackingResponse struct {
	PerformanceData PerformanceData `json:"performance_data"`
	CurrentMonth    MonthSeries     `json:"current_month"`
	PreviousMonth   MonthSeries     `json:"previous_month"`
	Comparison      Comparison      `json:"comparison"`
	ViewType        string          `json:"view_type"`
}

// SaveTargetRequest cuerpo de POST set-target.
type SaveTargetRequest struct {
	Month        string          `json:"month"`
	Year         int             `json:"year"`
	TargetGrowth decimal.Decimal `json:"target_growth"`
	TargetRkap   decimal.Decimal `json:"target_rkap"`
}

// TargetDTO meta persistida.
type TargetDTO struct {
	ID           int64           `json:"id"`
	Month        string          `json:"month"`
	Year         int             `json:"year"`
	TargetGrowth decimal.Decimal `json:"target_growth"`
	TargetRkap   decimal.Decimal `json:"target_rkap"`
}
