package entity

import "time"

// Order representa una fila de provisioning ("Data PS"): un pedido de
// instalación/activación de servicio. La tabla original es un dump operativo,
// por eso casi todo es texto libre y opcional.
//
// Campos clave para el motor de reportes:
//   - STO: código de la oficina de servicio (eje geográfico de agrupación).
//   - BulanPS: nombre de mes en indonesio asignado a mano al período PS; puede
//     NO coincidir con el mes calendario de TglPS.
//   - TglPS: fecha real de activación (eje temporal de agrupación).
//   - KodeSales / NamaSA / Mitra: atribución comercial.
type Order struct {
	ID              int64
	OrderID         string // único global
	Regional        string
	Witel           string
	Datel           string
	STO             string
	OrderDate       *time.Time
	TglPS           *time.Time // fecha PS (activación); nil si aún no provisionado
	LastUpdatedDate *time.Time
	StatusMessage   string // "completed", "pending", ...
	BulanPS         string // texto libre, mes en indonesio
	TypeTrans       string
	PackageName     string
	KodeSales       string
	NamaSA          string // nombre del sales agent
	Mitra           string // canal/partner responsable
	Ekosistem       string
	CustomerName    string
	Addon           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
