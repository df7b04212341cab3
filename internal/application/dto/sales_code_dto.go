package dto

import "time"

// SalesCodeDTO asignación de código de agente.
type SalesCodeDTO struct {
	ID        int64     `json:"id"`
	STO       string    `json:"sto"`
	KodeAgen  string    `json:"kode_agen"`
	KodeBaru  string    `json:"kode_baru"`
	MitraNama string    `json:"mitra_nama"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SalesCodeListResponse página del índice de códigos.
type SalesCodeListResponse struct {
	Data       []SalesCodeDTO `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// SaveSalesCodeRequest cuerpo de create/update de códigos.
type SaveSalesCodeRequest struct {
	STO       string `json:"sto"`
	KodeAgen  string `json:"kode_agen"`
	KodeBaru  string `json:"kode_baru"`
	MitraNama string `json:"mitra_nama"`
}
