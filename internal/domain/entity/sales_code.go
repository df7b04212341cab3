package entity

import "time"

// SalesCode asigna un código de agente a un STO. KodeAgen es el código vigente
// durante el período "Agustus"; KodeBaru lo reemplaza desde "September"
// (renombramiento puntual de códigos, ver domain/period).
type SalesCode struct {
	ID        int64
	STO       string
	KodeAgen  string
	KodeBaru  string
	MitraNama string
	CreatedAt time.Time
	UpdatedAt time.Time
}
