// Package domain define las entidades y errores de negocio del sistema de
// reportes de ventas (provisioning "PS" de órdenes telco).
package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidMonth     = errors.New("mes inválido")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrDuplicateOrderID = errors.New("ORDER_ID ya registrado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrEmptyResult      = errors.New("sin datos")
)
