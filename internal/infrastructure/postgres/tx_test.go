package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salesops-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// txQuerier imita la forma de una pgx.Tx: cumple Querier y expone Begin
// (savepoints) pero NO BeginTx. Es el caso "ya estamos dentro de una tx".
type txQuerier struct {
	execs int
}

func (f *txQuerier) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	f.execs++
	return pgconn.CommandTag{}, nil
}

func (f *txQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, nil
}

func (f *txQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row { return nil }

func (f *txQuerier) Begin(_ context.Context) (pgx.Tx, error) {
	panic("savepoint inesperado: el lote debe insertarse directo sobre la tx en curso")
}

// starterQuerier imita la forma del pool: además de Querier expone BeginTx.
type starterQuerier struct {
	txQuerier
	beginErr error
}

func (f *starterQuerier) BeginTx(_ context.Context, _ pgx.TxOptions) (pgx.Tx, error) {
	return nil, f.beginErr
}

// ──────────────────────────────────────────────────────────────────────────────
// Detección de capacidad transaccional
// ──────────────────────────────────────────────────────────────────────────────

func TestTxStarter_UnaTxEnCursoNoAbreOtra(t *testing.T) {
	var q Querier = &txQuerier{}
	_, ok := q.(txStarter)
	assert.False(t, ok, "Begin (savepoint) no debe contar como capacidad de abrir tx")

	q = &starterQuerier{}
	_, ok = q.(txStarter)
	assert.True(t, ok)
}

func TestCreateBatch_DentroDeTxInsertaDirecto(t *testing.T) {
	q := &txQuerier{}
	repo := NewOrderRepository(q)

	orders := []*entity.Order{
		{OrderID: "PS-1", STO: "BKS"},
		{OrderID: "PS-2", STO: "CKR"},
	}
	n, err := repo.CreateBatch(context.Background(), orders)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, q.execs, "un INSERT por fila, sin tx anidada")
}

func TestCreateBatch_ConPoolAbreSuPropiaTx(t *testing.T) {
	q := &starterQuerier{beginErr: errors.New("sin conexión")}
	repo := NewOrderRepository(q)

	_, err := repo.CreateBatch(context.Background(), []*entity.Order{{OrderID: "PS-1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin import")
	assert.Zero(t, q.execs, "con BeginTx disponible nada se inserta fuera de la tx")
}

func TestCreateBatchCodes_DentroDeTxInsertaDirecto(t *testing.T) {
	q := &txQuerier{}
	repo := NewSalesCodeRepository(q)

	n, err := repo.CreateBatch(context.Background(), []*entity.SalesCode{
		{STO: "BKS", KodeAgen: "AG-001"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, q.execs)
}
