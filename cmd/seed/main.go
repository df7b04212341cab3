// seed crea el esquema de la base de datos y lo puebla con datos de
// demostración: pedidos Data PS repartidos en dos períodos, códigos de
// venta, metas mensuales y las tres cuentas de rol.
//
// Uso: go run ./cmd/seed
// La conexión se toma de la misma configuración que cmd/api (DATABASE_URL
// o DB_HOST/DB_PORT/...). Es idempotente: los INSERT usan ON CONFLICT.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/salesops-api/internal/infrastructure/postgres"
	"github.com/jhoicas/salesops-api/pkg/config"
	"github.com/jhoicas/salesops-api/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS data_ps (
	id                BIGSERIAL PRIMARY KEY,
	order_id          TEXT NOT NULL UNIQUE,
	regional          TEXT NOT NULL DEFAULT '',
	witel             TEXT NOT NULL DEFAULT '',
	datel             TEXT NOT NULL DEFAULT '',
	sto               TEXT NOT NULL DEFAULT '',
	order_date        TIMESTAMPTZ,
	tgl_ps            TIMESTAMPTZ,
	last_updated_date TIMESTAMPTZ,
	status_message    TEXT NOT NULL DEFAULT '',
	bulan_ps          TEXT NOT NULL DEFAULT '',
	type_trans        TEXT NOT NULL DEFAULT '',
	package_name      TEXT NOT NULL DEFAULT '',
	kode_sales        TEXT NOT NULL DEFAULT '',
	nama_sa           TEXT NOT NULL DEFAULT '',
	mitra             TEXT NOT NULL DEFAULT '',
	ekosistem         TEXT NOT NULL DEFAULT '',
	customer_name     TEXT NOT NULL DEFAULT '',
	addon             TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_data_ps_sto ON data_ps (sto);
CREATE INDEX IF NOT EXISTS idx_data_ps_bulan_ps ON data_ps (bulan_ps);
CREATE INDEX IF NOT EXISTS idx_data_ps_tgl_ps ON data_ps (tgl_ps);

CREATE TABLE IF NOT EXISTS sales_codes (
	id         BIGSERIAL PRIMARY KEY,
	sto        TEXT NOT NULL DEFAULT '',
	kode_agen  TEXT NOT NULL DEFAULT '',
	kode_baru  TEXT NOT NULL DEFAULT '',
	mitra_nama TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_sales_codes_sto ON sales_codes (sto);

CREATE TABLE IF NOT EXISTS target_growth (
	id            BIGSERIAL PRIMARY KEY,
	month         TEXT NOT NULL,
	year          INT NOT NULL,
	target_growth NUMERIC(12,2) NOT NULL DEFAULT 0,
	target_rkap   NUMERIC(12,2) NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (month, year)
);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

type demoOrder struct {
	orderID  string
	sto      string
	tglPS    time.Time
	bulanPS  string
	kode     string
	namaSA   string
	mitra    string
	status   string
	customer string
	addon    string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("esquema creado")

	if err := seedOrders(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("sembrar pedidos")
	}
	if err := seedSalesCodes(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("sembrar códigos de venta")
	}
	if err := seedTargets(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("sembrar metas")
	}
	if err := seedUsers(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuarios")
	}

	log.Info().Msg("datos de demostración listos")
}

func seedOrders(ctx context.Context, pool *pgxpool.Pool) error {
	// Dos períodos de Bulan_PS para ejercitar la regla de códigos: los
	// pedidos de "Agustus" casan contra kode_agen y los de "September"
	// contra kode_baru.
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
	}
	orders := []demoOrder{
		{"PS-2024-0001", "BKS", day(2024, 8, 1), "Agustus", "AG-001", "Rina Wulandari", "Mitra Alpha", "Completed", "PT Sentosa", "WIFI"},
		{"PS-2024-0002", "BKS", day(2024, 8, 2), "Agustus", "AG-001", "Rina Wulandari", "Mitra Alpha", "Completed", "CV Makmur", ""},
		{"PS-2024-0003", "BKS", day(2024, 8, 5), "Agustus", "AG-002", "Bima Santoso", "Mitra Beta", "Pending", "Toko Jaya", "STB"},
		{"PS-2024-0004", "CKR", day(2024, 8, 7), "Agustus", "AG-003", "Dewi Lestari", "Mitra Alpha", "Completed", "PT Anugerah", ""},
		{"PS-2024-0005", "CKR", day(2024, 8, 12), "Agustus", "AG-003", "Dewi Lestari", "Mitra Beta", "Completed", "Warung Sari", "WIFI"},
		{"PS-2024-0006", "BKS", day(2024, 9, 3), "September", "BR-101", "Rina Wulandari", "Mitra Alpha", "Completed", "PT Harapan", ""},
		{"PS-2024-0007", "BKS", day(2024, 9, 4), "September", "BR-102", "Bima Santoso", "Mitra Gamma", "Pending", "CV Abadi", "STB"},
		{"PS-2024-0008", "CKR", day(2024, 9, 9), "September", "BR-103", "Dewi Lestari", "Mitra Alpha", "Completed", "PT Cemerlang", ""},
		{"PS-2024-0009", "JTB", day(2024, 9, 15), "September", "BR-104", "Agus Pratama", "Mitra Beta", "Completed", "Toko Subur", "WIFI"},
		{"PS-2024-0010", "JTB", day(2024, 9, 20), "September", "BR-104", "Agus Pratama", "Mitra Gamma", "Completed", "PT Sejahtera", ""},
	}

	for _, o := range orders {
		_, err := pool.Exec(ctx, `
			INSERT INTO data_ps (
				order_id, regional, witel, datel, sto,
				order_date, tgl_ps, last_updated_date,
				status_message, bulan_ps, type_trans, package_name,
				kode_sales, nama_sa, mitra, ekosistem,
				customer_name, addon
			) VALUES (
				$1, 'REG-2', 'BEKASI', $2, $2,
				$3, $3, $3,
				$4, $5, 'AO', 'INDIHOME 2P',
				$6, $7, $8, 'RESIDENTIAL',
				$9, $10
			)
			ON CONFLICT (order_id) DO NOTHING`,
			o.orderID, o.sto, o.tglPS, o.status, o.bulanPS,
			o.kode, o.namaSA, o.mitra, o.customer, o.addon,
		)
		if err != nil {
			return fmt.Errorf("pedido %s: %w", o.orderID, err)
		}
	}
	return nil
}

func seedSalesCodes(ctx context.Context, pool *pgxpool.Pool) error {
	codes := []struct{ sto, agen, baru, mitra string }{
		{"BKS", "AG-001", "BR-101", "Mitra Alpha"},
		{"BKS", "AG-002", "BR-102", "Mitra Beta"},
		{"CKR", "AG-003", "BR-103", "Mitra Alpha"},
		{"JTB", "AG-004", "BR-104", "Mitra Gamma"},
	}
	for _, c := range codes {
		var exists bool
		err := pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM sales_codes WHERE sto = $1 AND kode_agen = $2)`,
			c.sto, c.agen,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("verificar código %s: %w", c.agen, err)
		}
		if exists {
			continue
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO sales_codes (sto, kode_agen, kode_baru, mitra_nama)
			VALUES ($1, $2, $3, $4)`,
			c.sto, c.agen, c.baru, c.mitra,
		)
		if err != nil {
			return fmt.Errorf("código %s: %w", c.agen, err)
		}
	}
	return nil
}

func seedTargets(ctx context.Context, pool *pgxpool.Pool) error {
	targets := []struct {
		month  string
		year   int
		growth decimal.Decimal
		rkap   decimal.Decimal
	}{
		{"agustus", 2024, decimal.NewFromInt(150), decimal.NewFromInt(180)},
		{"september", 2024, decimal.NewFromInt(160), decimal.NewFromInt(190)},
	}
	for _, t := range targets {
		_, err := pool.Exec(ctx, `
			INSERT INTO target_growth (month, year, target_growth, target_rkap)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (month, year) DO UPDATE SET
				target_growth = EXCLUDED.target_growth,
				target_rkap   = EXCLUDED.target_rkap,
				updated_at    = now()`,
			t.month, t.year, t.growth, t.rkap,
		)
		if err != nil {
			return fmt.Errorf("meta %s/%d: %w", t.month, t.year, err)
		}
	}
	return nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool) error {
	users := []struct{ name, username, email, password, role string }{
		{"Administrador", "admin", "admin@example.com", "admin123", "admin"},
		{"Equipo Ventas", "sales", "sales@example.com", "sales123", "sales"},
		{"Consulta", "user", "user@example.com", "user123", "user"},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash de %s: %w", u.username, err)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO users (id, name, username, email, password_hash, role)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (username) DO NOTHING`,
			uuid.New().String(), u.name, u.username, u.email, string(hash), u.role,
		)
		if err != nil {
			return fmt.Errorf("usuario %s: %w", u.username, err)
		}
	}
	return nil
}
