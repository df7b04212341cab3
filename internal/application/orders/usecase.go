// Package orders contiene el CRUD de pedidos y la orquestación del import
// desde Excel.
package orders

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/internal/domain"
	"github.com/jhoicas/salesops-api/internal/domain/entity"
	"github.com/jhoicas/salesops-api/internal/domain/repository"
)

// DefaultPerPage tamaño de página por defecto del índice.
const DefaultPerPage = 10

// Reader lee pedidos desde un archivo xlsx. Devuelve los pedidos con datos y
// cuántas filas vacías descartó.
type Reader interface {
	ReadOrders(r io.Reader) ([]*entity.Order, int, error)
}

// UseCase CRUD e import de pedidos.
type UseCase struct {
	repo   repository.OrderRepository
	reader Reader
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.OrderRepository, reader Reader) *UseCase {
	return &UseCase{repo: repo, reader: reader}
}

// List página del índice de pedidos. domain.ErrEmptyResult si no hay filas.
func (uc *UseCase) List(ctx context.Context, page, perPage int) (*dto.OrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = DefaultPerPage
	}
	rows, total, err := uc.repo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	if total == 0 {
		return nil, domain.ErrEmptyResult
	}

	items := make([]dto.OrderSummaryDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.OrderSummaryDTO{
			ID: r.ID, OrderID: r.OrderID, Regional: r.Regional,
			Witel: r.Witel, Datel: r.Datel, STO: r.STO,
		})
	}
	return &dto.OrderListResponse{
		Data:       items,
		Pagination: dto.NewPagination(page, perPage, total),
	}, nil
}

// Get pedido por id. domain.ErrNotFound si no existe.
func (uc *UseCase) Get(ctx context.Context, id int64) (*dto.OrderDTO, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener pedido: %w", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderDTO(o), nil
}

// Create valida y persiste un pedido nuevo.
func (uc *UseCase) Create(ctx context.Context, req dto.SaveOrderRequest) (*dto.OrderDTO, error) {
	o, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return toOrderDTO(o), nil
}

// Update sobreescribe el pedido id con los datos del request.
func (uc *UseCase) Update(ctx context.Context, id int64, req dto.SaveOrderRequest) (*dto.OrderDTO, error) {
	o, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	o.ID = id
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// Delete elimina el pedido id.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// Truncate borra todos los pedidos.
func (uc *UseCase) Truncate(ctx context.Context) error {
	return uc.repo.TruncateAll(ctx)
}

// Import lee el xlsx y persiste el lote completo en una transacción.
func (uc *UseCase) Import(ctx context.Context, file io.Reader) (*dto.ImportResult, error) {
	parsed, skipped, err := uc.reader.ReadOrders(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("%w: el archivo no tiene filas con datos", domain.ErrInvalidInput)
	}
	n, err := uc.repo.CreateBatch(ctx, parsed)
	if err != nil {
		return nil, err
	}
	return &dto.ImportResult{Imported: n, Skipped: skipped}, nil
}

func fromRequest(req dto.SaveOrderRequest) (*entity.Order, error) {
	if strings.TrimSpace(req.OrderID) == "" {
		return nil, fmt.Errorf("%w: ORDER_ID es requerido", domain.ErrInvalidInput)
	}
	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("%w: ORDER_DATE: %v", domain.ErrInvalidInput, err)
	}
	tglPS, err := parseDate(req.TglPS)
	if err != nil {
		return nil, fmt.Errorf("%w: TGL_PS: %v", domain.ErrInvalidInput, err)
	}
	lastUpdated, err := parseDate(req.LastUpdatedDate)
	if err != nil {
		return nil, fmt.Errorf("%w: LAST_UPDATED_DATE: %v", domain.ErrInvalidInput, err)
	}
	return &entity.Order{
		OrderID:         strings.TrimSpace(req.OrderID),
		Regional:        req.Regional,
		Witel:           req.Witel,
		Datel:           req.Datel,
		STO:             req.STO,
		OrderDate:       orderDate,
		TglPS:           tglPS,
		LastUpdatedDate: lastUpdated,
		StatusMessage:   req.StatusMessage,
		BulanPS:         req.BulanPS,
		TypeTrans:       req.TypeTrans,
		PackageName:     req.PackageName,
		KodeSales:       req.KodeSales,
		NamaSA:          req.NamaSA,
		Mitra:           req.Mitra,
		Ekosistem:       req.Ekosistem,
		CustomerName:    req.CustomerName,
		Addon:           req.Addon,
	}, nil
}

// dateLayouts formatos aceptados en fechas de entrada (feed y formularios).
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("fecha no reconocida %q", s)
}

func toOrderDTO(o *entity.Order) *dto.OrderDTO {
	return &dto.OrderDTO{
		ID:              o.ID,
		OrderID:         o.OrderID,
		Regional:        o.Regional,
		Witel:           o.Witel,
		Datel:           o.Datel,
		STO:             o.STO,
		OrderDate:       o.OrderDate,
		TglPS:           o.TglPS,
		LastUpdatedDate: o.LastUpdatedDate,
		StatusMessage:   o.StatusMessage,
		BulanPS:         o.BulanPS,
		TypeTrans:       o.TypeTrans,
		PackageName:     o.PackageName,
		KodeSales:       o.KodeSales,
		NamaSA:          o.NamaSA,
		Mitra:           o.Mitra,
		Ekosistem:       o.Ekosistem,
		CustomerName:    o.CustomerName,
		Addon:           o.Addon,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
