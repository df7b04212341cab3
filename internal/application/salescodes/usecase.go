// Package salescodes contiene el CRUD de códigos de agente y su import
// desde Excel.
package salescodes

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/salesops-api/internal/application/dto"
	"github.com/jhoicas/salesops-api/internal/domain"
	"github.com/jhoicas/salesops-api/internal/domain/entity"
	"github.com/jhoicas/salesops-api/internal/domain/repository"
)

// PerPage tamaño de página fijo del índice de códigos.
const PerPage = 10

// Reader lee códigos de agente desde un archivo xlsx.
type Reader interface {
	ReadSalesCodes(r io.Reader) ([]*entity.SalesCode, int, error)
}

// UseCase CRUD e import de códigos.
type UseCase struct {
	repo   repository.SalesCodeRepository
	reader Reader
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.SalesCodeRepository, reader Reader) *UseCase {
	return &UseCase{repo: repo, reader: reader}
}

// List página del índice. domain.ErrEmptyResult si no hay filas.
func (uc *UseCase) List(ctx context.Context, page int) (*dto.SalesCodeListResponse, error) {
	if page < 1 {
		page = 1
	}
	rows, total, err := uc.repo.List(ctx, PerPage, (page-1)*PerPage)
	if err != nil {
		return nil, fmt.Errorf("listar códigos: %w", err)
	}
	if total == 0 {
		return nil, domain.ErrEmptyResult
	}

	items := make([]dto.SalesCodeDTO, 0, len(rows))
	for i := range rows {
		items = append(items, toSalesCodeDTO(&rows[i]))
	}
	return &dto.SalesCodeListResponse{
		Data:       items,
		Pagination: dto.NewPagination(page, PerPage, total),
	}, nil
}

// Get código por id. domain.ErrNotFound si no existe.
func (uc *UseCase) Get(ctx context.Context, id int64) (*dto.SalesCodeDTO, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener código: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	d := toSalesCodeDTO(c)
	return &d, nil
}

// Create valida y persiste una asignación nueva.
func (uc *UseCase) Create(ctx context.Context, req dto.SaveSalesCodeRequest) (*dto.SalesCodeDTO, error) {
	c, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return uc.Get(ctx, c.ID)
}

// Update sobreescribe la asignación id.
func (uc *UseCase) Update(ctx context.Context, id int64, req dto.SaveSalesCodeRequest) (*dto.SalesCodeDTO, error) {
	c, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	c.ID = id
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// Delete elimina la asignación id.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// Truncate borra todas las asignaciones.
func (uc *UseCase) Truncate(ctx context.Context) error {
	return uc.repo.TruncateAll(ctx)
}

// Import lee el xlsx y persiste el lote en una transacción.
func (uc *UseCase) Import(ctx context.Context, file io.Reader) (*dto.ImportResult, error) {
	parsed, skipped, err := uc.reader.ReadSalesCodes(file)
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

func fromRequest(req dto.SaveSalesCodeRequest) (*entity.SalesCode, error) {
	if strings.TrimSpace(req.STO) == "" {
		return nil, fmt.Errorf("%w: sto es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.KodeAgen) == "" && strings.TrimSpace(req.KodeBaru) == "" {
		return nil, fmt.Errorf("%w: se requiere kode_agen o kode_baru", domain.ErrInvalidInput)
	}
	return &entity.SalesCode{
		STO:       strings.TrimSpace(req.STO),
		KodeAgen:  strings.TrimSpace(req.KodeAgen),
		KodeBaru:  strings.TrimSpace(req.KodeBaru),
		MitraNama: strings.TrimSpace(req.MitraNama),
	}, nil
}

func toSalesCodeDTO(c *entity.SalesCode) dto.SalesCodeDTO {
	return dto.SalesCodeDTO{
		ID:        c.ID,
		STO:       c.STO,
		KodeAgen:  c.KodeAgen,
		KodeBaru:  c.KodeBaru,
		MitraNama: c.MitraNama,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
