package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/dto"
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain"
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain/entity"
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain/repository"
)

// createdAtLayout formato de texto local con el que se registra la fecha de
// alta de cada artículo.
const createdAtLayout = "2006-01-02 15:04:05"

// ImageStore lo que el caso de uso necesita del almacén de imágenes.
type ImageStore interface {
	Save(encoded string) (string, error)
	Remove(path string) error
}

// ItemUseCase aplica las reglas de negocio del inventario: CRUD de artículos
// con su imagen asociada y las operaciones de consulta/reparación que usa el
// flujo de respaldos.
type ItemUseCase struct {
	repo       repository.ItemRepository
	images     ImageStore
	repairMode repository.RepairMode
}

// NewItemUseCase construye el caso de uso. repairMode gobierna qué pasa con
// las referencias huérfanas al reparar rutas de imagen.
func NewItemUseCase(repo repository.ItemRepository, images ImageStore, repairMode repository.RepairMode) *ItemUseCase {
	return &ItemUseCase{repo: repo, images: images, repairMode: repairMode}
}

// List devuelve el inventario completo, del más reciente al más antiguo.
func (uc *ItemUseCase) List(ctx context.Context) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *entityToItemResponse(it))
	}
	return items, nil
}

// Get obtiene un artículo por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *ItemUseCase) Get(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return entityToItemResponse(item), nil
}

// Create agrega un artículo. La imagen opcional llega en base64 y se guarda
// en el almacén gestionado; la fecha de alta se registra en hora local.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if err := validateItemInput(in.Name, in.CantidadNecesaria, in.CantidadDisponible); err != nil {
		return nil, err
	}

	var imagePath *string
	if in.ImageBase64 != nil && *in.ImageBase64 != "" {
		path, err := uc.images.Save(*in.ImageBase64)
		if err != nil {
			return nil, err
		}
		imagePath = &path
	}

	item := &entity.Item{
		Name:               in.Name,
		ImagePath:          imagePath,
		CantidadNecesaria:  in.CantidadNecesaria,
		CantidadDisponible: in.CantidadDisponible,
		CreatedAt:          time.Now().Format(createdAtLayout),
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return entityToItemResponse(item), nil
}

// Update actualiza nombre y cantidades. Con ImageBase64 presente guarda la
// imagen nueva y elimina el archivo anterior (best-effort); ausente, la
// imagen guardada no se toca.
func (uc *ItemUseCase) Update(ctx context.Context, id int64, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if err := validateItemInput(in.Name, in.CantidadNecesaria, in.CantidadDisponible); err != nil {
		return nil, err
	}

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	imagePath := current.ImagePath
	if in.ImageBase64 != nil && *in.ImageBase64 != "" {
		newPath, err := uc.images.Save(*in.ImageBase64)
		if err != nil {
			return nil, err
		}
		// Primero se asegura la imagen nueva; recién entonces se suelta la
		// anterior para no dejar al artículo sin archivo si el guardado falla.
		if current.HasImage() {
			_ = uc.images.Remove(*current.ImagePath)
		}
		imagePath = &newPath
	}

	item := &entity.Item{
		ID:                 id,
		Name:               in.Name,
		ImagePath:          imagePath,
		CantidadNecesaria:  in.CantidadNecesaria,
		CantidadDisponible: in.CantidadDisponible,
		CreatedAt:          current.CreatedAt,
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return entityToItemResponse(item), nil
}

// Delete elimina un artículo y, best-effort, su archivo de imagen.
func (uc *ItemUseCase) Delete(ctx context.Context, id int64) error {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}

	if current.HasImage() {
		_ = uc.images.Remove(*current.ImagePath)
	}
	return uc.repo.Delete(ctx, id)
}

// DatabasePath devuelve la ruta del archivo de base de datos actual.
func (uc *ItemUseCase) DatabasePath() string {
	return uc.repo.DatabasePath()
}

// RepairImagePaths repara las referencias de imagen contra el almacén
// gestionado y devuelve cuántos registros se actualizaron.
func (uc *ItemUseCase) RepairImagePaths(ctx context.Context) (int, error) {
	return uc.repo.RepairImagePaths(ctx, uc.repairMode)
}

func validateItemInput(name string, necesaria, disponible int) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrInvalidInput
	}
	if necesaria < 0 || disponible < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func entityToItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:                 it.ID,
		Name:               it.Name,
		ImagePath:          it.ImagePath,
		CantidadNecesaria:  it.CantidadNecesaria,
		CantidadDisponible: it.CantidadDisponible,
		CreatedAt:          it.CreatedAt,
	}
}
