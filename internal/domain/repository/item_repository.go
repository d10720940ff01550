package repository

import (
	"context"

	"github.com/Ileana-Castillo/inventario-servicio/internal/domain/entity"
)

// RepairMode controla qué hacer con las referencias de imagen cuyo archivo
// no existe en el almacén gestionado al ejecutar RepairImagePaths.
type RepairMode string

const (
	// RepairModeKeep deja intactas las referencias sin archivo correspondiente
	// (comportamiento clásico de la aplicación).
	RepairModeKeep RepairMode = "keep"
	// RepairModeClear pone en NULL las referencias sin archivo correspondiente.
	RepairModeClear RepairMode = "clear"
)

// Valid indica si el modo es uno de los soportados.
func (m RepairMode) Valid() bool {
	return m == RepairModeKeep || m == RepairModeClear
}

// ItemRepository define el puerto de persistencia del inventario (DIP).
// Es el storage backend autoritativo: además del CRUD, posee la ruta del
// archivo de base de datos actual y la operación de reparación de rutas de
// imagen que deja el inventario consistente tras importar un respaldo.
type ItemRepository interface {
	List(ctx context.Context) ([]*entity.Item, error)
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	Create(ctx context.Context, item *entity.Item) error
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id int64) error

	// DatabasePath devuelve la ruta autoritativa del archivo de base de
	// datos actual.
	DatabasePath() string

	// RepairImagePaths reescribe cada referencia de imagen para que apunte
	// al archivo homónimo dentro del almacén gestionado. Devuelve cuántos
	// registros se actualizaron; el trato a las referencias sin archivo
	// depende de mode.
	RepairImagePaths(ctx context.Context, mode RepairMode) (int, error)
}
