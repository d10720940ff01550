package backup

import (
	"context"

	"github.com/Ileana-Castillo/inventario-servicio/internal/domain/entity"
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain/repository"
)

// Database expone lo que los respaldos necesitan del backend de persistencia:
// la ubicación del archivo actual, el inventario (para saber qué imágenes
// viajan con el respaldo) y la reparación de referencias tras restaurar.
type Database interface {
	DatabasePath() string
	List(ctx context.Context) ([]*entity.Item, error)
	RepairImagePaths(ctx context.Context, mode repository.RepairMode) (int, error)
}

// ImageStore operaciones del almacén de imágenes gestionado usadas por los
// respaldos.
type ImageStore interface {
	Dir() string
	EnsureDir() error
	ImportFile(src string) (string, error)
}

// SaveOptions parámetros para un diálogo de guardado.
type SaveOptions struct {
	Title         string
	SuggestedName string
	Extension     string // sin punto: "db"
}

// OpenOptions parámetros para un diálogo de apertura.
type OpenOptions struct {
	Title     string
	Extension string
}

// Dialog abstrae la elección de rutas por parte del usuario. La convención es
// ("", nil) cuando el usuario cancela: cancelar no es una falla del sistema.
type Dialog interface {
	SaveFile(ctx context.Context, opts SaveOptions) (string, error)
	OpenFile(ctx context.Context, opts OpenOptions) (string, error)
}
