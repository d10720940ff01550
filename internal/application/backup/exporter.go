// Package backup implementa los flujos de respaldo del inventario: exportar
// la base de datos con sus imágenes a una ubicación elegida por el usuario y
// restaurar un respaldo previo dejando las referencias de imagen consistentes.
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/dto"
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain"
	"github.com/Ileana-Castillo/inventario-servicio/pkg/fsutil"
)

// imagesFolderName es el nombre de la carpeta hermana que viaja junto al
// archivo de respaldo con las imágenes del inventario.
const imagesFolderName = "imagenes_inventario"

// Exporter copia la base de datos y las imágenes referenciadas a un destino
// elegido por el usuario.
type Exporter struct {
	db     Database
	dialog Dialog
}

// NewExporter construye el caso de uso de exportación.
func NewExporter(db Database, dialog Dialog) *Exporter {
	return &Exporter{db: db, dialog: dialog}
}

// Export ejecuta la exportación. Con DestinationPath vacío el destino sale
// del diálogo de guardado; si el usuario cancela devuelve domain.ErrCancelled
// sin haber escrito nada. Solo la copia de la base de datos puede abortar la
// operación: las imágenes se copian best-effort.
func (e *Exporter) Export(ctx context.Context, in dto.ExportRequest) (*dto.ExportResult, error) {
	dest := in.DestinationPath
	if dest == "" {
		var err error
		dest, err = e.dialog.SaveFile(ctx, SaveOptions{
			Title:         "Exportar base de datos",
			SuggestedName: suggestedBackupName(time.Now()),
			Extension:     "db",
		})
		if err != nil {
			return nil, fmt.Errorf("diálogo de guardado: %w", err)
		}
	}
	if dest == "" {
		return nil, domain.ErrCancelled
	}

	src := e.db.DatabasePath()
	if _, err := fsutil.CopyFile(src, dest); err != nil {
		return nil, fmt.Errorf("copiar base de datos a %s: %w", dest, err)
	}
	log.Info().Str("origen", src).Str("destino", dest).Msg("base de datos exportada")

	imagesPath, copied := e.exportImages(ctx, filepath.Dir(dest))

	return &dto.ExportResult{
		Success:        true,
		DatabasePath:   dest,
		ImagesPath:     imagesPath,
		ImagesExported: copied,
		Message:        fmt.Sprintf("Exportación completada en %s: %d imágenes copiadas", dest, copied),
	}, nil
}

// exportImages copia cada imagen referenciada a la carpeta hermana del
// destino, bajo su nombre base. Devuelve la ruta de la carpeta ("" si el
// inventario no referencia imágenes) y cuántas copias se lograron. Ninguna
// falla en esta etapa aborta la exportación.
func (e *Exporter) exportImages(ctx context.Context, destDir string) (string, int) {
	items, err := e.db.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("no se pudo listar el inventario; el respaldo queda sin imágenes")
		return "", 0
	}

	var refs []string
	for _, it := range items {
		if it.HasImage() {
			refs = append(refs, *it.ImagePath)
		}
	}
	if len(refs) == 0 {
		return "", 0
	}

	folder := filepath.Join(destDir, imagesFolderName)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		log.Warn().Err(err).Str("carpeta", folder).Msg("no se pudo crear la carpeta de imágenes; el respaldo queda sin imágenes")
		return "", 0
	}

	copied := 0
	for _, ref := range refs {
		dst := filepath.Join(folder, filepath.Base(ref))
		if _, err := fsutil.CopyFile(ref, dst); err != nil {
			log.Warn().Err(err).Str("imagen", ref).Msg("imagen omitida del respaldo")
			continue
		}
		copied++
	}

	log.Info().Int("imagenes", copied).Str("carpeta", folder).Msg("imágenes exportadas")
	return folder, copied
}

// suggestedBackupName arma el nombre por defecto del archivo de respaldo,
// fechado con el día de la exportación.
func suggestedBackupName(now time.Time) string {
	return fmt.Sprintf("inventario_backup_%s.db", now.Format("2006-01-02"))
}
