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
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain/repository"
	"github.com/Ileana-Castillo/inventario-servicio/pkg/fsutil"
)

// ImporterConfig comportamiento del importador.
type ImporterConfig struct {
	// RepairMode gobierna las referencias de imagen sin archivo en el
	// almacén tras restaurar.
	RepairMode repository.RepairMode
	// PreImportCopy crea una copia de la base de datos actual antes de
	// sobrescribirla.
	PreImportCopy bool
	// SafetyDir directorio donde quedan esas copias; vacío usa el
	// directorio de la base de datos actual.
	SafetyDir string
}

// Importer restaura un respaldo: reemplaza la base de datos actual, devuelve
// las imágenes al almacén gestionado y repara las referencias.
type Importer struct {
	db     Database
	store  ImageStore
	dialog Dialog
	cfg    ImporterConfig
}

// NewImporter construye el caso de uso de importación.
func NewImporter(db Database, store ImageStore, dialog Dialog, cfg ImporterConfig) *Importer {
	return &Importer{db: db, store: store, dialog: dialog, cfg: cfg}
}

// Import ejecuta la restauración. Con SourcePath vacío el archivo sale del
// diálogo de apertura; si el usuario cancela devuelve domain.ErrCancelled sin
// haber escrito nada. La copia de seguridad previa y el reemplazo de la base
// de datos son fatales si fallan; las imágenes se restauran best-effort y la
// reparación de referencias corre siempre, aunque no haya imágenes.
func (i *Importer) Import(ctx context.Context, in dto.ImportRequest) (*dto.ImportResult, error) {
	src := in.SourcePath
	if src == "" {
		var err error
		src, err = i.dialog.OpenFile(ctx, OpenOptions{
			Title:     "Importar base de datos",
			Extension: "db",
		})
		if err != nil {
			return nil, fmt.Errorf("diálogo de apertura: %w", err)
		}
	}
	if src == "" {
		return nil, domain.ErrCancelled
	}

	current := i.db.DatabasePath()

	var safetyCopy string
	if i.cfg.PreImportCopy && !in.DisableSafetyCopy {
		path, err := i.makeSafetyCopy(current)
		if err != nil {
			return nil, err
		}
		safetyCopy = path
	}

	if _, err := fsutil.CopyFile(src, current); err != nil {
		return nil, fmt.Errorf("restaurar base de datos desde %s: %w", src, err)
	}
	log.Info().Str("origen", src).Str("destino", current).Msg("base de datos restaurada")

	imported, err := i.importImages(filepath.Dir(src))
	if err != nil {
		return nil, err
	}

	updated, err := i.db.RepairImagePaths(ctx, i.cfg.RepairMode)
	if err != nil {
		return nil, fmt.Errorf("reparar rutas de imagen: %w", err)
	}
	log.Info().Int("imagenes", imported).Int("rutas", updated).Msg("importación completada")

	return &dto.ImportResult{
		Success:        true,
		ImagesImported: imported,
		PathsUpdated:   updated,
		SafetyCopyPath: safetyCopy,
		Message:        fmt.Sprintf("Importación completada: %d imágenes restauradas, %d rutas actualizadas", imported, updated),
	}, nil
}

// makeSafetyCopy guarda la base de datos actual antes de sobrescribirla. En
// la primera ejecución (sin base de datos todavía) no hay nada que proteger.
func (i *Importer) makeSafetyCopy(current string) (string, error) {
	if !fsutil.Exists(current) {
		return "", nil
	}

	dir := i.cfg.SafetyDir
	if dir == "" {
		dir = filepath.Dir(current)
	}
	path := filepath.Join(dir, fmt.Sprintf("pre_import_%s.db", time.Now().Format("20060102_150405")))

	if _, err := fsutil.CopyFile(current, path); err != nil {
		return "", fmt.Errorf("copia de seguridad previa: %w", err)
	}
	log.Info().Str("copia", path).Msg("copia de seguridad previa creada")
	return path, nil
}

// importImages restaura la carpeta hermana de imágenes dentro del almacén
// gestionado. Que el respaldo no traiga carpeta no es un error y las fallas
// por archivo tampoco abortan; las del almacén o del listado sí.
func (i *Importer) importImages(srcDir string) (int, error) {
	folder := filepath.Join(srcDir, imagesFolderName)
	if !fsutil.DirExists(folder) {
		log.Info().Str("carpeta", folder).Msg("el respaldo no trae carpeta de imágenes")
		return 0, nil
	}

	if err := i.store.EnsureDir(); err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return 0, fmt.Errorf("leer carpeta de imágenes: %w", err)
	}

	imported := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if _, err := i.store.ImportFile(filepath.Join(folder, entry.Name())); err != nil {
			log.Warn().Err(err).Str("imagen", entry.Name()).Msg("imagen omitida de la restauración")
			continue
		}
		imported++
	}
	return imported, nil
}
