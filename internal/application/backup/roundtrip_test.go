package backup_test

import (
	"context"
	"database/sql"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/backup"
	"github.com/Ileana-Castillo/inventario-servicio/internal/application/dto"
	"github.com/Ileana-Castillo/inventario-servicio/internal/application/usecase"
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain/repository"
	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/dialog"
	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/imagestore"
	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/sqlite"
)

// TestRoundTrip_ExportarEImportarEnOtraInstalacion recorre el ciclo completo
// contra el stack real: una instalación A con artículos e imágenes exporta un
// respaldo, y una instalación B vacía lo importa. B debe terminar con el
// mismo inventario y con cada referencia de imagen apuntando a un archivo
// existente dentro de su propio almacén.
func TestRoundTrip_ExportarEImportarEnOtraInstalacion(t *testing.T) {
	ctx := context.Background()

	// ── Instalación A: datos reales ───────────────────────────────────────
	instA := newInstallation(t)
	encoded := base64.StdEncoding.EncodeToString([]byte("imagen de prueba"))

	_, err := instA.items.Create(ctx, dto.CreateItemRequest{
		Name: "Tornillos", ImageBase64: &encoded, CantidadNecesaria: 100, CantidadDisponible: 40,
	})
	require.NoError(t, err)
	_, err = instA.items.Create(ctx, dto.CreateItemRequest{
		Name: "Tuercas", ImageBase64: &encoded, CantidadNecesaria: 50, CantidadDisponible: 50,
	})
	require.NoError(t, err)
	_, err = instA.items.Create(ctx, dto.CreateItemRequest{
		Name: "Arandelas", CantidadNecesaria: 10, CantidadDisponible: 0,
	})
	require.NoError(t, err)

	// ── Exportar desde A ──────────────────────────────────────────────────
	backupDir := t.TempDir()
	backupFile := filepath.Join(backupDir, "inventario_backup.db")
	exporter := backup.NewExporter(instA.repo, dialog.Static{Path: backupFile})

	expRes, err := exporter.Export(ctx, dto.ExportRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, expRes.ImagesExported)
	assert.FileExists(t, backupFile)
	assert.DirExists(t, filepath.Join(backupDir, "imagenes_inventario"))

	// ── Instalación B: vacía, importa el respaldo ─────────────────────────
	instB := newInstallation(t)
	cfg := backup.ImporterConfig{
		RepairMode:    repository.RepairModeKeep,
		PreImportCopy: true,
		SafetyDir:     instB.dataDir,
	}
	importer := backup.NewImporter(instB.repo, instB.store, dialog.Static{Path: backupFile}, cfg)

	impRes, err := importer.Import(ctx, dto.ImportRequest{})
	require.NoError(t, err)
	assert.True(t, impRes.Success)
	assert.Equal(t, 2, impRes.ImagesImported)
	assert.Equal(t, 2, impRes.PathsUpdated, "solo los artículos con imagen reciben ruta nueva")
	assert.NotEmpty(t, impRes.SafetyCopyPath)
	assert.FileExists(t, impRes.SafetyCopyPath)

	// ── B ve el inventario de A con referencias locales ───────────────────
	itemsA, err := instA.repo.List(ctx)
	require.NoError(t, err)
	itemsB, err := instB.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, itemsB, 3)

	for i := range itemsA {
		assert.Equal(t, itemsA[i].Name, itemsB[i].Name)
		assert.Equal(t, itemsA[i].CantidadNecesaria, itemsB[i].CantidadNecesaria)
		assert.Equal(t, itemsA[i].CantidadDisponible, itemsB[i].CantidadDisponible)
		assert.Equal(t, itemsA[i].CreatedAt, itemsB[i].CreatedAt, "la fecha de alta viaja con el respaldo")
	}

	for _, it := range itemsB {
		if !it.HasImage() {
			continue
		}
		assert.True(t, strings.HasPrefix(*it.ImagePath, instB.store.Dir()),
			"cada referencia debe apuntar al almacén de B, no al de A")
		assert.FileExists(t, *it.ImagePath, "el archivo referenciado debe existir tras la restauración")
	}
}

// TestRoundTrip_ImportarRespaldoSinImagenes cubre un respaldo hecho sin
// carpeta hermana: la instalación destino queda con los datos y sin
// referencias rotas nuevas.
func TestRoundTrip_ImportarRespaldoSinImagenes(t *testing.T) {
	ctx := context.Background()

	instA := newInstallation(t)
	_, err := instA.items.Create(ctx, dto.CreateItemRequest{Name: "Solo datos", CantidadNecesaria: 1})
	require.NoError(t, err)

	backupFile := filepath.Join(t.TempDir(), "solo_datos.db")
	_, err = backup.NewExporter(instA.repo, dialog.Static{Path: backupFile}).
		Export(ctx, dto.ExportRequest{})
	require.NoError(t, err)

	instB := newInstallation(t)
	res, err := backup.NewImporter(instB.repo, instB.store, dialog.Static{Path: backupFile}, backup.ImporterConfig{
		RepairMode: repository.RepairModeKeep, PreImportCopy: false,
	}).Import(ctx, dto.ImportRequest{})
	require.NoError(t, err)

	assert.Zero(t, res.ImagesImported)
	itemsB, err := instB.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, itemsB, 1)
	assert.Equal(t, "Solo datos", itemsB[0].Name)
}

// TestRoundTrip_ModoClearLimpiaReferenciasHuerfanas importa un respaldo cuya
// carpeta de imágenes quedó incompleta: en modo clear la referencia sin
// archivo termina en NULL en la instalación destino.
func TestRoundTrip_ModoClearLimpiaReferenciasHuerfanas(t *testing.T) {
	ctx := context.Background()

	instA := newInstallation(t)
	encoded := base64.StdEncoding.EncodeToString([]byte("imagen"))
	conImagen, err := instA.items.Create(ctx, dto.CreateItemRequest{Name: "Con imagen", ImageBase64: &encoded})
	require.NoError(t, err)

	backupDir := t.TempDir()
	backupFile := filepath.Join(backupDir, "respaldo.db")
	_, err = backup.NewExporter(instA.repo, dialog.Static{Path: backupFile}).
		Export(ctx, dto.ExportRequest{})
	require.NoError(t, err)

	// El respaldo pierde su única imagen (carpeta vaciada a mano).
	require.NotNil(t, conImagen.ImagePath)
	require.NoError(t, os.Remove(filepath.Join(backupDir, "imagenes_inventario", filepath.Base(*conImagen.ImagePath))))

	instB := newInstallation(t)
	res, err := backup.NewImporter(instB.repo, instB.store, dialog.Static{Path: backupFile}, backup.ImporterConfig{
		RepairMode: repository.RepairModeClear, PreImportCopy: false,
	}).Import(ctx, dto.ImportRequest{})
	require.NoError(t, err)

	assert.Zero(t, res.ImagesImported)
	assert.Equal(t, 1, res.PathsUpdated, "la anulación de la referencia huérfana cuenta como actualización")

	itemsB, err := instB.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, itemsB, 1)
	assert.Nil(t, itemsB[0].ImagePath, "en modo clear la referencia huérfana queda en NULL")
}

// ── instalación de prueba ─────────────────────────────────────────────────────

// installation arma el stack real completo sobre un directorio temporal:
// base de datos SQLite, almacén de imágenes y casos de uso.
type installation struct {
	dataDir string
	db      *sql.DB
	repo    *sqlite.ItemRepo
	store   *imagestore.Store
	items   *usecase.ItemUseCase
}

func newInstallation(t *testing.T) *installation {
	t.Helper()

	dataDir := t.TempDir()
	dbPath := filepath.Join(dataDir, "inventario.db")
	imagesDir := filepath.Join(dataDir, "inventory_images")

	db, err := sqlite.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewItemRepository(db, dbPath, imagesDir)
	store := imagestore.New(imagesDir)
	items := usecase.NewItemUseCase(repo, store, repository.RepairModeKeep)

	return &installation{dataDir: dataDir, db: db, repo: repo, store: store, items: items}
}
