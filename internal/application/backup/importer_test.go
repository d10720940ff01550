package backup_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/backup"
	"github.com/Ileana-Castillo/inventario-servicio/internal/application/dto"
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain"
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain/repository"
)

func TestImport_CancelarNoTocaLaBaseActual(t *testing.T) {
	db := newFakeDB(t, nil)
	antes := leerArchivo(t, db.path)
	importer := backup.NewImporter(db, &fakeStore{}, &fakeDialog{}, configKeep())

	_, err := importer.Import(context.Background(), dto.ImportRequest{})
	assert.ErrorIs(t, err, domain.ErrCancelled)

	assert.Equal(t, antes, leerArchivo(t, db.path), "cancelar no debe modificar la base actual")
	assert.Zero(t, db.repairCalls, "cancelar tampoco dispara la reparación")
}

func TestImport_SobrescribeLaBaseActual(t *testing.T) {
	db := newFakeDB(t, nil)
	respaldo := escribirArchivo(t, t.TempDir(), "respaldo.db", "SQLite format 3\x00datos restaurados")
	importer := backup.NewImporter(db, &fakeStore{}, &fakeDialog{openPath: respaldo}, configKeep())

	res, err := importer.Import(context.Background(), dto.ImportRequest{})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, leerArchivo(t, respaldo), leerArchivo(t, db.path),
		"la base actual debe quedar idéntica al respaldo")
}

func TestImport_CopiaDeSeguridadPrevia(t *testing.T) {
	db := newFakeDB(t, nil)
	contenidoOriginal := leerArchivo(t, db.path)
	respaldo := escribirArchivo(t, t.TempDir(), "respaldo.db", "nuevo contenido")
	safetyDir := t.TempDir()

	cfg := backup.ImporterConfig{RepairMode: repository.RepairModeKeep, PreImportCopy: true, SafetyDir: safetyDir}
	importer := backup.NewImporter(db, &fakeStore{}, &fakeDialog{openPath: respaldo}, cfg)

	res, err := importer.Import(context.Background(), dto.ImportRequest{})
	require.NoError(t, err)

	require.NotEmpty(t, res.SafetyCopyPath)
	assert.Equal(t, safetyDir, filepath.Dir(res.SafetyCopyPath))
	assert.Regexp(t, `^pre_import_\d{8}_\d{6}\.db$`, filepath.Base(res.SafetyCopyPath))
	assert.Equal(t, contenidoOriginal, leerArchivo(t, res.SafetyCopyPath),
		"la copia de seguridad debe preservar la base previa a la importación")
}

func TestImport_CopiaDeSeguridadDeshabilitada(t *testing.T) {
	db := newFakeDB(t, nil)
	respaldo := escribirArchivo(t, t.TempDir(), "respaldo.db", "nuevo")
	safetyDir := t.TempDir()

	cfg := backup.ImporterConfig{RepairMode: repository.RepairModeKeep, PreImportCopy: false, SafetyDir: safetyDir}
	importer := backup.NewImporter(db, &fakeStore{}, &fakeDialog{openPath: respaldo}, cfg)

	res, err := importer.Import(context.Background(), dto.ImportRequest{})
	require.NoError(t, err)

	assert.Empty(t, res.SafetyCopyPath)
	entries, err := os.ReadDir(safetyDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestImport_FlagDeshabilitaLaCopiaPorPedido(t *testing.T) {
	db := newFakeDB(t, nil)
	respaldo := escribirArchivo(t, t.TempDir(), "respaldo.db", "nuevo")

	importer := backup.NewImporter(db, &fakeStore{}, &fakeDialog{openPath: respaldo}, configKeep())

	res, err := importer.Import(context.Background(), dto.ImportRequest{DisableSafetyCopy: true})
	require.NoError(t, err)
	assert.Empty(t, res.SafetyCopyPath, "el pedido explícito gana sobre la configuración")
}

func TestImport_FallaDeLaCopiaDeSeguridadAborta(t *testing.T) {
	db := newFakeDB(t, nil)
	antes := leerArchivo(t, db.path)
	respaldo := escribirArchivo(t, t.TempDir(), "respaldo.db", "nuevo")

	// SafetyDir apunta a un archivo: imposible crear la copia adentro.
	bloqueado := escribirArchivo(t, t.TempDir(), "ocupado", "x")
	cfg := backup.ImporterConfig{RepairMode: repository.RepairModeKeep, PreImportCopy: true, SafetyDir: bloqueado}
	importer := backup.NewImporter(db, &fakeStore{}, &fakeDialog{openPath: respaldo}, cfg)

	_, err := importer.Import(context.Background(), dto.ImportRequest{})
	require.Error(t, err)
	assert.Equal(t, antes, leerArchivo(t, db.path),
		"sin copia de seguridad no se debe sobrescribir la base actual")
}

func TestImport_SinCarpetaDeImagenesImportaCero(t *testing.T) {
	db := newFakeDB(t, nil)
	db.repairN = 3
	respaldo := escribirArchivo(t, t.TempDir(), "respaldo.db", "nuevo")
	store := &fakeStore{}
	importer := backup.NewImporter(db, store, &fakeDialog{openPath: respaldo}, configKeep())

	res, err := importer.Import(context.Background(), dto.ImportRequest{})
	require.NoError(t, err, "un respaldo sin carpeta de imágenes es válido")

	assert.True(t, res.Success)
	assert.Zero(t, res.ImagesImported)
	assert.Equal(t, 1, db.repairCalls, "la reparación corre aunque no haya imágenes")
	assert.Equal(t, 3, res.PathsUpdated)
	assert.Contains(t, res.Message, "0 imágenes restauradas")
	assert.Contains(t, res.Message, "3 rutas actualizadas")
}

func TestImport_RestauraImagenesAlAlmacen(t *testing.T) {
	db := newFakeDB(t, nil)
	srcDir := t.TempDir()
	respaldo := escribirArchivo(t, srcDir, "respaldo.db", "nuevo")
	carpeta := filepath.Join(srcDir, "imagenes_inventario")
	require.NoError(t, os.MkdirAll(carpeta, 0o755))
	escribirArchivo(t, carpeta, "img_a.png", "a")
	escribirArchivo(t, carpeta, "img_b.png", "b")

	store := &fakeStore{dir: t.TempDir()}
	importer := backup.NewImporter(db, store, &fakeDialog{openPath: respaldo}, configKeep())

	res, err := importer.Import(context.Background(), dto.ImportRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, res.ImagesImported)
	assert.ElementsMatch(t, []string{"img_a.png", "img_b.png"}, store.imported)
}

func TestImport_FallaPorImagenNoAborta(t *testing.T) {
	db := newFakeDB(t, nil)
	srcDir := t.TempDir()
	respaldo := escribirArchivo(t, srcDir, "respaldo.db", "nuevo")
	carpeta := filepath.Join(srcDir, "imagenes_inventario")
	require.NoError(t, os.MkdirAll(carpeta, 0o755))
	escribirArchivo(t, carpeta, "img_a.png", "a")
	escribirArchivo(t, carpeta, "img_rota.png", "b")

	store := &fakeStore{dir: t.TempDir(), failFor: map[string]bool{"img_rota.png": true}}
	importer := backup.NewImporter(db, store, &fakeDialog{openPath: respaldo}, configKeep())

	res, err := importer.Import(context.Background(), dto.ImportRequest{})
	require.NoError(t, err, "una imagen que no se puede copiar no aborta la restauración")
	assert.Equal(t, 1, res.ImagesImported)
}

func TestImport_IgnoraEntradasNoRegulares(t *testing.T) {
	db := newFakeDB(t, nil)
	srcDir := t.TempDir()
	respaldo := escribirArchivo(t, srcDir, "respaldo.db", "nuevo")
	carpeta := filepath.Join(srcDir, "imagenes_inventario")
	require.NoError(t, os.MkdirAll(filepath.Join(carpeta, "subcarpeta"), 0o755))
	escribirArchivo(t, carpeta, "img_a.png", "a")

	store := &fakeStore{dir: t.TempDir()}
	importer := backup.NewImporter(db, store, &fakeDialog{openPath: respaldo}, configKeep())

	res, err := importer.Import(context.Background(), dto.ImportRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ImagesImported, "las subcarpetas no cuentan como imágenes")
}

func TestImport_FallaDelAlmacenAborta(t *testing.T) {
	db := newFakeDB(t, nil)
	srcDir := t.TempDir()
	respaldo := escribirArchivo(t, srcDir, "respaldo.db", "nuevo")
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "imagenes_inventario"), 0o755))

	store := &fakeStore{ensureErr: errors.New("disco lleno")}
	importer := backup.NewImporter(db, store, &fakeDialog{openPath: respaldo}, configKeep())

	_, err := importer.Import(context.Background(), dto.ImportRequest{})
	assert.Error(t, err, "sin almacén utilizable la restauración no puede continuar")
}

func TestImport_ErrorDeReparacionSePropaga(t *testing.T) {
	db := newFakeDB(t, nil)
	db.repairErr = errors.New("base bloqueada")
	respaldo := escribirArchivo(t, t.TempDir(), "respaldo.db", "nuevo")
	importer := backup.NewImporter(db, &fakeStore{}, &fakeDialog{openPath: respaldo}, configKeep())

	_, err := importer.Import(context.Background(), dto.ImportRequest{})
	assert.ErrorContains(t, err, "reparar rutas de imagen")
}

func TestImport_UsaElModoDeReparacionConfigurado(t *testing.T) {
	db := newFakeDB(t, nil)
	respaldo := escribirArchivo(t, t.TempDir(), "respaldo.db", "nuevo")
	cfg := backup.ImporterConfig{RepairMode: repository.RepairModeClear, PreImportCopy: false}
	importer := backup.NewImporter(db, &fakeStore{}, &fakeDialog{openPath: respaldo}, cfg)

	_, err := importer.Import(context.Background(), dto.ImportRequest{})
	require.NoError(t, err)
	assert.Equal(t, repository.RepairModeClear, db.repairMode)
}

func TestImport_OrigenExplicitoNoConsultaElDialogo(t *testing.T) {
	db := newFakeDB(t, nil)
	respaldo := escribirArchivo(t, t.TempDir(), "respaldo.db", "nuevo")
	d := &fakeDialog{}
	importer := backup.NewImporter(db, &fakeStore{}, d, configKeep())

	_, err := importer.Import(context.Background(), dto.ImportRequest{SourcePath: respaldo})
	require.NoError(t, err)
	assert.Zero(t, d.openCalls)
}

// ── helpers ───────────────────────────────────────────────────────────────────

type fakeStore struct {
	dir       string
	ensureErr error
	imported  []string
	failFor   map[string]bool
}

func (f *fakeStore) Dir() string      { return f.dir }
func (f *fakeStore) EnsureDir() error { return f.ensureErr }

func (f *fakeStore) ImportFile(src string) (string, error) {
	name := filepath.Base(src)
	if f.failFor[name] {
		return "", errors.New("falla simulada")
	}
	f.imported = append(f.imported, name)
	return filepath.Join(f.dir, name), nil
}

func configKeep() backup.ImporterConfig {
	return backup.ImporterConfig{RepairMode: repository.RepairModeKeep, PreImportCopy: true}
}

func leerArchivo(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
