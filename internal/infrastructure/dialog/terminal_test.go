package dialog_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/backup"
	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/dialog"
)

func TestTerminalSaveFile_LineaVaciaAceptaSugerido(t *testing.T) {
	var out bytes.Buffer
	d := dialog.NewTerminal(strings.NewReader("\n"), &out)

	path, err := d.SaveFile(context.Background(), backup.SaveOptions{
		Title:         "Exportar respaldo",
		SuggestedName: "inventario_backup_2025-08-25.db",
		Extension:     "db",
	})
	require.NoError(t, err)
	assert.Equal(t, "inventario_backup_2025-08-25.db", path)
	assert.Contains(t, out.String(), "Exportar respaldo")
	assert.Contains(t, out.String(), "inventario_backup_2025-08-25.db")
}

func TestTerminalSaveFile_DirectorioExistenteUsaSugeridoDentro(t *testing.T) {
	dir := t.TempDir()
	d := dialog.NewTerminal(strings.NewReader(dir+"\n"), &bytes.Buffer{})

	path, err := d.SaveFile(context.Background(), backup.SaveOptions{SuggestedName: "respaldo.db"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "respaldo.db"), path)
}

func TestTerminalSaveFile_AgregaExtensionFaltante(t *testing.T) {
	d := dialog.NewTerminal(strings.NewReader("mi_respaldo\n"), &bytes.Buffer{})

	path, err := d.SaveFile(context.Background(), backup.SaveOptions{SuggestedName: "x.db", Extension: "db"})
	require.NoError(t, err)
	assert.Equal(t, "mi_respaldo.db", path)
}

func TestTerminalSaveFile_EOFCancela(t *testing.T) {
	d := dialog.NewTerminal(strings.NewReader(""), &bytes.Buffer{})

	path, err := d.SaveFile(context.Background(), backup.SaveOptions{SuggestedName: "x.db"})
	require.NoError(t, err)
	assert.Empty(t, path, "cerrar la entrada equivale a cancelar el diálogo")
}

func TestTerminalOpenFile_DevuelveLaRutaEscrita(t *testing.T) {
	d := dialog.NewTerminal(strings.NewReader("/tmp/respaldo.db\n"), &bytes.Buffer{})

	path, err := d.OpenFile(context.Background(), backup.OpenOptions{Title: "Importar respaldo"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/respaldo.db", path)
}

func TestTerminalOpenFile_LineaVaciaCancela(t *testing.T) {
	d := dialog.NewTerminal(strings.NewReader("\n"), &bytes.Buffer{})

	path, err := d.OpenFile(context.Background(), backup.OpenOptions{})
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestTerminal_DialogosConsecutivosCompartenEntrada(t *testing.T) {
	// Dos diálogos sobre la misma entrada no deben perderse líneas entre sí.
	d := dialog.NewTerminal(strings.NewReader("/a.db\n/b.db\n"), &bytes.Buffer{})
	ctx := context.Background()

	p1, err := d.OpenFile(ctx, backup.OpenOptions{})
	require.NoError(t, err)
	p2, err := d.OpenFile(ctx, backup.OpenOptions{})
	require.NoError(t, err)

	assert.Equal(t, "/a.db", p1)
	assert.Equal(t, "/b.db", p2)
}

func TestStatic_RespondeRutaFija(t *testing.T) {
	d := dialog.Static{Path: "/datos/respaldo.db"}
	ctx := context.Background()

	save, err := d.SaveFile(ctx, backup.SaveOptions{SuggestedName: "ignorado.db"})
	require.NoError(t, err)
	open, err := d.OpenFile(ctx, backup.OpenOptions{})
	require.NoError(t, err)

	assert.Equal(t, "/datos/respaldo.db", save)
	assert.Equal(t, "/datos/respaldo.db", open)
}

func TestStatic_VacioEquivaleACancelado(t *testing.T) {
	d := dialog.Static{}

	path, err := d.OpenFile(context.Background(), backup.OpenOptions{})
	require.NoError(t, err)
	assert.Empty(t, path)
}
