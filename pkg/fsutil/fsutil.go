// Package fsutil reúne helpers de sistema de archivos usados por las
// operaciones de respaldo: copia de archivos y verificación de rutas.
package fsutil

import (
	"fmt"
	"io"
	"os"
)

// CopyFile copia src en dst (crea o trunca dst) y devuelve los bytes
// escritos. La copia es byte a byte: no interpreta el contenido.
func CopyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("abrir origen: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("crear destino: %w", err)
	}

	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return written, fmt.Errorf("copiar contenido: %w", err)
	}

	// El error de Close importa: es donde aparecen fallas de escritura
	// diferidas (disco lleno, unidad extraíble).
	if err := out.Close(); err != nil {
		return written, fmt.Errorf("cerrar destino: %w", err)
	}
	return written, nil
}

// Exists informa si path existe y es un archivo regular.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirExists informa si path existe y es un directorio.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
