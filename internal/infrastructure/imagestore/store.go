// Package imagestore administra la carpeta de imágenes del inventario: una
// carpeta plana dentro del directorio de datos donde vive el archivo de cada
// artículo con imagen.
package imagestore

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Ileana-Castillo/inventario-servicio/internal/domain"
	"github.com/Ileana-Castillo/inventario-servicio/pkg/fsutil"
)

// Store almacén de imágenes gestionado.
type Store struct {
	dir string
}

// New construye el almacén sobre dir. No toca el disco: la carpeta se crea
// en la primera escritura (o llamando EnsureDir).
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir devuelve la ruta de la carpeta del almacén.
func (s *Store) Dir() string {
	return s.dir
}

// EnsureDir garantiza que la carpeta del almacén exista.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("crear almacén de imágenes: %w", err)
	}
	return nil
}

// Save decodifica una imagen en base64 (data-URI o base64 crudo) y la guarda
// como archivo nuevo img_<uuid>.png dentro del almacén. Devuelve la ruta del
// archivo escrito.
func (s *Store) Save(encoded string) (string, error) {
	data, err := decodeImage(encoded)
	if err != nil {
		return "", err
	}
	if err := s.EnsureDir(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, fmt.Sprintf("img_%s.png", uuid.NewString()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("escribir imagen: %w", err)
	}
	return path, nil
}

// ImportFile copia un archivo externo dentro del almacén conservando su
// nombre base. Devuelve la ruta destino.
func (s *Store) ImportFile(src string) (string, error) {
	if err := s.EnsureDir(); err != nil {
		return "", err
	}
	dst := filepath.Join(s.dir, filepath.Base(src))
	if _, err := fsutil.CopyFile(src, dst); err != nil {
		return "", fmt.Errorf("importar imagen %s: %w", filepath.Base(src), err)
	}
	return dst, nil
}

// Remove elimina el archivo de imagen en path. Que ya no exista no es un
// error: la limpieza de imágenes es best-effort.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar imagen: %w", err)
	}
	return nil
}

// decodeImage acepta tanto un data-URI ("data:image/png;base64,...") como
// base64 crudo, con o sin padding.
func decodeImage(encoded string) ([]byte, error) {
	payload := encoded
	if idx := strings.Index(payload, ","); idx >= 0 {
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: imagen base64 malformada", domain.ErrInvalidInput)
	}
	return data, nil
}
