package dialog

import (
	"context"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/backup"
)

var _ backup.Dialog = Static{}

// Static responde todos los diálogos con una ruta fija. Sirve para las
// invocaciones no interactivas (flags de línea de comandos, modo servidor).
// Con Path vacío todo diálogo queda cancelado.
type Static struct {
	Path string
}

// SaveFile devuelve la ruta fija.
func (s Static) SaveFile(_ context.Context, _ backup.SaveOptions) (string, error) {
	return s.Path, nil
}

// OpenFile devuelve la ruta fija.
func (s Static) OpenFile(_ context.Context, _ backup.OpenOptions) (string, error) {
	return s.Path, nil
}
