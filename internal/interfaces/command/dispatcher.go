// Package command expone el núcleo de la aplicación como comandos nombrados
// con bolsa de argumentos JSON: el contrato petición/respuesta que consumen
// la CLI y el servidor de línea.
package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/dto"
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain"
)

// ErrUnknownCommand señala un nombre de comando no registrado.
var ErrUnknownCommand = errors.New("comando desconocido")

// Handler atiende un comando: decodifica la bolsa de argumentos y devuelve
// un resultado serializable o un error.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Dispatcher enruta invocaciones por nombre de comando.
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher construye un dispatcher vacío.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]Handler)}
}

// Register asocia un handler al nombre de comando. El último registro gana.
func (d *Dispatcher) Register(name string, h Handler) {
	d.handlers[name] = h
}

// Invoke ejecuta el comando name con la bolsa de argumentos dada.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	h, ok := d.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return h(ctx, args)
}

// Commands devuelve los nombres registrados, ordenados.
func (d *Dispatcher) Commands() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrorBody mapea un error de la aplicación al cuerpo tipado {code, message}
// del protocolo.
func ErrorBody(err error) dto.ErrorResponse {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrCancelled):
		return dto.ErrorResponse{Code: "CANCELLED", Message: err.Error()}
	case errors.Is(err, ErrUnknownCommand):
		return dto.ErrorResponse{Code: "UNKNOWN_COMMAND", Message: err.Error()}
	default:
		return dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
	}
}
