package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrCancelled indica que el usuario declinó un diálogo de archivo.
	// No es una falla del sistema: los llamadores lo tratan como informativo.
	ErrCancelled = errors.New("operación cancelada por el usuario")
)
