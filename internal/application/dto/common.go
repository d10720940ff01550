package dto

// ErrorResponse cuerpo de error del protocolo de comandos: un código estable
// para decidir por programa y un mensaje para mostrar.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
