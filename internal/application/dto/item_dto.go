package dto

// ItemResponse representación de un artículo hacia el protocolo y la CLI.
// ImagePath y CreatedAt viajan vacíos cuando no aplican.
type ItemResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	ImagePath          *string `json:"image_path,omitempty"`
	CantidadNecesaria  int     `json:"cantidad_necesaria"`
	CantidadDisponible int     `json:"cantidad_disponible"`
	CreatedAt          string  `json:"created_at,omitempty"`
}

// CreateItemRequest entrada para agregar un artículo. ImageBase64 es la
// imagen opcional, como data-URI o base64 crudo.
type CreateItemRequest struct {
	Name               string  `json:"name" validate:"required,min=1,max=200"`
	ImageBase64        *string `json:"image_base64"`
	CantidadNecesaria  int     `json:"cantidad_necesaria" validate:"min=0"`
	CantidadDisponible int     `json:"cantidad_disponible" validate:"min=0"`
}

// UpdateItemRequest entrada para actualizar un artículo. Sin ImageBase64 la
// imagen guardada queda como está; con él, la anterior se reemplaza y su
// archivo se elimina.
type UpdateItemRequest struct {
	Name               string  `json:"name" validate:"required,min=1,max=200"`
	ImageBase64        *string `json:"image_base64"`
	CantidadNecesaria  int     `json:"cantidad_necesaria" validate:"min=0"`
	CantidadDisponible int     `json:"cantidad_disponible" validate:"min=0"`
}
