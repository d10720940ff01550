package entity

// Item representa un artículo del inventario.
// ImagePath es la ruta absoluta del archivo de imagen dentro del almacén
// gestionado, o nil si el artículo no tiene imagen. CreatedAt se guarda como
// texto en hora local ("2006-01-02 15:04:05") y se conserva tal cual al
// exportar/importar respaldos.
type Item struct {
	ID                 int64
	Name               string
	ImagePath          *string
	CantidadNecesaria  int
	CantidadDisponible int
	CreatedAt          string
}

// HasImage indica si el artículo tiene una referencia de imagen no vacía.
func (i *Item) HasImage() bool {
	return i.ImagePath != nil && *i.ImagePath != ""
}
