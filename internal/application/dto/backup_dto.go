package dto

// ExportRequest entrada para exportar un respaldo. DestinationPath vacío
// delega la elección del destino al diálogo de guardado.
type ExportRequest struct {
	DestinationPath string `json:"destination_path"`
}

// ExportResult salida de una exportación completada.
type ExportResult struct {
	Success bool `json:"success"`
	// DatabasePath es la ruta del archivo de respaldo escrito.
	DatabasePath string `json:"database_path"`
	// ImagesPath es la carpeta hermana con las imágenes copiadas; queda
	// vacía cuando el inventario no referenciaba ninguna imagen.
	ImagesPath     string `json:"images_path,omitempty"`
	ImagesExported int    `json:"images_exported"`
	Message        string `json:"message"`
}

// ImportRequest entrada para importar un respaldo. SourcePath vacío delega
// la elección del archivo al diálogo de apertura. DisableSafetyCopy omite la
// copia de seguridad previa (configurada por defecto).
type ImportRequest struct {
	SourcePath        string `json:"source_path"`
	DisableSafetyCopy bool   `json:"disable_safety_copy,omitempty"`
}

// ImportResult salida de una importación completada.
type ImportResult struct {
	Success        bool   `json:"success"`
	ImagesImported int    `json:"images_imported"`
	PathsUpdated   int    `json:"paths_updated"`
	// SafetyCopyPath es la copia de la base de datos previa a la
	// importación; vacía si la copia de seguridad está deshabilitada.
	SafetyCopyPath string `json:"safety_copy_path,omitempty"`
	Message        string `json:"message"`
}
