// Package sqlite implementa la persistencia del inventario sobre un archivo
// SQLite local, el formato que comparten las operaciones de respaldo.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// createInventoryTable define el esquema del inventario. Se conserva el
// esquema histórico (tabla inventory, cantidades en español) para que los
// archivos de respaldo sigan siendo intercambiables entre instalaciones.
const createInventoryTable = `
	CREATE TABLE IF NOT EXISTS inventory (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		image_path TEXT,
		cantidad_necesaria INTEGER NOT NULL DEFAULT 0,
		cantidad_disponible INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT (datetime('now','localtime'))
	)`

// Open abre la base de datos SQLite en path (creando el archivo y su
// directorio si no existen) y garantiza el esquema.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de datos: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}

	// Un solo escritor: SQLite serializa de todas formas y así los PRAGMA
	// aplican a la única conexión del pool.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping base de datos: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=DELETE", // la base de datos queda en un único archivo copiable
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("aplicar %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(createInventoryTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}

	// Tablas creadas por versiones viejas (p. ej. un respaldo importado)
	// pueden no tener las columnas de cantidades; el error "duplicate
	// column" de las ya actualizadas se ignora.
	_, _ = db.Exec(`ALTER TABLE inventory ADD COLUMN cantidad_necesaria INTEGER NOT NULL DEFAULT 0`)
	_, _ = db.Exec(`ALTER TABLE inventory ADD COLUMN cantidad_disponible INTEGER NOT NULL DEFAULT 0`)

	return db, nil
}
