package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ileana-Castillo/inventario-servicio/internal/domain/entity"
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// createdAtLayout es el formato de texto con el que la base de datos genera
// created_at (datetime('now','localtime')).
const createdAtLayout = "2006-01-02 15:04:05"

// ItemRepo implementación del puerto ItemRepository sobre SQLite.
type ItemRepo struct {
	db        *sql.DB
	dbPath    string
	imagesDir string
}

// NewItemRepository construye el adaptador de persistencia del inventario.
// dbPath es la ruta del archivo abierto en db; imagesDir es el almacén de
// imágenes contra el que RepairImagePaths verifica cada referencia.
func NewItemRepository(db *sql.DB, dbPath, imagesDir string) *ItemRepo {
	return &ItemRepo{db: db, dbPath: dbPath, imagesDir: imagesDir}
}

const listItemsQuery = `
	SELECT id, name, image_path, cantidad_necesaria, cantidad_disponible, created_at
	FROM inventory
	ORDER BY created_at DESC`

// List devuelve el inventario completo, del artículo más reciente al más
// antiguo.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	rows, err := r.db.QueryContext(ctx, listItemsQuery)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		var row itemRow
		if err := rows.Scan(&row.ID, &row.Name, &row.ImagePath, &row.CantidadNecesaria, &row.CantidadDisponible, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, row.toDomain())
	}
	return items, rows.Err()
}

const getItemQuery = `
	SELECT id, name, image_path, cantidad_necesaria, cantidad_disponible, created_at
	FROM inventory
	WHERE id = ?`

// GetByID obtiene un artículo por ID. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	var row itemRow
	err := r.db.QueryRowContext(ctx, getItemQuery, id).Scan(
		&row.ID, &row.Name, &row.ImagePath, &row.CantidadNecesaria, &row.CantidadDisponible, &row.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return row.toDomain(), nil
}

const insertItemQuery = `
	INSERT INTO inventory (name, image_path, cantidad_necesaria, cantidad_disponible)
	VALUES (?, ?, ?, ?)`

const insertItemWithDateQuery = `
	INSERT INTO inventory (name, image_path, cantidad_necesaria, cantidad_disponible, created_at)
	VALUES (?, ?, ?, ?, ?)`

// Create persiste un nuevo artículo y deja en item el ID y el created_at
// asignados. Con CreatedAt vacío la fecha la pone la base de datos.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	var (
		res sql.Result
		err error
	)
	if item.CreatedAt == "" {
		res, err = r.db.ExecContext(ctx, insertItemQuery,
			item.Name, item.ImagePath, item.CantidadNecesaria, item.CantidadDisponible)
	} else {
		res, err = r.db.ExecContext(ctx, insertItemWithDateQuery,
			item.Name, item.ImagePath, item.CantidadNecesaria, item.CantidadDisponible, item.CreatedAt)
	}
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}

	created, err := r.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("reread item: %w", err)
	}
	if created != nil {
		*item = *created
	} else {
		item.ID = id
	}
	return nil
}

const updateItemQuery = `
	UPDATE inventory
	SET name = ?, image_path = ?, cantidad_necesaria = ?, cantidad_disponible = ?
	WHERE id = ?`

// Update actualiza nombre, referencia de imagen y cantidades. No toca
// created_at. Devuelve nil aunque el ID no exista; el llamador decide si eso
// es un error consultando antes.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	_, err := r.db.ExecContext(ctx, updateItemQuery,
		item.Name, item.ImagePath, item.CantidadNecesaria, item.CantidadDisponible, item.ID)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// DatabasePath devuelve la ruta del archivo de base de datos abierto.
func (r *ItemRepo) DatabasePath() string {
	return r.dbPath
}

const listImageRefsQuery = `
	SELECT id, image_path
	FROM inventory
	WHERE image_path IS NOT NULL AND image_path != ''`

// RepairImagePaths reescribe cada referencia de imagen para que apunte al
// archivo homónimo dentro del almacén gestionado. Las referencias cuyo
// nombre base no existe en el almacén quedan intactas (RepairModeKeep) o en
// NULL (RepairModeClear). La reescritura cuenta aunque la ruta nueva coincida
// con la guardada.
func (r *ItemRepo) RepairImagePaths(ctx context.Context, mode repository.RepairMode) (int, error) {
	if !mode.Valid() {
		return 0, fmt.Errorf("modo de reparación desconocido: %q", mode)
	}

	rows, err := r.db.QueryContext(ctx, listImageRefsQuery)
	if err != nil {
		return 0, fmt.Errorf("list image refs: %w", err)
	}

	type ref struct {
		id   int64
		path string
	}
	var refs []ref
	for rows.Next() {
		var rf ref
		if err := rows.Scan(&rf.id, &rf.path); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan image ref: %w", err)
		}
		refs = append(refs, rf)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, fmt.Errorf("iterate image refs: %w", err)
	}
	rows.Close()

	updated := 0
	for _, rf := range refs {
		base := imageBasename(rf.path)
		if base == "" {
			continue
		}

		repaired := filepath.Join(r.imagesDir, base)
		if _, err := os.Stat(repaired); err != nil {
			if mode == repository.RepairModeClear {
				if _, err := r.db.ExecContext(ctx, `UPDATE inventory SET image_path = NULL WHERE id = ?`, rf.id); err != nil {
					return updated, fmt.Errorf("clear image ref: %w", err)
				}
				updated++
			}
			continue
		}

		if _, err := r.db.ExecContext(ctx, `UPDATE inventory SET image_path = ? WHERE id = ?`, repaired, rf.id); err != nil {
			return updated, fmt.Errorf("update image ref: %w", err)
		}
		updated++
	}
	return updated, nil
}

// imageBasename extrae el nombre de archivo de una referencia guardada,
// tolerando separadores de otros sistemas operativos (los respaldos viajan
// entre máquinas). Devuelve "" para referencias sin nombre utilizable.
func imageBasename(stored string) string {
	s := strings.ReplaceAll(stored, "\\", "/")
	base := filepath.Base(filepath.FromSlash(s))
	if base == "." || base == ".." || base == string(filepath.Separator) || base == "/" {
		return ""
	}
	return base
}

// itemRow buffer de escaneo con los tipos anulables de la tabla.
type itemRow struct {
	ID                 int64
	Name               string
	ImagePath          sql.NullString
	CantidadNecesaria  int
	CantidadDisponible int
	CreatedAt          sql.NullTime
}

// toDomain convierte la fila escaneada en la entidad de dominio.
func (row *itemRow) toDomain() *entity.Item {
	item := &entity.Item{
		ID:                 row.ID,
		Name:               row.Name,
		CantidadNecesaria:  row.CantidadNecesaria,
		CantidadDisponible: row.CantidadDisponible,
	}
	if row.ImagePath.Valid {
		path := row.ImagePath.String
		item.ImagePath = &path
	}
	if row.CreatedAt.Valid {
		item.CreatedAt = row.CreatedAt.Time.Format(createdAtLayout)
	}
	return item
}
