package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/backup"
	"github.com/Ileana-Castillo/inventario-servicio/internal/application/dto"
	"github.com/Ileana-Castillo/inventario-servicio/internal/application/usecase"
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain"
)

// Deps reúne los casos de uso que atienden el contrato de comandos.
type Deps struct {
	Items    *usecase.ItemUseCase
	Exporter *backup.Exporter
	Importer *backup.Importer
}

// RegisterAll registra el contrato completo de la aplicación en el
// dispatcher. Los nombres de comando son estables: forman parte del
// protocolo que hablan los clientes.
func RegisterAll(d *Dispatcher, deps Deps) {
	d.Register("get_all_items", func(ctx context.Context, _ json.RawMessage) (any, error) {
		return deps.Items.List(ctx)
	})

	d.Register("add_item", func(ctx context.Context, args json.RawMessage) (any, error) {
		var in dto.CreateItemRequest
		if err := unmarshalArgs(args, &in); err != nil {
			return nil, err
		}
		return deps.Items.Create(ctx, in)
	})

	d.Register("update_item", func(ctx context.Context, args json.RawMessage) (any, error) {
		var in struct {
			ID int64 `json:"id"`
			dto.UpdateItemRequest
		}
		if err := unmarshalArgs(args, &in); err != nil {
			return nil, err
		}
		return deps.Items.Update(ctx, in.ID, in.UpdateItemRequest)
	})

	d.Register("delete_item", func(ctx context.Context, args json.RawMessage) (any, error) {
		var in struct {
			ID int64 `json:"id"`
		}
		if err := unmarshalArgs(args, &in); err != nil {
			return nil, err
		}
		return nil, deps.Items.Delete(ctx, in.ID)
	})

	d.Register("get_db_path", func(_ context.Context, _ json.RawMessage) (any, error) {
		return deps.Items.DatabasePath(), nil
	})

	d.Register("fix_image_paths", func(ctx context.Context, _ json.RawMessage) (any, error) {
		return deps.Items.RepairImagePaths(ctx)
	})

	d.Register("export_database", func(ctx context.Context, args json.RawMessage) (any, error) {
		var in dto.ExportRequest
		if err := unmarshalArgs(args, &in); err != nil {
			return nil, err
		}
		return deps.Exporter.Export(ctx, in)
	})

	d.Register("import_database", func(ctx context.Context, args json.RawMessage) (any, error) {
		var in dto.ImportRequest
		if err := unmarshalArgs(args, &in); err != nil {
			return nil, err
		}
		return deps.Importer.Import(ctx, in)
	})
}

// unmarshalArgs decodifica la bolsa de argumentos sobre v. Una bolsa ausente
// equivale a {}: los comandos sin argumentos obligatorios la toleran.
func unmarshalArgs(args json.RawMessage, v any) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: argumentos malformados: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
