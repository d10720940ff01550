package main

import (
	"fmt"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/backup"
	"github.com/Ileana-Castillo/inventario-servicio/internal/application/usecase"
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain/repository"
	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/imagestore"
	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/sqlite"
	"github.com/Ileana-Castillo/inventario-servicio/pkg/config"
	"github.com/Ileana-Castillo/inventario-servicio/pkg/logger"
)

// app reúne las piezas cableadas de la aplicación para los subcomandos.
type app struct {
	cfg      *config.Config
	items    *usecase.ItemUseCase
	exporter *backup.Exporter
	importer *backup.Importer
	close    func()
}

// openApp carga la configuración, abre la base de datos y cablea los casos
// de uso. dialogs decide cómo se piden rutas cuando un comando no las trae
// por flag: Terminal pregunta por stderr, Static{} cancela siempre.
func openApp(dialogs backup.Dialog) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}

	logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	db, err := sqlite.Open(cfg.Storage.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}

	repo := sqlite.NewItemRepository(db, cfg.Storage.DatabasePath(), cfg.Storage.ImagesDir())
	store := imagestore.New(cfg.Storage.ImagesDir())
	mode := repository.RepairMode(cfg.Backup.RepairMode)

	return &app{
		cfg:      cfg,
		items:    usecase.NewItemUseCase(repo, store, mode),
		exporter: backup.NewExporter(repo, dialogs),
		importer: backup.NewImporter(repo, store, dialogs, backup.ImporterConfig{
			RepairMode:    mode,
			PreImportCopy: cfg.Backup.PreImportCopy,
		}),
		close: func() { _ = db.Close() },
	}, nil
}
