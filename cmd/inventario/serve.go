package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/dialog"
	"github.com/Ileana-Castillo/inventario-servicio/internal/interfaces/command"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Atiende el protocolo de comandos por stdin/stdout",
	Long: `Lee peticiones JSON línea a línea por la entrada estándar y contesta por
la salida estándar, para que otro proceso use el inventario como backend.

Formato: {"id", "cmd", "args"} de entrada, {"id", "ok", "result" | "error"}
de salida. Las peticiones se atienden de a una, en orden de llegada.

En este modo los diálogos quedan deshabilitados: export_database e
import_database exigen la ruta explícita en sus argumentos.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, err := openApp(dialog.Static{})
	if err != nil {
		return err
	}
	defer app.close()

	d := command.NewDispatcher()
	command.RegisterAll(d, command.Deps{
		Items:    app.items,
		Exporter: app.exporter,
		Importer: app.importer,
	})

	log.Info().
		Strs("comandos", d.Commands()).
		Str("db", app.items.DatabasePath()).
		Msg("servidor de línea listo")

	return command.NewServer(d, os.Stdin, os.Stdout).Serve(cmd.Context())
}
