package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Backup  BackupConfig
	Log     LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// imagesDirName es el nombre del almacén de imágenes dentro del directorio
// de datos. Se conserva el nombre histórico de la aplicación para que los
// respaldos de instalaciones anteriores sigan siendo importables.
const imagesDirName = "inventory_images"

// StorageConfig ubicación del archivo de base de datos y del almacén de
// imágenes gestionado.
type StorageConfig struct {
	DataDir string // directorio de datos de la aplicación
	DBFile  string // nombre del archivo de base de datos
}

// DatabasePath devuelve la ruta del archivo de base de datos actual.
func (c StorageConfig) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// ImagesDir devuelve la ruta del almacén de imágenes gestionado.
func (c StorageConfig) ImagesDir() string {
	return filepath.Join(c.DataDir, imagesDirName)
}

// BackupConfig comportamiento de exportación/importación de respaldos.
type BackupConfig struct {
	// RepairMode: "keep" deja intactas las referencias de imagen sin archivo
	// en el almacén; "clear" las pone en NULL.
	RepairMode string
	// PreImportCopy crea una copia de seguridad de la base de datos actual
	// antes de sobrescribirla al importar.
	PreImportCopy bool
}

// LogConfig configuración de logging.
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env o config.env). Las env vars tienen prioridad. Nombres
// esperados: APP_ENV, DATA_DIR, DB_FILE, BACKUP_REPAIR_MODE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-servicio"),
		},
		Storage: StorageConfig{
			DataDir: getString(v, "DATA_DIR", defaultDataDir()),
			DBFile:  getString(v, "DB_FILE", "inventario.db"),
		},
		Backup: BackupConfig{
			RepairMode:    getString(v, "BACKUP_REPAIR_MODE", "keep"),
			PreImportCopy: getBool(v, "BACKUP_PRE_IMPORT_COPY", true),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if cfg.Backup.RepairMode != "keep" && cfg.Backup.RepairMode != "clear" {
		return nil, fmt.Errorf("BACKUP_REPAIR_MODE desconocido: %q (use keep o clear)", cfg.Backup.RepairMode)
	}

	return cfg, nil
}

// defaultDataDir devuelve el directorio de datos de la aplicación:
// <config del usuario>/inventario-servicio.
func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(base, "inventario-servicio")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		switch val := v.Get(key).(type) {
		case bool:
			return val
		case string:
			b, err := strconv.ParseBool(val)
			if err != nil {
				return def
			}
			return b
		default:
			return v.GetBool(key)
		}
	}
	return def
}
