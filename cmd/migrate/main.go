// Comando de migraciones: aplica los archivos SQL de ./migrations con goose.
// Uso: go run ./cmd/migrate [up|down|status|version] [args...]
package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/plazadecomidas/auth-service/pkg/config"
)

func main() {
	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./migrations", "directorio con archivos de migración")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cargar configuración: %v", err)
	}

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("abrir conexión: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("cerrar conexión: %v", err)
		}
	}()

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}
	log.Printf("goose %s: ok", command)
}
