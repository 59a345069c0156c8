package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"

	"github.com/stockroomhq/stockroom-backend/internal/modules/export"
	"github.com/stockroomhq/stockroom-backend/internal/modules/inventory"
	"github.com/stockroomhq/stockroom-backend/internal/platform/config"
	"github.com/stockroomhq/stockroom-backend/internal/platform/httplog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	router := chi.NewRouter()
	router.Use(httplog.RequestLogger)
	router.Use(middleware.Recoverer)

	itemRepo := inventory.NewPostgresRepository(db)
	itemService := inventory.NewService(itemRepo)
	inventory.NewHandler(itemService).RegisterRoutes(router)

	exportService := export.NewService(itemRepo)
	export.NewHandler(exportService).RegisterRoutes(router)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	fmt.Printf("Stockroom API server starting on %s\n", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), router))
}
