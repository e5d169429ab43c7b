package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"plp-bookstore/configs"
	"plp-bookstore/internal/catalog"
	"plp-bookstore/internal/db"
	"plp-bookstore/internal/handlers"
	"plp-bookstore/internal/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only catalog queries over HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := configs.LoadConfig()
		return db.WithClient(context.Background(), cfg.MongoURI, func(client *mongo.Client) error {
			books := db.GetCollection(client, cfg.DBName, cfg.CollectionName)
			return serve(cfg, newRouter(catalog.New(books, cfg.QueryTimeout)))
		})
	},
}

func newRouter(c *catalog.Catalog) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.JSONMiddleware)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	})
	handlers.NewBookHandler(c).Register(r)
	return r
}

func serve(cfg configs.Config, handler http.Handler) error {
	server := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	errc := make(chan error, 1)
	go func() {
		log.Println("Server starting on port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	defer signal.Stop(stop)

	select {
	case err := <-errc:
		return err
	case <-stop:
	}

	log.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Println("Server shut down.")
	return nil
}
