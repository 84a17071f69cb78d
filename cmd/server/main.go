package main

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"rpgme/internal/avatar"
	"rpgme/internal/config"
	"rpgme/internal/session"
	"rpgme/internal/web"
)

func main() {
	log.SetPrefix("[RPGME] ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	catalog, err := avatar.LoadCatalog(cfg.CatalogPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("catalog %s not found, using built-in hats and ranges", cfg.CatalogPath)
		catalog = avatar.DefaultCatalog()
	} else if err != nil {
		log.Fatal(err)
	}

	tmpl := template.Must(template.ParseFiles(
		filepath.Join(cfg.TemplatesDir, "layout.html"),
		filepath.Join(cfg.TemplatesDir, "customizer.html"),
	))

	srv := &web.Server{
		Catalog:      catalog,
		Store:        session.NewMemoryStore[avatar.Attributes](),
		Tmpl:         tmpl,
		PublicOrigin: cfg.PublicOrigin,
		ShareText:    cfg.ShareText,
		StaticDir:    cfg.StaticDir,
	}

	httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Routes()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
