package handlers

import (
	"log/slog"

	"dealership/internal/auth"
	"dealership/internal/catalog"
	"dealership/internal/dealers"

	"gorm.io/gorm"
)

type Handler struct {
	users   *auth.Service
	catalog *catalog.Store
	dealers *dealers.Service
	db      *gorm.DB // журнал действий
	log     *slog.Logger
}

func New(users *auth.Service, store *catalog.Store, proxy *dealers.Service, db *gorm.DB, log *slog.Logger) *Handler {
	return &Handler{
		users:   users,
		catalog: store,
		dealers: proxy,
		db:      db,
		log:     log.With("component", "handlers"),
	}
}
