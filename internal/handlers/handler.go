package handlers

import (
	"log/slog"

	"recipebox/internal/config"
	"recipebox/internal/services"

	"gorm.io/gorm"
)

type Handler struct {
	cfg            config.Config
	logger         *slog.Logger
	db             *gorm.DB
	accountService *services.AccountService
	recipeService  *services.RecipeService
	searchClient   services.SearchClient
	auditService   *services.AuditService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	accountService *services.AccountService,
	recipeService *services.RecipeService,
	searchClient services.SearchClient,
	auditService *services.AuditService,
) *Handler {
	return &Handler{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		accountService: accountService,
		recipeService:  recipeService,
		searchClient:   searchClient,
		auditService:   auditService,
	}
}
