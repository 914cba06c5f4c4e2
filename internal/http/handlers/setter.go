package handlers

import (
	"context"

	"github.com/rfalcao/stockwatch/internal/alert"
	"github.com/rfalcao/stockwatch/internal/intake"
	"github.com/rfalcao/stockwatch/internal/models"
	repo "github.com/rfalcao/stockwatch/internal/repo"
)

// InventoryAssistant is the contract the chat endpoint depends on; the
// concrete implementation calls an external language model.
type InventoryAssistant interface {
	Ask(ctx context.Context, products []models.Product, question string) (string, error)
}

var (
	productRepo     repo.ProductRepository
	userRepo        repo.UserRepository
	metricsRepo     repo.MetricsRepository
	reconciler      *intake.Reconciler
	sweeper         *alert.Sweeper
	alertHistory    *alert.History
	assistantClient InventoryAssistant
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetReconciler(r *intake.Reconciler) {
	reconciler = r
}

func SetSweeper(s *alert.Sweeper) {
	sweeper = s
}

func SetAlertHistory(h *alert.History) {
	alertHistory = h
}

func SetAssistant(a InventoryAssistant) {
	assistantClient = a
}
