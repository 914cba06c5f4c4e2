package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rfalcao/stockwatch/internal/models"
	repo "github.com/rfalcao/stockwatch/internal/repo"
)

// GetProductsHandler godoc
// @Summary List or search products
// @Description Lists all products; with q set, matches the query as a case-insensitive substring of name or category
// @Tags products
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	list, err := listProducts(q)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]ProductResponse, len(list))
	for i, p := range list {
		response[i] = toProductResponse(p)
	}
	if err := writeJSON(w, http.StatusOK, response); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, toProductResponse(product)); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Removes the product and runs a stock alert sweep over the remaining records
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
// @Security BearerAuth
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}

	log.Printf("product %d deleted by user %d", id, UserID(r))

	// Deletion cannot push a remaining record below threshold, but the
	// policy recomputes from scratch after every mutation, deletions
	// included.
	if _, warnings, err := sweeper.Sweep(r.Context()); err != nil {
		log.Printf("alert sweep after deletion failed: %v", err)
	} else {
		for _, warning := range warnings {
			log.Print(warning)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func listProducts(q string) ([]models.Product, error) {
	if q != "" {
		return productRepo.Search(q)
	}
	return productRepo.GetAll()
}
