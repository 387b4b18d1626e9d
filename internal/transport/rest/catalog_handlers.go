package rest

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/smartshoper/smartshoper/internal/catalog"
	"github.com/smartshoper/smartshoper/pkg/web"
)

const (
	defaultFeaturedLimit = 8
	defaultDealsLimit    = 6
)

// SearchProducts runs the query engine over the catalog. All parameters are
// optional; an empty parameter set returns the full catalog in relevance
// (catalog) order. Non-empty queries are remembered in the search history.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	params := r.URL.Query()
	filter := catalog.NewFilter()
	filter.Category = params.Get("category")
	filter.Brand = params.Get("brand")

	minPrice, ok := web.QueryFloat(r, w, mLogger, "min_price", 0)
	if !ok {
		return
	}
	filter.MinPrice = minPrice
	maxPrice, ok := web.QueryFloat(r, w, mLogger, "max_price", math.Inf(1))
	if !ok {
		return
	}
	filter.MaxPrice = maxPrice
	minRating, ok := web.QueryFloat(r, w, mLogger, "min_rating", 0)
	if !ok {
		return
	}
	filter.MinRating = minRating

	query := params.Get("query")
	sortKey := catalog.ParseSortKey(params.Get("sort"))

	mLogger.DebugContext(r.Context(), "Received search request", "query", query, "sort", string(sortKey))
	found := h.search.Search(query, filter, sortKey)

	if query != "" {
		if err := h.search.Remember(r.Context(), query); err != nil {
			mLogger.WarnContext(r.Context(), "Failed to record search history", "error", err)
		}
	}

	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// FindProduct retrieves a product by its ID.
func (h *Handler) FindProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.catalog.Product(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// Featured returns the top products by rating and review volume.
func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	limit, ok := web.QueryInt(r, w, mLogger, "limit", defaultFeaturedLimit)
	if !ok {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, h.catalog.Featured(limit))
}

// TodaysDeals returns the cheapest products by best price.
func (h *Handler) TodaysDeals(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	limit, ok := web.QueryInt(r, w, mLogger, "limit", defaultDealsLimit)
	if !ok {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, h.catalog.TodaysDeals(limit))
}

// Categories returns the browsing taxonomy with live product counts.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, h.catalog.Categories())
}

// FindCategory returns a single category with its live count.
func (h *Handler) FindCategory(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := r.PathValue("id")

	found, err := h.catalog.Category(id)
	if err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			mLogger.WarnContext(r.Context(), "Category not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Category %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving category", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve category %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// ProductsByCategory lists the products of one category in catalog order.
func (h *Handler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := r.PathValue("id")

	if _, err := h.catalog.Category(id); err != nil {
		mLogger.WarnContext(r.Context(), "Category not found", "ID", id)
		web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Category %s not found", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, h.catalog.ProductsByCategory(id))
}
