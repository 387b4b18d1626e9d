package rest

import (
	"net/http"

	"github.com/smartshoper/smartshoper/pkg/web"
)

// wishlistDto is the JSON shape of the wishlist resource.
type wishlistDto struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
}

// Wishlist returns the saved product IDs in insertion order.
func (h *Handler) Wishlist(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, wishlistDto{
		Items: h.wishlist.List(),
		Count: h.wishlist.Count(),
	})
}

// AddToWishlist puts a product on the wishlist. Adding an already saved
// product reports added=false and changes nothing.
func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	added, err := h.wishlist.Add(r.Context(), id)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error adding product to wishlist", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to update wishlist")
		return
	}
	mLogger.DebugContext(r.Context(), "Wishlist add", "ID", id, "added", added)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]bool{"added": added})
}

// RemoveFromWishlist takes a product off the wishlist. Removing an absent
// product reports removed=false and changes nothing.
func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	removed, err := h.wishlist.Remove(r.Context(), id)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error removing product from wishlist", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to update wishlist")
		return
	}
	mLogger.DebugContext(r.Context(), "Wishlist remove", "ID", id, "removed", removed)
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]bool{"removed": removed})
}

// ToggleWishlist flips a product's membership and reports the resulting
// state.
func (h *Handler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	added, err := h.wishlist.Toggle(r.Context(), id)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error toggling wishlist entry", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to update wishlist")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]bool{"added": added})
}
