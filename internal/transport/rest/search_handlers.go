package rest

import (
	"net/http"

	"github.com/smartshoper/smartshoper/pkg/web"
)

// Suggestions returns typeahead completions for a partial query.
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	query := r.URL.Query().Get("query")
	web.RespondJSON(w, mLogger, http.StatusOK, h.search.Suggestions(query))
}

// SearchHistory returns recent queries, most recent first.
func (h *Handler) SearchHistory(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, h.search.History())
}
