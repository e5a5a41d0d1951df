package handlers

import (
	"net/http"

	"github.com/smartmart/storefront/internal/routes"
	"github.com/smartmart/storefront/internal/shell"
)

// SubmitSearch receives both search forms. A query with text redirects to
// the search page; an empty or whitespace-only one answers 204 so the
// browser stays where it is.
func (h *Handlers) SubmitSearch(w http.ResponseWriter, r *http.Request) {
	sh := shell.New(nil, h.logger)
	defer sh.Unmount()

	sh.SetQuery(r.URL.Query().Get(routes.SearchParam))
	dest, ok := sh.Submit()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Redirect(w, r, dest, http.StatusSeeOther)
}
