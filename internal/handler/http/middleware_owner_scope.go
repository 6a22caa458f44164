package http

import (
	"context"
	"net/http"

	"github.com/dokanlabs/dokan-hisab/internal/utils"
)

const ownerScopeHeader = "X-Owner-Scope"

// withOwnerScope extracts the shop identity from the X-Owner-Scope header and
// puts it on the request context. Record routes never run without it: a
// request that does not name its shop is rejected before touching storage.
func withOwnerScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerScope := r.Header.Get(ownerScopeHeader)
		if ownerScope == "" {
			http.Error(w, "owner scope required", http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), utils.OwnerScopeCtxKey, ownerScope)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
