package acl

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forkful/forkful/pkg/logger"
	"github.com/forkful/forkful/pkg/response"
)

// OwnershipFunc decides whether the principal owns the targeted resource
// instance. It is consulted only when the permission table resolves to an
// "own"-scoped grant; "any" grants never invoke it. Predicates should
// answer (false, nil) for a missing or foreign resource and reserve the
// error return for infrastructure failures.
type OwnershipFunc func(ctx context.Context, p Principal, resourceID string) (bool, error)

// Require returns middleware that gates a handler with the permission
// table. It must run after Authenticate: a request with no principal in
// context is rejected with 401 before the table is consulted.
//
// idParam names the URL parameter carrying the target resource id for
// ownership checks (pass "" with a nil predicate for routes that operate
// on the principal's own implicit resource, e.g. their cart).
func Require(t *Table, action Action, resource, idParam string, own OwnershipFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromCtx(r.Context())
			if !ok {
				response.Unauthorized(w)
				return
			}

			grant := t.Can(p.Role, action, resource)
			if !grant.Granted {
				deny(w, r, p, action, resource)
				return
			}

			if grant.Scope == ScopeOwn && own != nil {
				id := ""
				if idParam != "" {
					id = chi.URLParam(r, idParam)
				}
				owned, err := own(r.Context(), p, id)
				if err != nil {
					logger.WithCtx(r.Context()).Error("ownership check failed",
						"resource", resource, "resource_id", id, "error", err)
					response.Error(w, http.StatusBadGateway, "Upstream failure")
					return
				}
				if !owned {
					deny(w, r, p, action, resource)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request, p Principal, action Action, resource string) {
	logger.WithCtx(r.Context()).Warn("permission denied",
		"account_id", p.AccountID,
		"role", p.Role,
		"action", string(action),
		"resource", resource,
	)
	response.Forbidden(w)
}
