package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techexpo/console/internal/guard"
	"github.com/techexpo/console/internal/routes"
)

// RouteGuard enforces the route table for one route key. Unauthenticated
// callers get 401, wrong-role callers 403; both carry the path the
// client should navigate to, mirroring the guard's redirect decision.
func RouteGuard(g *guard.Guard, key routes.Key) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := g.EvaluateRoute(key)
		if d.Outcome == guard.OutcomeAllowed {
			c.Next()
			return
		}

		status := http.StatusForbidden
		code := "forbidden"
		if d.RedirectTo == routes.Path(routes.Login) {
			status = http.StatusUnauthorized
			code = "unauthorized"
		}

		c.AbortWithStatusJSON(status, gin.H{
			"error": gin.H{
				"code":    code,
				"message": "You do not have access to this page",
			},
			"redirectTo": d.RedirectTo,
		})
	}
}
