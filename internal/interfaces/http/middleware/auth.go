package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lumira-inc/lumira/internal/application/auth/identity"
	"github.com/lumira-inc/lumira/internal/shared/logger"
	"github.com/lumira-inc/lumira/internal/shared/utils"
)

// ContextKeySubjectID is where the verified identity's subject id lands in
// the gin context.
const ContextKeySubjectID = "subject_id"

// Auth verifies the bearer token on every request and stores the subject id.
func Auth(verifier identity.Verifier, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		ident, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			log.Debugw("token rejected", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeySubjectID, ident.SubjectID)
		c.Set("identity", ident)
		c.Next()
	}
}

// SubjectID returns the authenticated subject id, or empty when the request
// passed no auth middleware.
func SubjectID(c *gin.Context) string {
	return c.GetString(ContextKeySubjectID)
}

// Identity returns the full verified identity stored by Auth.
func Identity(c *gin.Context) (*identity.Identity, bool) {
	v, ok := c.Get("identity")
	if !ok {
		return nil, false
	}
	ident, ok := v.(*identity.Identity)
	return ident, ok
}
