package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cipherswarm/cipherswarm/ent"
)

// agentContextKey is the gin context key the auth middleware stores the
// authenticated *ent.Agent under.
const agentContextKey = "cipherswarm.agent"

// extractBearerToken pulls the token out of an Authorization header,
// returning "" when the header is absent or not a Bearer scheme.
func extractBearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// agentAuth authenticates the csa_<agent_id>_<opaque> bearer token on every
// /client route except registration, storing the agent on the context.
// Token values never appear in logs or responses.
func (s *Server) agentAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c)
			c.Abort()
			return
		}
		ag, err := s.agents.Authenticate(c.Request.Context(), token)
		if err != nil {
			unauthorized(c)
			c.Abort()
			return
		}
		c.Set(agentContextKey, ag)
		c.Next()
	}
}

// currentAgent returns the agent the auth middleware resolved for this request.
func currentAgent(c *gin.Context) *ent.Agent {
	v, ok := c.Get(agentContextKey)
	if !ok {
		return nil
	}
	ag, _ := v.(*ent.Agent)
	return ag
}

// bodyLimit rejects request bodies past maxBytes at the HTTP read level,
// before deserialization: status/crack batches are bounded, so anything
// larger is malformed or hostile.
func bodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// securityHeaders sets standard security response headers on every response.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
