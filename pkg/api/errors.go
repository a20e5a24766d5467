package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cipherswarm/cipherswarm/pkg/services"
)

// errorBody is the uniform error envelope: every error response carries
// {error: <string>}.
type errorBody struct {
	Error string `json:"error"`
}

// mapServiceError translates a service-layer error into the HTTP status and
// body of the taxonomy and writes it to c.
func mapServiceError(c *gin.Context, err error) {
	status, body := classifyServiceError(err)
	if status == http.StatusInternalServerError {
		slog.Error("unexpected service error", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, body)
}

// classifyServiceError maps the typed service errors onto status codes;
// split from mapServiceError so tests can assert the mapping without a
// request context.
func classifyServiceError(err error) (int, errorBody) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusUnprocessableEntity, errorBody{Error: validErr.Error()}
	}
	if errors.Is(err, services.ErrNotFound) {
		// Deliberately indistinguishable from "forbidden".
		return http.StatusNotFound, errorBody{Error: "not found"}
	}
	if errors.Is(err, services.ErrStateConflict) {
		return http.StatusConflict, errorBody{Error: err.Error()}
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, errorBody{Error: "already exists"}
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return http.StatusUnprocessableEntity, errorBody{Error: err.Error()}
	}
	return http.StatusInternalServerError, errorBody{Error: "internal server error"}
}

// badRequest writes a 400 for malformed payloads (failed JSON binding).
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorBody{Error: "malformed request: " + err.Error()})
}

// unauthorized writes a 401. The token value is never echoed or logged.
func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, errorBody{Error: "invalid or missing bearer token"})
}

// notFound writes the enumeration-safe 404.
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorBody{Error: "not found"})
}
