package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/DRTX2/products-api/internal/apierror"
	"github.com/DRTX2/products-api/internal/dto"
	"github.com/DRTX2/products-api/internal/middleware"
)

// Response helpers: every endpoint answers with the same envelope
// {success, message, data?, errors?, meta?}.

func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Message: message, Data: data})
}

func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, dto.Envelope{Success: true, Message: message, Data: data})
}

func respondList(c *gin.Context, message string, data any, meta dto.Meta) {
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Message: message, Data: data, Meta: &meta})
}

func respondProductNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.Envelope{Success: false, Message: "Producto no encontrado."})
}

func respondValidation(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, dto.Envelope{
		Success: false,
		Message: "Error de validación",
		Errors:  fields,
	})
}

func respondBadJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.Envelope{Success: false, Message: "JSON inválido."})
}

// respondError maps service errors onto the envelope. Validation and
// not-found are expected outcomes; anything else is logged and hidden
// behind a generic 500.
func respondError(c *gin.Context, err error) {
	var verr *apierror.ValidationError
	switch {
	case errors.As(err, &verr):
		respondValidation(c, verr.Fields)
	case errors.Is(err, apierror.ErrProductNotFound):
		respondProductNotFound(c)
	default:
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Err(err).
			Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, dto.Envelope{
			Success: false,
			Message: "Error interno del servidor",
		})
	}
}
