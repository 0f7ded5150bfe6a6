package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"mediareview/internal/http-api/dto"
	"mediareview/internal/http-api/middleware"
	"mediareview/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps service errors to status codes. Anything unrecognised is
// logged and reported as a generic 500.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: ve.Error()})
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrAlreadyRated),
		errors.Is(err, service.ErrAlreadyFavorited):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	default:
		logger.Error("request failed",
			"error", err,
			"path", c.FullPath(),
			"request_id", c.GetString(middleware.RequestIDKey),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// respondBindError reports a payload that failed to decode or validate.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: strings.Join(msgs, "; ")})
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s: must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s: must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag())
	}
}

// parseID reads a positive integer id from the named path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// queryUserID reads the caller-asserted user_id query parameter.
func queryUserID(c *gin.Context) (int64, bool) {
	raw, ok := c.GetQuery("user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "user_id: is required"})
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user_id"})
		return 0, false
	}
	return id, true
}
