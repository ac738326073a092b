package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/repository"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusForbidden, "owner cannot bid on own product"
	case errors.Is(err, auctionerrors.ErrRoomClosed):
		return http.StatusConflict, "bidding room is closed"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusConflict, "conflict with existing resource"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for room"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondServiceError maps the error, sends the JSON error body and logs it.
func RespondServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": request failed", ctx)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ParseListOptions reads the recognized list query parameters: search,
// sortBy, sortOrder, page, limit. Defaults: first page of 10, descending.
func ParseListOptions(c *gin.Context) repository.ListOptions {
	opts := repository.ListOptions{
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Page:      1,
		Limit:     10,
	}
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		opts.Page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		opts.Limit = l
	}
	return opts
}
