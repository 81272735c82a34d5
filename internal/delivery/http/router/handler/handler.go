// Package handler contains the HTTP handlers for every API resource.
package handler

import (
	"net/http"
	"strconv"

	"souk/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// errInvalidPathID signals that parseID already wrote the 400 response; the
// global error handler skips committed responses, so callers just return it.
var errInvalidPathID = errors.New("invalid path id")

// parseID reads a positive integer path parameter. Anything else is a 400.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		if writeErr := response.BadRequest(c, "INVALID_ID", "Path parameter '"+name+"' must be a positive integer"); writeErr != nil {
			return 0, writeErr
		}

		return 0, errInvalidPathID
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
