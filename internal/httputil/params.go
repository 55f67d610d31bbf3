package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/moviecatalog/internal/errors"
)

// ParseIDParam parses a positive integer path parameter.
// A segment that is not an integer addresses no resource, so it maps to ErrNotFound.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Wrap(apperrors.ErrNotFound, "resource not found")
	}
	return id, nil
}

// ParseOptionalInt64Query parses an optional integer query parameter.
// Returns nil when the parameter is absent and ErrInvalidInput when it is not an integer.
func ParseOptionalInt64Query(c *gin.Context, name string) (*int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			fmt.Sprintf("%s must be an integer", name),
		)
	}
	return &value, nil
}
