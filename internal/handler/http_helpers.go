package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inklog/internal/service"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondOpError maps the pipeline's tagged errors onto HTTP statuses and
// keeps the stable numeric code on the wire.
func respondOpError(c *gin.Context, err error) {
	var opErr *service.OpError
	if !errors.As(err, &opErr) {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusInternalServerError
	if opErr.Kind == service.KindNotFound {
		status = http.StatusNotFound
	}

	c.JSON(status, gin.H{
		"error": opErr.Message,
		"kind":  string(opErr.Kind),
		"code":  opErr.Code,
	})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

func parseUintQuery(c *gin.Context, key string, fallback uint) uint {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return uint(parsed)
}

func parseUintString(raw string) uint {
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(parsed)
}

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
