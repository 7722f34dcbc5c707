package service

import (
	"strconv"
	"strings"
)

// Helpers for the delimited-list columns: category ids, label ids and
// keywords are stored as single text fields joined on configured separators.

func joinUints(ids []uint, sep string) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, sep)
}

func splitUints(list, sep string) []uint {
	if list == "" || sep == "" {
		return nil
	}
	parts := strings.Split(list, sep)
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		parsed, err := strconv.ParseUint(trimmed, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(parsed))
	}
	return ids
}

func joinStrings(values []string, sep string) string {
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, sep)
}
