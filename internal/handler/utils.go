package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/seap-dev/subscription-api/internal/domain"
)

func parseID(idStr string) (int64, error) {
	if idStr == "" || strings.ContainsAny(idStr, "/.\\-+") {
		return 0, fmt.Errorf("invalid id format")
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be positive integer")
	}

	return id, nil
}

// parsePagination reads start_index and count from the query. The second
// return reports whether any pagination parameter was present at all; when one
// is present both are required and must be non-negative integers.
func parsePagination(q url.Values) (domain.Pagination, bool, error) {
	if !q.Has("start_index") && !q.Has("count") {
		return domain.Pagination{}, false, nil
	}

	start, err := parseNonNegative(q.Get("start_index"))
	if err != nil {
		return domain.Pagination{}, true, fmt.Errorf("start_index %v", err)
	}

	count, err := parseNonNegative(q.Get("count"))
	if err != nil {
		return domain.Pagination{}, true, fmt.Errorf("count %v", err)
	}

	return domain.Pagination{StartIndex: start, Count: count}, true, nil
}

func parseNonNegative(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("must be a non-negative integer")
	}
	return v, nil
}
