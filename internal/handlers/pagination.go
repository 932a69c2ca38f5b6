package handlers

import (
	"strconv"
	"strings"
)

// defaultPageLimit applies when the caller omits or mangles the limit
// parameter. No upper bound is enforced at this layer.
const defaultPageLimit = 10

type listQueryParams struct {
	Limit         int
	Offset        int
	PublishedOnly bool
}

func parseListQueryParams(
	rawLimit string,
	rawOffset string,
	rawPublishedOnly string,
	defaultLimit int,
	maxLimit int,
) listQueryParams {
	limit := defaultLimit
	if parsedLimit, err := strconv.Atoi(strings.TrimSpace(rawLimit)); err == nil && parsedLimit > 0 {
		limit = parsedLimit
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	offset := 0
	if parsedOffset, err := strconv.Atoi(strings.TrimSpace(rawOffset)); err == nil && parsedOffset >= 0 {
		offset = parsedOffset
	}

	publishedOnly := false
	if parsed, err := strconv.ParseBool(strings.TrimSpace(rawPublishedOnly)); err == nil {
		publishedOnly = parsed
	}

	return listQueryParams{
		Limit:         limit,
		Offset:        offset,
		PublishedOnly: publishedOnly,
	}
}
