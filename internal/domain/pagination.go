package domain

// Pagination is a request-scoped window over a list query. StartIndex is the
// offset, Count the maximum number of rows. Count of 0 is a legal request for
// zero rows.
type Pagination struct {
	StartIndex int64 `json:"start_index"`
	Count      int64 `json:"count"`
}
