package api

import (
	"fmt"
	"net/http"
	"strconv"

	"fieldbase/internal/listing"
)

// listQuery parses the shared list-endpoint query parameters: search,
// client_id, site_id, sort, and order. Listing handlers feed the result
// through Enrich, Filter, and Sort.
func listQuery(r *http.Request) (listing.Query, string, string, error) {
	var q listing.Query
	params := r.URL.Query()

	q.Search = params.Get("search")

	if raw := params.Get("client_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, "", "", fmt.Errorf("invalid client_id")
		}
		q.ClientID = id
	}
	if raw := params.Get("site_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, "", "", fmt.Errorf("invalid site_id")
		}
		q.SiteID = id
	}

	sort := params.Get("sort")
	order := params.Get("order")
	if order == "" {
		order = listing.OrderAsc
	}
	if order != listing.OrderAsc && order != listing.OrderDesc {
		return q, "", "", fmt.Errorf("invalid order")
	}

	return q, sort, order, nil
}
