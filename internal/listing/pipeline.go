// Package listing implements the pure enrich → filter → sort pipeline used
// by the asset and job list endpoints. Records arrive with only a raw site
// foreign key (or a partially-populated site reference, depending on how
// they were fetched); the pipeline attaches full site/client references,
// applies conjunctive filters, and produces a stable field-sorted result.
//
// Every transform is pure: inputs are never mutated and the pipeline is
// cheap enough to rerun on every request for realistic list sizes.
package listing

import (
	"slices"
	"strings"
	"time"
)

// ClientRef is a resolved reference to a client.
type ClientRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SiteRef references a site, optionally with its owning client. A ref that
// carries an ID but no name is unresolved: the record was fetched without
// the join and enrichment is expected to fill it in.
type SiteRef struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name,omitempty"`
	Client *ClientRef `json:"client,omitempty"`
}

// Resolved reports whether the site itself carries display data.
func (r SiteRef) Resolved() bool {
	return r.ID != 0 && r.Name != ""
}

// ClientResolved reports whether the client sub-reference carries display data.
func (r SiteRef) ClientResolved() bool {
	return r.Client != nil && r.Client.Name != ""
}

// clone returns a deep copy so enriched records never share the reference's
// client pointer.
func (r SiteRef) clone() SiteRef {
	out := SiteRef{ID: r.ID, Name: r.Name}
	if r.Client != nil {
		c := *r.Client
		out.Client = &c
	}
	return out
}

// Record is implemented by rows that flow through the pipeline.
type Record[T any] interface {
	// SiteKey returns the raw site foreign key, 0 when unknown.
	SiteKey() int64
	// SiteRef returns the (possibly partial) site reference.
	SiteRef() SiteRef
	// WithSiteRef returns a copy of the record with the site reference replaced.
	WithSiteRef(SiteRef) T
	// SearchValues returns the record's own searchable display fields.
	SearchValues() []string
	// SortValue resolves a direct sort field; ok is false for unknown fields.
	SortValue(field string) (any, bool)
}

// Enrich attaches full site (and client) references to records that arrived
// without them. Records whose site and client are already resolved pass
// through untouched; records whose site key has no match in refs keep
// whatever partial data they arrived with. Enrich never drops records and is
// idempotent.
func Enrich[T Record[T]](records []T, refs []SiteRef) []T {
	index := make(map[int64]SiteRef, len(refs))
	for _, ref := range refs {
		index[ref.ID] = ref
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		site := rec.SiteRef()
		if site.Resolved() && site.ClientResolved() {
			out = append(out, rec)
			continue
		}

		key := rec.SiteKey()
		if key == 0 {
			key = site.ID
		}
		if ref, ok := index[key]; ok {
			out = append(out, rec.WithSiteRef(ref.clone()))
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Query holds the list filters. Zero values disable the corresponding filter;
// a zero Query is the identity.
type Query struct {
	Search   string
	ClientID int64
	SiteID   int64
}

func (q Query) isZero() bool {
	return strings.TrimSpace(q.Search) == "" && q.ClientID == 0 && q.SiteID == 0
}

// Filter applies the query's filters conjunctively: client, then site, then
// case-insensitive substring search across the record's own fields plus its
// site and client names. The site filter also matches on the raw site key so
// unenriched records are not lost.
func Filter[T Record[T]](records []T, q Query) []T {
	if q.isZero() {
		return records
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]T, 0, len(records))
	for _, rec := range records {
		site := rec.SiteRef()

		if q.ClientID != 0 {
			if site.Client == nil || site.Client.ID != q.ClientID {
				continue
			}
		}

		if q.SiteID != 0 {
			if site.ID != q.SiteID && rec.SiteKey() != q.SiteID {
				continue
			}
		}

		if search != "" && !matches(rec, site, search) {
			continue
		}

		out = append(out, rec)
	}
	return out
}

func matches[T Record[T]](rec T, site SiteRef, search string) bool {
	for _, v := range rec.SearchValues() {
		if strings.Contains(strings.ToLower(v), search) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(site.Name), search) {
		return true
	}
	if site.Client != nil && strings.Contains(strings.ToLower(site.Client.Name), search) {
		return true
	}
	return false
}

// Sort orders. Anything other than OrderDesc sorts ascending.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Synthetic sort fields resolved from the site reference rather than the
// record itself.
const (
	FieldSite   = "site"
	FieldClient = "client"
)

// Sort returns a new slice ordered by the given field. The sort is stable,
// so ties keep their prior relative order, and the input is never reordered.
// Missing values sort as empty strings.
func Sort[T Record[T]](records []T, field, order string) []T {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b T) int {
		c := compareValues(sortValue(a, field), sortValue(b, field))
		if order == OrderDesc {
			c = -c
		}
		return c
	})
	return out
}

func sortValue[T Record[T]](rec T, field string) any {
	switch field {
	case FieldSite:
		return rec.SiteRef().Name
	case FieldClient:
		site := rec.SiteRef()
		if site.Client == nil {
			return ""
		}
		return site.Client.Name
	}
	if v, ok := rec.SortValue(field); ok {
		return v
	}
	return ""
}

// Sort value kinds, in sort precedence order. Mixed kinds only occur when a
// value is missing; missing values normalize to the empty string and sort
// before any concrete value.
const (
	kindString = iota
	kindNumber
	kindTime
)

// compareValues compares two normalized sort values. Strings compare
// case-insensitively; numeric and time values compare ordinally.
func compareValues(a, b any) int {
	av, ak := normalizeValue(a)
	bv, bk := normalizeValue(b)
	if ak != bk {
		return cmpOrdered(ak, bk)
	}

	switch ak {
	case kindString:
		return strings.Compare(av.(string), bv.(string))
	case kindNumber:
		return cmpOrdered(av.(float64), bv.(float64))
	case kindTime:
		return av.(time.Time).Compare(bv.(time.Time))
	}
	return 0
}

func normalizeValue(v any) (any, int) {
	switch x := v.(type) {
	case string:
		return strings.ToLower(x), kindString
	case int:
		return float64(x), kindNumber
	case int64:
		return float64(x), kindNumber
	case float64:
		return x, kindNumber
	case time.Time:
		return x, kindTime
	default:
		// nil and unsupported types sort as the empty string.
		return "", kindString
	}
}

func cmpOrdered[T int | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
