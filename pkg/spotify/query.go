package spotify

import (
	"net/url"
	"strconv"
)

// Pagination defaults applied when a list call does not specify its own.
const (
	DefaultLimit  = 50
	DefaultOffset = 0
)

// QueryParams represents list options for paged endpoints. The zero value is
// usable and produces the default page window.
type QueryParams struct {
	Limit     int
	Offset    int
	Market    string
	Country   string
	Fields    string
	AlbumType string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithOffset sets the index of the first item to return.
func (q *QueryParams) WithOffset(offset int) *QueryParams {
	q.Offset = offset

	return q
}

// WithMarket sets the ISO 3166-1 alpha-2 market filter.
func (q *QueryParams) WithMarket(market string) *QueryParams {
	q.Market = market

	return q
}

// WithCountry sets the ISO 3166-1 alpha-2 country filter.
func (q *QueryParams) WithCountry(country string) *QueryParams {
	q.Country = country

	return q
}

// WithFields restricts which fields the response includes.
func (q *QueryParams) WithFields(fields string) *QueryParams {
	q.Fields = fields

	return q
}

// WithAlbumType filters artist albums by type ("album", "single",
// "appears_on", "compilation").
func (q *QueryParams) WithAlbumType(albumType string) *QueryParams {
	q.AlbumType = albumType

	return q
}

// ToValues converts the parameters to url.Values. The limit and offset keys
// are always present; an unset limit falls back to DefaultLimit.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	offset := q.Offset
	if offset < 0 {
		offset = DefaultOffset
	}

	values.Set("limit", strconv.Itoa(limit))
	values.Set("offset", strconv.Itoa(offset))

	if q.Market != "" {
		values.Set("market", q.Market)
	}

	if q.Country != "" {
		values.Set("country", q.Country)
	}

	if q.Fields != "" {
		values.Set("fields", q.Fields)
	}

	if q.AlbumType != "" {
		values.Set("album_type", q.AlbumType)
	}

	return values
}
