package triton

import (
	"fmt"
	"net/url"
	"strconv"
)

// Query accumulates list-filter parameters for API calls. The zero value is
// ready to use; all setters skip empty values so callers can chain
// unconditionally.
type Query struct {
	values url.Values
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

func (q *Query) init() {
	if q.values == nil {
		q.values = url.Values{}
	}
}

// Set adds a string parameter, skipping empty values.
func (q *Query) Set(key, value string) *Query {
	if value != "" {
		q.init()
		q.values.Set(key, value)
	}
	return q
}

// SetBool adds a boolean parameter.
func (q *Query) SetBool(key string, value bool) *Query {
	q.init()
	q.values.Set(key, strconv.FormatBool(value))
	return q
}

// SetInt adds an integer parameter, skipping zero.
func (q *Query) SetInt(key string, value int) *Query {
	if value != 0 {
		q.init()
		q.values.Set(key, strconv.Itoa(value))
	}
	return q
}

// SetUUID adds a UUID-valued parameter, skipping the nil UUID.
func (q *Query) SetUUID(key string, value interface{ IsZero() bool }) *Query {
	if value != nil && !value.IsZero() {
		q.init()
		q.values.Set(key, fmt.Sprint(value))
	}
	return q
}

// Values returns the accumulated url.Values. May be nil when nothing was set.
func (q *Query) Values() url.Values {
	if q == nil {
		return nil
	}
	return q.values
}

// Encode returns the URL-encoded query string.
func (q *Query) Encode() string {
	if q == nil || q.values == nil {
		return ""
	}
	return q.values.Encode()
}
