package contentful

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ybordev/site-content/pkg/sitecontent"
)

// queryParams encodes an EntryQuery into delivery API parameters:
// content_type, fields.<name> equality filters, include, limit, skip,
// order (with "-" prefix for descending) and select.
func queryParams(q sitecontent.EntryQuery) url.Values {
	params := url.Values{}
	if q.ContentType != "" {
		params.Set("content_type", q.ContentType)
	}
	for name, value := range q.FieldEquals {
		key := name
		if !strings.Contains(name, ".") {
			key = "fields." + name
		}
		params.Set(key, value)
	}
	if q.Include > 0 {
		params.Set("include", strconv.Itoa(q.Include))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Skip > 0 {
		params.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	if len(q.Select) > 0 {
		params.Set("select", strings.Join(q.Select, ","))
	}
	return params
}
