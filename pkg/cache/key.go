package cache

import (
	"net/url"
	"sort"
	"strings"
)

// Key generates a deterministic cache key from a request path and its
// query parameters. Parameter names are sorted lexicographically so that
// "?b=2&a=1" and "?a=1&b=2" map to the same key.
//
// Example:
//
//	/api/destinations?page=1&region=caribbean
func Key(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+params.Get(name))
	}

	return path + "?" + strings.Join(pairs, "&")
}
