package fetch

import (
	"fmt"
	"net/url"
	"path"
	"strconv"
	"time"
)

// Params maps query parameter names to values. A nil or empty-string value
// omits the parameter entirely; a scalar sets it once; a slice appends one
// occurrence per element (repeated same-named parameters, never
// comma-joined). Nil pointers are skipped, non-nil pointers dereferenced.
type Params map[string]any

// BuildURL joins a base origin with a path and encodes params into a
// single absolute URL. Every upstream client routes its URLs through here
// so parameter conventions stay uniform.
func BuildURL(base, p string, params Params) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("fetch: parse base url %q: %w", base, err)
	}
	if p != "" {
		u.Path = path.Join(u.Path, p)
	}

	values := url.Values{}
	for name, v := range params {
		for _, s := range encodeValue(v) {
			values.Add(name, s)
		}
	}
	u.RawQuery = values.Encode()

	return u.String(), nil
}

// NonZero returns v unless it is zero, in which case it returns nil so
// the parameter is omitted instead of sent as "0".
func NonZero(v int) any {
	if v == 0 {
		return nil
	}
	return v
}

func encodeValue(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case *string:
		if t == nil {
			return nil
		}
		return encodeValue(*t)
	case bool:
		return []string{strconv.FormatBool(t)}
	case *bool:
		if t == nil {
			return nil
		}
		return encodeValue(*t)
	case int:
		return []string{strconv.Itoa(t)}
	case *int:
		if t == nil {
			return nil
		}
		return encodeValue(*t)
	case int64:
		return []string{strconv.FormatInt(t, 10)}
	case float64:
		return []string{strconv.FormatFloat(t, 'f', -1, 64)}
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return []string{t.UTC().Format(time.RFC3339)}
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		var out []string
		for _, e := range t {
			out = append(out, encodeValue(e)...)
		}
		return out
	default:
		return []string{fmt.Sprint(t)}
	}
}
