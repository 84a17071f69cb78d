package avatar

import (
	"net/url"
	"strings"
)

// Query parameter names of the shareable URL.
const (
	paramSeed    = "seed"
	paramHat     = "hat"
	paramFire    = "fire"
	paramWalking = "walking"
	paramCircle  = "circle"
)

// LoadFromQuery builds the initial attributes for a page load. Without a seed
// parameter the numeric defaults are kept untouched.
func LoadFromQuery(rawQuery string) Attributes {
	a := DefaultAttributes()
	q := ParseQuery(rawQuery)

	if q.Has(paramSeed) {
		a = Decode(q.Get(paramSeed)).Apply(a)
	}
	if hat := q.Get(paramHat); hat != "" {
		a.Hat = hat
	}
	a.Fire = q.Get(paramFire) == "true"
	a.Walking = q.Get(paramWalking) == "true"
	a.Circle = q.Get(paramCircle) == "true"
	return a
}

// ParseQuery splits a query string on '&' and decodes each key and value.
// Unlike url.ParseQuery it never drops a pair: a malformed percent escape is
// kept as literal text and ';' is an ordinary character.
func ParseQuery(rawQuery string) url.Values {
	q := url.Values{}
	for _, pair := range strings.Split(strings.TrimPrefix(rawQuery, "?"), "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		q.Add(unescapeLenient(key), unescapeLenient(value))
	}
	return q
}

// unescapeLenient decodes '+' and valid %XX escapes, leaving anything else as is.
func unescapeLenient(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b = append(b, ' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b = append(b, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			b = append(b, c)
		}
	}
	return string(b)
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// ShareURL returns origin plus the minimal query that reproduces a: the seed
// always, hat only when set to something other than the default, pose flags
// only when true.
func ShareURL(origin string, a Attributes) string {
	q := url.Values{}
	q.Set(paramSeed, Encode(a))
	if a.Hat != "" && a.Hat != DefaultHat {
		q.Set(paramHat, a.Hat)
	}
	if a.Fire {
		q.Set(paramFire, "true")
	}
	if a.Walking {
		q.Set(paramWalking, "true")
	}
	return stripPath(origin) + "?" + q.Encode()
}

func stripPath(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		if i := strings.IndexAny(origin, "?#"); i >= 0 {
			origin = origin[:i]
		}
		return strings.TrimRight(origin, "/")
	}
	return u.Scheme + "://" + u.Host
}
