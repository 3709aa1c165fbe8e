package middlewares

import "net/http"

// HPP collapses repeated query parameters to their first value and drops
// parameters outside the whitelist. Every endpoint here reads query strings
// (filters, search, pagination), so a polluted ?sort=rating&sort=price-low
// would otherwise depend on which value url.Values.Get happens to return.
// The API takes no form bodies, so only the query string is filtered.
func HPP(whitelist []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(whitelist))
	for _, k := range whitelist {
		allowed[k] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.RawQuery != "" {
				q := r.URL.Query()
				dirty := false
				for k, vals := range q {
					if !allowed[k] {
						q.Del(k)
						dirty = true
						continue
					}
					if len(vals) > 1 {
						q[k] = vals[:1]
						dirty = true
					}
				}
				if dirty {
					r.URL.RawQuery = q.Encode()
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
