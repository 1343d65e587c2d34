package inkdrop

import (
	"encoding/base64"
	"net/http"
)

// BasicAuthHeader returns the Authorization header value for HTTP Basic
// authentication with the given credentials.
func BasicAuthHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// defaultHeaders builds the headers sent with every request. Headers supplied
// in extra win over the generated Authorization and Accept values.
func defaultHeaders(username, password string, extra http.Header) http.Header {
	headers := make(http.Header)
	mergeHeaders(headers, extra)

	if headers.Get("Authorization") == "" {
		headers.Set("Authorization", BasicAuthHeader(username, password))
	}
	if headers.Get("Accept") == "" {
		headers.Set("Accept", "application/json")
	}

	return headers
}

// mergeHeaders overlays src onto dst key by key. Names are compared without
// regard to case and src replaces all of dst's values for a name it sets.
func mergeHeaders(dst, src http.Header) {
	for name, values := range src {
		dst.Del(name)
		for _, v := range values {
			dst.Add(name, v)
		}
	}
}
