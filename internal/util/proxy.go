package util

import (
	"net/http"
	"net/url"
)

// NewProxyFunc returns the proxy selector for outbound catalog and LLM
// requests. Explicit proxy URLs from the config take precedence over the
// standard HTTP_PROXY/HTTPS_PROXY environment variables.
func NewProxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
