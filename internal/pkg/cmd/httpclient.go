package cmd

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/billup/billup-web/pkg/env"
	"github.com/billup/billup-web/pkg/http"
	pkgstrings "github.com/billup/billup-web/pkg/strings"
)

// HTTPClientFactory shares one client per destination between the bounded contexts.
type HTTPClientFactory struct {
	impl    http.ClientFactory
	mu      *sync.Mutex
	clients map[http.Destination]http.Client
}

func NewHTTPClientFactory(
	opts ...http.ClientOption,
) HTTPClientFactory {
	return HTTPClientFactory{
		impl:    http.NewClientFactory(opts...),
		mu:      &sync.Mutex{},
		clients: make(map[http.Destination]http.Client),
	}
}

// MustInitClient reads the base url of dest from <DEST>_SERVICE_URL, e.g. BILLUP_API_SERVICE_URL.
func (f HTTPClientFactory) MustInitClient(dest http.Destination) http.Client {
	f.mu.Lock()
	defer f.mu.Unlock()

	if client, ok := f.clients[dest]; ok {
		return client
	}

	baseURL, err := parseBaseURL(env.Must(env.Parse[string](BaseURLEnv(dest))))
	if err != nil {
		panic(fmt.Errorf("destination %s: %w", dest, err))
	}

	client := f.impl.InitClient(dest, baseURL)
	f.clients[dest] = client
	return client
}

func BaseURLEnv(dest http.Destination) string {
	return fmt.Sprintf("%s_SERVICE_URL", pkgstrings.ToScreamingSnakeCase(string(dest)))
}

func parseBaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return "", fmt.Errorf("base url %q must be an absolute http(s) url", raw)
	}

	return strings.TrimSuffix(u.String(), "/"), nil
}
