package storage

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/billup/billup-web/internal/session/app/session"
)

const cookiePath = "/"

type CookieOption func(*http.Cookie)

func WithSecureCookies(secure bool) CookieOption {
	return func(c *http.Cookie) {
		c.Secure = secure
	}
}

// Cookies keeps each key in a browser cookie of the same name. Values are read from the request
// and written back with Set-Cookie on the response, so the response headers must not be sent yet.
// Writes are visible to later reads within the same request.
type Cookies struct {
	mu      sync.Mutex
	request *http.Request
	writer  http.ResponseWriter
	opts    []CookieOption

	pending map[string]*string
}

func NewCookies(w http.ResponseWriter, r *http.Request, opts ...CookieOption) *Cookies {
	return &Cookies{
		request: r,
		writer:  w,
		opts:    opts,
		pending: make(map[string]*string),
	}
}

func (c *Cookies) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value, ok := c.pending[key]; ok {
		if value == nil {
			return "", false
		}
		return *value, true
	}

	cookie, err := c.request.Cookie(key)
	if err != nil {
		return "", false
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (c *Cookies) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending[key] = &value
	http.SetCookie(c.writer, c.cookie(key, url.QueryEscape(value), 0))
}

func (c *Cookies) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.request.Cookie(key); err != nil {
		if value, ok := c.pending[key]; !ok || value == nil {
			return
		}
	}

	c.pending[key] = nil
	http.SetCookie(c.writer, c.cookie(key, "", -1))
}

func (c *Cookies) cookie(name, value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     cookiePath,
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	for _, opt := range c.opts {
		opt(cookie)
	}
	return cookie
}

var _ session.KeyValueStorage = (*Cookies)(nil)
