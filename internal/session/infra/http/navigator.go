package http

import (
	"sync"
)

// RedirectNavigator records the last requested route, the response is redirected there.
type RedirectNavigator struct {
	mu     sync.Mutex
	target string
}

func NewRedirectNavigator() *RedirectNavigator {
	return &RedirectNavigator{}
}

func (n *RedirectNavigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.target = route
}

func (n *RedirectNavigator) Target() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.target, n.target != ""
}
