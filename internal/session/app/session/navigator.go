package session

//go:generate mockgen -source navigator.go -destination mock/navigator.go -package mock

const (
	LoginRoute = "/login"
	MainRoute  = "/main"
)

// Navigator moves the user to another route.
type Navigator interface {
	Navigate(route string)
}
