package ports

import "context"

// AuthService implements registration and login. Both return a signed,
// time-limited token bound to the user's id; no session state is kept.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}
