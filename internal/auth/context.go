package auth

import "context"

type ctxKey string

const ContextUserKey ctxKey = "user"

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}

// ActorFromContext resolves the capability value for the current request.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	u, ok := UserFromContext(ctx)
	if !ok || u == nil {
		return Actor{}, false
	}
	return u.Actor(), true
}
