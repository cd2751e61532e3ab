package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ClassroomService/internal/api/handlers"
)

// UserNameHeader заголовок с именем пользователя, выставляется шлюзом
const UserNameHeader = "X-User-Name"

type userNameKey struct{}

// Auth требует заголовок X-User-Name и кладёт имя пользователя в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.Header.Get(UserNameHeader))
		if name == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+UserNameHeader)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserName(r.Context(), name)))
	})
}

// WithUserName кладёт имя пользователя в контекст
func WithUserName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, userNameKey{}, name)
}

// GetUserName достаёт имя пользователя из контекста
func GetUserName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(userNameKey{}).(string)
	return name, ok && name != ""
}
