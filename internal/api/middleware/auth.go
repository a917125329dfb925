package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

type contextKey string

const userContextKey contextKey = "auth.user"

const (
	// HeaderUserID заголовок идентификации пользователя
	// Аутентификацию выполняет внешний шлюз, сервис доверяет заголовку
	HeaderUserID = "X-User-ID"

	msgUnauthorized = "Требуется авторизация"
	msgForbidden    = "Недостаточно прав"
)

// UserProvider загрузка пользователя по ID
type UserProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// AuthLogger интерфейс для логирования
type AuthLogger interface {
	Warn(format string, v ...interface{})
}

// Auth извлекает пользователя из заголовка X-User-ID и кладет его в контекст
// Запросы без валидного заголовка отклоняются с 401
func Auth(users UserProvider, logger AuthLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderUserID)
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				writeAuthError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			user, err := users.GetByID(r.Context(), id)
			if err != nil {
				logger.Warn("auth: unknown user id=%d: %v", id, err)
				writeAuthError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			if !user.Active {
				logger.Warn("auth: inactive user id=%d", id)
				writeAuthError(w, http.StatusForbidden, msgForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles пропускает только пользователей с одной из указанных ролей
// Должен стоять после Auth
func RequireRoles(roles ...domain.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if user == nil {
				writeAuthError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeAuthError(w, http.StatusForbidden, msgForbidden)
		})
	}
}

// UserFromContext возвращает пользователя запроса или nil
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// WithUser кладет пользователя в контекст (для тестов хендлеров)
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
