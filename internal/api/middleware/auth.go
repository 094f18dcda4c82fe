package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mulelash/MB-BeautyService/internal/api/handlers"
)

type operatorCtxKey struct{}

// OperatorFromContext returns the authenticated operator's LINE user id, or
// "" outside a protected route
func OperatorFromContext(ctx context.Context) string {
	id, _ := ctx.Value(operatorCtxKey{}).(string)
	return id
}

// Claims is the session token payload issued at admin login
type Claims struct {
	jwt.RegisteredClaims
	DisplayName string `json:"name,omitempty"`
}

// Auth verifies the Bearer session token and puts the operator id on the
// request context. Tokens are HS256, issued by the login handler.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, "missing bearer token")
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")

			var claims Claims
			token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid || claims.Subject == "" {
				handlers.RespondUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), operatorCtxKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
