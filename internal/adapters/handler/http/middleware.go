package http

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

// UserIDKey holds the authenticated user's id in the request context.
const UserIDKey contextKey = "user_id"

// AuthMiddleware validates the access token (cookie or bearer header) and
// puts the resulting user id into the request context. Handlers read it from
// there and pass it to the services explicitly; nothing below the handler
// layer touches the request context for identity.
func AuthMiddleware(next http.Handler) http.Handler {
	secret := []byte(os.Getenv("JWT_SECRET"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := accessTokenFromRequest(r)
		if tokenStr == "" {
			errorJSON(w, http.StatusUnauthorized, "You must be logged in to perform this action.")
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			errorJSON(w, http.StatusUnauthorized, "You must be logged in to perform this action.")
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil {
			errorJSON(w, http.StatusUnauthorized, "You must be logged in to perform this action.")
			return
		}
		userID, err := uuid.Parse(sub)
		if err != nil {
			errorJSON(w, http.StatusUnauthorized, "You must be logged in to perform this action.")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accessTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// principalFromContext returns the authenticated user id, or uuid.Nil when
// the request carried no valid identity. The services reject uuid.Nil, so a
// route mistakenly mounted outside AuthMiddleware still cannot act.
func principalFromContext(ctx context.Context) uuid.UUID {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}
