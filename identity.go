package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const identityTokenLifetime = time.Hour * 24

type IdentityJWT struct {
	jwtSecret string
}

func NewIdentityJWT(jwtSecret string) *IdentityJWT {
	return &IdentityJWT{jwtSecret}
}

func (i IdentityJWT) GenerateIdentityJWT(subject string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject, "exp": jwt.NewNumericDate(time.Now().Add(identityTokenLifetime))})
	return token.SignedString([]byte(i.jwtSecret))
}

func (i IdentityJWT) GetSubjectFromIdentityJWT(tokenString string) string {
	token, _ := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(i.jwtSecret), nil
	})
	if token == nil {
		return ""
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if subject, ok := claims["sub"].(string); ok {
			return subject
		}
	}
	return ""
}

type callerKey struct{}

// Middleware rejects requests without a valid bearer token and puts the
// caller identity into the request context.
func (i IdentityJWT) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !found {
			writeError(w, http.StatusUnauthorized, "MissingIdentity")
			return
		}
		subject := i.GetSubjectFromIdentityJWT(tokenString)
		if subject == "" {
			writeError(w, http.StatusUnauthorized, "InvalidIdentity")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey{}, Occupant(subject))))
	})
}

func CallerFromContext(ctx context.Context) Occupant {
	caller, _ := ctx.Value(callerKey{}).(Occupant)
	return caller
}
