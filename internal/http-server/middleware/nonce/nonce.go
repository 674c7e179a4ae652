package nonce

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"eventPandey/internal/lib/logger/sl"
)

type ctxKey struct{}

func Generate() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// New sets a per-request nonce and a Content-Security-Policy built around it.
func New(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			n, err := Generate()
			if err != nil {
				log.Error("failed to generate nonce", sl.Err(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			csp := fmt.Sprintf("default-src 'self'; style-src 'self' 'nonce-%s'; img-src 'self' https://picsum.photos https://fastly.picsum.photos data:; form-action 'self'; frame-ancestors 'none'", n)
			w.Header().Set("Content-Security-Policy", csp)

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, n)))
		}

		return http.HandlerFunc(fn)
	}
}

func FromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return v
	}
	return ""
}
