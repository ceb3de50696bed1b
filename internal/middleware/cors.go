package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

func AllowCors(handler http.Handler, allowOrigins []string) http.Handler {
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: allowOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization",
		},
		AllowCredentials: true,
	}).Handler(handler)
}
