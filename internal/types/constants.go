package types

import (
	"os"
	"strings"
)

// ContextUserKey is where the auth middleware stores the authenticated
// identity for downstream handlers.
const ContextUserKey = "user"

// AllowedOrigins feeds the CORS config: the local dev hosts plus anything
// from CLIENT_URL or the comma-separated ALLOWED_ORIGINS variable.
var AllowedOrigins = buildAllowedOrigins()

func buildAllowedOrigins() []string {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:5000",
		"http://localhost:5173",
	}

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
