package v1handler

import (
	"context"
	"converter/internal/config"
	"converter/pkg/domain"
	"converter/pkg/serrors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-faster/jx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// CtxKey is the type of context keys set by this package.
type CtxKey string

// ClientIDKey holds the authenticated domain.ClientID.
const ClientIDKey CtxKey = "ClientID"

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
	// Clock is used for expiry checks. Defaults to the real clock.
	Clock clockwork.Clock
}

// NewSecHandlerOptions reads the JWT section of cfg.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates clients with RS256 signed JWTs whose subject is
// the client id.
type SecHandler struct {
	parser *jwt.Parser
	key    any
}

// NewSecHandler parses the public key and builds the token parser.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithTimeFunc(clock.Now),
			jwt.WithExpirationRequired(),
		),
		key: key,
	}, nil
}

// HandleBearerAuth verifies token and stores the client id in the returned
// context.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, ClientIDKey, domain.ClientID(id)), nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" header.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeUnauthorized(w, "missing bearer token")

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			writeUnauthorized(w, "invalid token")

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientIDFromContext returns the authenticated client, or the zero id.
func GetClientIDFromContext(ctx context.Context) domain.ClientID {
	id, _ := ctx.Value(ClientIDKey).(domain.ClientID)

	return id
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="converter"`)
	writeJSON(w, http.StatusUnauthorized, func(e *jx.Encoder) {
		encodeError(e, ErrorResponse{Code: serrors.ErrUnauthorized.Error(), Message: msg})
	})
}
