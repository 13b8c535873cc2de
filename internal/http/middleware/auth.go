package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/user"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/response"
	"github.com/Fortis-Ledger/Career-Portal/internal/security"
)

type contextKey string

const ContextIdentityKey contextKey = "identity"

// Identity is the authenticated caller: id plus email. Whether the
// email grants admin access is decided per operation by the services'
// AdminPolicy, not here.
type Identity struct {
	UserID common.UUID
	Email  string
}

// IdentityMirror records authenticated callers in local storage so
// admin listings see every user that has presented a valid token.
type IdentityMirror interface {
	Ensure(ctx context.Context, userID common.UUID, email string) (*user.User, error)
}

type AuthMiddleware struct {
	jwt    *security.JWTProvider
	mirror IdentityMirror
	logger zerolog.Logger
}

func NewAuthMiddleware(jwt *security.JWTProvider, mirror IdentityMirror, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt, mirror: mirror, logger: logger}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "missing authorization header", nil))
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil))
			return
		}
		claims, err := m.jwt.Parse(parts[1])
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid token", err))
			return
		}
		userID, err := common.ParseUUID(claims.Subject)
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid user id", err))
			return
		}
		identity := Identity{UserID: userID, Email: claims.Email}
		if m.mirror != nil {
			if _, err := m.mirror.Ensure(r.Context(), identity.UserID, identity.Email); err != nil {
				m.logger.Warn().Err(err).Str("user_id", identity.UserID.String()).Msg("failed to mirror user")
			}
		}
		ctx := context.WithValue(r.Context(), ContextIdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(ContextIdentityKey).(Identity)
	return identity, ok
}
