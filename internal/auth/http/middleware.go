package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/moviecatalog/internal/auth/domain"
	authService "github.com/allisson/moviecatalog/internal/auth/service"
	apperrors "github.com/allisson/moviecatalog/internal/errors"
	"github.com/allisson/moviecatalog/internal/httputil"
	userDomain "github.com/allisson/moviecatalog/internal/user/domain"
)

// TokenDecoder verifies a bearer token and returns its claims.
type TokenDecoder interface {
	Decode(token string) (*authDomain.Claims, error)
}

// UserGetter resolves the user addressed by a /users/:id route.
type UserGetter interface {
	Get(ctx context.Context, id int64) (*userDomain.User, error)
}

// AuthenticationMiddleware verifies the bearer token in the Authorization header
// and stores its claims in the request context.
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer");
// a bare token is accepted as well.
//
// Error handling:
//   - Missing or empty token → 401 Unauthorized
//   - Invalid signature, malformed or expired token → 401 Unauthorized
func AuthenticationMiddleware(decoder TokenDecoder, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c, decoder)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))

		logger.Debug("authentication successful",
			slog.String("username", claims.Username),
			slog.String("role", string(claims.Role)))

		c.Next()
	}
}

// AdminOnlyMiddleware allows only tokens whose role is exactly "admin".
// MUST be used after AuthenticationMiddleware.
//
// Error handling:
//   - No claims in context → 401 Unauthorized
//   - Role other than admin → 403 Forbidden
func AdminOnlyMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c.Request.Context())
		if !ok {
			logger.Debug("authorization failed: no claims in context")
			httputil.HandleErrorGin(c, authDomain.ErrTokenMissing, logger)
			c.Abort()
			return
		}

		if !claims.IsAdmin() {
			logger.Debug("authorization failed: admin role required",
				slog.String("username", claims.Username),
				slog.String("role", string(claims.Role)))
			httputil.HandleErrorGin(c, authDomain.ErrAdminRequired, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

// SelfOrAdminMiddleware guards /users/:id routes. Admins may address any user;
// everyone else may only address their own record and may not assign a role
// other than "user". MUST be used after AuthenticationMiddleware.
//
// Error handling, in order:
//   - No claims in context → 401 Unauthorized
//   - Target user absent (or non-integer id) → 404 Not Found
//   - Token username differs from the target's → 403 Forbidden
//   - Non-GET request whose body sets role to anything but "user" → 403 Forbidden
func SelfOrAdminMiddleware(users UserGetter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c.Request.Context())
		if !ok {
			logger.Debug("authorization failed: no claims in context")
			httputil.HandleErrorGin(c, authDomain.ErrTokenMissing, logger)
			c.Abort()
			return
		}

		id, err := httputil.ParseIDParam(c, "id")
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		target, err := users.Get(c.Request.Context(), id)
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		if claims.IsAdmin() {
			c.Next()
			return
		}

		if claims.Username != target.Username {
			logger.Debug("authorization failed: not the owner",
				slog.String("username", claims.Username),
				slog.Int64("target_id", id))
			httputil.HandleErrorGin(c, authDomain.ErrNotOwner, logger)
			c.Abort()
			return
		}

		if c.Request.Method != http.MethodGet && requestsElevatedRole(c, true) {
			logger.Debug("authorization failed: role assignment by non-admin",
				slog.String("username", claims.Username))
			httputil.HandleErrorGin(c, authDomain.ErrRoleChangeForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RegistrationMiddleware keeps POST /users open for plain users while requiring
// an admin token to register any other role. An empty role means "user".
//
// Error handling (only when a non-user role is requested):
//   - Missing or invalid token → 401 Unauthorized
//   - Token role other than admin → 403 Forbidden
func RegistrationMiddleware(decoder TokenDecoder, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requestsElevatedRole(c, false) {
			c.Next()
			return
		}

		claims, err := authenticate(c, decoder)
		if err != nil {
			logger.Debug("registration of privileged role without valid token", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		if !claims.IsAdmin() {
			logger.Debug("registration of privileged role by non-admin", slog.String("username", claims.Username))
			httputil.HandleErrorGin(c, authDomain.ErrAdminRequired, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))
		c.Next()
	}
}

// authenticate extracts and decodes the bearer token of the request.
func authenticate(c *gin.Context, decoder TokenDecoder) (*authDomain.Claims, error) {
	token := authService.StripBearer(c.GetHeader("Authorization"))
	if token == "" {
		return nil, authDomain.ErrTokenMissing
	}

	claims, err := decoder.Decode(token)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUnauthorized) {
			return nil, err
		}
		return nil, authDomain.ErrTokenInvalid
	}
	return claims, nil
}

// requestsElevatedRole peeks at the JSON body and reports whether it carries a
// "role" other than "user". With strict set, any present role key that is not
// exactly "user" counts (including "" and null); otherwise empty and null are
// treated as "user". The body is restored for the handler; bodies that are not
// JSON objects are left for the handler to reject.
func requestsElevatedRole(c *gin.Context, strict bool) bool {
	if c.Request.Body == nil {
		return false
	}

	body, err := io.ReadAll(c.Request.Body)
	_ = c.Request.Body.Close()
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return false
	}

	// Struct decoding matches keys case-insensitively, exactly like the DTO
	// binding that runs after this guard.
	var fields struct {
		Role json.RawMessage `json:"role"`
	}
	if err := json.Unmarshal(body, &fields); err != nil {
		return false
	}

	raw := fields.Role
	if len(raw) == 0 {
		return false
	}

	var role *string
	if err := json.Unmarshal(raw, &role); err != nil {
		return true
	}

	if role == nil || *role == "" {
		return strict
	}
	return *role != string(userDomain.RoleUser)
}
