package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"servicehub/config"
	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

const principalKey = "principal"

var sessionCookieNames = map[entity.Role]string{
	entity.RoleConsumer:        "consumerToken",
	entity.RoleServiceProvider: "serviceProviderToken",
	entity.RoleAdmin:           "adminToken",
}

// SessionCookieName returns the cookie that carries the role's session token.
func SessionCookieName(role entity.Role) string {
	return sessionCookieNames[role]
}

// AuthMiddleware authenticates requests from the role's session cookie.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
	session   *config.SessionConfig
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accountUC usecase.AccountUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{accountUC: accountUC, session: cfg.Session}
}

// RequireRole rejects requests without a valid, unrevoked session cookie of the role
// and stores the principal for handlers.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	cookieName := SessionCookieName(role)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return domainerrors.ErrUnauthorized.WithDetails("missing " + cookieName + " cookie")
			}

			principal, err := m.accountUC.Authenticate(c.Request().Context(), role, cookie.Value)
			if err != nil {
				return err
			}

			c.Set(principalKey, *principal)

			accountAttr := slog.String("account_id", principal.ID.String())
			roleAttr := slog.String("role", principal.Role.String())
			slogecho.AddCustomAttributes(c, accountAttr)
			slogecho.AddCustomAttributes(c, roleAttr)

			ctx := deliverycontext.WithLogAttrs(c.Request().Context(), nil, accountAttr, roleAttr)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// SetSessionCookie writes the role's session cookie.
func (m *AuthMiddleware) SetSessionCookie(c echo.Context, role entity.Role, token string, expiresAt time.Time) {
	c.SetCookie(m.newCookie(role, token, expiresAt))
}

// ClearSessionCookie expires the role's session cookie.
func (m *AuthMiddleware) ClearSessionCookie(c echo.Context, role entity.Role) {
	cookie := m.newCookie(role, "", time.Unix(0, 0))
	cookie.MaxAge = -1
	c.SetCookie(cookie)
}

func (m *AuthMiddleware) newCookie(role entity.Role, value string, expiresAt time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     SessionCookieName(role),
		Value:    value,
		Path:     "/",
		Domain:   m.session.Domain,
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.session.Secure,
		SameSite: parseSameSite(m.session.SameSite),
	}
	if value != "" {
		cookie.MaxAge = int(time.Until(expiresAt).Seconds())
	}

	return cookie
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// PrincipalFrom returns the principal stored by RequireRole.
func PrincipalFrom(c echo.Context) (entity.Principal, error) {
	principal, ok := c.Get(principalKey).(entity.Principal)
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthorized
	}

	return principal, nil
}
