package handler

import (
	"encoding/json"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// roleFieldPrefixes are the key prefixes role-scoped clients send, as in consumerEmail or
// serviceProviderWorkingHours.
var roleFieldPrefixes = map[entity.Role]string{
	entity.RoleConsumer:        "consumer",
	entity.RoleServiceProvider: "serviceProvider",
	entity.RoleAdmin:           "admin",
}

// roleFieldAliases maps the remaining legacy names onto the request struct tags.
var roleFieldAliases = map[string]string{
	"fullName":    "name",
	"phoneNumber": "phone",
	"newPassword": "password",
}

// roleField returns the canonical request key for key. Unprefixed keys pass through.
func roleField(role entity.Role, key string) string {
	if prefix := roleFieldPrefixes[role]; prefix != "" && len(key) > len(prefix) && strings.HasPrefix(key, prefix) {
		rest := key[len(prefix):]
		if r, size := utf8.DecodeRuneInString(rest); unicode.IsUpper(r) {
			key = string(unicode.ToLower(r)) + rest[size:]
		}
	}
	if alias, ok := roleFieldAliases[key]; ok {
		return alias
	}

	return key
}

// bindRoleAndValidate decodes a JSON body that may use role-prefixed keys into dst and
// validates it. A canonical key wins over a prefixed one carrying the same field.
func bindRoleAndValidate(c echo.Context, role entity.Role, dst any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
	}

	fields := map[string]json.RawMessage{}
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &fields); err != nil {
			return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
		}
	}

	canonical := make(map[string]json.RawMessage, len(fields))
	for key, value := range fields {
		name := roleField(role, key)
		if _, taken := canonical[name]; taken && name != key {
			continue
		}
		canonical[name] = value
	}

	normalized, err := json.Marshal(canonical)
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
	}
	if err := json.Unmarshal(normalized, dst); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
	}

	return c.Validate(dst)
}

// formValue returns the first non-empty form field among names.
func formValue(c echo.Context, names ...string) string {
	for _, name := range names {
		if value := c.FormValue(name); value != "" {
			return value
		}
	}

	return ""
}

// roleFormValue reads a form field by its canonical name, falling back to the prefixed one.
func roleFormValue(c echo.Context, role entity.Role, name, legacy string) string {
	return formValue(c, name, roleFieldPrefixes[role]+legacy)
}
