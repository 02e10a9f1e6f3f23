package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// identity is the authenticated user resolved by the Auth middleware.
type identity struct {
	ID    string
	Email string
	Name  string
}

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a missing user id means the middleware
// did not run (or the token carried no subject), so the operation must not
// proceed against owned data.
func ctxIdentity(c echo.Context) (identity, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ := c.Get("email").(string)
	name, _ := c.Get("name").(string)
	return identity{ID: id, Email: email, Name: name}, nil
}
