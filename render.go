package folio

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/nikmish/folio/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// adminPage assembles the chrome shared by every admin view: the CSRF token
// and any flashes queued before the redirect that led here.
func (a *App) adminPage(c echo.Context) views.AdminPage {
	return views.AdminPage{
		CSRF:    CsrfToken(c),
		Flashes: popFlashes(c),
	}
}
