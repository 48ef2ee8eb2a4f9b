package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artvault/internal/common"
)

func runSession(t *testing.T, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := Session()(func(c echo.Context) error {
		id, ok := common.GetSessionIDFromContext(c.Request().Context())
		require.True(t, ok)
		seen = id
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return seen, rec
}

func TestSession_IssuesCookieForNewVisitor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)

	sessionID, rec := runSession(t, req)
	_, err := uuid.Parse(sessionID)
	assert.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "artvault_session", cookies[0].Name)
	assert.Equal(t, sessionID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSession_ReusesValidCookie(t *testing.T) {
	existing := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: "artvault_session", Value: existing})

	sessionID, rec := runSession(t, req)
	assert.Equal(t, existing, sessionID)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSession_ReplacesMalformedCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: "artvault_session", Value: "not-a-uuid"})

	sessionID, rec := runSession(t, req)
	assert.NotEqual(t, "not-a-uuid", sessionID)
	_, err := uuid.Parse(sessionID)
	assert.NoError(t, err)
	require.Len(t, rec.Result().Cookies(), 1)
}
