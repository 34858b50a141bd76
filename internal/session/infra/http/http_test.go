package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billup/billup-web/internal/pkg/auth"
	"github.com/billup/billup-web/internal/pkg/web"
	"github.com/billup/billup-web/internal/session/app/guard"
	"github.com/billup/billup-web/internal/session/app/service"
	"github.com/billup/billup-web/internal/session/app/session"
	"github.com/billup/billup-web/internal/session/app/token"
	sessionhttp "github.com/billup/billup-web/internal/session/infra/http"
	sessionjwt "github.com/billup/billup-web/internal/session/infra/jwt"
	pkghttp "github.com/billup/billup-web/pkg/http"
	"github.com/billup/billup-web/pkg/log"
	"github.com/billup/billup-web/pkg/observability"
	pkgtime "github.com/billup/billup-web/pkg/time"
)

type remoteAPI struct {
	loginResponse  map[string]string
	logoutStatus   int
	logoutCalls    atomic.Int32
	logoutBearer   atomic.Value
	registerStatus int
	registerBody   atomic.Value
}

func (a *remoteAPI) registered() map[string]string {
	body, _ := a.registerBody.Load().(map[string]string)
	return body
}

func (a *remoteAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/auth/login":
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "Secret1!" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(a.loginResponse)
	case "/auth/logout":
		a.logoutCalls.Add(1)
		a.logoutBearer.Store(r.Header.Get("Authorization"))
		w.WriteHeader(a.logoutStatus)
	case "/auth/register":
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		a.registerBody.Store(body)
		w.WriteHeader(a.registerStatus)
		if a.registerStatus >= http.StatusBadRequest {
			_, _ = w.Write([]byte(`{"detail":"Email already taken"}`))
		}
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type protectedPageStub struct {
	observer observability.Observer
}

func (protectedPageStub) Method() string { return http.MethodGet }
func (protectedPageStub) Path() string   { return "/bills" }
func (p protectedPageStub) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	principal, err := auth.CurrentPrincipal(r.Context())
	if err != nil {
		return err
	}
	bearer, _ := auth.BearerToken(r.Context())
	observedUser, _ := p.observer.UserID(r.Context())
	w.SetJSONBody(map[string]any{
		"userId":       principal.UserID,
		"roles":        principal.Roles,
		"hasBearer":    bearer != "",
		"observedUser": observedUser,
	})
	return nil
}

type testApp struct {
	server pkghttp.Server
	api    *remoteAPI
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	api := &remoteAPI{logoutStatus: http.StatusNoContent, registerStatus: http.StatusCreated}
	apiServer := httptest.NewServer(api)
	t.Cleanup(apiServer.Close)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	logger := log.New(log.LevelDisabled)
	codec := sessionjwt.NewCodec()
	validator := token.NewValidator(codec, pkgtime.NewClock())
	authAPI := sessionhttp.NewAuthAPI(pkghttp.NewClient(pkghttp.WithClientDestination("billup-api", apiServer.URL)))
	sessions := sessionhttp.NewSessionProvider(codec, validator, authAPI, logger)
	authentication := service.NewAuthentication(authAPI)
	observer := observability.New()
	guarded := sessionhttp.WithSessionGuard(sessions, guard.New(guard.DefaultPublicPaths()), observer)

	server := pkghttp.NewServer(pkghttp.DefaultServerAddress)
	server.Register(sessionhttp.NewHomeHandler(renderer), guarded)
	server.Register(sessionhttp.NewMainHandler(renderer), guarded)
	server.Register(sessionhttp.NewLoginPageHandler(renderer), guarded)
	server.Register(sessionhttp.NewLoginHandler(authentication, sessions, renderer), guarded)
	server.Register(sessionhttp.NewRegistrationPageHandler(renderer), guarded)
	server.Register(sessionhttp.NewRegistrationHandler(authentication, renderer), guarded)
	server.Register(sessionhttp.NewLogoutHandler(sessions), guarded)
	server.Register(protectedPageStub{observer: observer}, guarded)

	return &testApp{server: server, api: api}
}

func (a *testApp) do(method, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var r *http.Request
	if form != nil {
		r = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	for _, cookie := range cookies {
		r.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	a.server.ServeHTTP(rec, r)
	return rec
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return signed
}

func clientToken(t *testing.T, exp time.Time) string {
	return signToken(t, jwt.MapClaims{"userId": 42, "roles": []string{"CLIENT"}, "exp": exp.Unix()})
}

func sessionCookies(t *testing.T, accessToken string) []*http.Cookie {
	t.Helper()
	return []*http.Cookie{
		{Name: session.KeyAccessToken, Value: accessToken},
		{Name: session.KeyUserID, Value: "42"},
		{Name: session.KeyRoles, Value: url.QueryEscape(`["CLIENT"]`)},
	}
}

func setCookies(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	result := make(map[string]*http.Cookie)
	for _, cookie := range rec.Result().Cookies() {
		result[cookie.Name] = cookie
	}
	return result
}

func liveCookies(rec *httptest.ResponseRecorder) []*http.Cookie {
	var result []*http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge >= 0 {
			result = append(result, cookie)
		}
	}
	return result
}

func TestLogin_ValidCredentials(t *testing.T) {
	app := newTestApp(t)
	app.api.loginResponse = map[string]string{
		"access_token":  clientToken(t, time.Now().Add(time.Hour)),
		"refresh_token": "refresh",
	}

	rec := app.do(http.MethodPost, "/login", url.Values{"email": {"anna@example.com"}, "password": {"Secret1!"}}, nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, session.MainRoute, rec.Header().Get("Location"))
	written := setCookies(rec)
	assert.Equal(t, app.api.loginResponse["access_token"], written[session.KeyAccessToken].Value)
	assert.Equal(t, "42", written[session.KeyUserID].Value)
	assert.Equal(t, "refresh", written[session.KeyRefreshToken].Value)

	rec = app.do(http.MethodGet, "/bills", nil, liveCookies(rec))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":42,"roles":["CLIENT"],"hasBearer":true,"observedUser":"42"}`, rec.Body.String())
}

func TestLogin_BadCredentials(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/login", url.Values{"email": {"anna@example.com"}, "password": {"wrong"}}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bad credentials")
	assert.Contains(t, rec.Body.String(), "anna@example.com")
	assert.NotContains(t, setCookies(rec), session.KeyAccessToken)
}

func TestLogin_MalformedTokenFromAPI(t *testing.T) {
	app := newTestApp(t)
	app.api.loginResponse = map[string]string{"access_token": "not-a-jwt", "refresh_token": "refresh"}

	rec := app.do(http.MethodPost, "/login", url.Values{"email": {"anna@example.com"}, "password": {"Secret1!"}}, nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, session.LoginRoute, rec.Header().Get("Location"))
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_MalformedTokenFromAPIDropsExistingSession(t *testing.T) {
	app := newTestApp(t)
	app.api.loginResponse = map[string]string{"access_token": "not-a-jwt", "refresh_token": "refresh"}
	cookies := sessionCookies(t, clientToken(t, time.Now().Add(time.Hour)))

	rec := app.do(http.MethodPost, "/login", url.Values{"email": {"anna@example.com"}, "password": {"Secret1!"}}, cookies)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, session.LoginRoute, rec.Header().Get("Location"))
	for _, cookie := range rec.Result().Cookies() {
		assert.Equal(t, -1, cookie.MaxAge, cookie.Name)
		assert.Empty(t, cookie.Value, cookie.Name)
	}
	written := setCookies(rec)
	for _, key := range []string{session.KeyAccessToken, session.KeyUserID, session.KeyRoles} {
		require.Contains(t, written, key)
	}
	assert.NotContains(t, written, session.KeyRefreshToken)

	rec = app.do(http.MethodGet, "/bills", nil, liveCookies(rec))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, session.LoginRoute, rec.Header().Get("Location"))
}

func TestGuard_ProtectedPathWithoutSession(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/bills", nil, nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, session.LoginRoute, rec.Header().Get("Location"))
}

func TestGuard_PublicPathsWithoutSession(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/", "/login", "/registration"} {
		rec := app.do(http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGuard_ExpiredStoredToken(t *testing.T) {
	app := newTestApp(t)
	cookies := sessionCookies(t, clientToken(t, time.Now().Add(-10*time.Second)))

	rec := app.do(http.MethodGet, "/main", nil, cookies)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, session.LoginRoute, rec.Header().Get("Location"))
	written := setCookies(rec)
	for _, key := range []string{session.KeyAccessToken, session.KeyUserID, session.KeyRoles} {
		require.Contains(t, written, key)
		assert.Equal(t, -1, written[key].MaxAge, key)
	}
}

func TestGuard_ExpiredStoredTokenOnPublicPathClearsStorage(t *testing.T) {
	app := newTestApp(t)
	cookies := sessionCookies(t, clientToken(t, time.Now().Add(-10*time.Second)))

	rec := app.do(http.MethodGet, "/login", nil, cookies)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, -1, setCookies(rec)[session.KeyAccessToken].MaxAge)
}

func TestLogout(t *testing.T) {
	tests := []struct {
		name         string
		logoutStatus int
	}{
		{name: "remote logout succeeded", logoutStatus: http.StatusNoContent},
		{name: "remote logout failed", logoutStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			app.api.logoutStatus = tt.logoutStatus
			accessToken := clientToken(t, time.Now().Add(time.Hour))

			rec := app.do(http.MethodPost, "/logout", nil, sessionCookies(t, accessToken))

			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, session.LoginRoute, rec.Header().Get("Location"))
			assert.EqualValues(t, 1, app.api.logoutCalls.Load())
			assert.Equal(t, "Bearer "+accessToken, app.api.logoutBearer.Load())
			assert.Equal(t, -1, setCookies(rec)[session.KeyAccessToken].MaxAge)
		})
	}
}

func TestRegistration(t *testing.T) {
	form := url.Values{
		"name":             {"Anna"},
		"surname":          {"Nowak"},
		"residency":        {"Warsaw"},
		"email":            {"anna@example.com"},
		"phoneNumber":      {"+48123456789"},
		"role":             {"CLIENT"},
		"password":         {"Secret1!"},
		"repeatedPassword": {"Secret1!"},
	}

	t.Run("success", func(t *testing.T) {
		app := newTestApp(t)

		rec := app.do(http.MethodPost, "/registration", form, nil)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login?registered=true", rec.Header().Get("Location"))
		assert.Equal(t, "Warsaw", app.api.registered()["residency"])
		assert.Equal(t, "+48123456789", app.api.registered()["phoneNumber"])
	})

	t.Run("rejected by api", func(t *testing.T) {
		app := newTestApp(t)
		app.api.registerStatus = http.StatusConflict

		rec := app.do(http.MethodPost, "/registration", form, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email already taken")
	})

	t.Run("invalid form", func(t *testing.T) {
		app := newTestApp(t)
		invalid := url.Values{}
		for key, values := range form {
			invalid[key] = values
		}
		invalid.Set("repeatedPassword", "Other1!!")

		rec := app.do(http.MethodPost, "/registration", invalid, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Passwords do not match.")
	})

	t.Run("missing residency", func(t *testing.T) {
		app := newTestApp(t)
		invalid := url.Values{}
		for key, values := range form {
			invalid[key] = values
		}
		invalid.Del("residency")

		rec := app.do(http.MethodPost, "/registration", invalid, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Residency must be between 1 and 50 characters.")
		assert.Nil(t, app.api.registered())
	})
}
