package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	authservice "github.com/goserg/engelserver/auth/service"
	authsqlite "github.com/goserg/engelserver/auth/storage/sqlite"
	"github.com/goserg/engelserver/internal/audit"
	"github.com/goserg/engelserver/internal/cache/mem"
	"github.com/goserg/engelserver/internal/config"
	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/mail"
	"github.com/goserg/engelserver/internal/membership"
	"github.com/goserg/engelserver/internal/render"
	"github.com/goserg/engelserver/internal/settings"
	"github.com/goserg/engelserver/internal/storage/sqlite"
	"github.com/goserg/engelserver/internal/web/webpath"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type WebSuite struct {
	suite.Suite
	server *Server
	runner domain.AngelType
}

func TestWeb(t *testing.T) {
	suite.Run(t, &WebSuite{})
}

func (s *WebSuite) SetupTest() {
	ctx := context.Background()
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)

	cfg := config.Config{
		Auth: config.Auth{
			Token:             "secret",
			Expiration:        "1h",
			RootPassword:      "rootpass",
			MinPasswordLength: 6,
			DefaultRole:       "angel",
			Roles: []config.Role{
				{Name: "admin", Permissions: []string{membership.PermAdminUserAngelTypes, membership.PermAdminAngelTypes}},
			},
		},
		Themes:        []config.Theme{{Name: "light"}, {Name: "dark"}},
		Locales:       map[string]string{"en_US": "English", "de_DE": "Deutsch"},
		DefaultLocale: "en_US",
	}

	db, err := sqlite.Open(filepath.Join(s.T().TempDir(), "web.sqlite"))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })
	store := sqlite.New(l, db)

	auth, err := authservice.New(ctx, l, cfg, authsqlite.New(l, db), store)
	s.Require().NoError(err)
	engine, err := render.New(false)
	s.Require().NoError(err)

	angelTypes := mem.New(store)
	ms := membership.New(l, angelTypes, store, store, auth, mail.NewLog(l, engine), audit.New(l, store))
	s.Require().NoError(ms.EnsureAngelTypes(ctx, []domain.AngelType{{Name: "Runner", Restricted: true}}))
	list, err := ms.ListAngelTypes(ctx)
	s.Require().NoError(err)
	for _, at := range list {
		if at.Name == "Runner" {
			s.runner = at
		}
	}
	s.Require().NotZero(s.runner.ID, "Runner not seeded")

	s.server = New(l, cfg, engine, auth, ms, settings.New(l, cfg, store, auth))
}

// client keeps the cookies of one browser.
type client struct {
	s       *WebSuite
	cookies map[string]*http.Cookie
}

func (s *WebSuite) newClient() *client {
	return &client{s: s, cookies: make(map[string]*http.Cookie)}
}

func (c *client) do(method, target string, form url.Values) *http.Response {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	resp, err := c.s.server.app.Test(req, -1)
	c.s.Require().NoError(err)
	for _, cookie := range resp.Cookies() {
		if cookie.Value == "" || cookie.MaxAge < 0 {
			delete(c.cookies, cookie.Name)
			continue
		}
		c.cookies[cookie.Name] = cookie
	}
	return resp
}

func (c *client) get(target string) *http.Response {
	return c.do(http.MethodGet, target, nil)
}

func (c *client) post(target string, form url.Values) *http.Response {
	return c.do(http.MethodPost, target, form)
}

func (c *client) body(resp *http.Response) string {
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	c.s.Require().NoError(err)
	return string(b)
}

// follow asserts a redirect to location and returns the page it points at.
func (c *client) follow(resp *http.Response, location string) string {
	c.s.Require().Equal(http.StatusFound, resp.StatusCode)
	c.s.Require().Equal(location, resp.Header.Get("Location"))
	page := c.get(location)
	c.s.Require().Equal(http.StatusOK, page.StatusCode)
	return c.body(page)
}

func (c *client) signUpAndIn(name string) {
	resp := c.post(webpath.Signup, url.Values{
		"username":        {name},
		"email":           {name + "@example.com"},
		"password":        {"secret1"},
		"password-repeat": {"secret1"},
	})
	c.s.Contains(c.follow(resp, webpath.Signin), "Registration successful.")
	c.signIn(name, "secret1")
}

func (c *client) signIn(name, password string) {
	resp := c.post(webpath.Signin, url.Values{"username": {name}, "password": {password}})
	c.s.Require().Equal(http.StatusFound, resp.StatusCode)
	c.s.Require().Equal(webpath.AngelTypes, resp.Header.Get("Location"))
	c.s.Require().Contains(c.cookies, tokenCookie)
}

func (s *WebSuite) userAngelTypes(query string) string {
	return webpath.UserAngelTypes + "?" + query
}

func (s *WebSuite) TestHomeRedirects() {
	resp := s.newClient().get(webpath.Home)
	s.Equal(http.StatusFound, resp.StatusCode)
	s.Equal(webpath.AngelTypes, resp.Header.Get("Location"))
}

func (s *WebSuite) TestAnonymousIsSentToSignIn() {
	c := s.newClient()
	for _, target := range []string{webpath.SettingsProfile, s.userAngelTypes("action=add&angeltype_id=1")} {
		resp := c.get(target)
		s.Equal(http.StatusFound, resp.StatusCode, target)
		s.Equal(webpath.Signin, resp.Header.Get("Location"), target)
	}
}

func (s *WebSuite) TestSignInFailure() {
	c := s.newClient()
	resp := c.post(webpath.Signin, url.Values{"username": {"root"}, "password": {"wrong"}})
	s.Contains(c.follow(resp, webpath.Signin), "No user was found with that nick or the password is wrong.")
	s.NotContains(c.cookies, tokenCookie)
}

func (s *WebSuite) TestSignUpValidation() {
	c := s.newClient()
	resp := c.post(webpath.Signup, url.Values{"username": {"1x"}, "email": {"x@example.com"}, "password": {"abc"}, "password-repeat": {"abd"}})
	page := c.follow(resp, webpath.Signup)
	s.Contains(page, "Your nick must start with a latin letter")
	s.Contains(page, "match.")
}

func (s *WebSuite) TestAngelTypePages() {
	c := s.newClient()
	resp := c.get(webpath.AngelTypes)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(c.body(resp), "Runner")

	resp = c.get(angelTypePath(s.runner.ID))
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = c.get(angelTypePath(404))
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Contains(c.body(resp), "The page you requested could not be found.")
}

func (s *WebSuite) TestUnknownActionRedirects() {
	c := s.newClient()
	c.signUpAndIn("alice")
	for _, query := range []string{"", "action=Delete", "action=nope"} {
		resp := c.get(s.userAngelTypes(query))
		s.Equal(http.StatusFound, resp.StatusCode, query)
		s.Equal(webpath.AngelTypes, resp.Header.Get("Location"), query)
	}
}

func (s *WebSuite) TestJoinAndConfirmAll() {
	alice := s.newClient()
	alice.signUpAndIn("alice")
	join := s.userAngelTypes("action=add&angeltype_id=" + strconv.Itoa(s.runner.ID))

	resp := alice.get(join)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(alice.body(resp), "Do you want to become a Runner?")

	resp = alice.post(join, url.Values{"submit": {"1"}})
	s.Contains(alice.follow(resp, angelTypePath(s.runner.ID)), "You joined Runner.")

	resp = alice.post(join, url.Values{"submit": {"1"}})
	s.Contains(alice.follow(resp, webpath.AngelTypes), "You are already a Runner.")

	confirmAll := s.userAngelTypes("action=confirm_all&angeltype_id=" + strconv.Itoa(s.runner.ID))
	resp = alice.post(confirmAll, url.Values{"confirm_all": {"1"}})
	s.Contains(alice.follow(resp, webpath.AngelTypes), "You are not allowed to confirm all users for this angeltype.")

	root := s.newClient()
	root.signIn("root", "rootpass")

	resp = root.get(confirmAll)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(root.body(resp), "Do you really want to confirm all users for Runner?")

	// Without the submit field the form is shown again.
	resp = root.post(confirmAll, url.Values{})
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = root.post(confirmAll, url.Values{"confirm_all": {"1"}})
	page := root.follow(resp, angelTypePath(s.runner.ID))
	s.Contains(page, "Confirmed all users for angeltype Runner.")
	s.NotContains(page, "unconfirmed")
}

func (s *WebSuite) TestSettingsTheme() {
	c := s.newClient()
	c.signUpAndIn("alice")

	resp := c.post(webpath.SettingsTheme, url.Values{"select_theme": {"2"}})
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp = c.post(webpath.SettingsTheme, url.Values{})
	s.Contains(c.follow(resp, webpath.SettingsTheme), "Please select a theme.")

	resp = c.post(webpath.SettingsTheme, url.Values{"select_theme": {"1"}})
	page := c.follow(resp, webpath.SettingsTheme)
	s.Contains(page, "Theme changed successfully.")
	s.Contains(page, `data-theme="dark"`)
}

func (s *WebSuite) TestSettingsLanguageSwitchesSession() {
	c := s.newClient()
	c.signUpAndIn("alice")

	resp := c.post(webpath.SettingsLanguage, url.Values{"select_language": {"fr_FR"}})
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp = c.post(webpath.SettingsLanguage, url.Values{"select_language": {"de_DE"}})
	page := c.follow(resp, webpath.SettingsLanguage)
	s.Contains(page, "Sprache geändert.")
	s.Contains(page, `lang="de_DE"`)
}

func (s *WebSuite) TestSettingsPassword() {
	c := s.newClient()
	c.signUpAndIn("alice")

	resp := c.post(webpath.SettingsPassword, url.Values{
		"password": {"secret1"}, "new_password": {"secret2"}, "new_password2": {"secret3"},
	})
	s.Contains(c.follow(resp, webpath.SettingsPassword), "match.")

	resp = c.post(webpath.SettingsPassword, url.Values{
		"password": {"secret1"}, "new_password": {"secret2"}, "new_password2": {"secret2"},
	})
	s.Contains(c.follow(resp, webpath.SettingsPassword), "Password saved.")

	other := s.newClient()
	other.signIn("alice", "secret2")
}

func (s *WebSuite) TestSettingsOAuthWithoutProviders() {
	c := s.newClient()
	c.signUpAndIn("alice")
	resp := c.get(webpath.SettingsOAuth)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *WebSuite) TestSignOut() {
	c := s.newClient()
	c.signUpAndIn("alice")
	resp := c.get(webpath.Signout)
	s.Equal(http.StatusFound, resp.StatusCode)
	s.NotContains(c.cookies, tokenCookie)

	resp = c.get(webpath.SettingsProfile)
	s.Equal(webpath.Signin, resp.Header.Get("Location"))
}
