package web

import (
	"errors"
	"strconv"
	"time"

	authservice "github.com/goserg/engelserver/auth/service"
	"github.com/goserg/engelserver/internal/config"
	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/i18n"
	"github.com/goserg/engelserver/internal/membership"
	"github.com/goserg/engelserver/internal/settings"
	"github.com/goserg/engelserver/internal/web/middleware"
	"github.com/goserg/engelserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

const (
	userKey     = "user"
	localeKey   = "locale"
	sessionKey  = "session"
	tokenCookie = "token"
)

type Server struct {
	auth       *authservice.Service
	membership *membership.Service
	settings   *settings.Service
	sessions   *session.Store
	app        *fiber.App
	cfg        config.Config
	log        *logrus.Entry
}

func New(
	l *logrus.Logger,
	cfg config.Config,
	views fiber.Views,
	authService *authservice.Service,
	membershipService *membership.Service,
	settingsService *settings.Service,
) *Server {
	server := Server{
		auth:       authService,
		membership: membershipService,
		settings:   settingsService,
		cfg:        cfg,
		log:        l.WithField("from", "web"),
		sessions: session.New(session.Config{
			Expiration:     24 * time.Hour,
			KeyLookup:      "cookie:session_id",
			CookieSecure:   cfg.Server.TLS,
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		}),
	}

	app := fiber.New(fiber.Config{
		Views:        views,
		ErrorHandler: server.handleError,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(server.log))
	app.Use(server.authenticate)

	app.Get(webpath.Signin, server.HandleGetSignIn)
	app.Post(webpath.Signin, server.HandlePostSignIn)
	app.Get(webpath.Signup, server.HandleGetSignup)
	app.Post(webpath.Signup, server.HandlePostSignup)
	app.Get(webpath.Signout, server.HandleSignOut)
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.AngelTypes)
	})

	app.Get(webpath.AngelTypes, server.handleAngelTypes)
	app.Get(webpath.AngelType, server.handleAngelType)

	app.Use(webpath.UserAngelTypes, server.requireUser)
	app.Get(webpath.UserAngelTypes, server.handleUserAngelTypes)
	app.Post(webpath.UserAngelTypes, server.handleUserAngelTypes)

	app.Use(webpath.Settings, server.requireUser)
	app.Get(webpath.Settings, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.SettingsProfile)
	})
	app.Get(webpath.SettingsProfile, server.handleProfile)
	app.Post(webpath.SettingsProfile, server.handleSaveProfile)
	app.Get(webpath.SettingsPassword, server.handlePassword)
	app.Post(webpath.SettingsPassword, server.handleSavePassword)
	app.Get(webpath.SettingsLanguage, server.handleLanguage)
	app.Post(webpath.SettingsLanguage, server.handleSaveLanguage)
	app.Get(webpath.SettingsTheme, server.handleTheme)
	app.Post(webpath.SettingsTheme, server.handleSaveTheme)
	app.Get(webpath.SettingsOAuth, server.handleOAuth)
	server.app = app
	return &server
}

func (s *Server) Serve() error {
	addr := s.cfg.Server.Host + ":" + strconv.Itoa(s.cfg.Server.Port)
	if s.cfg.Server.TLS {
		return s.app.ListenTLS(addr, s.cfg.Server.CertFile, s.cfg.Server.KeyFile)
	}
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// authenticate resolves the token cookie. A broken token is dropped and the
// request continues anonymously.
func (s *Server) authenticate(c *fiber.Ctx) error {
	user, err := s.auth.Auth(c.UserContext(), c.Cookies(tokenCookie))
	if err != nil {
		if !errors.Is(err, authservice.ErrNotAuthorized) {
			return err
		}
		c.ClearCookie(tokenCookie)
	}
	c.Locals(userKey, user)

	sess, err := s.sessions.Get(c)
	if err != nil {
		return err
	}
	c.Locals(sessionKey, sess)
	locale, _ := sess.Get(localeKey).(string)
	if _, ok := s.cfg.Locales[locale]; !ok {
		locale = user.Settings.Language
	}
	if _, ok := s.cfg.Locales[locale]; !ok {
		locale = s.cfg.DefaultLocale
	}
	c.Locals(localeKey, locale)

	// The session is released by Save and must not be touched afterwards.
	err = c.Next()
	return errors.Join(err, sess.Save())
}

func (s *Server) requireUser(c *fiber.Ctx) error {
	if userFrom(c).IsZero() {
		return c.Redirect(webpath.Signin)
	}
	return c.Next()
}

func userFrom(c *fiber.Ctx) domain.User {
	user, _ := c.Locals(userKey).(domain.User)
	return user
}

func sessionFrom(c *fiber.Ctx) *session.Session {
	return c.Locals(sessionKey).(*session.Session)
}

// setLocale switches the locale of the session and of the current request.
func setLocale(c *fiber.Ctx, locale string) {
	sessionFrom(c).Set(localeKey, locale)
	c.Locals(localeKey, locale)
}

func localeFrom(c *fiber.Ctx) string {
	locale, _ := c.Locals(localeKey).(string)
	return locale
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code = ferr.Code
	}
	key := "error.internal"
	if code == fiber.StatusNotFound {
		key = "error.not_found"
	} else {
		s.log.WithError(err).WithField("path", c.OriginalURL()).Error("request failed")
	}

	locale := localeFrom(c)
	if locale == "" {
		locale = s.cfg.DefaultLocale
	}
	c.Status(code)
	renderErr := c.Render("error", data{
		Title:  i18n.T(locale, key),
		Path:   webpath.Path(),
		User:   userFrom(c),
		Locale: locale,
		Theme:  s.themeName(userFrom(c)),
	}, "layouts/main")
	if renderErr != nil {
		return c.SendString(i18n.T(locale, key))
	}
	return nil
}

func (s *Server) themeName(user domain.User) string {
	theme := s.cfg.DefaultTheme
	if !user.IsZero() {
		theme = user.Settings.Theme
	}
	if theme < 0 || theme >= len(s.cfg.Themes) {
		return ""
	}
	return s.cfg.Themes[theme].Name
}
