package web

import (
	"errors"

	authservice "github.com/goserg/engelserver/auth/service"
	"github.com/goserg/engelserver/internal/i18n"
	"github.com/goserg/engelserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) HandleGetSignIn(ctx *fiber.Ctx) error {
	d, err := s.newData(ctx, "nav.signin")
	if err != nil {
		return err
	}
	return s.render(ctx, "signin", d)
}

func (s *Server) HandlePostSignIn(ctx *fiber.Ctx) error {
	locale := localeFrom(ctx)
	req, err := parseSignInRequest(ctx)
	if err != nil {
		return s.redirectWith(ctx, webpath.Signin, flashError, messages(locale, err)...)
	}
	user, err := s.auth.Login(ctx.UserContext(), req.name, req.password)
	if err != nil {
		if errors.Is(err, authservice.ErrNotAuthorized) {
			return s.redirectWith(ctx, webpath.Signin, flashError, i18n.T(locale, "auth.login.error"))
		}
		return err
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID, s.cfg.Server.CookieDomain)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	if _, ok := s.cfg.Locales[user.Settings.Language]; ok {
		setLocale(ctx, user.Settings.Language)
	}
	return ctx.Redirect(webpath.AngelTypes)
}

func (s *Server) HandleGetSignup(ctx *fiber.Ctx) error {
	d, err := s.newData(ctx, "nav.signup")
	if err != nil {
		return err
	}
	return s.render(ctx, "signup", d.With("MinLength", s.cfg.Auth.MinPasswordLength))
}

func (s *Server) HandlePostSignup(ctx *fiber.Ctx) error {
	locale := localeFrom(ctx)
	req, err := parseSignUpRequest(ctx)
	if err != nil {
		return s.redirectWith(ctx, webpath.Signup, flashError, messages(locale, err)...)
	}
	_, err = s.auth.SignUp(ctx.UserContext(), req.name, req.email, req.password)
	switch {
	case errors.Is(err, authservice.ErrUserExists):
		return s.redirectWith(ctx, webpath.Signup, flashError, i18n.T(locale, "auth.signup.exists"))
	case errors.Is(err, authservice.ErrPasswordTooShort):
		return s.redirectWith(ctx, webpath.Signup, flashError,
			i18n.T(locale, "auth.signup.short", s.cfg.Auth.MinPasswordLength))
	case err != nil:
		return err
	}
	return s.redirectWith(ctx, webpath.Signin, flashSuccess, i18n.T(locale, "auth.signup.success"))
}

func (s *Server) HandleSignOut(ctx *fiber.Ctx) error {
	ctx.ClearCookie(tokenCookie)
	sessionFrom(ctx).Delete(localeKey)
	return ctx.Redirect(webpath.Signin)
}
