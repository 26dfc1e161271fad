package web

import (
	"errors"

	"github.com/goserg/engelserver/internal/i18n"
	"github.com/goserg/engelserver/internal/settings"
	"github.com/goserg/engelserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
)

// settingsSaved flashes the outcome of a settings form and returns to the
// page it came from.
func (s *Server) settingsSaved(ctx *fiber.Ctx, back string, notice settings.Notice, err error) error {
	locale := localeFrom(ctx)
	var (
		verr *settings.ValidationError
		ferr *settings.FormError
	)
	switch {
	case err == nil:
		return s.redirectWith(ctx, back, flashSuccess, i18n.T(locale, notice.Key))
	case errors.Is(err, settings.ErrNotFound):
		return fiber.ErrNotFound
	case errors.As(err, &verr):
		return s.redirectWith(ctx, back, flashError, messages(locale, verr)...)
	case errors.As(err, &ferr):
		return s.redirectWith(ctx, back, flashError, i18n.T(locale, ferr.Key))
	}
	return err
}

func (s *Server) handleProfile(ctx *fiber.Ctx) error {
	d, err := s.newData(ctx, "settings.profile")
	if err != nil {
		return err
	}
	return s.render(ctx, "settings/profile", d.With("View", s.settings.Profile(userFrom(ctx))))
}

func checked(ctx *fiber.Ctx, key string) bool {
	return ctx.FormValue(key) != ""
}

func (s *Server) handleSaveProfile(ctx *fiber.Ctx) error {
	notice, err := s.settings.SaveProfile(ctx.UserContext(), userFrom(ctx), settings.ProfileInput{
		Pronoun:              ctx.FormValue("pronoun"),
		FirstName:            ctx.FormValue("first_name"),
		LastName:             ctx.FormValue("last_name"),
		PlannedArrivalDate:   ctx.FormValue("planned_arrival_date"),
		PlannedDepartureDate: ctx.FormValue("planned_departure_date"),
		DECT:                 ctx.FormValue("dect"),
		Mobile:               ctx.FormValue("mobile"),
		MobileShow:           checked(ctx, "mobile_show"),
		Email:                ctx.FormValue("email"),
		EmailShiftinfo:       checked(ctx, "email_shiftinfo"),
		EmailNews:            checked(ctx, "email_news"),
		EmailHuman:           checked(ctx, "email_human"),
		EmailGoody:           checked(ctx, "email_goody"),
		ShirtSize:            ctx.FormValue("shirt_size"),
	})
	return s.settingsSaved(ctx, webpath.SettingsProfile, notice, err)
}

func (s *Server) handlePassword(ctx *fiber.Ctx) error {
	view, err := s.settings.Password(ctx.UserContext(), userFrom(ctx))
	if err != nil {
		return err
	}
	d, err := s.newData(ctx, "settings.password")
	if err != nil {
		return err
	}
	return s.render(ctx, "settings/password", d.With("View", view))
}

func (s *Server) handleSavePassword(ctx *fiber.Ctx) error {
	notice, err := s.settings.SavePassword(ctx.UserContext(), userFrom(ctx), settings.PasswordInput{
		Password:     ctx.FormValue("password"),
		NewPassword:  ctx.FormValue("new_password"),
		NewPassword2: ctx.FormValue("new_password2"),
	})
	return s.settingsSaved(ctx, webpath.SettingsPassword, notice, err)
}

func (s *Server) handleTheme(ctx *fiber.Ctx) error {
	d, err := s.newData(ctx, "settings.theme")
	if err != nil {
		return err
	}
	return s.render(ctx, "settings/theme", d.With("View", s.settings.Theme(userFrom(ctx))))
}

func (s *Server) handleSaveTheme(ctx *fiber.Ctx) error {
	notice, err := s.settings.SaveTheme(ctx.UserContext(), userFrom(ctx), ctx.FormValue("select_theme"))
	return s.settingsSaved(ctx, webpath.SettingsTheme, notice, err)
}

func (s *Server) handleLanguage(ctx *fiber.Ctx) error {
	d, err := s.newData(ctx, "settings.language")
	if err != nil {
		return err
	}
	view := s.settings.Language(userFrom(ctx))
	view.Current = localeFrom(ctx)
	return s.render(ctx, "settings/language", d.With("View", view))
}

func (s *Server) handleSaveLanguage(ctx *fiber.Ctx) error {
	notice, locale, err := s.settings.SaveLanguage(ctx.UserContext(), userFrom(ctx), ctx.FormValue("select_language"))
	if err == nil {
		setLocale(ctx, locale)
	}
	return s.settingsSaved(ctx, webpath.SettingsLanguage, notice, err)
}

func (s *Server) handleOAuth(ctx *fiber.Ctx) error {
	view, err := s.settings.OAuth(ctx.UserContext(), userFrom(ctx))
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	d, err := s.newData(ctx, "settings.oauth")
	if err != nil {
		return err
	}
	return s.render(ctx, "settings/oauth", d.With("View", view))
}
