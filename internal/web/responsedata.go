package web

import (
	"errors"

	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/i18n"
	"github.com/goserg/engelserver/internal/membership"
	"github.com/goserg/engelserver/internal/settings"
	"github.com/goserg/engelserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
)

type data struct {
	Title   string
	Path    map[string]string
	User    domain.User
	Locale  string
	Theme   string
	Flashes []flash
	Hint    membership.Hint
	Data    map[string]any
}

// newData collects what the layout needs and takes the pending flashes out
// of the session.
func (s *Server) newData(c *fiber.Ctx, titleKey string, titleArgs ...interface{}) (data, error) {
	user := userFrom(c)
	locale := localeFrom(c)
	flashes, err := s.popFlashes(c)
	if err != nil {
		return data{}, err
	}
	hint, err := s.membership.UnconfirmedHint(c.UserContext(), user)
	if err != nil {
		return data{}, err
	}
	return data{
		Title:   i18n.T(locale, titleKey, titleArgs...),
		Path:    webpath.Path(),
		User:    user,
		Locale:  locale,
		Theme:   s.themeName(user),
		Flashes: flashes,
		Hint:    hint,
		Data:    make(map[string]any),
	}, nil
}

func (m data) With(key string, value any) data {
	if m.Data == nil {
		m.Data = make(map[string]any)
	}
	m.Data[key] = value
	return m
}

func (s *Server) render(c *fiber.Ctx, view string, d data) error {
	return c.Render(view, d, "layouts/main")
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

// messages translates every error in err. Field errors carry their own
// message key, any other error is shown as is.
func messages(locale string, err error) []string {
	var msgs []string
	for _, err := range unwrap(err) {
		var ferr settings.FieldError
		if errors.As(err, &ferr) {
			msgs = append(msgs, i18n.T(locale, ferr.Key, ferr.Args...))
			continue
		}
		msgs = append(msgs, i18n.T(locale, err.Error()))
	}
	return msgs
}
