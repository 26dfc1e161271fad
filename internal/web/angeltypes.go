package web

import (
	"errors"
	"strconv"

	"github.com/goserg/engelserver/internal/i18n"
	"github.com/goserg/engelserver/internal/membership"
	"github.com/goserg/engelserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
)

func angelTypePath(id int) string {
	return webpath.AngelTypes + "/" + strconv.Itoa(id)
}

func (s *Server) handleAngelTypes(ctx *fiber.Ctx) error {
	angelTypes, err := s.membership.ListAngelTypes(ctx.UserContext())
	if err != nil {
		return err
	}
	d, err := s.newData(ctx, "angeltypes.title")
	if err != nil {
		return err
	}
	return s.render(ctx, "angeltypes/list", d.With("AngelTypes", angelTypes))
}

func (s *Server) handleAngelType(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}
	page, err := s.membership.AngelTypePage(ctx.UserContext(), userFrom(ctx), id)
	if err != nil {
		var merr *membership.Error
		if errors.As(err, &merr) && merr.Kind == membership.KindNotFound {
			return fiber.ErrNotFound
		}
		return err
	}
	d, err := s.newData(ctx, "angeltypes.title")
	if err != nil {
		return err
	}
	d.Title = page.AngelType.Name
	return s.render(ctx, "angeltypes/view", d.With("Page", page))
}

// membershipFailed flashes a user facing membership error and returns to the
// angel type list. Other errors go to the error handler.
func (s *Server) membershipFailed(ctx *fiber.Ctx, err error) error {
	var merr *membership.Error
	if !errors.As(err, &merr) {
		return err
	}
	return s.redirectWith(ctx, webpath.AngelTypes, flashError, i18n.T(localeFrom(ctx), merr.Key, merr.Args...))
}

func (s *Server) applied(ctx *fiber.Ctx, res membership.Result, err error) error {
	if err != nil {
		return s.membershipFailed(ctx, err)
	}
	msg := i18n.T(localeFrom(ctx), res.Notice.Key, res.Notice.Args...)
	return s.redirectWith(ctx, angelTypePath(res.AngelTypeID), flashSuccess, msg)
}
