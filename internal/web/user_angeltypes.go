package web

import (
	"strconv"

	"github.com/goserg/engelserver/internal/membership"
	"github.com/goserg/engelserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
)

// handleUserAngelTypes dispatches on the action query parameter. GET and a
// POST without the action's submit field show the confirmation page, a POST
// with it applies the action.
func (s *Server) handleUserAngelTypes(ctx *fiber.Ctx) error {
	action, ok := membership.ParseAction(ctx.Query("action"))
	if !ok {
		return ctx.Redirect(webpath.AngelTypes)
	}
	submitted := ctx.Method() == fiber.MethodPost && ctx.FormValue(action.SubmitField()) != ""

	switch action {
	case membership.ActionDeleteAll:
		return s.deleteAll(ctx, submitted)
	case membership.ActionConfirmAll:
		return s.confirmAll(ctx, submitted)
	case membership.ActionConfirm:
		return s.confirm(ctx, submitted)
	case membership.ActionDelete:
		return s.delete(ctx, submitted)
	case membership.ActionUpdate:
		return s.update(ctx, submitted)
	case membership.ActionAdd:
		return s.add(ctx, submitted)
	}
	return ctx.Redirect(webpath.AngelTypes)
}

func queryID(ctx *fiber.Ctx, key string) int {
	id, err := strconv.Atoi(ctx.Query(key))
	if err != nil {
		return 0
	}
	return id
}

func (s *Server) deleteAll(ctx *fiber.Ctx, submitted bool) error {
	actor, id := userFrom(ctx), queryID(ctx, "angeltype_id")
	if submitted {
		res, err := s.membership.ApplyDeleteAll(ctx.UserContext(), actor, id)
		return s.applied(ctx, res, err)
	}
	at, err := s.membership.PrepareDeleteAll(ctx.UserContext(), actor, id)
	if err != nil {
		return s.membershipFailed(ctx, err)
	}
	d, err := s.newData(ctx, "user_angeltypes.delete_all.title")
	if err != nil {
		return err
	}
	return s.render(ctx, "user_angeltypes/delete_all", d.With("AngelType", at))
}

func (s *Server) confirmAll(ctx *fiber.Ctx, submitted bool) error {
	actor, id := userFrom(ctx), queryID(ctx, "angeltype_id")
	if submitted {
		res, err := s.membership.ApplyConfirmAll(ctx.UserContext(), actor, id)
		return s.applied(ctx, res, err)
	}
	at, err := s.membership.PrepareConfirmAll(ctx.UserContext(), actor, id)
	if err != nil {
		return s.membershipFailed(ctx, err)
	}
	d, err := s.newData(ctx, "user_angeltypes.confirm_all.title")
	if err != nil {
		return err
	}
	return s.render(ctx, "user_angeltypes/confirm_all", d.With("AngelType", at))
}

func (s *Server) confirm(ctx *fiber.Ctx, submitted bool) error {
	actor, id := userFrom(ctx), queryID(ctx, "user_angeltype_id")
	if submitted {
		res, err := s.membership.ApplyConfirm(ctx.UserContext(), actor, id)
		return s.applied(ctx, res, err)
	}
	target, err := s.membership.PrepareConfirm(ctx.UserContext(), actor, id)
	if err != nil {
		return s.membershipFailed(ctx, err)
	}
	d, err := s.newData(ctx, "user_angeltypes.confirm.title")
	if err != nil {
		return err
	}
	return s.render(ctx, "user_angeltypes/confirm", d.With("Target", target))
}

func (s *Server) delete(ctx *fiber.Ctx, submitted bool) error {
	actor, id := userFrom(ctx), queryID(ctx, "user_angeltype_id")
	if submitted {
		res, err := s.membership.ApplyDelete(ctx.UserContext(), actor, id)
		return s.applied(ctx, res, err)
	}
	target, err := s.membership.PrepareDelete(ctx.UserContext(), actor, id)
	if err != nil {
		return s.membershipFailed(ctx, err)
	}
	d, err := s.newData(ctx, "user_angeltypes.delete.title")
	if err != nil {
		return err
	}
	return s.render(ctx, "user_angeltypes/delete", d.With("Target", target))
}

func (s *Server) update(ctx *fiber.Ctx, submitted bool) error {
	actor, id := userFrom(ctx), queryID(ctx, "user_angeltype_id")
	supporter := ctx.Query("supporter")
	if submitted {
		res, err := s.membership.ApplyUpdate(ctx.UserContext(), actor, id, supporter)
		return s.applied(ctx, res, err)
	}
	target, err := s.membership.PrepareUpdate(ctx.UserContext(), actor, id, supporter)
	if err != nil {
		return s.membershipFailed(ctx, err)
	}
	titleKey := "user_angeltypes.update.remove_title"
	if target.Supporter {
		titleKey = "user_angeltypes.update.add_title"
	}
	d, err := s.newData(ctx, titleKey)
	if err != nil {
		return err
	}
	return s.render(ctx, "user_angeltypes/update", d.With("Target", target))
}

// add serves both the supporter's add page and the join page of everyone
// else.
func (s *Server) add(ctx *fiber.Ctx, submitted bool) error {
	actor, id := userFrom(ctx), queryID(ctx, "angeltype_id")
	if submitted {
		res, err := s.membership.ApplyAdd(ctx.UserContext(), actor, id, membership.AddInput{
			UserID:      ctx.FormValue("user_id"),
			AutoConfirm: ctx.FormValue("auto_confirm_user") != "",
		})
		return s.applied(ctx, res, err)
	}
	form, err := s.membership.PrepareAdd(ctx.UserContext(), actor, id)
	if err != nil {
		return s.membershipFailed(ctx, err)
	}
	if form.Join {
		d, err := s.newData(ctx, "user_angeltypes.join.title", form.AngelType.Name)
		if err != nil {
			return err
		}
		d = d.With("AngelType", form.AngelType).
			With("CanAutoConfirm", s.auth.Can(actor, membership.PermAdminUserAngelTypes))
		return s.render(ctx, "user_angeltypes/join", d)
	}
	d, err := s.newData(ctx, "user_angeltypes.add.title")
	if err != nil {
		return err
	}
	return s.render(ctx, "user_angeltypes/add", d.With("Form", form))
}
