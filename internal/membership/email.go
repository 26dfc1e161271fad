package membership

import (
	"context"

	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/i18n"
	"github.com/goserg/engelserver/internal/mail"

	"github.com/sirupsen/logrus"
)

func (s *Service) sendConfirmedEmail(ctx context.Context, user domain.User, at domain.AngelType) {
	s.send(ctx, user, at, "notification.angeltype.confirmed", "emails/angeltype_confirmed")
}

func (s *Service) sendAddedEmail(ctx context.Context, user domain.User, at domain.AngelType) {
	s.send(ctx, user, at, "notification.angeltype.added", "emails/angeltype_added")
}

// send delivers a notification to users that opted into shift information.
// Failures never reach the caller.
func (s *Service) send(ctx context.Context, user domain.User, at domain.AngelType, titleKey, template string) {
	if !user.Settings.EmailShiftinfo {
		return
	}
	title := i18n.T(user.Settings.Language, titleKey, at.Name)
	err := s.mailer.Send(ctx, mail.Message{
		To:       user,
		Title:    title,
		Template: template,
		Data: map[string]interface{}{
			"AngelType": at.Name,
		},
	})
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"title": title,
			"user":  user.Name,
		}).Errorf("Unable to send email %q to user %s", title, user.Name)
	}
}
