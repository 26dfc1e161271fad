package membership

import (
	"context"
	"errors"

	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
)

// Page is an angel type as seen by one actor.
type Page struct {
	AngelType   domain.AngelType
	Confirmed   []domain.Member
	Unconfirmed []domain.Member

	// Membership is the actor's own row, nil when the actor is no member.
	Membership *domain.UserAngelType
	Supporter  bool
	CanConfirm bool
	CanPromote bool
}

func (s *Service) ListAngelTypes(ctx context.Context) ([]domain.AngelType, error) {
	return s.angelTypes.ListAngelTypes(ctx)
}

func (s *Service) AngelTypePage(ctx context.Context, actor domain.User, angelTypeID int) (Page, error) {
	at, err := s.loadAngelType(ctx, angelTypeID)
	if err != nil {
		return Page{}, err
	}
	members, err := s.userAngelTypes.ListMembers(ctx, at.ID)
	if err != nil {
		return Page{}, err
	}
	page := Page{
		AngelType:  at,
		CanPromote: s.perms.Can(actor, PermAdminAngelTypes),
	}
	for i := range members {
		m := members[i]
		if m.UserID == actor.ID {
			page.Membership = &m.UserAngelType
			page.Supporter = m.Supporter
		}
		if m.Confirmed() {
			page.Confirmed = append(page.Confirmed, m)
		} else {
			page.Unconfirmed = append(page.Unconfirmed, m)
		}
	}
	page.CanConfirm = page.Supporter || s.perms.Can(actor, PermAdminUserAngelTypes)
	return page, nil
}

// EnsureAngelTypes creates the angel types whose names are not taken yet.
func (s *Service) EnsureAngelTypes(ctx context.Context, angelTypes []domain.AngelType) error {
	existing, err := s.angelTypes.ListAngelTypes(ctx)
	if err != nil {
		return err
	}
	names := mapset.NewThreadUnsafeSet[string]()
	for _, at := range existing {
		names.Add(at.Name)
	}
	for _, at := range angelTypes {
		if names.Contains(at.Name) {
			continue
		}
		_, err := s.angelTypes.CreateAngelType(ctx, at)
		if err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
			return err
		}
		names.Add(at.Name)
		s.log.WithField("angeltype", at.Name).Info("angeltype created")
	}
	return nil
}
