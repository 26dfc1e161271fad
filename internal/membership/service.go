// Package membership implements the angel type membership workflow: joining,
// adding, confirming, denying and removing members and granting supporter
// rights.
//
// Every state changing operation comes as a Prepare and an Apply method.
// Prepare loads and authorizes and returns what a confirmation page shows.
// Apply authorizes again and mutates. User facing failures are *Error.
package membership

import (
	"context"
	"errors"

	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/mail"
	"github.com/goserg/engelserver/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	PermAdminUserAngelTypes = "admin_user_angeltypes"
	PermAdminAngelTypes     = "admin_angel_types"
)

type Permissions interface {
	Can(user domain.User, permission string) bool
}

type Auditor interface {
	Infof(ctx context.Context, actor domain.User, format string, args ...interface{})
}

type Service struct {
	angelTypes     storage.AngelTypeStorage
	userAngelTypes storage.UserAngelTypeStorage
	users          storage.UserStorage
	perms          Permissions
	mailer         mail.Mailer
	audit          Auditor
	log            *logrus.Entry
}

func New(
	l *logrus.Logger,
	angelTypes storage.AngelTypeStorage,
	userAngelTypes storage.UserAngelTypeStorage,
	users storage.UserStorage,
	perms Permissions,
	mailer mail.Mailer,
	audit Auditor,
) *Service {
	return &Service{
		angelTypes:     angelTypes,
		userAngelTypes: userAngelTypes,
		users:          users,
		perms:          perms,
		mailer:         mailer,
		audit:          audit,
		log:            l.WithField("from", "membership"),
	}
}

// Notice is the success message of an applied operation.
type Notice struct {
	Key  string
	Args []interface{}
}

// Result points at the angel type page to show after an operation.
type Result struct {
	AngelTypeID int
	Notice      Notice
}

func result(angelTypeID int, key string, args ...interface{}) Result {
	return Result{AngelTypeID: angelTypeID, Notice: Notice{Key: key, Args: args}}
}

// Target is a membership together with its angel type and user.
type Target struct {
	UserAngelType domain.UserAngelType
	AngelType     domain.AngelType
	User          domain.User
}

func (s *Service) loadAngelType(ctx context.Context, id int) (domain.AngelType, error) {
	at, err := s.angelTypes.GetAngelType(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.AngelType{}, errAngelTypeNotFound
		}
		return domain.AngelType{}, err
	}
	return at, nil
}

func (s *Service) loadUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	u, err := s.users.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.User{}, errUserNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *Service) loadUserAngelType(ctx context.Context, id int) (domain.UserAngelType, domain.AngelType, error) {
	uat, err := s.userAngelTypes.GetUserAngelType(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.UserAngelType{}, domain.AngelType{}, errUserAngelTypeNotFound
		}
		return domain.UserAngelType{}, domain.AngelType{}, err
	}
	at, err := s.loadAngelType(ctx, uat.AngelTypeID)
	if err != nil {
		return domain.UserAngelType{}, domain.AngelType{}, err
	}
	return uat, at, nil
}

func (s *Service) loadTarget(ctx context.Context, id int) (Target, error) {
	uat, at, err := s.loadUserAngelType(ctx, id)
	if err != nil {
		return Target{}, err
	}
	u, err := s.loadUser(ctx, uat.UserID)
	if err != nil {
		return Target{}, err
	}
	return Target{UserAngelType: uat, AngelType: at, User: u}, nil
}

// IsSupporter reports whether user holds supporter rights on the angel type.
func (s *Service) IsSupporter(ctx context.Context, user domain.User, angelTypeID int) (bool, error) {
	uat, err := s.userAngelTypes.FindUserAngelType(ctx, user.ID, angelTypeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return uat.Supporter, nil
}

func (s *Service) authorizeDeleteAll(ctx context.Context, actor domain.User, angelTypeID int) (domain.AngelType, error) {
	at, err := s.loadAngelType(ctx, angelTypeID)
	if err != nil {
		return domain.AngelType{}, err
	}
	supporter, err := s.IsSupporter(ctx, actor, at.ID)
	if err != nil {
		return domain.AngelType{}, err
	}
	if !supporter {
		return domain.AngelType{}, forbidden("user_angeltypes.delete_all.forbidden")
	}
	return at, nil
}

func (s *Service) PrepareDeleteAll(ctx context.Context, actor domain.User, angelTypeID int) (domain.AngelType, error) {
	return s.authorizeDeleteAll(ctx, actor, angelTypeID)
}

// ApplyDeleteAll denies every membership of the angel type that is still
// waiting for confirmation.
func (s *Service) ApplyDeleteAll(ctx context.Context, actor domain.User, angelTypeID int) (Result, error) {
	at, err := s.authorizeDeleteAll(ctx, actor, angelTypeID)
	if err != nil {
		return Result{}, err
	}
	err = s.userAngelTypes.DeleteUnconfirmedUserAngelTypes(ctx, at.ID)
	if err != nil {
		return Result{}, err
	}
	s.audit.Infof(ctx, actor, "Denied all users for angeltype %s", at.Name)
	return result(at.ID, "user_angeltypes.delete_all.success", at.Name), nil
}

func (s *Service) authorizeConfirmAll(ctx context.Context, actor domain.User, angelTypeID int) (domain.AngelType, error) {
	at, err := s.loadAngelType(ctx, angelTypeID)
	if err != nil {
		return domain.AngelType{}, err
	}
	if s.perms.Can(actor, PermAdminUserAngelTypes) {
		return at, nil
	}
	supporter, err := s.IsSupporter(ctx, actor, at.ID)
	if err != nil {
		return domain.AngelType{}, err
	}
	if !supporter {
		return domain.AngelType{}, forbidden("user_angeltypes.confirm_all.forbidden")
	}
	return at, nil
}

func (s *Service) PrepareConfirmAll(ctx context.Context, actor domain.User, angelTypeID int) (domain.AngelType, error) {
	return s.authorizeConfirmAll(ctx, actor, angelTypeID)
}

// ApplyConfirmAll confirms every pending membership with actor as the
// confirming user and notifies the affected users.
func (s *Service) ApplyConfirmAll(ctx context.Context, actor domain.User, angelTypeID int) (Result, error) {
	at, err := s.authorizeConfirmAll(ctx, actor, angelTypeID)
	if err != nil {
		return Result{}, err
	}
	confirmed, err := s.userAngelTypes.ConfirmAllUserAngelTypes(ctx, at.ID, actor.ID)
	if err != nil {
		return Result{}, err
	}
	s.audit.Infof(ctx, actor, "Confirmed all users for angeltype %s", at.Name)

	for _, uat := range confirmed {
		u, err := s.users.GetUser(ctx, uat.UserID)
		if err != nil {
			s.log.WithError(err).WithField("user", uat.UserID).Warn("confirmed user not loaded")
			continue
		}
		s.sendConfirmedEmail(ctx, u, at)
	}
	return result(at.ID, "user_angeltypes.confirm_all.success", at.Name), nil
}

func (s *Service) authorizeConfirm(ctx context.Context, actor domain.User, userAngelTypeID int) (Target, error) {
	uat, at, err := s.loadUserAngelType(ctx, userAngelTypeID)
	if err != nil {
		return Target{}, err
	}
	supporter, err := s.IsSupporter(ctx, actor, at.ID)
	if err != nil {
		return Target{}, err
	}
	if !supporter {
		return Target{}, forbidden("user_angeltypes.confirm.forbidden")
	}
	u, err := s.loadUser(ctx, uat.UserID)
	if err != nil {
		return Target{}, err
	}
	return Target{UserAngelType: uat, AngelType: at, User: u}, nil
}

func (s *Service) PrepareConfirm(ctx context.Context, actor domain.User, userAngelTypeID int) (Target, error) {
	return s.authorizeConfirm(ctx, actor, userAngelTypeID)
}

func (s *Service) ApplyConfirm(ctx context.Context, actor domain.User, userAngelTypeID int) (Result, error) {
	t, err := s.authorizeConfirm(ctx, actor, userAngelTypeID)
	if err != nil {
		return Result{}, err
	}
	err = s.userAngelTypes.ConfirmUserAngelType(ctx, t.UserAngelType.ID, actor.ID)
	if err != nil {
		return Result{}, err
	}
	s.audit.Infof(ctx, actor, "%s confirmed for angeltype %s", t.User.Name, t.AngelType.Name)
	s.sendConfirmedEmail(ctx, t.User, t.AngelType)
	return result(t.AngelType.ID, "user_angeltypes.confirm.success", t.User.Name, t.AngelType.Name), nil
}

func (s *Service) authorizeDelete(ctx context.Context, actor domain.User, userAngelTypeID int) (Target, error) {
	t, err := s.loadTarget(ctx, userAngelTypeID)
	if err != nil {
		return Target{}, err
	}
	if actor.ID == t.UserAngelType.UserID {
		return t, nil
	}
	supporter, err := s.IsSupporter(ctx, actor, t.AngelType.ID)
	if err != nil {
		return Target{}, err
	}
	if !supporter {
		return Target{}, forbidden("user_angeltypes.delete.forbidden")
	}
	return t, nil
}

func (s *Service) PrepareDelete(ctx context.Context, actor domain.User, userAngelTypeID int) (Target, error) {
	return s.authorizeDelete(ctx, actor, userAngelTypeID)
}

func (s *Service) ApplyDelete(ctx context.Context, actor domain.User, userAngelTypeID int) (Result, error) {
	t, err := s.authorizeDelete(ctx, actor, userAngelTypeID)
	if err != nil {
		return Result{}, err
	}
	err = s.userAngelTypes.DeleteUserAngelType(ctx, t.UserAngelType.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Result{}, errUserAngelTypeNotFound
		}
		return Result{}, err
	}
	s.audit.Infof(ctx, actor, "User %s removed from %s.", t.User.Name, t.AngelType.Name)
	return result(t.AngelType.ID, "user_angeltypes.delete.success", t.User.Name, t.AngelType.Name), nil
}

// UpdateTarget is a membership with the requested supporter flag.
type UpdateTarget struct {
	Target
	Supporter bool
}

// ParseSupporter accepts exactly "0" and "1".
func ParseSupporter(value string) (bool, error) {
	switch value {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, errNoSupporterUpdate
	}
}

func (s *Service) authorizeUpdate(ctx context.Context, actor domain.User, userAngelTypeID int, supporter string) (UpdateTarget, error) {
	if !s.perms.Can(actor, PermAdminAngelTypes) {
		return UpdateTarget{}, forbidden("user_angeltypes.update.forbidden")
	}
	flag, err := ParseSupporter(supporter)
	if err != nil {
		return UpdateTarget{}, err
	}
	t, err := s.loadTarget(ctx, userAngelTypeID)
	if err != nil {
		return UpdateTarget{}, err
	}
	return UpdateTarget{Target: t, Supporter: flag}, nil
}

func (s *Service) PrepareUpdate(ctx context.Context, actor domain.User, userAngelTypeID int, supporter string) (UpdateTarget, error) {
	return s.authorizeUpdate(ctx, actor, userAngelTypeID, supporter)
}

func (s *Service) ApplyUpdate(ctx context.Context, actor domain.User, userAngelTypeID int, supporter string) (Result, error) {
	t, err := s.authorizeUpdate(ctx, actor, userAngelTypeID, supporter)
	if err != nil {
		return Result{}, err
	}
	err = s.userAngelTypes.SetSupporter(ctx, t.UserAngelType.ID, t.Supporter)
	if err != nil {
		return Result{}, err
	}
	if t.Supporter {
		s.audit.Infof(ctx, actor, "Added supporter rights for %s to %s.", t.AngelType.Name, t.User.Name)
		return result(t.AngelType.ID, "user_angeltypes.update.added", t.AngelType.Name, t.User.Name), nil
	}
	s.audit.Infof(ctx, actor, "Removed supporter rights for %s from %s.", t.AngelType.Name, t.User.Name)
	return result(t.AngelType.ID, "user_angeltypes.update.removed", t.AngelType.Name, t.User.Name), nil
}

// AddForm is the add page. Join is set when the actor is no supporter and
// gets the join page instead.
type AddForm struct {
	AngelType      domain.AngelType
	Join           bool
	Users          []domain.User
	SelectedUserID uuid.UUID
}

type AddInput struct {
	UserID      string
	AutoConfirm bool
}

func (s *Service) PrepareAdd(ctx context.Context, actor domain.User, angelTypeID int) (AddForm, error) {
	at, err := s.loadAngelType(ctx, angelTypeID)
	if err != nil {
		return AddForm{}, err
	}
	supporter, err := s.IsSupporter(ctx, actor, at.ID)
	if err != nil {
		return AddForm{}, err
	}
	if !supporter {
		_, err = s.PrepareJoin(ctx, actor, at)
		if err != nil {
			return AddForm{}, err
		}
		return AddForm{AngelType: at, Join: true}, nil
	}
	eligible, err := s.eligibleUsers(ctx, at.ID)
	if err != nil {
		return AddForm{}, err
	}
	return AddForm{
		AngelType:      at,
		Users:          eligible,
		SelectedUserID: actor.ID,
	}, nil
}

// eligibleUsers returns all users without a membership in the angel type.
func (s *Service) eligibleUsers(ctx context.Context, angelTypeID int) ([]domain.User, error) {
	all, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.userAngelTypes.ListMembers(ctx, angelTypeID)
	if err != nil {
		return nil, err
	}
	allIDs := mapset.NewThreadUnsafeSet[uuid.UUID]()
	for _, u := range all {
		allIDs.Add(u.ID)
	}
	memberIDs := mapset.NewThreadUnsafeSet[uuid.UUID]()
	for _, m := range members {
		memberIDs.Add(m.UserID)
	}
	eligibleIDs := allIDs.Difference(memberIDs)

	eligible := make([]domain.User, 0, eligibleIDs.Cardinality())
	for _, u := range all {
		if eligibleIDs.Contains(u.ID) {
			eligible = append(eligible, u)
		}
	}
	return eligible, nil
}

func (s *Service) ApplyAdd(ctx context.Context, actor domain.User, angelTypeID int, in AddInput) (Result, error) {
	at, err := s.loadAngelType(ctx, angelTypeID)
	if err != nil {
		return Result{}, err
	}
	supporter, err := s.IsSupporter(ctx, actor, at.ID)
	if err != nil {
		return Result{}, err
	}
	if !supporter {
		return s.ApplyJoin(ctx, actor, at, in.AutoConfirm)
	}

	userID, err := uuid.Parse(in.UserID)
	if err != nil {
		return Result{}, errUserNotFound
	}
	target, err := s.loadUser(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	uat, err := s.userAngelTypes.CreateUserAngelType(ctx, target.ID, at.ID)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return Result{}, newError(KindConflict, "user_angeltypes.add.exists", target.Name, at.Name)
		}
		return Result{}, err
	}
	s.audit.Infof(ctx, actor, "User %s added to %s.", target.Name, at.Name)

	if in.AutoConfirm {
		err = s.userAngelTypes.ConfirmUserAngelType(ctx, uat.ID, actor.ID)
		if err != nil {
			return Result{}, err
		}
		s.audit.Infof(ctx, actor, "User %s confirmed as %s.", target.Name, at.Name)
	}
	if target.ID != actor.ID {
		s.sendAddedEmail(ctx, target, at)
	}
	return result(at.ID, "user_angeltypes.add.success", target.Name, at.Name), nil
}

func (s *Service) authorizeJoin(ctx context.Context, actor domain.User, at domain.AngelType) error {
	_, err := s.userAngelTypes.FindUserAngelType(ctx, actor.ID, at.ID)
	if err == nil {
		return newError(KindConflict, "user_angeltypes.join.exists", at.Name)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return nil
}

func (s *Service) PrepareJoin(ctx context.Context, actor domain.User, at domain.AngelType) (domain.AngelType, error) {
	err := s.authorizeJoin(ctx, actor, at)
	if err != nil {
		return domain.AngelType{}, err
	}
	return at, nil
}

// ApplyJoin makes actor an unconfirmed member of at. Actors allowed to
// administrate memberships may confirm themselves right away.
func (s *Service) ApplyJoin(ctx context.Context, actor domain.User, at domain.AngelType, autoConfirm bool) (Result, error) {
	err := s.authorizeJoin(ctx, actor, at)
	if err != nil {
		return Result{}, err
	}
	uat, err := s.userAngelTypes.CreateUserAngelType(ctx, actor.ID, at.ID)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return Result{}, newError(KindConflict, "user_angeltypes.join.exists", at.Name)
		}
		return Result{}, err
	}
	s.audit.Infof(ctx, actor, "User %s joined %s.", actor.Name, at.Name)

	if autoConfirm && s.perms.Can(actor, PermAdminUserAngelTypes) {
		err = s.userAngelTypes.ConfirmUserAngelType(ctx, uat.ID, actor.ID)
		if err != nil {
			return Result{}, err
		}
		s.audit.Infof(ctx, actor, "User %s confirmed as %s.", actor.Name, at.Name)
	}
	return result(at.ID, "user_angeltypes.join.success", at.Name), nil
}

// Hint lists the angel types supported by a user that have pending members.
type Hint struct {
	AngelTypes []domain.UnconfirmedCount
}

func (h Hint) Count() int {
	return len(h.AngelTypes)
}

func (s *Service) UnconfirmedHint(ctx context.Context, actor domain.User) (Hint, error) {
	if actor.IsZero() {
		return Hint{}, nil
	}
	counts, err := s.userAngelTypes.CountUnconfirmedForSupporter(ctx, actor.ID)
	if err != nil {
		return Hint{}, err
	}
	return Hint{AngelTypes: counts}, nil
}
