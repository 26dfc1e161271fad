package service

import (
	"context"
	"errors"
	"time"

	"github.com/goserg/engelserver/auth/storage"
	"github.com/goserg/engelserver/internal/config"
	"github.com/goserg/engelserver/internal/domain"
	mainstorage "github.com/goserg/engelserver/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const rootName = "root"

type Service struct {
	storage storage.AuthStorage
	users   mainstorage.UserStorage
	cfg     config.Config
	log     *logrus.Entry

	permissions map[string]mapset.Set[string]
	cost        int
}

var (
	ErrNotAuthorized    = errors.New("unauthorized")
	ErrWrongPassword    = errors.New("wrong password")
	ErrPasswordTooShort = errors.New("password too short")
	ErrUserExists       = errors.New("user already exists")
)

func New(ctx context.Context, l *logrus.Logger, cfg config.Config, authStorage storage.AuthStorage, users mainstorage.UserStorage) (*Service, error) {
	s := Service{
		storage:     authStorage,
		users:       users,
		cfg:         cfg,
		log:         l.WithField("from", "auth"),
		permissions: make(map[string]mapset.Set[string], len(cfg.Auth.Roles)),
		cost:        bcrypt.DefaultCost,
	}
	for _, role := range cfg.Auth.Roles {
		s.permissions[role.Name] = mapset.NewSet[string](role.Permissions...)
	}
	if cfg.Auth.RootPassword == "" {
		return &s, nil
	}
	_, err := s.storage.GetUserIDByName(ctx, rootName)
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, mainstorage.ErrNotFound) {
		return nil, err
	}
	_, err = s.createUser(ctx, rootName, "", cfg.Auth.RootPassword, []string{"admin"})
	if err != nil {
		return nil, err
	}
	s.log.Info("root user created")
	return &s, nil
}

func (s *Service) Login(ctx context.Context, name string, password string) (domain.User, error) {
	id, err := s.storage.GetUserIDByName(ctx, name)
	if err != nil {
		if errors.Is(err, mainstorage.ErrNotFound) {
			return domain.User{}, ErrNotAuthorized
		}
		return domain.User{}, err
	}
	err = s.VerifyPassword(ctx, id, password)
	if err != nil {
		if errors.Is(err, ErrWrongPassword) {
			return domain.User{}, ErrNotAuthorized
		}
		return domain.User{}, err
	}
	return s.users.GetUser(ctx, id)
}

func (s *Service) SignUp(ctx context.Context, name, email, password string) (domain.User, error) {
	if len(password) < s.cfg.Auth.MinPasswordLength {
		return domain.User{}, ErrPasswordTooShort
	}
	return s.createUser(ctx, name, email, password, []string{s.cfg.Auth.DefaultRole})
}

func (s *Service) createUser(ctx context.Context, name, email, password string, roles []string) (domain.User, error) {
	hash, err := s.hash(password)
	if err != nil {
		return domain.User{}, err
	}
	user := domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Roles:        roles,
		RegisteredAt: time.Now(),
		Settings: domain.Settings{
			Language:       s.cfg.DefaultLocale,
			Theme:          s.cfg.DefaultTheme,
			EmailShiftinfo: true,
		},
	}
	err = s.storage.CreateUser(ctx, user, hash)
	if err != nil {
		if errors.Is(err, mainstorage.ErrAlreadyExists) {
			return domain.User{}, ErrUserExists
		}
		return domain.User{}, err
	}
	return user, nil
}

// HasPassword reports whether the user has a password credential at all.
func (s *Service) HasPassword(ctx context.Context, id uuid.UUID) (bool, error) {
	hash, err := s.storage.GetPasswordHash(ctx, id)
	if err != nil {
		return false, err
	}
	return hash != "", nil
}

func (s *Service) VerifyPassword(ctx context.Context, id uuid.UUID, password string) error {
	hash, err := s.storage.GetPasswordHash(ctx, id)
	if err != nil {
		return err
	}
	if hash == "" {
		return ErrWrongPassword
	}
	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(s.cfg.Auth.PasswordPepper+password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrWrongPassword
		}
		return err
	}
	return nil
}

func (s *Service) SetPassword(ctx context.Context, id uuid.UUID, password string) error {
	hash, err := s.hash(password)
	if err != nil {
		return err
	}
	return s.storage.SetPasswordHash(ctx, id, hash)
}

func (s *Service) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Auth.PasswordPepper+password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Permissions is the union of the permissions of all roles of the user.
func (s *Service) Permissions(user domain.User) mapset.Set[string] {
	perms := mapset.NewSet[string]()
	for _, role := range user.Roles {
		if rolePerms, ok := s.permissions[role]; ok {
			perms = perms.Union(rolePerms)
		}
	}
	return perms
}

func (s *Service) Can(user domain.User, permission string) bool {
	return s.Permissions(user).Contains(permission)
}

func (s *Service) GenerateJWTCookie(userID uuid.UUID, host string) (*fiber.Cookie, error) {
	expiresIn, err := time.ParseDuration(s.cfg.Auth.Expiration)
	if err != nil {
		return nil, err
	}
	expirationTime := time.Now().Add(expiresIn)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  time.Now().Unix(),
		Subject:   userID.String(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Auth.Token))
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		Domain:   host,
		Expires:  expirationTime,
		Secure:   s.cfg.Server.TLS,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}, nil
}

// Auth resolves the token cookie to a user. An empty cookie is the anonymous
// user, an invalid one is ErrNotAuthorized.
func (s *Service) Auth(ctx context.Context, cookie string) (domain.User, error) {
	if cookie == "" {
		return domain.User{}, nil
	}
	user, err := s.getUserFromToken(ctx, cookie)
	if err != nil {
		s.log.WithError(err).Debug("token rejected")
		return domain.User{}, ErrNotAuthorized
	}
	return user, nil
}

func (s *Service) getUserFromToken(ctx context.Context, cookie string) (domain.User, error) {
	token, err := jwt.ParseWithClaims(cookie, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.Auth.Token), nil
	})
	if err != nil {
		ve := &jwt.ValidationError{}
		if errors.As(err, &ve) && ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return domain.User{}, errors.New("token expired")
		}
		return domain.User{}, err
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid {
		return domain.User{}, errors.New("bad request")
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.User{}, err
	}
	return s.users.GetUser(ctx, id)
}
