// Package settings implements the user settings pages: profile, password,
// language, theme and connected OAuth identities.
package settings

import (
	"context"
	"errors"
	"sort"
	"strconv"

	authservice "github.com/goserg/engelserver/auth/service"
	"github.com/goserg/engelserver/internal/config"
	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/storage"
	"github.com/goserg/engelserver/internal/web/webpath"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Passwords interface {
	HasPassword(ctx context.Context, id uuid.UUID) (bool, error)
	VerifyPassword(ctx context.Context, id uuid.UUID, password string) error
	SetPassword(ctx context.Context, id uuid.UUID, password string) error
}

type Service struct {
	users     storage.UserStorage
	passwords Passwords
	cfg       config.Config
	log       *logrus.Entry
}

func New(l *logrus.Logger, cfg config.Config, users storage.UserStorage, passwords Passwords) *Service {
	return &Service{
		users:     users,
		passwords: passwords,
		cfg:       cfg,
		log:       l.WithField("from", "settings"),
	}
}

// Notice is the success message of a saved form.
type Notice struct {
	Key string
}

type MenuItem struct {
	Path   string
	Title  string
	Hidden bool
}

// Menu lists the settings pages. The OAuth page is listed only with
// providers configured and is hidden when every provider is.
func (s *Service) Menu() []MenuItem {
	menu := []MenuItem{
		{Path: webpath.SettingsProfile, Title: "settings.profile"},
		{Path: webpath.SettingsPassword, Title: "settings.password"},
		{Path: webpath.SettingsLanguage, Title: "settings.language"},
		{Path: webpath.SettingsTheme, Title: "settings.theme"},
	}
	if len(s.cfg.OAuth) > 0 {
		menu = append(menu, MenuItem{
			Path:   webpath.SettingsOAuth,
			Title:  "settings.oauth",
			Hidden: s.visibleProviders().Cardinality() == 0,
		})
	}
	return menu
}

func (s *Service) visibleProviders() mapset.Set[string] {
	visible := mapset.NewThreadUnsafeSet[string]()
	for key, p := range s.cfg.OAuth {
		if !p.Hidden {
			visible.Add(key)
		}
	}
	return visible
}

type PasswordView struct {
	HasPassword bool
	MinLength   int
	Menu        []MenuItem
}

type PasswordInput struct {
	Password     string
	NewPassword  string
	NewPassword2 string
}

func (s *Service) Password(ctx context.Context, user domain.User) (PasswordView, error) {
	has, err := s.passwords.HasPassword(ctx, user.ID)
	if err != nil {
		return PasswordView{}, err
	}
	return PasswordView{
		HasPassword: has,
		MinLength:   s.cfg.Auth.MinPasswordLength,
		Menu:        s.Menu(),
	}, nil
}

// SavePassword replaces the password. The current one is checked only when
// the user has one.
func (s *Service) SavePassword(ctx context.Context, user domain.User, in PasswordInput) (Notice, error) {
	has, err := s.passwords.HasPassword(ctx, user.ID)
	if err != nil {
		return Notice{}, err
	}

	verr := &ValidationError{}
	if has && in.Password == "" {
		verr.add("password", "validation.required")
	}
	switch {
	case in.NewPassword == "":
		verr.add("new_password", "validation.required")
	case len(in.NewPassword) < s.cfg.Auth.MinPasswordLength:
		verr.add("new_password", "validation.min", s.cfg.Auth.MinPasswordLength)
	}
	if in.NewPassword2 == "" {
		verr.add("new_password2", "validation.required")
	}
	if err := verr.errOrNil(); err != nil {
		return Notice{}, err
	}

	if has {
		err = s.passwords.VerifyPassword(ctx, user.ID, in.Password)
		if errors.Is(err, authservice.ErrWrongPassword) {
			return Notice{}, &FormError{Key: "auth.password.error"}
		}
		if err != nil {
			return Notice{}, err
		}
	}
	if in.NewPassword != in.NewPassword2 {
		return Notice{}, &FormError{Key: "validation.password.confirmed"}
	}

	err = s.passwords.SetPassword(ctx, user.ID, in.NewPassword)
	if err != nil {
		return Notice{}, err
	}
	s.log.WithField("user", user.Name).Info("User set new password.")
	return Notice{Key: "settings.password.success"}, nil
}

type ThemeView struct {
	Themes  []config.Theme
	Current int
	Menu    []MenuItem
}

func (s *Service) Theme(user domain.User) ThemeView {
	return ThemeView{
		Themes:  s.cfg.Themes,
		Current: user.Settings.Theme,
		Menu:    s.Menu(),
	}
}

// SaveTheme stores the theme with index value. A missing or non numeric value
// is a validation failure, an index without theme is ErrNotFound.
func (s *Service) SaveTheme(ctx context.Context, user domain.User, value string) (Notice, error) {
	if value == "" {
		return Notice{}, requiredSelection("select_theme")
	}
	index, err := strconv.Atoi(value)
	if err != nil {
		return Notice{}, requiredSelection("select_theme")
	}
	if index < 0 || index >= len(s.cfg.Themes) {
		return Notice{}, ErrNotFound
	}
	updated := user.Settings
	updated.Theme = index
	err = s.users.UpdateSettings(ctx, user.ID, updated)
	if err != nil {
		return Notice{}, err
	}
	return Notice{Key: "settings.theme.success"}, nil
}

type Language struct {
	Key  string
	Name string
}

type LanguageView struct {
	Languages []Language
	Current   string
	Menu      []MenuItem
}

func (s *Service) Language(user domain.User) LanguageView {
	languages := make([]Language, 0, len(s.cfg.Locales))
	for key, name := range s.cfg.Locales {
		languages = append(languages, Language{Key: key, Name: name})
	}
	sort.Slice(languages, func(i, j int) bool { return languages[i].Key < languages[j].Key })
	return LanguageView{
		Languages: languages,
		Current:   user.Settings.Language,
		Menu:      s.Menu(),
	}
}

// SaveLanguage stores the locale and returns it for the session.
func (s *Service) SaveLanguage(ctx context.Context, user domain.User, value string) (Notice, string, error) {
	if value == "" {
		return Notice{}, "", requiredSelection("select_language")
	}
	if _, ok := s.cfg.Locales[value]; !ok {
		return Notice{}, "", ErrNotFound
	}
	updated := user.Settings
	updated.Language = value
	err := s.users.UpdateSettings(ctx, user.ID, updated)
	if err != nil {
		return Notice{}, "", err
	}
	return Notice{Key: "settings.language.success"}, value, nil
}

type Provider struct {
	Key       string
	Name      string
	URL       string
	Hidden    bool
	Connected bool
}

type OAuthView struct {
	Providers []Provider
	Menu      []MenuItem
}

func (s *Service) OAuth(ctx context.Context, user domain.User) (OAuthView, error) {
	if len(s.cfg.OAuth) == 0 {
		return OAuthView{}, ErrNotFound
	}
	identities, err := s.users.ListOAuth(ctx, user.ID)
	if err != nil {
		return OAuthView{}, err
	}
	connected := mapset.NewThreadUnsafeSet[string]()
	for _, identity := range identities {
		connected.Add(identity.Provider)
	}
	providers := make([]Provider, 0, len(s.cfg.OAuth))
	for key, p := range s.cfg.OAuth {
		providers = append(providers, Provider{
			Key:       key,
			Name:      p.Name,
			URL:       p.URL,
			Hidden:    p.Hidden,
			Connected: connected.Contains(key),
		})
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i].Key < providers[j].Key })
	return OAuthView{Providers: providers, Menu: s.Menu()}, nil
}

func requiredSelection(field string) error {
	verr := &ValidationError{}
	verr.add(field, "validation."+field+".required")
	return verr
}
