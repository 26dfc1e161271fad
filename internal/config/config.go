package config

import (
	"errors"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	Enabled          bool   `toml:"enabled"`
	TelegramApiToken string `toml:"telegram_apitoken"`
	ChatID           int64  `toml:"chat_id"`
}

type Server struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Debug    bool   `toml:"debug_mode"`
	TLS      bool   `toml:"tls"`
	CertFile string `toml:"cert_file"`
	KeyFile  string `toml:"key_file"`
	LogLevel string `toml:"log_level"`

	// CookieDomain is left empty for host only cookies.
	CookieDomain string `toml:"cookie_domain"`
}

type DB struct {
	SqliteFile string `toml:"sqlite_file"`
}

type Role struct {
	Name        string   `toml:"name"`
	Permissions []string `toml:"permissions"`
}

type Auth struct {
	Token             string `toml:"token"`
	Expiration        string `toml:"expiration"`
	RootPassword      string `toml:"root_password"`
	PasswordPepper    string `toml:"password_pepper"`
	MinPasswordLength int    `toml:"min_password_length"`
	DefaultRole       string `toml:"default_role"`
	Roles             []Role `toml:"roles"`
}

type Mail struct {
	Enabled   bool   `toml:"enabled"`
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	From      string `toml:"from"`
	TLSPolicy string `toml:"tls_policy"`
}

// Features switches optional profile fields on and off.
type Features struct {
	Pronoun        bool `toml:"enable_pronoun"`
	UserName       bool `toml:"enable_user_name"`
	PlannedArrival bool `toml:"enable_planned_arrival"`
	DECT           bool `toml:"enable_dect"`
	MobileShow     bool `toml:"enable_mobile_show"`
	Goody          bool `toml:"enable_goody"`
	TShirtSize     bool `toml:"enable_tshirt_size"`
}

type Event struct {
	BuildupStart *time.Time `toml:"buildup_start"`
	TeardownEnd  *time.Time `toml:"teardown_end"`
}

type Theme struct {
	Name string `toml:"name"`
}

type OAuthProvider struct {
	Name   string `toml:"name"`
	URL    string `toml:"url"`
	Hidden bool   `toml:"hidden"`
}

// AngelType is created on startup unless an angel type of that name exists.
type AngelType struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Restricted  bool   `toml:"restricted"`
}

type Config struct {
	TgBot  TgBot  `toml:"tg_bot"`
	Server Server `toml:"server"`
	DB     DB     `toml:"db"`
	Auth   Auth   `toml:"auth"`
	Mail   Mail   `toml:"mail"`

	Features Features `toml:"features"`
	Event    Event    `toml:"event"`

	Themes        []Theme                  `toml:"themes"`
	DefaultTheme  int                      `toml:"default_theme"`
	Locales       map[string]string        `toml:"locales"`
	DefaultLocale string                   `toml:"default_locale"`
	TShirtSizes   map[string]string        `toml:"tshirt_sizes"`
	OAuth         map[string]OAuthProvider `toml:"oauth"`
	AngelTypes    []AngelType              `toml:"angeltypes"`
}

var ErrNoLocales = errors.New("at least one locale must be configured")

func New(path string) (Config, error) {
	cfg := Config{
		Server: Server{Host: "0.0.0.0", Port: 3000, LogLevel: "info"},
		DB:     DB{SqliteFile: "engel.sqlite"},
		Auth: Auth{
			Expiration:        "24h",
			MinPasswordLength: 8,
			DefaultRole:       "angel",
		},
		DefaultLocale: "en_US",
	}
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)

	if len(cfg.Locales) == 0 {
		return Config{}, ErrNoLocales
	}
	if _, ok := cfg.Locales[cfg.DefaultLocale]; !ok {
		return Config{}, errors.New("default_locale " + cfg.DefaultLocale + " is not in locales")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		cfg.TgBot.TelegramApiToken = token
	}
	if token := os.Getenv("AUTH_TOKEN"); token != "" {
		cfg.Auth.Token = token
	}
	if pass := os.Getenv("SMTP_PASSWORD"); pass != "" {
		cfg.Mail.Password = pass
	}
}
