package webpath

const (
	Signin  = "/signin"
	Signup  = "/signup"
	Signout = "/signout"
	Home    = "/"

	AngelTypes     = "/angeltypes"
	AngelType      = AngelTypes + "/:id"
	UserAngelTypes = "/user-angeltypes"

	Settings         = "/settings"
	SettingsProfile  = Settings + "/profile"
	SettingsPassword = Settings + "/password"
	SettingsLanguage = Settings + "/language"
	SettingsTheme    = Settings + "/theme"
	SettingsOAuth    = Settings + "/oauth"
)

func Path() map[string]string {
	return map[string]string{
		"SignUp":           Signup,
		"SignIn":           Signin,
		"SignOut":          Signout,
		"Home":             Home,
		"AngelTypes":       AngelTypes,
		"UserAngelTypes":   UserAngelTypes,
		"SettingsProfile":  SettingsProfile,
		"SettingsPassword": SettingsPassword,
		"SettingsLanguage": SettingsLanguage,
		"SettingsTheme":    SettingsTheme,
		"SettingsOAuth":    SettingsOAuth,
	}
}
