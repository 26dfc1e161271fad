package sel

const (
	NavSignIn   = "#signin"
	NavSignUp   = "#signup"
	NavSignOut  = "#signout"
	NavSettings = "#settings"

	SignInFormUsername = "#username"
	SignInFormPass     = "#password"
	SignInFormSubmit   = "#signin-submit"

	SignUpFormUsername = "#username"
	SignUpFormEmail    = "#email"
	SignUpFormPass     = "#password"
	SignUpFormRepeat   = "#password-repeat"
	SignUpFormSubmit   = "#signup-submit"

	AngelTypeJoin = "#join"
	ConfirmSubmit = "#confirm"
	Flash         = ".alert.success"

	SettingsSelectTheme = "#select_theme"
	SettingsSave        = "#save"
)
