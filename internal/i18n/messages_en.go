package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Navigation
	message.SetString(lang, "nav.angeltypes", "Angeltypes")
	message.SetString(lang, "nav.settings", "Settings")
	message.SetString(lang, "nav.signin", "Sign in")
	message.SetString(lang, "nav.signup", "Register")
	message.SetString(lang, "nav.signout", "Sign out")
	message.SetString(lang, "form.save", "Save")
	message.SetString(lang, "form.yes", "Yes")
	message.SetString(lang, "form.cancel", "Cancel")

	// Auth
	message.SetString(lang, "auth.name", "Nick")
	message.SetString(lang, "auth.email", "E-Mail")
	message.SetString(lang, "auth.password", "Password")
	message.SetString(lang, "auth.login.error", "No user was found with that nick or the password is wrong.")
	message.SetString(lang, "auth.signup.exists", "This nick is already taken.")
	message.SetString(lang, "auth.signup.short", "Your password is too short (please use at least %d characters).")
	message.SetString(lang, "auth.signup.success", "Registration successful. You can now sign in.")
	message.SetString(lang, "auth.password.error", "Your password is incorrect. Please try it again.")
	message.SetString(lang, "auth.password_repeat", "Confirm password")
	message.SetString(lang, "auth.signup.name_empty", "Please enter a nick.")
	message.SetString(lang, "auth.signup.name_invalid", "Your nick must start with a latin letter and may only contain letters, digits, dots, dashes and underscores.")
	message.SetString(lang, "auth.signup.email_empty", "Please enter your e-mail address.")
	message.SetString(lang, "auth.signup.password_empty", "Please enter a password.")

	// Angeltypes
	message.SetString(lang, "angeltypes.title", "Angeltypes")
	message.SetString(lang, "angeltypes.members", "Members")
	message.SetString(lang, "angeltypes.unconfirmed", "Unconfirmed")
	message.SetString(lang, "angeltypes.supporter", "Supporter")
	message.SetString(lang, "angeltypes.restricted", "Requires confirmation")
	message.SetString(lang, "angeltypes.join", "Join")
	message.SetString(lang, "angeltypes.add", "Add")
	message.SetString(lang, "angeltypes.confirm", "Confirm")
	message.SetString(lang, "angeltypes.deny", "Deny")
	message.SetString(lang, "angeltypes.remove", "Remove")
	message.SetString(lang, "angeltypes.add_supporter", "Add supporter rights")
	message.SetString(lang, "angeltypes.remove_supporter", "Remove supporter rights")
	message.SetString(lang, "angeltypes.confirm_all", "Confirm all")
	message.SetString(lang, "angeltypes.deny_all", "Deny all")
	message.SetString(lang, "angeltypes.leave", "Leave")
	message.SetString(lang, "angeltypes.none", "There are no angeltypes yet.")

	// Membership workflow
	message.SetString(lang, "angeltype.not_found", "Angeltype doesn't exist.")
	message.SetString(lang, "user_angeltype.not_found", "User angeltype doesn't exist.")
	message.SetString(lang, "user.not_found", "User doesn't exist.")

	message.SetString(lang, "user_angeltypes.delete_all.title", "Deny all users")
	message.SetString(lang, "user_angeltypes.delete_all.question", "Do you really want to deny all users for %s?")
	message.SetString(lang, "user_angeltypes.delete_all.forbidden", "You are not allowed to delete all users for this angeltype.")
	message.SetString(lang, "user_angeltypes.delete_all.success", "Denied all users for angeltype %s.")

	message.SetString(lang, "user_angeltypes.confirm_all.title", "Confirm all users")
	message.SetString(lang, "user_angeltypes.confirm_all.question", "Do you really want to confirm all users for %s?")
	message.SetString(lang, "user_angeltypes.confirm_all.forbidden", "You are not allowed to confirm all users for this angeltype.")
	message.SetString(lang, "user_angeltypes.confirm_all.success", "Confirmed all users for angeltype %s.")

	message.SetString(lang, "user_angeltypes.confirm.title", "Confirm angeltype for user")
	message.SetString(lang, "user_angeltypes.confirm.question", "Do you really want to confirm %s for %s?")
	message.SetString(lang, "user_angeltypes.confirm.forbidden", "You are not allowed to confirm this users angeltype.")
	message.SetString(lang, "user_angeltypes.confirm.success", "%s confirmed for angeltype %s.")

	message.SetString(lang, "user_angeltypes.delete.title", "Remove angeltype")
	message.SetString(lang, "user_angeltypes.delete.question", "Do you really want to delete %s from %s?")
	message.SetString(lang, "user_angeltypes.delete.forbidden", "You are not allowed to delete this users angeltype.")
	message.SetString(lang, "user_angeltypes.delete.success", "User %s removed from %s.")

	message.SetString(lang, "user_angeltypes.update.add_title", "Add supporter rights")
	message.SetString(lang, "user_angeltypes.update.remove_title", "Remove supporter rights")
	message.SetString(lang, "user_angeltypes.update.add_question", "Do you really want to add supporter rights for %s to %s?")
	message.SetString(lang, "user_angeltypes.update.remove_question", "Do you really want to remove supporter rights for %s from %s?")
	message.SetString(lang, "user_angeltypes.update.forbidden", "You are not allowed to set supporter rights.")
	message.SetString(lang, "user_angeltypes.update.missing", "No supporter update given.")
	message.SetString(lang, "user_angeltypes.update.added", "Added supporter rights for %s to %s.")
	message.SetString(lang, "user_angeltypes.update.removed", "Removed supporter rights for %s from %s.")

	message.SetString(lang, "user_angeltypes.add.title", "Add user to angeltype")
	message.SetString(lang, "user_angeltypes.add.user", "User")
	message.SetString(lang, "user_angeltypes.add.auto_confirm", "Confirm user")
	message.SetString(lang, "user_angeltypes.add.exists", "User %s is already a %s.")
	message.SetString(lang, "user_angeltypes.add.success", "User %s added to %s.")

	message.SetString(lang, "user_angeltypes.join.title", "Become a %s")
	message.SetString(lang, "user_angeltypes.join.question", "Do you want to become a %s?")
	message.SetString(lang, "user_angeltypes.join.exists", "You are already a %s.")
	message.SetString(lang, "user_angeltypes.join.success", "You joined %s.")

	message.SetString(lang, "user_angeltypes.unconfirmed.links", "Angel types which need approvals:")
	message.Set(lang, "user_angeltypes.unconfirmed.hint", plural.Selectf(1, "%d",
		plural.One, "There is %d unconfirmed angeltype.",
		plural.Other, "There are %d unconfirmed angeltypes.",
	))

	// Notifications
	message.SetString(lang, "notification.angeltype.confirmed", "Your membership of %s has been confirmed")
	message.SetString(lang, "notification.angeltype.confirmed.body", "Hello %s, you have been confirmed as a member of %s.")
	message.SetString(lang, "notification.angeltype.added", "You have been added to %s")
	message.SetString(lang, "notification.angeltype.added.body", "Hello %s, you have been added to %s.")

	// Settings
	message.SetString(lang, "settings.title", "Settings")
	message.SetString(lang, "settings.profile", "Profile")
	message.SetString(lang, "settings.password", "Password")
	message.SetString(lang, "settings.language", "Language")
	message.SetString(lang, "settings.theme", "Theme")
	message.SetString(lang, "settings.oauth", "OAuth")

	message.SetString(lang, "settings.profile.pronoun", "Pronoun")
	message.SetString(lang, "settings.profile.first_name", "First name")
	message.SetString(lang, "settings.profile.last_name", "Last name")
	message.SetString(lang, "settings.profile.planned_arrival_date", "Planned date of arrival")
	message.SetString(lang, "settings.profile.planned_departure_date", "Planned date of departure")
	message.SetString(lang, "settings.profile.dect", "DECT")
	message.SetString(lang, "settings.profile.mobile", "Mobile")
	message.SetString(lang, "settings.profile.mobile_show", "Show my mobile number to other users")
	message.SetString(lang, "settings.profile.email", "E-Mail")
	message.SetString(lang, "settings.profile.email_shiftinfo", "Notify me about my shifts and angeltypes")
	message.SetString(lang, "settings.profile.email_news", "Notify me about news")
	message.SetString(lang, "settings.profile.email_human", "Allow heaven angels to contact me by e-mail")
	message.SetString(lang, "settings.profile.email_goody", "Send me information about goodies")
	message.SetString(lang, "settings.profile.shirt_size", "T-shirt size")
	message.SetString(lang, "settings.profile.success", "Settings saved.")
	message.SetString(lang, "settings.profile.planned_arrival_date.invalid", "Please enter your planned date of arrival. It should be after the buildup start date and before teardown end date.")
	message.SetString(lang, "settings.profile.planned_departure_date.invalid", "Please enter your planned date of departure. It should be after your planned arrival date and before teardown end date.")
	message.SetString(lang, "settings.profile.event_dates", "Buildup starts %s, teardown ends %s.")

	message.SetString(lang, "settings.password.current", "Current password")
	message.SetString(lang, "settings.password.new", "New password")
	message.SetString(lang, "settings.password.confirm", "Password confirmation")
	message.SetString(lang, "settings.password.success", "Password saved.")
	message.SetString(lang, "settings.theme.success", "Theme changed successfully.")
	message.SetString(lang, "settings.language.success", "Language changed.")
	message.SetString(lang, "settings.oauth.connected", "Connected")
	message.SetString(lang, "settings.oauth.connect", "Connect")

	// Validation
	message.SetString(lang, "validation.required", "This field is required.")
	message.SetString(lang, "validation.max", "This field must not be longer than %d characters.")
	message.SetString(lang, "validation.min", "This field must be at least %d characters long.")
	message.SetString(lang, "validation.email", "Please enter a valid e-mail address.")
	message.SetString(lang, "validation.date", "Please enter a valid date.")
	message.SetString(lang, "validation.in", "Please choose one of the listed values.")
	message.SetString(lang, "validation.password.confirmed", "Your passwords don't match.")
	message.SetString(lang, "validation.select_theme.required", "Please select a theme.")
	message.SetString(lang, "validation.select_language.required", "Please select a language.")

	message.SetString(lang, "error.not_found", "The page you requested could not be found.")
	message.SetString(lang, "error.internal", "Something went wrong. Please try again later.")
}
