package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.German

	message.SetString(lang, "nav.angeltypes", "Engeltypen")
	message.SetString(lang, "nav.settings", "Einstellungen")
	message.SetString(lang, "nav.signin", "Anmelden")
	message.SetString(lang, "nav.signup", "Registrieren")
	message.SetString(lang, "nav.signout", "Abmelden")
	message.SetString(lang, "form.save", "Speichern")
	message.SetString(lang, "form.yes", "Ja")
	message.SetString(lang, "form.cancel", "Abbrechen")

	message.SetString(lang, "auth.name", "Nick")
	message.SetString(lang, "auth.email", "E-Mail")
	message.SetString(lang, "auth.password", "Passwort")
	message.SetString(lang, "auth.login.error", "Es wurde kein Benutzer mit diesem Nick gefunden oder das Passwort ist falsch.")
	message.SetString(lang, "auth.signup.exists", "Dieser Nick ist bereits vergeben.")
	message.SetString(lang, "auth.signup.short", "Dein Passwort ist zu kurz (bitte mindestens %d Zeichen nutzen).")
	message.SetString(lang, "auth.signup.success", "Registrierung erfolgreich. Du kannst Dich jetzt anmelden.")
	message.SetString(lang, "auth.password.error", "Dein Passwort ist falsch. Bitte versuche es erneut.")
	message.SetString(lang, "auth.password_repeat", "Passwort wiederholen")
	message.SetString(lang, "auth.signup.name_empty", "Bitte gib einen Nick an.")
	message.SetString(lang, "auth.signup.name_invalid", "Dein Nick muss mit einem lateinischen Buchstaben beginnen und darf nur Buchstaben, Ziffern, Punkte, Bindestriche und Unterstriche enthalten.")
	message.SetString(lang, "auth.signup.email_empty", "Bitte gib deine E-Mail-Adresse an.")
	message.SetString(lang, "auth.signup.password_empty", "Bitte gib ein Passwort an.")

	message.SetString(lang, "angeltypes.title", "Engeltypen")
	message.SetString(lang, "angeltypes.members", "Mitglieder")
	message.SetString(lang, "angeltypes.unconfirmed", "Unbestätigt")
	message.SetString(lang, "angeltypes.supporter", "Supporter")
	message.SetString(lang, "angeltypes.restricted", "Benötigt Bestätigung")
	message.SetString(lang, "angeltypes.join", "Beitreten")
	message.SetString(lang, "angeltypes.add", "Hinzufügen")
	message.SetString(lang, "angeltypes.confirm", "Bestätigen")
	message.SetString(lang, "angeltypes.deny", "Ablehnen")
	message.SetString(lang, "angeltypes.remove", "Entfernen")
	message.SetString(lang, "angeltypes.add_supporter", "Supporter-Rechte hinzufügen")
	message.SetString(lang, "angeltypes.remove_supporter", "Supporter-Rechte entfernen")
	message.SetString(lang, "angeltypes.confirm_all", "Alle bestätigen")
	message.SetString(lang, "angeltypes.deny_all", "Alle ablehnen")
	message.SetString(lang, "angeltypes.leave", "Verlassen")
	message.SetString(lang, "angeltypes.none", "Es gibt noch keine Engeltypen.")

	message.SetString(lang, "angeltype.not_found", "Engeltyp existiert nicht.")
	message.SetString(lang, "user_angeltype.not_found", "Engeltyp-Zuordnung existiert nicht.")
	message.SetString(lang, "user.not_found", "Benutzer existiert nicht.")

	message.SetString(lang, "user_angeltypes.delete_all.title", "Alle Benutzer ablehnen")
	message.SetString(lang, "user_angeltypes.delete_all.question", "Möchtest Du wirklich alle Benutzer für %s ablehnen?")
	message.SetString(lang, "user_angeltypes.delete_all.forbidden", "Du darfst nicht alle Benutzer dieses Engeltyps entfernen.")
	message.SetString(lang, "user_angeltypes.delete_all.success", "Alle Benutzer für Engeltyp %s abgelehnt.")

	message.SetString(lang, "user_angeltypes.confirm_all.title", "Alle Benutzer bestätigen")
	message.SetString(lang, "user_angeltypes.confirm_all.question", "Möchtest Du wirklich alle Benutzer für %s bestätigen?")
	message.SetString(lang, "user_angeltypes.confirm_all.forbidden", "Du darfst nicht alle Benutzer dieses Engeltyps bestätigen.")
	message.SetString(lang, "user_angeltypes.confirm_all.success", "Alle Benutzer für Engeltyp %s bestätigt.")

	message.SetString(lang, "user_angeltypes.confirm.title", "Engeltyp für Benutzer bestätigen")
	message.SetString(lang, "user_angeltypes.confirm.question", "Möchtest Du wirklich %s für %s bestätigen?")
	message.SetString(lang, "user_angeltypes.confirm.forbidden", "Du darfst diesen Engeltyp des Benutzers nicht bestätigen.")
	message.SetString(lang, "user_angeltypes.confirm.success", "%s für Engeltyp %s bestätigt.")

	message.SetString(lang, "user_angeltypes.delete.title", "Engeltyp entfernen")
	message.SetString(lang, "user_angeltypes.delete.question", "Möchtest Du wirklich %s von %s entfernen?")
	message.SetString(lang, "user_angeltypes.delete.forbidden", "Du darfst diesen Engeltyp des Benutzers nicht entfernen.")
	message.SetString(lang, "user_angeltypes.delete.success", "Benutzer %s von %s entfernt.")

	message.SetString(lang, "user_angeltypes.update.add_title", "Supporter-Rechte hinzufügen")
	message.SetString(lang, "user_angeltypes.update.remove_title", "Supporter-Rechte entfernen")
	message.SetString(lang, "user_angeltypes.update.add_question", "Möchtest Du %s wirklich Supporter-Rechte für %s geben?")
	message.SetString(lang, "user_angeltypes.update.remove_question", "Möchtest Du %s wirklich die Supporter-Rechte für %s entziehen?")
	message.SetString(lang, "user_angeltypes.update.forbidden", "Du darfst keine Supporter-Rechte vergeben.")
	message.SetString(lang, "user_angeltypes.update.missing", "Keine Supporter-Änderung angegeben.")
	message.SetString(lang, "user_angeltypes.update.added", "Supporter-Rechte für %s zu %s hinzugefügt.")
	message.SetString(lang, "user_angeltypes.update.removed", "Supporter-Rechte für %s von %s entfernt.")

	message.SetString(lang, "user_angeltypes.add.title", "Benutzer zu Engeltyp hinzufügen")
	message.SetString(lang, "user_angeltypes.add.user", "Benutzer")
	message.SetString(lang, "user_angeltypes.add.auto_confirm", "Benutzer bestätigen")
	message.SetString(lang, "user_angeltypes.add.exists", "Benutzer %s ist bereits %s.")
	message.SetString(lang, "user_angeltypes.add.success", "Benutzer %s zu %s hinzugefügt.")

	message.SetString(lang, "user_angeltypes.join.title", "Werde ein %s")
	message.SetString(lang, "user_angeltypes.join.question", "Möchtest Du ein %s werden?")
	message.SetString(lang, "user_angeltypes.join.exists", "Du bist bereits %s.")
	message.SetString(lang, "user_angeltypes.join.success", "Du bist %s beigetreten.")

	message.SetString(lang, "user_angeltypes.unconfirmed.links", "Engeltypen, die Bestätigungen benötigen:")
	message.Set(lang, "user_angeltypes.unconfirmed.hint", plural.Selectf(1, "%d",
		plural.One, "Es gibt %d unbestätigten Engeltyp.",
		plural.Other, "Es gibt %d unbestätigte Engeltypen.",
	))

	message.SetString(lang, "notification.angeltype.confirmed", "Deine Mitgliedschaft bei %s wurde bestätigt")
	message.SetString(lang, "notification.angeltype.confirmed.body", "Hallo %s, Du wurdest als Mitglied von %s bestätigt.")
	message.SetString(lang, "notification.angeltype.added", "Du wurdest zu %s hinzugefügt")
	message.SetString(lang, "notification.angeltype.added.body", "Hallo %s, Du wurdest zu %s hinzugefügt.")

	message.SetString(lang, "settings.title", "Einstellungen")
	message.SetString(lang, "settings.profile", "Profil")
	message.SetString(lang, "settings.password", "Passwort")
	message.SetString(lang, "settings.language", "Sprache")
	message.SetString(lang, "settings.theme", "Theme")
	message.SetString(lang, "settings.oauth", "OAuth")

	message.SetString(lang, "settings.profile.pronoun", "Pronomen")
	message.SetString(lang, "settings.profile.first_name", "Vorname")
	message.SetString(lang, "settings.profile.last_name", "Nachname")
	message.SetString(lang, "settings.profile.planned_arrival_date", "Geplanter Ankunftstag")
	message.SetString(lang, "settings.profile.planned_departure_date", "Geplanter Abreisetag")
	message.SetString(lang, "settings.profile.dect", "DECT")
	message.SetString(lang, "settings.profile.mobile", "Handy")
	message.SetString(lang, "settings.profile.mobile_show", "Handynummer für andere Benutzer sichtbar machen")
	message.SetString(lang, "settings.profile.email", "E-Mail")
	message.SetString(lang, "settings.profile.email_shiftinfo", "Benachrichtige mich über meine Schichten und Engeltypen")
	message.SetString(lang, "settings.profile.email_news", "Benachrichtige mich über Neuigkeiten")
	message.SetString(lang, "settings.profile.email_human", "Himmelsengel dürfen mich per E-Mail kontaktieren")
	message.SetString(lang, "settings.profile.email_goody", "Informiere mich über Goodies")
	message.SetString(lang, "settings.profile.shirt_size", "T-Shirt-Größe")
	message.SetString(lang, "settings.profile.success", "Einstellungen gespeichert.")
	message.SetString(lang, "settings.profile.planned_arrival_date.invalid", "Bitte gib Dein geplantes Ankunftsdatum an. Es sollte nach dem Aufbaubeginn und vor dem Abbauende liegen.")
	message.SetString(lang, "settings.profile.planned_departure_date.invalid", "Bitte gib Dein geplantes Abreisedatum an. Es sollte nach Deinem Ankunftsdatum und vor dem Abbauende liegen.")
	message.SetString(lang, "settings.profile.event_dates", "Aufbau beginnt am %s, Abbau endet am %s.")

	message.SetString(lang, "settings.password.current", "Aktuelles Passwort")
	message.SetString(lang, "settings.password.new", "Neues Passwort")
	message.SetString(lang, "settings.password.confirm", "Passwort wiederholen")
	message.SetString(lang, "settings.password.success", "Passwort gespeichert.")
	message.SetString(lang, "settings.theme.success", "Theme erfolgreich geändert.")
	message.SetString(lang, "settings.language.success", "Sprache geändert.")
	message.SetString(lang, "settings.oauth.connected", "Verbunden")
	message.SetString(lang, "settings.oauth.connect", "Verbinden")

	message.SetString(lang, "validation.required", "Dieses Feld ist erforderlich.")
	message.SetString(lang, "validation.max", "Dieses Feld darf nicht länger als %d Zeichen sein.")
	message.SetString(lang, "validation.min", "Dieses Feld muss mindestens %d Zeichen lang sein.")
	message.SetString(lang, "validation.email", "Bitte gib eine gültige E-Mail-Adresse an.")
	message.SetString(lang, "validation.date", "Bitte gib ein gültiges Datum an.")
	message.SetString(lang, "validation.in", "Bitte wähle einen der angebotenen Werte.")
	message.SetString(lang, "validation.password.confirmed", "Deine Passwörter stimmen nicht überein.")
	message.SetString(lang, "validation.select_theme.required", "Bitte wähle ein Theme.")
	message.SetString(lang, "validation.select_language.required", "Bitte wähle eine Sprache.")

	message.SetString(lang, "error.not_found", "Die angeforderte Seite wurde nicht gefunden.")
	message.SetString(lang, "error.internal", "Etwas ist schiefgelaufen. Bitte versuche es später erneut.")
}
