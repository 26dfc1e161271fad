package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTag(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{locale: "en_US", want: language.AmericanEnglish},
		{locale: "de_DE", want: language.MustParse("de-DE")},
		{locale: "", want: language.English},
		{locale: "!!", want: language.English},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.locale, func(t *testing.T) {
			require.Equal(t, tt.want, Tag(tt.locale))
		})
	}
}

func TestT(t *testing.T) {
	require.Equal(t, "You joined Engel.", T("en_US", "user_angeltypes.join.success", "Engel"))
	require.Equal(t, "Du bist Engel beigetreten.", T("de_DE", "user_angeltypes.join.success", "Engel"))
	require.Equal(t, "Settings saved.", T("fr_FR", "settings.profile.success"))
	require.Equal(t, "unknown.key", T("en_US", "unknown.key"))
}

func TestPlural(t *testing.T) {
	require.Equal(t, "There is 1 unconfirmed angeltype.", T("en_US", "user_angeltypes.unconfirmed.hint", 1))
	require.Equal(t, "There are 3 unconfirmed angeltypes.", T("en_US", "user_angeltypes.unconfirmed.hint", 3))
	require.Equal(t, "Es gibt 2 unbestätigte Engeltypen.", T("de_DE", "user_angeltypes.unconfirmed.hint", 2))
}
