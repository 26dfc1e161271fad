package tgbot

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

type senderFunc func(c tgbotapi.Chattable) (tgbotapi.Message, error)

func (f senderFunc) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	return f(c)
}

func TestPublish(t *testing.T) {
	var got tgbotapi.MessageConfig
	b := &Bot{
		chatID: 42,
		bot: senderFunc(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
			got = c.(tgbotapi.MessageConfig)
			return tgbotapi.Message{}, nil
		}),
	}
	require.NoError(t, b.Publish("alice joined Engel"))
	require.Equal(t, int64(42), got.ChatID)
	require.Equal(t, "alice joined Engel", got.Text)

	b.bot = senderFunc(func(tgbotapi.Chattable) (tgbotapi.Message, error) {
		return tgbotapi.Message{}, errors.New("flood")
	})
	require.Error(t, b.Publish("x"))
}
