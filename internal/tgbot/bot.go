// Package tgbot mirrors audit log lines to a telegram chat.
package tgbot

import (
	"fmt"

	"github.com/goserg/engelserver/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	bot    sender
	chatID int64
}

func New(cfg config.TgBot) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("telegram_apitoken: %w", err)
	}
	return &Bot{
		bot:    bot,
		chatID: cfg.ChatID,
	}, nil
}

func (b *Bot) Publish(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, text)
	msg.DisableWebPagePreview = true
	_, err := b.bot.Send(msg)
	return err
}
