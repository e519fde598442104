package infrastructure

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier forwards widget conversations to a business's Telegram
// chat so admins see visitor questions without watching the dashboard.
type TelegramNotifier struct {
	Bot *tgbotapi.BotAPI
}

func NewTelegramNotifier(token string) *TelegramNotifier {
	if token == "" {
		return &TelegramNotifier{Bot: nil}
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		fmt.Printf("Warning: Telegram Bot Token issue: %v. Notifications disabled.\n", err)
		return &TelegramNotifier{Bot: nil}
	}
	return &TelegramNotifier{Bot: bot}
}

// Enabled reports whether the notifier has a working bot behind it.
func (t *TelegramNotifier) Enabled() bool {
	return t.Bot != nil
}

func (t *TelegramNotifier) NotifyVisitorMessage(chatID int64, businessName, visitorText, botReply string) error {
	if t.Bot == nil {
		return nil
	}
	text := fmt.Sprintf("💬 *%s* — new widget message\n\n👤 %s\n🤖 %s", businessName, visitorText, botReply)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	_, err := t.Bot.Send(msg)
	return err
}
