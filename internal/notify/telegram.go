// Package notify announces confirmed catalog changes to a Telegram channel.
package notify

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"bazar-dor-api/internal/i18n"
	"bazar-dor-api/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of *tgbotapi.BotAPI the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram posts one bilingual message per created or updated product.
// Sends run in their own goroutine so a slow Bot API never holds up an
// admin request.
type Telegram struct {
	sender Sender
	chatID int64
	wg     sync.WaitGroup
}

// NewTelegram connects to the Bot API with token.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	log.Printf("Telegram notifier authorized as @%s", bot.Self.UserName)
	return NewTelegramWithSender(bot, chatID), nil
}

func NewTelegramWithSender(sender Sender, chatID int64) *Telegram {
	return &Telegram{sender: sender, chatID: chatID}
}

// Publish implements service.Publisher.
func (t *Telegram) Publish(event model.CatalogEvent) {
	text, ok := FormatEvent(event)
	if !ok {
		return
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		msg := tgbotapi.NewMessage(t.chatID, text)
		if _, err := t.sender.Send(msg); err != nil {
			log.Printf("telegram: send %s for %s: %v", event.Action, event.ProductID, err)
		}
	}()
}

// Wait blocks until every queued send has finished.
func (t *Telegram) Wait() {
	t.wg.Wait()
}

// FormatEvent renders the channel post for event. Deletions and events
// without a product are not announced.
func FormatEvent(event model.CatalogEvent) (string, bool) {
	p := event.Product
	if p == nil {
		return "", false
	}

	var title string
	switch event.Action {
	case model.ActionProductCreated:
		title = headline(i18n.KeyProductCreated)
	case model.ActionProductUpdated:
		title = trendIcon(p.Trend) + " " + headline(i18n.KeyProductUpdated)
	default:
		return "", false
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, lang := range []model.Language{model.LangBN, model.LangEN} {
		b.WriteString(p.Name.Get(lang))
		b.WriteString(": ")
		b.WriteString(p.PriceLabel(lang))
		if event.Action == model.ActionProductUpdated {
			if change := p.PriceChangeLabel(); change != "" {
				b.WriteString(" (" + change + ")")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(model.DisplayDate(p.LastUpdated))
	return b.String(), true
}

func headline(key string) string {
	return i18n.T(model.LangBN, key) + " | " + i18n.T(model.LangEN, key)
}

func trendIcon(t model.Trend) string {
	switch t {
	case model.TrendUp:
		return "📈"
	case model.TrendDown:
		return "📉"
	default:
		return "➖"
	}
}
