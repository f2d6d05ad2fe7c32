package telegram

import (
	"context"
	"errors"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrDisabled = errors.New("telegram notifications are disabled")

// Sender is the part of *tgbotapi.BotAPI the client uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Client posts HTML messages to one chat. A zero Client is disabled.
type Client struct {
	api    Sender
	chatID int64
}

// NewClient connects to the Bot API. Without a token or chat id it
// returns a disabled client and no error.
func NewClient(token string, chatID int64) (*Client, error) {
	if token == "" || chatID == 0 {
		return &Client{}, nil
	}
	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{Timeout: 10 * time.Second})
	if err != nil {
		return &Client{}, err
	}
	return &Client{api: api, chatID: chatID}, nil
}

func NewClientWithSender(api Sender, chatID int64) *Client {
	return &Client{api: api, chatID: chatID}
}

func (c *Client) Enabled() bool {
	return c != nil && c.api != nil && c.chatID != 0
}

// SendMessage delivers text with HTML formatting. The Bot API call itself
// is not cancellable, so ctx is only checked before sending.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(c.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	_, err := c.api.Send(msg)
	return err
}

// Escape makes s safe inside an HTML-mode message.
func Escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}
