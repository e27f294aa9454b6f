// Package telegram implements the chat.Messenger interface using the
// Telegram Bot API.
package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"cartbot/internal/chat"
)

// pollTimeout is the long-poll timeout in seconds for fetching updates.
const pollTimeout = 60

// apologyText is sent when a reply cannot be delivered even without
// formatting.
const apologyText = "Sorry, something went wrong while sending that message. Please try again."

// API is the subset of the Bot API client the adapter relies on.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Client implements chat.Messenger using the Telegram Bot API.
type Client struct {
	api API
}

// New connects to Telegram with the given token.
func New(token string, debug bool) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	bot.Debug = debug

	log.Printf("authorized as @%s", bot.Self.UserName)

	return &Client{api: bot}, nil
}

// NewWithAPI creates a client on a custom API implementation (for testing).
func NewWithAPI(a API) *Client {
	return &Client{api: a}
}

// Updates long-polls Telegram and converts raw updates into chat updates.
// The channel closes when ctx is cancelled. Updates that are neither a
// text message nor a button press are dropped.
func (c *Client) Updates(ctx context.Context) <-chan chat.Update {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	raw := c.api.GetUpdatesChan(u)

	out := make(chan chat.Update)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				c.api.StopReceivingUpdates()
				return
			case upd, ok := <-raw:
				if !ok {
					return
				}
				conv, ok := convert(upd)
				if !ok {
					continue
				}
				select {
				case out <- conv:
				case <-ctx.Done():
					c.api.StopReceivingUpdates()
					return
				}
			}
		}
	}()
	return out
}

// Send implements chat.Messenger. A message rejected with formatting is
// retried once without it; if that fails too, a generic apology is sent
// instead.
func (c *Client) Send(chatID int64, r chat.Reply) error {
	err := c.send(chatID, r, tgbotapi.ModeMarkdown)
	if err == nil {
		return nil
	}
	log.Printf("send rejected, retrying without formatting: %v", err)

	err = c.send(chatID, r, "")
	if err == nil {
		return nil
	}
	log.Printf("send failed, sending apology instead: %v", err)

	return c.send(chatID, chat.Reply{Text: apologyText}, "")
}

// Edit implements chat.Messenger, with the same formatting retry as Send
// but no apology fallback: the caller decides what to do with a message
// that cannot be edited.
func (c *Client) Edit(chatID int64, messageID int, r chat.Reply) error {
	err := c.edit(chatID, messageID, r, tgbotapi.ModeMarkdown)
	if err == nil {
		return nil
	}
	log.Printf("edit rejected, retrying without formatting: %v", err)

	return c.edit(chatID, messageID, r, "")
}

// Answer implements chat.Messenger.
func (c *Client) Answer(callbackID, text string) error {
	_, err := c.api.Request(tgbotapi.NewCallback(callbackID, text))
	return err
}

func (c *Client) send(chatID int64, r chat.Reply, parseMode string) error {
	msg := tgbotapi.NewMessage(chatID, r.Text)
	msg.ParseMode = parseMode
	if kb, ok := keyboard(r); ok {
		msg.ReplyMarkup = kb
	}
	_, err := c.api.Send(msg)
	return err
}

func (c *Client) edit(chatID int64, messageID int, r chat.Reply, parseMode string) error {
	msg := tgbotapi.NewEditMessageText(chatID, messageID, r.Text)
	msg.ParseMode = parseMode
	if kb, ok := keyboard(r); ok {
		msg.ReplyMarkup = &kb
	}
	_, err := c.api.Send(msg)
	return err
}

// convert maps a raw update to a chat update. The second return is false
// for update kinds the bot does not handle.
func convert(upd tgbotapi.Update) (chat.Update, bool) {
	if cb := upd.CallbackQuery; cb != nil && cb.Message != nil {
		return chat.Update{Callback: &chat.Callback{
			ID:        cb.ID,
			ChatID:    cb.Message.Chat.ID,
			MessageID: cb.Message.MessageID,
			Data:      cb.Data,
		}}, true
	}
	if msg := upd.Message; msg != nil && msg.Text != "" {
		return chat.Update{Message: &chat.Message{
			ChatID: msg.Chat.ID,
			Text:   msg.Text,
		}}, true
	}
	return chat.Update{}, false
}

func keyboard(r chat.Reply) (tgbotapi.InlineKeyboardMarkup, bool) {
	if len(r.Keyboard) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(r.Keyboard))
	for _, row := range r.Keyboard {
		btns := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		rows = append(rows, btns)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}
