// Package bot serves canteen listings and daily menus over Telegram.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"mensahub/internal/menu"
	"mensahub/internal/provider"
)

type Bot struct {
	api       *tgbotapi.BotAPI
	providers *provider.Service
	menus     *menu.Service
	location  string
}

// New connects to the Telegram API. The location scopes which canteens the
// bot lists and searches.
func New(
	token string,
	providers *provider.Service,
	menus *menu.Service,
	location string,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}

	slog.Info("telegram bot authorized", "username", api.Self.UserName)

	return &Bot{
		api:       api,
		providers: providers,
		menus:     menus,
		location:  location,
	}, nil
}

// Start consumes updates until the context is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil {
		return
	}
	b.handleMessage(ctx, update.Message)
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !msg.IsCommand() {
		b.reply(msg.Chat.ID, "Send /help for the list of commands.")
		return
	}

	switch msg.Command() {
	case "start", "help":
		b.reply(msg.Chat.ID, helpText)
	case "mensen":
		b.handleProviderList(ctx, msg.Chat.ID)
	case "menu":
		b.handleMenu(ctx, msg.Chat.ID, msg.CommandArguments())
	default:
		b.reply(msg.Chat.ID, "Unknown command. Send /help for the list of commands.")
	}
}

const helpText = `🍽 *Mensa menus on Telegram*

/mensen - list canteens and their opening status
/menu <name> - today's menu, e.g. /menu studentenhaus`

// --------------------------------------------------
// Commands
// --------------------------------------------------

func (b *Bot) handleProviderList(ctx context.Context, chatID int64) {
	providers, err := b.providers.List(ctx, b.location, "")
	if err != nil {
		slog.Error("bot: listing providers failed", "error", err)
		b.reply(chatID, "Could not load the canteen list, please try again later.")
		return
	}

	b.reply(chatID, FormatProviders(providers))
}

func (b *Bot) handleMenu(ctx context.Context, chatID int64, query string) {
	if query == "" {
		b.reply(chatID, "Which canteen? Try /menu studentenhaus")
		return
	}

	providers, err := b.providers.List(ctx, b.location, "")
	if err != nil {
		slog.Error("bot: listing providers failed", "error", err)
		b.reply(chatID, "Could not load the canteen list, please try again later.")
		return
	}

	p := MatchProvider(providers, query)
	if p == nil {
		b.reply(chatID, fmt.Sprintf("No canteen matches %q. Send /mensen for the full list.", query))
		return
	}

	today, _ := b.menus.DefaultRange()
	menus, err := b.menus.MenusForProvider(ctx, p.ID, today, today)
	if err != nil {
		slog.Error("bot: fetching menus failed", "provider", p.ID, "error", err)
		b.reply(chatID, "Could not load the menu, please try again later.")
		return
	}

	b.reply(chatID, FormatMenus(p, menus))
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		slog.Error("bot: sending message failed", "error", err)
	}
}
