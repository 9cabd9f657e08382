package main

import (
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrTelegramDisabled = errors.New("telegram notifications are not configured")

type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramService forwards lookup summaries to the configured chats. The bot
// is only connected on the first send.
type TelegramService struct {
	apiKey         string
	client         *http.Client
	chatIDs        []int64
	loggingService *LoggingService

	senderMutex sync.Mutex
	sender      botSender
}

func NewTelegramService(apiKey string, proxyDSN string, initialChatIDs string, loggingService *LoggingService) (*TelegramService, error) {
	transport := &http.Transport{}
	if proxyDSN != "" {
		proxyURL, err := url.Parse(proxyDSN)
		if err != nil {
			return nil, fmt.Errorf("telegram service proxy dsn error: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	service := &TelegramService{
		apiKey: apiKey,
		client: &http.Client{
			Transport: transport,
			Timeout:   10 * time.Second,
		},
		loggingService: loggingService,
	}

	// comma-separated
	for _, chatIDStr := range strings.Split(initialChatIDs, ",") {
		chatIDStr = strings.TrimSpace(chatIDStr)
		if chatIDStr == "" {
			continue
		}
		chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			slog.Warn("invalid telegram chat id", "value", chatIDStr)
			continue
		}
		service.chatIDs = append(service.chatIDs, chatID)
	}

	return service, nil
}

func (t *TelegramService) Enabled() bool {
	return t.apiKey != "" && len(t.chatIDs) > 0
}

func (t *TelegramService) GetRegisteredChats() []int64 {
	return append([]int64(nil), t.chatIDs...)
}

func (t *TelegramService) bot() (botSender, error) {
	t.senderMutex.Lock()
	defer t.senderMutex.Unlock()

	if t.sender != nil {
		return t.sender, nil
	}
	if t.apiKey == "" {
		return nil, ErrTelegramDisabled
	}
	bot, err := tgbotapi.NewBotAPIWithClient(t.apiKey, tgbotapi.APIEndpoint, t.client)
	if err != nil {
		return nil, fmt.Errorf("error connect telegram bot: %w", err)
	}
	t.sender = bot
	return bot, nil
}

// SendMessage sends an HTML message to every chat. A chat that rejects the
// HTML gets the same text once more without formatting.
func (t *TelegramService) SendMessage(resourceType, resourceID, text string) error {
	if len(t.chatIDs) == 0 {
		return ErrTelegramDisabled
	}
	bot, err := t.bot()
	if err != nil {
		return err
	}

	var errs []error
	for _, chatID := range t.chatIDs {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		msg.DisableWebPagePreview = true

		_, sendErr := bot.Send(msg)
		if sendErr != nil {
			slog.Warn("telegram html message rejected, retrying as plain text", "chat_id", chatID, "error", sendErr)
			_, sendErr = bot.Send(tgbotapi.NewMessage(chatID, plainText(text)))
		}
		if sendErr != nil {
			errs = append(errs, fmt.Errorf("chat %d: %w", chatID, sendErr))
		}

		if t.loggingService != nil {
			if err := t.loggingService.LogNotification(resourceType, resourceID, chatID, sendErr); err != nil {
				slog.Warn("failed to log notification", "chat_id", chatID, "error", err)
			}
		}
	}
	return errors.Join(errs...)
}

var (
	htmlLinkPattern = regexp.MustCompile(`<a\s+href="([^"]*)"\s*>(.*?)</a>`)
	htmlTagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// plainText turns a Telegram HTML message into readable text: links become
// "label (url)", other tags are dropped and entities are decoded.
func plainText(message string) string {
	message = htmlLinkPattern.ReplaceAllString(message, "$2 ($1)")
	message = htmlTagPattern.ReplaceAllString(message, "")
	return html.UnescapeString(message)
}
