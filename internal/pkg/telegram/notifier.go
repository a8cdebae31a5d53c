package telegram

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	tele "gopkg.in/telebot.v3"
)

// Notifier pushes payroll notifications to a Telegram chat. A nil Notifier
// is valid and does nothing, so the feature stays optional.
type Notifier struct {
	bot    *tele.Bot
	chatID int64
}

// NewNotifier connects the bot. Returns nil without error when token is
// empty, which disables notifications.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	if token == "" {
		return nil, nil
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &Notifier{bot: bot, chatID: chatID}, nil
}

// PayrollPaid announces a payroll flip to Paid. Failures are logged only;
// payroll processing never depends on delivery.
func (n *Notifier) PayrollPaid(employeeName string, employeeCode string, netSalary decimal.Decimal) {
	if n == nil {
		return
	}

	text := fmt.Sprintf("💰 Payroll paid\n%s (%s)\nNet salary: %s",
		employeeName, employeeCode, netSalary.StringFixed(2))

	if _, err := n.bot.Send(tele.ChatID(n.chatID), text); err != nil {
		slog.Error("failed to send telegram notification", "error", err)
	}
}
