package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/yachurik/Income/internal/dialog"
	"github.com/yachurik/Income/internal/log"
	"github.com/yachurik/Income/internal/model"
	"github.com/yachurik/Income/internal/service"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	ledger *service.Ledger
	engine *dialog.Engine
	log    *log.Logger
}

func NewBot(token string, ledger *service.Ledger, engine *dialog.Engine, logger *log.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:    api,
		ledger: ledger,
		engine: engine,
		log:    logger.WithComponent("bot"),
	}, nil
}

// Start запускает long polling и блокируется до отмены контекста.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	b.log.Info("bot started", "username", b.api.Self.UserName)
	for update := range updates {
		b.handleUpdate(ctx, update)
	}
	return nil
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	message := update.Message
	logger := b.log.With("trace_id", uuid.NewString(), "user_id", message.From.ID)
	logger.Debug("update received", "command", message.Command())

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}
	b.handleMessage(ctx, message)
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.send(tgbotapi.NewMessage(message.Chat.ID, startText))
		b.send(tgbotapi.NewMessage(message.Chat.ID, infoText))
	case "info":
		b.send(tgbotapi.NewMessage(message.Chat.ID, infoText))
	case "records":
		b.handleRecords(ctx, message)
	case "new_income":
		b.startFlow(ctx, message, dialog.FlowNewIncome)
	case "new_expense":
		b.startFlow(ctx, message, dialog.FlowNewExpense)
	case "delete":
		b.startFlow(ctx, message, dialog.FlowDelete)
	case "update_income":
		b.startFlow(ctx, message, dialog.FlowUpdateIncome)
	case "update_expense":
		b.startFlow(ctx, message, dialog.FlowUpdateExpense)
	}
}

func (b *Bot) startFlow(ctx context.Context, message *tgbotapi.Message, flow dialog.Flow) {
	reply := b.engine.Start(ctx, message.From.ID, flow)
	b.sendReply(message.Chat.ID, reply)
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	reply, active := b.engine.Handle(ctx, message.From.ID, message.Text)
	if !active {
		b.send(tgbotapi.NewMessage(message.Chat.ID, infoHintText))
		return
	}
	b.sendReply(message.Chat.ID, reply)
}

func (b *Bot) handleRecords(ctx context.Context, message *tgbotapi.Message) {
	records, err := b.ledger.Records(ctx, message.From.ID)
	if err != nil {
		b.log.Error("list records", "err", err, "user_id", message.From.ID)
		b.send(tgbotapi.NewMessage(message.Chat.ID, recordsFailText))
		return
	}

	if len(records) == 0 {
		b.send(tgbotapi.NewMessage(message.Chat.ID, noRecordsText))
		return
	}

	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, formatRecord(rec))
	}
	b.send(tgbotapi.NewMessage(message.Chat.ID, strings.Join(lines, "\n")))
}

func formatRecord(rec model.Record) string {
	label := "доход"
	if rec.Kind == model.KindExpense {
		label = "расход"
	}
	return fmt.Sprintf("ID: %d | %s | %s | %s | %s",
		rec.ID, label, rec.Amount.String(), rec.Description,
		rec.Date.Format("2006-01-02 15:04:05"))
}

func (b *Bot) sendReply(chatID int64, reply dialog.Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.Keyboard {
		msg.ReplyMarkup = categoryKeyboard(reply.Options)
	} else if reply.Done {
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}
	b.send(msg)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.log.Error("send message", "err", err)
	}
}
