package dialog

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/yachurik/Income/internal/log"
	"github.com/yachurik/Income/internal/service"
)

const (
	canceledText = "Чтобы посмотреть команды, используй - /info"
	failedText   = "Операция не удалась, попробуйте позже."
)

// Reply — одно исходящее сообщение диалога.
type Reply struct {
	Text     string
	Options  []string // варианты для клавиатуры категорий
	Keyboard bool     // показать клавиатуру категорий с кнопкой отмены
	Done     bool     // сценарий завершён, клавиатуру можно убрать
}

// Engine хранит состояния диалогов по id пользователя и двигает их
// по одному входящему сообщению за раз.
type Engine struct {
	ledger *service.Ledger
	log    *log.Logger

	mu     sync.Mutex
	states map[int64]State
}

func NewEngine(ledger *service.Ledger, logger *log.Logger) *Engine {
	return &Engine{
		ledger: ledger,
		log:    logger.WithComponent("dialog"),
		states: make(map[int64]State),
	}
}

// Start начинает сценарий, молча вытесняя незавершённый, и возвращает
// первый вопрос.
func (e *Engine) Start(ctx context.Context, userID int64, flow Flow) Reply {
	st := newState(flow)
	e.mu.Lock()
	e.states[userID] = st
	e.mu.Unlock()
	return e.ask(ctx, st, false)
}

// Handle обрабатывает очередное сообщение. Второй результат false —
// у пользователя нет активного сценария и сообщение не наше.
func (e *Engine) Handle(ctx context.Context, userID int64, text string) (Reply, bool) {
	e.mu.Lock()
	st, ok := e.states[userID]
	e.mu.Unlock()
	if !ok {
		return Reply{}, false
	}

	var categories []string
	if st.step().kind == stepCategory {
		cats, err := e.ledger.ExpenseCategories(ctx)
		if err != nil {
			e.log.Error("list expense categories", "err", err, "user_id", userID)
			e.clear(userID)
			return Reply{Text: failedText, Done: true}, true
		}
		categories = cats
	}

	next, out := transition(st, text, categories)
	switch out {
	case outRetry:
		return e.ask(ctx, st, true), true
	case outCancel:
		e.clear(userID)
		return Reply{Text: canceledText, Done: true}, true
	case outCommit:
		e.clear(userID)
		return e.commit(ctx, userID, next), true
	default:
		e.mu.Lock()
		e.states[userID] = next
		e.mu.Unlock()
		return e.ask(ctx, next, false), true
	}
}

func (e *Engine) clear(userID int64) {
	e.mu.Lock()
	delete(e.states, userID)
	e.mu.Unlock()
}

// ask формирует вопрос текущего шага; на шаге категории добавляет
// актуальный список вариантов.
func (e *Engine) ask(ctx context.Context, st State, isRetry bool) Reply {
	cur := st.step()
	text := cur.prompt
	if isRetry && cur.retry != "" {
		text = cur.retry
	}

	reply := Reply{Text: text}
	if cur.kind == stepCategory {
		reply.Keyboard = true
		cats, err := e.ledger.ExpenseCategories(ctx)
		if err != nil {
			// Покажем клавиатуру только с отменой: выбрать будет нечего,
			// но сценарий можно прервать
			e.log.Error("list expense categories", "err", err)
		} else {
			reply.Options = cats
		}
	}
	return reply
}

// commit — терминальный переход: ровно один вызов хранилища и ровно одно
// сообщение об итоге. Повторов нет, при ошибке состояние уже снято.
func (e *Engine) commit(ctx context.Context, userID int64, st State) Reply {
	f := st.Fields
	done := func(text string) Reply { return Reply{Text: text, Done: true} }

	switch st.Flow {
	case FlowNewIncome:
		if err := e.ledger.AddIncome(ctx, userID, f["amount"], f["description"]); err != nil {
			e.log.Error("save income", "err", err, "user_id", userID)
			return done("Не удалось сохранить доход")
		}
		return done("Доход сохранен")

	case FlowNewExpense:
		if err := e.ledger.AddExpense(ctx, userID, f["amount"], f["category"], f["description"]); err != nil {
			e.log.Error("save expense", "err", err, "user_id", userID)
			return done("Не удалось добавить расход.")
		}
		return done("Расход успешно добавлен.")

	case FlowDelete:
		id := fieldID(f, "record_id")
		ok, err := e.ledger.Delete(ctx, id)
		if err != nil {
			e.log.Error("delete record", "err", err, "user_id", userID, "record_id", id)
			return done(failedText)
		}
		if !ok {
			return done(fmt.Sprintf("Не удалось найти запись с ID %d.", id))
		}
		return done(fmt.Sprintf("Запись с ID %d успешно удалена.", id))

	case FlowUpdateIncome:
		id := fieldID(f, "income_id")
		ok, err := e.ledger.UpdateIncome(ctx, userID, f["amount"], f["description"], id)
		if err != nil {
			e.log.Error("update income", "err", err, "user_id", userID, "income_id", id)
			return done(failedText)
		}
		if !ok {
			return done(fmt.Sprintf("Не удалось обновить доход с ID %d.", id))
		}
		return done(fmt.Sprintf("Доход с ID %d успешно обновлен.", id))

	case FlowUpdateExpense:
		id := fieldID(f, "expense_id")
		ok, err := e.ledger.UpdateExpense(ctx, userID, f["amount"], f["category"], f["description"], id)
		if err != nil {
			e.log.Error("update expense", "err", err, "user_id", userID, "expense_id", id)
			return done(failedText)
		}
		if !ok {
			return done(fmt.Sprintf("Не удалось обновить расход с ID %d.", id))
		}
		return done(fmt.Sprintf("Расход с ID %d успешно обновлен.", id))
	}

	return done(failedText)
}

// fieldID читает id, уже прошедший проверку шага stepID.
func fieldID(fields map[string]string, key string) int64 {
	id, _ := strconv.ParseInt(fields[key], 10, 64)
	return id
}
