package dialog

import (
	"maps"
	"slices"
	"strconv"
)

// Flow — именованный сценарий диалога: фиксированная последовательность шагов.
type Flow string

const (
	FlowNewIncome     Flow = "new_income"
	FlowNewExpense    Flow = "new_expense"
	FlowDelete        Flow = "delete"
	FlowUpdateIncome  Flow = "update_income"
	FlowUpdateExpense Flow = "update_expense"
)

// CancelButton — кнопка отмены; распознаётся только на шаге выбора категории.
const CancelButton = "Отмена 🚫"

type stepKind int

const (
	stepText     stepKind = iota // любой текст, проверка суммы остаётся хранилищу
	stepID                       // неотрицательное целое
	stepCategory                 // категория из актуального списка, с кнопкой отмены
)

type step struct {
	field  string
	kind   stepKind
	prompt string
	retry  string
}

var flows = map[Flow][]step{
	FlowNewIncome: {
		{field: "amount", kind: stepText, prompt: "Введите сумму дохода:"},
		{field: "description", kind: stepText, prompt: "Введите описание дохода:"},
	},
	FlowNewExpense: {
		{field: "amount", kind: stepText, prompt: "Введите сумму расхода:"},
		{field: "category", kind: stepCategory, prompt: "Введите категорию расхода:",
			retry: "Ты выбрал категорию не из списка, попробуй еще раз!"},
		{field: "description", kind: stepText, prompt: "Введите описание расхода:"},
	},
	FlowDelete: {
		{field: "record_id", kind: stepID, prompt: "Введите ID записи, которую хотите удалить:",
			retry: "ID записи должен быть числом. Попробуй еще раз."},
	},
	FlowUpdateIncome: {
		{field: "income_id", kind: stepID, prompt: "Введите ID дохода, который хотите обновить:",
			retry: "ID дохода должен быть числом. Попробуй еще раз."},
		{field: "amount", kind: stepText, prompt: "Введите новую сумму дохода:"},
		{field: "description", kind: stepText, prompt: "Введите новое описание дохода:"},
	},
	FlowUpdateExpense: {
		{field: "expense_id", kind: stepID, prompt: "Введите ID расхода, который хотите обновить:",
			retry: "ID расхода должен быть числом. Попробуй еще раз."},
		{field: "amount", kind: stepText, prompt: "Введите новую сумму расхода:"},
		{field: "category", kind: stepCategory, prompt: "Введите новую категорию расхода:",
			retry: "Ты выбрал категорию не из списка, попробуй еще раз!"},
		{field: "description", kind: stepText, prompt: "Введите новое описание расхода:"},
	},
}

// State — незавершённый диалог одного пользователя: сценарий, номер шага
// и накопленные поля будущей записи.
type State struct {
	Flow   Flow
	Step   int
	Fields map[string]string
}

func newState(flow Flow) State {
	return State{Flow: flow, Fields: make(map[string]string)}
}

func (st State) step() step {
	return flows[st.Flow][st.Step]
}

type outcome int

const (
	outNext   outcome = iota // шаг принят, спрашиваем следующий
	outRetry                 // ввод не прошёл проверку, повторяем тот же шаг
	outCommit                // все поля собраны, пора писать в хранилище
	outCancel                // пользователь прервал сценарий
)

// transition принимает одно входящее сообщение и возвращает новое состояние.
// Чистая функция: список категорий передаётся снаружи, входное состояние
// не меняется.
func transition(st State, input string, categories []string) (State, outcome) {
	cur := st.step()

	switch cur.kind {
	case stepID:
		if _, err := strconv.ParseUint(input, 10, 63); err != nil {
			return st, outRetry
		}
	case stepCategory:
		if input == CancelButton {
			return st, outCancel
		}
		if !slices.Contains(categories, input) {
			return st, outRetry
		}
	}

	next := State{Flow: st.Flow, Step: st.Step, Fields: maps.Clone(st.Fields)}
	if next.Fields == nil {
		next.Fields = make(map[string]string)
	}
	next.Fields[cur.field] = input

	if next.Step == len(flows[st.Flow])-1 {
		return next, outCommit
	}
	next.Step++
	return next, outNext
}
