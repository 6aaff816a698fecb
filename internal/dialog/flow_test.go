package dialog

import (
	"testing"
)

func TestTransitionTextSteps(t *testing.T) {
	st := newState(FlowNewIncome)

	next, out := transition(st, "100", nil)
	if out != outNext {
		t.Fatalf("amount step: got outcome %d, want outNext", out)
	}
	if next.Step != 1 {
		t.Fatalf("got step %d, want 1", next.Step)
	}
	if next.Fields["amount"] != "100" {
		t.Fatalf("amount = %q, want 100", next.Fields["amount"])
	}

	// Последний шаг сценария завершается коммитом
	final, out := transition(next, "зарплата", nil)
	if out != outCommit {
		t.Fatalf("description step: got outcome %d, want outCommit", out)
	}
	if final.Fields["amount"] != "100" || final.Fields["description"] != "зарплата" {
		t.Fatalf("accumulated fields = %v", final.Fields)
	}
}

func TestTransitionAmountNotValidated(t *testing.T) {
	// Сумма на этом уровне не проверяется: ошибку вернёт хранилище
	_, out := transition(newState(FlowNewIncome), "не число", nil)
	if out != outNext {
		t.Fatalf("got outcome %d, want outNext", out)
	}
}

func TestTransitionIDValidation(t *testing.T) {
	tests := []struct {
		input string
		want  outcome
	}{
		{"7", outCommit}, // у Delete единственный шаг
		{"0", outCommit},
		{"abc", outRetry},
		{"-5", outRetry},
		{"1.5", outRetry},
		{"", outRetry},
		{"7 8", outRetry},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			st := newState(FlowDelete)
			next, out := transition(st, tt.input, nil)
			if out != tt.want {
				t.Fatalf("got outcome %d, want %d", out, tt.want)
			}
			if out == outRetry && next.Step != st.Step {
				t.Fatal("retry advanced the step")
			}
		})
	}
}

func TestTransitionCategoryValidation(t *testing.T) {
	categories := []string{"Продукты", "Транспорт"}

	st := newState(FlowNewExpense)
	st, out := transition(st, "50", categories)
	if out != outNext {
		t.Fatalf("amount step: got outcome %d", out)
	}

	// Не из списка — повтор того же шага
	same, out := transition(st, "Кино", categories)
	if out != outRetry {
		t.Fatalf("got outcome %d, want outRetry", out)
	}
	if same.Step != st.Step {
		t.Fatal("retry advanced the step")
	}

	// Из списка — дальше
	next, out := transition(st, "Продукты", categories)
	if out != outNext {
		t.Fatalf("got outcome %d, want outNext", out)
	}
	if next.Fields["category"] != "Продукты" {
		t.Fatalf("category = %q", next.Fields["category"])
	}
}

func TestTransitionEmptyCatalog(t *testing.T) {
	st := newState(FlowNewExpense)
	st, _ = transition(st, "50", nil)

	// Пустой каталог: любой ввод не проходит проверку
	for _, input := range []string{"Продукты", "что угодно", ""} {
		if _, out := transition(st, input, nil); out != outRetry {
			t.Fatalf("input %q: got outcome %d, want outRetry", input, out)
		}
	}

	// Отмена работает и на пустом каталоге
	if _, out := transition(st, CancelButton, nil); out != outCancel {
		t.Fatal("cancel not honored on empty catalog")
	}
}

func TestTransitionCancelOnlyAtCategoryStep(t *testing.T) {
	// Вне шага категории кнопка отмены — обычный текст
	next, out := transition(newState(FlowNewIncome), CancelButton, nil)
	if out != outNext {
		t.Fatalf("got outcome %d, want outNext", out)
	}
	if next.Fields["amount"] != CancelButton {
		t.Fatalf("amount = %q", next.Fields["amount"])
	}
}

func TestTransitionDoesNotMutateState(t *testing.T) {
	st := newState(FlowNewExpense)
	st, _ = transition(st, "50", nil)

	before := len(st.Fields)
	next, _ := transition(st, "Продукты", []string{"Продукты"})
	if len(st.Fields) != before {
		t.Fatal("transition mutated the input state")
	}
	if _, ok := st.Fields["category"]; ok {
		t.Fatal("category leaked into the old state")
	}
	if next.Fields["category"] != "Продукты" {
		t.Fatal("category missing from the new state")
	}
}

func TestUpdateExpenseFlowOrder(t *testing.T) {
	categories := []string{"Продукты"}
	st := newState(FlowUpdateExpense)

	inputs := []struct {
		text string
		want outcome
	}{
		{"3", outNext},        // expense_id
		{"99.90", outNext},    // новая сумма
		{"Продукты", outNext}, // категория
		{"ужин", outCommit},   // описание
	}
	for i, in := range inputs {
		var out outcome
		st, out = transition(st, in.text, categories)
		if out != in.want {
			t.Fatalf("step %d: got outcome %d, want %d", i, out, in.want)
		}
	}

	want := map[string]string{
		"expense_id":  "3",
		"amount":      "99.90",
		"category":    "Продукты",
		"description": "ужин",
	}
	for k, v := range want {
		if st.Fields[k] != v {
			t.Errorf("field %s = %q, want %q", k, st.Fields[k], v)
		}
	}
}
