package bot

const startText = "Привет! Я бот-менеджер расходов.\n" +
	"Я помогу тебе отслеживать свои расходы и доходы.\n" +
	"Для списка доступных команд используй /info"

const infoText = `Вот команды которые могут тебе помочь:

/new_income - добавление нового дохода
/new_expense - добавление нового расхода
/records - отображение всех записей
/delete - удаление записи
/update_income - обновление дохода
/update_expense - обновление расхода`

const (
	infoHintText    = "Чтобы посмотреть команды, используй - /info"
	noRecordsText   = "У вас нет записей."
	recordsFailText = "Не удалось получить записи."
)
