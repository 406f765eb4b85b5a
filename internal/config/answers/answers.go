package answers

const (
	StatusChanged  = "Изменился статус проверки работы \"%s\". %s"
	ProgramFailure = "Сбой в работе программы: %v"
)

const (
	VerdictApproved  = "Работа проверена: ревьюеру всё понравилось. Ура!"
	VerdictReviewing = "Работа взята на проверку ревьюером."
	VerdictRejected  = "Работа проверена: у ревьюера есть замечания."
)
