package domain

const (
	HomeworkNameField = "homework_name"
	StatusField       = "status"
)

// Homework is a single record of the homeworks list exactly as the API sent it.
type Homework map[string]any

func (h Homework) field(key string) (string, bool) {
	raw, ok := h[key]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	return value, ok
}

func (h Homework) Name() (string, bool) {
	return h.field(HomeworkNameField)
}

func (h Homework) Status() (string, bool) {
	return h.field(StatusField)
}
