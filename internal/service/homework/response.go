package homework

import (
	"encoding/json"
	"fmt"

	"github.com/ilyadubrovsky/homework-tracker/internal/domain"
	ierrors "github.com/ilyadubrovsky/homework-tracker/internal/errors"
)

const (
	homeworksKey   = "homeworks"
	currentTimeKey = "current_time"
)

// CheckResponse returns the homeworks list of an API answer, an empty list is valid.
func CheckResponse(payload any) ([]domain.Homework, error) {
	answer, ok := payload.(map[string]any)
	if !ok {
		return nil, &ierrors.ShapeError{Reason: fmt.Sprintf("answer is %s, not an object", jsonKind(payload))}
	}

	rawHomeworks, ok := answer[homeworksKey]
	if !ok {
		return nil, &ierrors.ShapeError{Reason: fmt.Sprintf("no %q key", homeworksKey)}
	}

	list, ok := rawHomeworks.([]any)
	if !ok {
		return nil, &ierrors.ShapeError{Reason: fmt.Sprintf("%q is %s, not a list", homeworksKey, jsonKind(rawHomeworks))}
	}

	homeworks := make([]domain.Homework, 0, len(list))
	for i, item := range list {
		record, ok := item.(map[string]any)
		if !ok {
			return nil, &ierrors.ShapeError{Reason: fmt.Sprintf("%s[%d] is %s, not an object", homeworksKey, i, jsonKind(item))}
		}
		homeworks = append(homeworks, record)
	}

	return homeworks, nil
}

// CurrentTime returns the server checkpoint of an answer already accepted by CheckResponse.
func CurrentTime(payload any) (int64, bool) {
	answer, ok := payload.(map[string]any)
	if !ok {
		return 0, false
	}

	switch value := answer[currentTimeKey].(type) {
	case json.Number:
		timestamp, err := value.Int64()
		if err != nil {
			return 0, false
		}
		return timestamp, true
	case float64:
		if value != float64(int64(value)) {
			return 0, false
		}
		return int64(value), true
	}

	return 0, false
}

func jsonKind(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number, float64:
		return "a number"
	}
	return fmt.Sprintf("%T", value)
}
