package homework

import (
	"fmt"

	"github.com/ilyadubrovsky/homework-tracker/internal/config/answers"
	"github.com/ilyadubrovsky/homework-tracker/internal/domain"
	ierrors "github.com/ilyadubrovsky/homework-tracker/internal/errors"
)

const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)

var verdicts = map[string]string{
	StatusApproved:  answers.VerdictApproved,
	StatusReviewing: answers.VerdictReviewing,
	StatusRejected:  answers.VerdictRejected,
}

func ParseStatus(homework domain.Homework) (string, error) {
	name, ok := homework.Name()
	if !ok {
		return "", &ierrors.MissingFieldError{Field: domain.HomeworkNameField}
	}

	status, ok := homework.Status()
	if !ok {
		return "", &ierrors.MissingFieldError{Field: domain.StatusField}
	}

	verdict, ok := verdicts[status]
	if !ok {
		return "", &ierrors.UnknownStatusError{Status: status}
	}

	return fmt.Sprintf(answers.StatusChanged, name, verdict), nil
}
