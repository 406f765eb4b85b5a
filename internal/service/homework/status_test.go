package homework

import (
	"errors"
	"testing"

	"github.com/ilyadubrovsky/homework-tracker/internal/domain"
	ierrors "github.com/ilyadubrovsky/homework-tracker/internal/errors"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{status: StatusApproved, want: `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`},
		{status: StatusReviewing, want: `Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`},
		{status: StatusRejected, want: `Изменился статус проверки работы "hw1". Работа проверена: у ревьюера есть замечания.`},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got, err := ParseStatus(domain.Homework{"homework_name": "hw1", "status": tt.status})
			if err != nil {
				t.Fatalf("ParseStatus error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStatusMissingField(t *testing.T) {
	tests := []struct {
		name     string
		homework domain.Homework
		field    string
	}{
		{name: "no name", homework: domain.Homework{"status": "approved"}, field: "homework_name"},
		{name: "no status", homework: domain.Homework{"homework_name": "hw1"}, field: "status"},
		{name: "name is not a string", homework: domain.Homework{"homework_name": 1, "status": "approved"}, field: "homework_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatus(tt.homework)

			var missingFieldErr *ierrors.MissingFieldError
			if !errors.As(err, &missingFieldErr) {
				t.Fatalf("error = %v, want MissingFieldError", err)
			}
			if missingFieldErr.Field != tt.field {
				t.Fatalf("Field = %s, want %s", missingFieldErr.Field, tt.field)
			}
		})
	}
}

func TestParseStatusUnknown(t *testing.T) {
	_, err := ParseStatus(domain.Homework{"homework_name": "hw1", "status": "lost"})

	var unknownStatusErr *ierrors.UnknownStatusError
	if !errors.As(err, &unknownStatusErr) {
		t.Fatalf("error = %v, want UnknownStatusError", err)
	}
	if unknownStatusErr.Status != "lost" {
		t.Fatalf("Status = %s, want lost", unknownStatusErr.Status)
	}
}
