package homework

import (
	"encoding/json"
	"errors"
	"testing"

	ierrors "github.com/ilyadubrovsky/homework-tracker/internal/errors"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("json.Unmarshal(%s): %v", raw, err)
	}
	return payload
}

func TestCheckResponse(t *testing.T) {
	payload := decode(t, `{"homeworks": [{"homework_name": "hw1", "status": "rejected"}, {"homework_name": "hw0", "status": "approved"}], "current_time": 1700000000}`)

	homeworks, err := CheckResponse(payload)
	if err != nil {
		t.Fatalf("CheckResponse error: %v", err)
	}
	if len(homeworks) != 2 {
		t.Fatalf("len = %d, want 2", len(homeworks))
	}
	if name, _ := homeworks[0].Name(); name != "hw1" {
		t.Fatalf("first homework = %s, want hw1", name)
	}
}

func TestCheckResponseEmpty(t *testing.T) {
	homeworks, err := CheckResponse(decode(t, `{"homeworks": [], "current_time": 1}`))
	if err != nil {
		t.Fatalf("CheckResponse error: %v", err)
	}
	if len(homeworks) != 0 {
		t.Fatalf("len = %d, want 0", len(homeworks))
	}
}

func TestCheckResponseShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "list instead of object", raw: `[{"homeworks": []}]`},
		{name: "null", raw: `null`},
		{name: "no homeworks key", raw: `{"current_time": 1}`},
		{name: "homeworks is an object", raw: `{"homeworks": {"homework_name": "hw1"}}`},
		{name: "homeworks is null", raw: `{"homeworks": null}`},
		{name: "record is a string", raw: `{"homeworks": ["hw1"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckResponse(decode(t, tt.raw))

			var shapeErr *ierrors.ShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("CheckResponse(%s) error = %v, want ShapeError", tt.raw, err)
			}
		})
	}
}

func TestCurrentTime(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    int64
		ok      bool
	}{
		{name: "json number", payload: map[string]any{"current_time": json.Number("1700000000")}, want: 1700000000, ok: true},
		{name: "float", payload: map[string]any{"current_time": float64(1700000000)}, want: 1700000000, ok: true},
		{name: "fraction", payload: map[string]any{"current_time": json.Number("1.5")}},
		{name: "string", payload: map[string]any{"current_time": "1700000000"}},
		{name: "missing", payload: map[string]any{"homeworks": []any{}}},
		{name: "not an object", payload: []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CurrentTime(tt.payload)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("CurrentTime = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}
