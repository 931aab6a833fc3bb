package validation

import (
	"encoding/json"
	"strings"
	"testing"
)

type sample struct {
	Name  string `json:"nombre" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Age   *int   `json:"edad" validate:"omitnil,gte=0,lte=120"`
}

func TestStruct_UsesJSONTagNames(t *testing.T) {
	err := Struct(sample{Name: "x", Email: "bad"})
	if err == nil {
		t.Fatalf("expected validation to fail")
	}
	details := ToDetails(err)
	if _, ok := details["nombre"]; !ok {
		t.Fatalf("expected json tag name in details, got %v", details)
	}
	if _, ok := details["email"]; !ok {
		t.Fatalf("expected email in details, got %v", details)
	}
}

func TestToDetails_Messages(t *testing.T) {
	age := 150
	err := Struct(sample{Name: "Ana", Email: "ana@example.com", Age: &age})
	details := ToDetails(err)
	if msg := details["edad"]; !strings.Contains(msg, "120") {
		t.Fatalf("expected bound in message, got %q", msg)
	}
}

func TestToDetails_InvalidJSON(t *testing.T) {
	var v sample
	err := json.Unmarshal([]byte(`{"nombre": 5}`), &v)
	details := ToDetails(err)
	if details["payload"] != "invalid json" {
		t.Fatalf("expected invalid json detail, got %v", details)
	}
}

func TestToDetails_Nil(t *testing.T) {
	if ToDetails(nil) != nil {
		t.Fatalf("expected nil details for nil error")
	}
}
