package req

import (
	"strings"
	"testing"
)

type payload struct {
	Hands int `json:"hands"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"hands": 40}`))
	if err != nil || got.Hands != 40 {
		t.Fatalf("got %+v (%v)", got, err)
	}

	got, err = Decode[payload](strings.NewReader(""))
	if err != nil || got.Hands != 0 {
		t.Errorf("empty body should decode to zero value, got %+v (%v)", got, err)
	}

	if _, err := Decode[payload](strings.NewReader(`{"hands": "many"}`)); err == nil {
		t.Error("expected error for wrong type")
	}
}
