package action

import (
	"errors"
	"testing"
)

func TestParse_Category(t *testing.T) {
	a, err := Parse("category_dairy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Kind != PickCategory {
		t.Errorf("expected PickCategory, got %v", a.Kind)
	}
	if a.Key != "dairy" {
		t.Errorf("expected Key %q, got %q", "dairy", a.Key)
	}
}

func TestParse_Toggle(t *testing.T) {
	a, err := Parse("toggle_3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Kind != Toggle {
		t.Errorf("expected Toggle, got %v", a.Kind)
	}
	if a.Index != 3 {
		t.Errorf("expected Index 3, got %d", a.Index)
	}
}

func TestParse_Remove(t *testing.T) {
	a, err := Parse("remove_0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Kind != Remove {
		t.Errorf("expected Remove, got %v", a.Kind)
	}
	if a.Index != 0 {
		t.Errorf("expected Index 0, got %d", a.Index)
	}
}

func TestParse_Unknown_Error(t *testing.T) {
	_, err := Parse("launch_missiles")
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestParse_Empty_Error(t *testing.T) {
	_, err := Parse("")
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestParse_BadIndex_Error(t *testing.T) {
	_, err := Parse("toggle_abc")
	if err == nil {
		t.Fatal("expected error for non-numeric index")
	}
	expectedMsg := `invalid position: "abc"`
	if err.Error() != expectedMsg {
		t.Errorf("expected %q, got %q", expectedMsg, err.Error())
	}
}

func TestParse_MissingIndex_Error(t *testing.T) {
	_, err := Parse("remove_")
	if err == nil {
		t.Fatal("expected error for missing index")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	if got := CategoryToken("meat"); got != "category_meat" {
		t.Errorf("CategoryToken = %q, want %q", got, "category_meat")
	}
	if got := ToggleToken(7); got != "toggle_7" {
		t.Errorf("ToggleToken = %q, want %q", got, "toggle_7")
	}
	if got := RemoveToken(12); got != "remove_12" {
		t.Errorf("RemoveToken = %q, want %q", got, "remove_12")
	}

	a, err := Parse(ToggleToken(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Kind != Toggle || a.Index != 42 {
		t.Errorf("unexpected action: %#v", a)
	}
}
