package models

import "testing"

func TestParseStatus(t *testing.T) {
	for _, token := range []string{"pending", "confirmed", "rejected"} {
		if _, ok := ParseStatus(token); !ok {
			t.Errorf("ParseStatus(%q) rejected a defined token", token)
		}
	}
	for _, token := range []string{"", "paid", "PENDING", "done"} {
		if _, ok := ParseStatus(token); ok {
			t.Errorf("ParseStatus(%q) accepted an undefined token", token)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Error("pending is not terminal")
	}
	if !StatusConfirmed.Terminal() || !StatusRejected.Terminal() {
		t.Error("confirmed and rejected are terminal")
	}
}
