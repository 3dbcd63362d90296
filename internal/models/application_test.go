package models

import "testing"

func TestParseApplicationStatus(t *testing.T) {
	tests := []struct {
		in   string
		want ApplicationStatus
		ok   bool
	}{
		{"pending", StatusPending, true},
		{"accepted", StatusAccepted, true},
		{"ACCEPTED", StatusAccepted, true},
		{"Rejected", StatusRejected, true},
		{"  pending  ", StatusPending, true},
		{"archived", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseApplicationStatus(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseApplicationStatus(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
