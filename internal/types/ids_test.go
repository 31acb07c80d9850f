package types

import "testing"

func TestItemID_Valid(t *testing.T) {
	tests := []struct {
		id   ItemID
		want bool
	}{
		{ItemID(0), false},
		{ItemID(-3), false},
		{ItemID(1), true},
		{ItemIDFromInt(42), true},
	}

	for _, tt := range tests {
		if got := tt.id.Valid(); got != tt.want {
			t.Errorf("ItemID(%d).Valid() = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestItemID_RoundTrip(t *testing.T) {
	if got := ItemIDFromInt(7).ToInt(); got != 7 {
		t.Errorf("ItemIDFromInt(7).ToInt() = %d, want 7", got)
	}
}
