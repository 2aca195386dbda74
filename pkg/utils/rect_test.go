package utils

import "testing"

func TestRectOverlaps(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", NewRect(0, 0, 10, 10), true},
		{"partial overlap", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 2, 2), true},
		{"touching right edge", NewRect(10, 0, 5, 5), false},
		{"touching top edge", NewRect(0, 10, 5, 5), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
		{"overlap from below", NewRect(3, -5, 2, 6), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			// 重叠关系对称
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("reverse Overlaps(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}
