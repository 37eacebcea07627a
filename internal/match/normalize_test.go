package match

import (
	"testing"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"Order Id", "orderid"},
		{"family[]Name", "family[]name"},
		{"주소.도시", "주소.도시"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeHeader(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeHeader(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
