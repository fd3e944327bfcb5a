package utils

import "testing"

func TestCardFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Jane Doe", "Jane_Doe_id_card.png"},
		{"jane", "jane_id_card.png"},
		{"", "id_card.png"},
		{"   ", "id_card.png"},
		{"../../etc/passwd", "etcpasswd_id_card.png"},
		{"name\r\nSet-Cookie: x", "nameSet-Cookie_x_id_card.png"},
		{"Ánh Dương", "nh_Dng_id_card.png"},
		{"O'Connor-Smith", "OConnor-Smith_id_card.png"},
	}

	for _, tt := range tests {
		if got := CardFilename(tt.name); got != tt.want {
			t.Errorf("CardFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
