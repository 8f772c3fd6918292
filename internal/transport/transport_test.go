package transport

import (
	"reflect"
	"testing"
)

func TestFilterACM(t *testing.T) {
	tests := []struct {
		name      string
		addresses []string
		match     string
		want      []string
	}{
		{
			name:      "keeps only matching paths",
			addresses: []string{"/dev/ttyS0", "/dev/ttyACM0", "/dev/ttyUSB0", "/dev/ttyACM1"},
			match:     "ACM",
			want:      []string{"/dev/ttyACM0", "/dev/ttyACM1"},
		},
		{
			name:      "preserves enumeration order",
			addresses: []string{"/dev/ttyACM2", "/dev/ttyACM0", "/dev/ttyACM1"},
			match:     "ACM",
			want:      []string{"/dev/ttyACM2", "/dev/ttyACM0", "/dev/ttyACM1"},
		},
		{
			name:      "no matches",
			addresses: []string{"/dev/ttyS0", "/dev/ttyS1"},
			match:     "ACM",
			want:      nil,
		},
		{
			name:      "empty input",
			addresses: nil,
			match:     "ACM",
			want:      nil,
		},
		{
			name:      "custom match token",
			addresses: []string{"/dev/ttyUSB0", "/dev/ttyACM0"},
			match:     "USB",
			want:      []string{"/dev/ttyUSB0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterACM(tt.addresses, tt.match)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterACM(%v, %q) = %v, want %v", tt.addresses, tt.match, got, tt.want)
			}
		})
	}
}
