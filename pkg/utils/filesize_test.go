package utils

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * MB, "5.0 MB"},
		{int64(2.5 * GB), "2.5 GB"},
		{3 * TB, "3.0 TB"},
		{-1, "0 B"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.bytes); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"100MB", 100 * MB, false},
		{"1.5GB", int64(1.5 * GB), false},
		{"10K", 10 * KB, false},
		{"2tb", 2 * TB, false},
		{"512B", 512, false},
		{"1024", 1024, false},
		{" 5 MB ", 5 * MB, false},
		{"", 0, true},
		{"fast", 0, true},
		{"10XB", 0, true},
		{"-5MB", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSize(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatParseRoundtrip(t *testing.T) {
	for _, size := range []int64{100 * MB, 2 * GB, 1024} {
		parsed, err := ParseSize(FormatBytes(size))
		if err != nil {
			t.Errorf("round trip of %d failed: %v", size, err)
			continue
		}
		if parsed != size {
			t.Errorf("round trip of %d = %d", size, parsed)
		}
	}
}
