package document

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		input    string
		maxWords int
		want     string
	}{
		{"你好世界", 0, "ni-hao-shi-jie"},
		{"你好世界", 2, "ni-hao"},
		{"你好，这是测试。", 2, "ni-hao"},
		{"hello world", 3, ""},
		{"", 3, ""},
	}

	for _, tt := range tests {
		if got := Slug(tt.input, tt.maxWords); got != tt.want {
			t.Errorf("Slug(%q, %d) = %q, want %q", tt.input, tt.maxWords, got, tt.want)
		}
	}
}
