package ai

import "testing"

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "object inside prose",
			in:   "Sure! Here is the data:\n```json\n{\"a\":1}\n```\nHope that helps.",
			want: `{"a":1}`,
		},
		{
			name: "bare array",
			in:   `[{"a":1},{"a":2}]`,
			want: `[{"a":1},{"a":2}]`,
		},
		{
			name: "array inside prose",
			in:   "Here you go: [1,2,3] enjoy",
			want: "[1,2,3]",
		},
		{
			name: "array before object picks array",
			in:   `[{"a":1}]`,
			want: `[{"a":1}]`,
		},
		{
			name:    "no json at all",
			in:      "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "truncated object",
			in:      `{"a":1`,
			wantErr: true,
		},
		{
			name:    "empty string",
			in:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := extractJSON(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("extractJSON(%q) expected error, got %q", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("extractJSON(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeResponse(t *testing.T) {
	t.Parallel()

	var out struct {
		Name string `json:"name"`
	}
	if err := decodeResponse("prefix {\"name\":\"Oats\"} suffix", &out); err != nil {
		t.Fatalf("decodeResponse() error = %v", err)
	}
	if out.Name != "Oats" {
		t.Errorf("Name = %q, want %q", out.Name, "Oats")
	}

	if err := decodeResponse(`{"name":123}`, &out); err == nil {
		t.Error("expected type mismatch error")
	}
}
