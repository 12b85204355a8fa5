package pricing

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		price any
		want  string
	}{
		{
			name:  "nil price",
			price: nil,
			want:  Sentinel,
		},
		{
			name:  "empty string",
			price: "",
			want:  Sentinel,
		},
		{
			name:  "non numeric string",
			price: "call us",
			want:  Sentinel,
		},
		{
			name:  "nil string pointer",
			price: (*string)(nil),
			want:  Sentinel,
		},
		{
			name:  "NaN",
			price: math.NaN(),
			want:  Sentinel,
		},
		{
			name:  "positive infinity",
			price: math.Inf(1),
			want:  Sentinel,
		},
		{
			name:  "unsupported type",
			price: struct{}{},
			want:  Sentinel,
		},
		{
			name:  "plain number",
			price: 1500.0,
			want:  "KSh 1,500",
		},
		{
			name:  "integer",
			price: 90000,
			want:  "KSh 90,000",
		},
		{
			name:  "numeric string",
			price: "45000",
			want:  "KSh 45,000",
		},
		{
			name:  "string with currency noise",
			price: "KSh 12,500",
			want:  "KSh 12,500",
		},
		{
			name:  "decimal string rounds to whole shillings",
			price: "1499.60",
			want:  "KSh 1,500",
		},
		{
			name:  "negative clamps to zero",
			price: -5.0,
			want:  "KSh 0",
		},
		{
			name:  "zero",
			price: 0.0,
			want:  "KSh 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.price)
			if got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.price, got, tt.want)
			}
		})
	}
}

// Formatting the sentinel again must not blow up or produce a new string:
// "Price on request" has no digits, so it maps back onto itself.
func TestFormat_SentinelIdempotent(t *testing.T) {
	if got := Format(Sentinel); got != Sentinel {
		t.Errorf("Format(Sentinel) = %q, want %q", got, Sentinel)
	}
	if got := Format(Format(Format(""))); got != Sentinel {
		t.Errorf("repeated formatting = %q, want %q", got, Sentinel)
	}
}

func TestFormat_NegativeEqualsZero(t *testing.T) {
	if Format(-5.0) != Format(0.0) {
		t.Errorf("Format(-5) = %q, Format(0) = %q, want equal", Format(-5.0), Format(0.0))
	}
}
