package service

import (
	"errors"
	"testing"
	"time"
)

func TestParseInstant(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }

	tests := []struct {
		name    string
		raw     any
		want    time.Time
		wantErr bool
	}{
		{
			name: "unix seconds",
			raw:  float64(1741640400), // below the 10-digit threshold boundary
			want: time.Unix(1741640400, 0),
		},
		{
			name: "unix milliseconds",
			raw:  float64(1741640400000),
			want: time.UnixMilli(1741640400000),
		},
		{
			name: "iso string",
			raw:  "2025-03-10T21:30:00+08:00",
			want: time.Date(2025, 3, 10, 21, 30, 0, 0, time.FixedZone("", 8*3600)),
		},
		{
			name: "iso string without zone",
			raw:  "2025-03-10T21:30:00",
			want: time.Date(2025, 3, 10, 21, 30, 0, 0, time.UTC),
		},
		{
			name: "absent defaults to now",
			raw:  nil,
			want: now(),
		},
		{
			name:    "garbage string",
			raw:     "yesterday evening",
			wantErr: true,
		},
		{
			name:    "negative number",
			raw:     float64(-5),
			wantErr: true,
		},
		{
			name:    "unsupported type",
			raw:     []any{1, 2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(tt.raw, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseInstant() expected error, got %v", got)
				}
				if !errors.Is(err, ErrInvalidTimestamp) {
					t.Errorf("ParseInstant() error = %v, want ErrInvalidTimestamp", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInstant() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseInstant() = %v, want %v", got, tt.want)
			}
		})
	}
}
