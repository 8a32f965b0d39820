package csvio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHeader(t *testing.T) {
	tests := []struct {
		name    string
		got     []string
		want    []string
		wantErr string
	}{
		{
			name: "exact_match",
			got:  []string{"sec", "usec", "x", "y", "z", "qw", "qx", "qy", "qz"},
			want: TrackerHeader,
		},
		{
			name: "extra_trailing_columns_allowed",
			got:  []string{"sec", "usec", "frame", "button"},
			want: TimestampHeader,
		},
		{
			name:    "too_few_columns",
			got:     []string{"sec"},
			want:    TimestampHeader,
			wantErr: "got 1 columns, need at least 2",
		},
		{
			name:    "wrong_column_name",
			got:     []string{"sec", "nsec"},
			want:    TimestampHeader,
			wantErr: `column 1, expected "usec", found "nsec"`,
		},
		{
			name:    "case_sensitive",
			got:     []string{"Sec", "usec"},
			want:    TimestampHeader,
			wantErr: `column 0, expected "sec", found "Sec"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHeader(tt.got, tt.want)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrHeaderMismatch)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
