package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}

	tests := []testCase{
		{name: "Plain", input: "10.50", want: 1050},
		{name: "PlainNegative", input: "-10.50", want: -1050},
		{name: "Integer", input: "10", want: 1000},
		{name: "DotThousandsCommaDecimal", input: "1.234,56", want: 123456},
		{name: "CommaThousandsDotDecimal", input: "1,234.56", want: 123456},
		{name: "CommaDecimalOnly", input: "4,50", want: 450},
		{name: "SpacedThousands", input: "1 234,56", want: 123456},
		{name: "LargeEuropean", input: "-1.234.567,89", want: -123456789},
		{name: "Garbage", input: "n/a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
