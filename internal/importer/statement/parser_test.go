package statement_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/importer/statement"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_SignedLayout(t *testing.T) {
	csv := `Date,Description,Amount
2024-03-01,SALARY MARCH,3000.00
2024-03-05,COFFEE SHOP,-4.50
2024-03-10,GROCERY STORE,-52.30`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 3)

	assert.Equal(t, transaction.RecordParams{
		Amount: 300000,
		Type:   transaction.TypeIncome,
		Memo:   "SALARY MARCH",
		Date:   date(2024, 3, 1),
	}, params[0])

	assert.Equal(t, int64(450), params[1].Amount)
	assert.Equal(t, transaction.TypeExpense, params[1].Type)
	assert.Equal(t, "COFFEE SHOP", params[1].Memo)
}

func TestParser_SplitLayout(t *testing.T) {
	csv := `Date;Description;Debit;Credit
05-03-2024;COFFEE SHOP;4,50;
25-03-2024;SALARY MARCH;;3.000,00`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, int64(450), params[0].Amount)
	assert.Equal(t, transaction.TypeExpense, params[0].Type)
	assert.Equal(t, date(2024, 3, 5), params[0].Date)

	assert.Equal(t, int64(300000), params[1].Amount)
	assert.Equal(t, transaction.TypeIncome, params[1].Type)
	assert.Equal(t, date(2024, 3, 25), params[1].Date)
}

func TestParser_CategorizedLayout(t *testing.T) {
	csv := `Date,Description,Category,Amount
2024-03-05,COFFEE SHOP,dining,-4.50
2024-03-25,SALARY MARCH,salary,3000.00`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, "dining", params[0].Category)
	assert.Equal(t, "salary", params[1].Category)
}

func TestParser_HeaderAfterPreamble(t *testing.T) {
	csv := `Account statement export
Period;2024-03-01 to 2024-03-31

Date;Description;Amount
2024-03-05;COFFEE SHOP;-4,50`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, int64(450), params[0].Amount)
}

func TestParser_HeaderCaseInsensitive(t *testing.T) {
	csv := `DATE,DESCRIPTION,AMOUNT
2024-03-05,COFFEE SHOP,-4.50`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, params, 1)
}

func TestParser_SkipsFooterRows(t *testing.T) {
	csv := `Date,Description,Amount
2024-03-05,COFFEE SHOP,-4.50
,,
Total,,-4.50
Closing balance,BALANCE,`

	p := statement.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, params, 1)
}

func TestParser_MissingDescription(t *testing.T) {
	csv := `Date,Description,Amount
2024-03-05,,-4.50`

	p := statement.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing description")
}

func TestParser_UnknownLayout(t *testing.T) {
	csv := `Foo,Bar
1,2`

	p := statement.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestParser_DateLayouts(t *testing.T) {
	type testCase struct {
		name string
		cell string
		want time.Time
	}

	tests := []testCase{
		{name: "ISO", cell: "2024-03-05", want: date(2024, 3, 5)},
		{name: "DashedDayFirst", cell: "05-03-2024", want: date(2024, 3, 5)},
		{name: "SlashedDayFirst", cell: "05/03/2024", want: date(2024, 3, 5)},
		{name: "SlashedYearFirst", cell: "2024/03/05", want: date(2024, 3, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := "Date,Description,Amount\n" + tt.cell + ",COFFEE SHOP,-4.50"

			p := statement.NewParser()
			params, err := p.Parse(strings.NewReader(csv))
			require.NoError(t, err)
			require.Len(t, params, 1)
			assert.Equal(t, tt.want, params[0].Date)
		})
	}
}
