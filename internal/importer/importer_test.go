package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/angsur/internal/importer"
	"github.com/MrJamesThe3rd/angsur/internal/installment"
)

func TestParse(t *testing.T) {
	input := "bank,transaction,monthlyPayment,monthsPaid,totalMonths\nX,Y,1000,2,10\n"

	params, err := importer.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, installment.CreateParams{
		Bank:           "X",
		Transaction:    "Y",
		MonthlyPayment: 1000,
		MonthsPaid:     2,
		TotalMonths:    10,
	}, params[0])
}

func TestParse_ColumnOrderIndependent(t *testing.T) {
	input := "note,totalMonths,bank,monthlyPayment,transaction,monthsPaid\nhello,12,BRI,500,TOKOPEDIA,3\n"

	params, err := importer.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "BRI", params[0].Bank)
	assert.Equal(t, "TOKOPEDIA", params[0].Transaction)
	assert.Equal(t, 500.0, params[0].MonthlyPayment)
	assert.Equal(t, 3.0, params[0].MonthsPaid)
	assert.Equal(t, 12.0, params[0].TotalMonths)
	assert.Equal(t, "hello", params[0].Note)
}

func TestParse_QuotedCommasAndDoubledQuotes(t *testing.T) {
	input := `bank,transaction,monthlyPayment,monthsPaid,totalMonths,note
Mandiri,"Bidan Nuriti 62,500 + Bunga 7,500",70000,4,24,"say ""hi"""
`

	params, err := importer.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Bidan Nuriti 62,500 + Bunga 7,500", params[0].Transaction)
	assert.Equal(t, `say "hi"`, params[0].Note)
}

func TestParse_IgnoresDerivedColumns(t *testing.T) {
	input := "bank,transaction,monthlyPayment,monthsPaid,totalMonths,monthsLeft,restBill,note\nX,Y,1000,2,10,8,8000,\n"

	params, err := importer.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, 10.0, params[0].TotalMonths)
}

func TestParse_SkipsRowsMissingBankAndTransaction(t *testing.T) {
	input := "bank,transaction,monthlyPayment,monthsPaid,totalMonths\n,,1000,2,10\nX,,1000,2,10\n"

	params, err := importer.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "X", params[0].Bank)
}

func TestParse_MissingTotalMonthsDefaultsToOne(t *testing.T) {
	input := "bank,transaction,monthlyPayment,monthsPaid\nX,Y,1000,0\n"

	params, err := importer.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, 1.0, params[0].TotalMonths)
}

func TestParse_NumbersGoThroughTheParser(t *testing.T) {
	input := "bank,transaction,monthlyPayment,monthsPaid,totalMonths\nX,Y,\"Rp12,345\",5-5,1.2.3\n"

	params, err := importer.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, 12345.0, params[0].MonthlyPayment)
	assert.Equal(t, 5.0, params[0].MonthsPaid)
	assert.Equal(t, 1.2, params[0].TotalMonths)
}

func TestParse_EmptyFile(t *testing.T) {
	params, err := importer.Parse(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestParse_HeaderIsCaseSensitive(t *testing.T) {
	input := "Bank,Transaction,monthlyPayment,monthsPaid,totalMonths\nX,Y,1000,2,10\n"

	params, err := importer.Parse(strings.NewReader(input))

	require.NoError(t, err)
	// bank/transaction columns unmatched, so every row lacks both.
	assert.Empty(t, params)
}
