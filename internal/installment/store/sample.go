package store

import "github.com/MrJamesThe3rd/angsur/internal/installment"

// SampleRecords seeds a first run with a realistic dataset so the table
// and insights views have something to show before any data is entered.
func SampleRecords() []installment.Record {
	return []installment.Record{
		{ID: "1", Bank: "Mandiri", Transaction: "LOTTE GROSIR TEGAL", MonthlyPayment: 15487, MonthsPaid: 7, TotalMonths: 12, Note: "Promo ends Dec"},
		{ID: "2", Bank: "Mandiri", Transaction: "OTTENCOFFEE 1-IPG JAKAR", MonthlyPayment: 84291, MonthsPaid: 5, TotalMonths: 6, Note: "Paid via VA"},
		{ID: "3", Bank: "Mandiri", Transaction: "Bidan Nuriti 62,500 + Bunga 7,500", MonthlyPayment: 70000, MonthsPaid: 4, TotalMonths: 24, Note: "Cash advance"},
		{ID: "4", Bank: "Mandiri", Transaction: "SHOPEE.CO.ID Jakar", MonthlyPayment: 10743, MonthsPaid: 9, TotalMonths: 12},
		{ID: "5", Bank: "Mandiri", Transaction: "PT. GLOBAL DIGITAL NIA", MonthlyPayment: 40000, MonthsPaid: 3, TotalMonths: 12},
		{ID: "6", Bank: "Mandiri", Transaction: "SHOPEE Jakar", MonthlyPayment: 21114, MonthsPaid: 3, TotalMonths: 12},
		{ID: "7", Bank: "Mandiri", Transaction: "Mobee PT CTXG Indonesia 138,888 + Bunga 25,000", MonthlyPayment: 163888, MonthsPaid: 7, TotalMonths: 36, Note: "Check admin fee"},
		{ID: "8", Bank: "Mandiri", Transaction: "Mobee PT CTXG Indonesia", MonthlyPayment: 208333, MonthsPaid: 9, TotalMonths: 12},
		{ID: "9", Bank: "Mandiri", Transaction: "PT. GLOBAL DIGITAL NIA", MonthlyPayment: 36750, MonthsPaid: 4, TotalMonths: 12},
		{ID: "10", Bank: "Mandiri", Transaction: "SHOPEE Jakar", MonthlyPayment: 199599, MonthsPaid: 3, TotalMonths: 12},
		{ID: "11", Bank: "BRI", Transaction: "TOKOPEDIA_CYBS_CCL12", MonthlyPayment: 211830, MonthsPaid: 7, TotalMonths: 12, Note: "Due every 3rd"},
		{ID: "12", Bank: "BRI", Transaction: "TOKOPEDIA CYBS CCL12", MonthlyPayment: 76492, MonthsPaid: 11, TotalMonths: 12, Note: "Finish next month"},
		{ID: "13", Bank: "BRI", Transaction: "TOKOPEDIA_CYBS_CCL12", MonthlyPayment: 232917, MonthsPaid: 5, TotalMonths: 12},
	}
}
