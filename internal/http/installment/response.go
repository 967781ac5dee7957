package installment

import (
	"time"

	"github.com/MrJamesThe3rd/angsur/internal/installment"
)

type installmentResponse struct {
	ID             string  `json:"id"`
	Bank           string  `json:"bank"`
	Transaction    string  `json:"transaction"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	MonthsPaid     float64 `json:"monthsPaid"`
	TotalMonths    float64 `json:"totalMonths"`
	Note           string  `json:"note"`

	MonthsLeft  float64 `json:"monthsLeft"`
	RestBill    float64 `json:"restBill"`
	Progress    float64 `json:"progress"`
	CurrentInst float64 `json:"currentInst"`
	IsCompleted bool    `json:"isCompleted"`
	FinishETA   string  `json:"finishEta"`
}

func toResponse(r installment.Record, now time.Time) installmentResponse {
	return toEnrichedResponse(installment.Enrich(r, now))
}

func toEnrichedResponse(e installment.Enriched) installmentResponse {
	return installmentResponse{
		ID:             e.ID,
		Bank:           e.Bank,
		Transaction:    e.Transaction,
		MonthlyPayment: e.MonthlyPayment,
		MonthsPaid:     e.MonthsPaid,
		TotalMonths:    e.TotalMonths,
		Note:           e.Note,
		MonthsLeft:     e.MonthsLeft,
		RestBill:       e.RestBill,
		Progress:       e.Progress,
		CurrentInst:    e.CurrentInst,
		IsCompleted:    e.IsCompleted,
		FinishETA:      e.FinishETA,
	}
}

func toResponseList(enriched []installment.Enriched) []installmentResponse {
	responses := make([]installmentResponse, 0, len(enriched))
	for _, e := range enriched {
		responses = append(responses, toEnrichedResponse(e))
	}

	return responses
}
