package summary

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/report"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/summary"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
)

type Handler struct {
	svc *summary.Service
}

func NewHandler(svc *summary.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.overview)
}

type categoryTotalDTO struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

type monthlyTotalDTO struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

type recentTransactionDTO struct {
	ID       string           `json:"id"`
	Amount   int64            `json:"amount"`
	Type     transaction.Type `json:"type"`
	Category string           `json:"category"`
	Date     string           `json:"date"`
}

type goalDTO struct {
	TargetAmount  int64   `json:"target_amount"`
	CurrentAmount int64   `json:"current_amount"`
	Percent       float64 `json:"percent"`
	DaysRemaining *int    `json:"days_remaining,omitempty"`
	Overdue       bool    `json:"overdue"`
	DailyPace     *int64  `json:"daily_pace,omitempty"`
}

type overviewResponse struct {
	Period       summary.Period         `json:"period"`
	From         *string                `json:"from,omitempty"`
	To           *string                `json:"to,omitempty"`
	Income       int64                  `json:"income"`
	Expense      int64                  `json:"expense"`
	MonthIncome  int64                  `json:"month_income"`
	MonthExpense int64                  `json:"month_expense"`
	Categories   []categoryTotalDTO     `json:"categories"`
	Trend        []monthlyTotalDTO      `json:"trend"`
	Recent       []recentTransactionDTO `json:"recent"`
	Goal         *goalDTO               `json:"goal,omitempty"`
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	period := summary.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = summary.PeriodThisMonth
	}

	switch period {
	case summary.PeriodThisMonth, summary.PeriodLastMonth, summary.PeriodAll:
	default:
		http.Error(w, "invalid period", http.StatusBadRequest)
		return
	}

	ov, err := h.svc.Overview(r.Context(), period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(ov)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResponse(ov *summary.Overview) overviewResponse {
	resp := overviewResponse{
		Period:       ov.Period,
		Income:       ov.Income,
		Expense:      ov.Expense,
		MonthIncome:  ov.MonthIncome,
		MonthExpense: ov.MonthExpense,
		Categories:   toCategoryDTOs(ov.Categories),
		Trend:        toMonthlyDTOs(ov.Trend),
		Recent:       toRecentDTOs(ov.Recent),
	}

	if ov.From != nil {
		resp.From = new(ov.From.Format(time.DateOnly))
	}

	if ov.To != nil {
		resp.To = new(ov.To.Format(time.DateOnly))
	}

	if ov.Goal != nil && ov.GoalStatus != nil {
		resp.Goal = &goalDTO{
			TargetAmount:  ov.Goal.TargetAmount,
			CurrentAmount: ov.Goal.CurrentAmount,
			Percent:       ov.GoalStatus.Percent,
			DaysRemaining: ov.GoalStatus.DaysRemaining,
			Overdue:       ov.GoalStatus.Overdue,
			DailyPace:     ov.GoalStatus.DailyPace,
		}
	}

	return resp
}

func toCategoryDTOs(totals []report.CategoryTotal) []categoryTotalDTO {
	dtos := make([]categoryTotalDTO, len(totals))
	for i, t := range totals {
		dtos[i] = categoryTotalDTO{Category: t.Category, Amount: t.Amount}
	}

	return dtos
}

func toMonthlyDTOs(totals []report.MonthlyTotal) []monthlyTotalDTO {
	dtos := make([]monthlyTotalDTO, len(totals))
	for i, t := range totals {
		dtos[i] = monthlyTotalDTO{Month: t.Month, Income: t.Income, Expense: t.Expense}
	}

	return dtos
}

func toRecentDTOs(txs []*transaction.Transaction) []recentTransactionDTO {
	dtos := make([]recentTransactionDTO, len(txs))
	for i, tx := range txs {
		dtos[i] = recentTransactionDTO{
			ID:       tx.ID.String(),
			Amount:   tx.Amount,
			Type:     tx.Type,
			Category: tx.Category,
			Date:     tx.Date.Format(time.DateOnly),
		}
	}

	return dtos
}
