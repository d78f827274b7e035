package goal

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/goal"
)

type Handler struct {
	svc *goal.Service
}

func NewHandler(svc *goal.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Patch("/", h.updateSettings)
	r.Post("/reset", h.reset)
	r.Post("/reconcile", h.reconcile)
}

type goalResponse struct {
	ID            uuid.UUID `json:"id"`
	TargetAmount  int64     `json:"target_amount"`
	CurrentAmount int64     `json:"current_amount"`
	TargetDate    *string   `json:"target_date,omitempty"`
	Percent       float64   `json:"percent"`
	DaysRemaining *int      `json:"days_remaining,omitempty"`
	Overdue       bool      `json:"overdue"`
	DailyPace     *int64    `json:"daily_pace,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toResponse(g *goal.Goal, status goal.Status) goalResponse {
	resp := goalResponse{
		ID:            g.ID,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Percent:       status.Percent,
		DaysRemaining: status.DaysRemaining,
		Overdue:       status.Overdue,
		DailyPace:     status.DailyPace,
		UpdatedAt:     g.UpdatedAt,
	}

	if g.TargetDate != nil {
		resp.TargetDate = new(g.TargetDate.Format(time.DateOnly))
	}

	return resp
}

func (h *Handler) writeGoal(w http.ResponseWriter, g *goal.Goal) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(g, goal.Describe(g, time.Now()))); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeGoal(w, g)
}

type updateSettingsRequest struct {
	TargetAmount int64   `json:"target_amount"`
	TargetDate   *string `json:"target_date"`
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := goal.SettingsParams{TargetAmount: req.TargetAmount}

	if req.TargetDate != nil && *req.TargetDate != "" {
		t, err := time.Parse(time.DateOnly, *req.TargetDate)
		if err != nil {
			http.Error(w, "invalid target_date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		params.TargetDate = &t
	}

	g, err := h.svc.UpdateSettings(r.Context(), params)
	if err != nil {
		if errors.Is(err, goal.ErrInvalidTarget) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	h.writeGoal(w, g)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Reset(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeGoal(w, g)
}

type reconcileResponse struct {
	Recorded int64        `json:"recorded"`
	Actual   int64        `json:"actual"`
	Drift    int64        `json:"drift"`
	Goal     goalResponse `json:"goal"`
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Reconcile(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := reconcileResponse{
		Recorded: result.Recorded,
		Actual:   result.Actual,
		Drift:    result.Drift,
		Goal:     toResponse(result.Goal, goal.Describe(result.Goal, time.Now())),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
