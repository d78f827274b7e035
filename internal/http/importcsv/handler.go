package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/category"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/importer"
	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
)

// fallbackCategory is assigned when no rule matches and the statement
// carries no category column.
const fallbackCategory = "uncategorized"

type Handler struct {
	importSvc   *importer.Service
	txSvc       *transaction.Service
	categorySvc *category.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service, categorySvc *category.Service) *Handler {
	return &Handler{
		importSvc:   importSvc,
		txSvc:       txSvc,
		categorySvc: categorySvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/confirm", h.confirmImport)
}

type transactionResponse struct {
	ID        uuid.UUID        `json:"id"`
	Amount    int64            `json:"amount"`
	Type      transaction.Type `json:"type"`
	Category  string           `json:"category"`
	Memo      string           `json:"memo,omitempty"`
	Date      string           `json:"date"`
	CreatedAt time.Time        `json:"created_at"`
}

type importSuccessResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

type recordParamsDTO struct {
	Amount   int64            `json:"amount"`
	Type     transaction.Type `json:"type"`
	Category string           `json:"category"`
	Memo     string           `json:"memo"`
	Date     string           `json:"date"`
}

type conflictDTO struct {
	Incoming recordParamsDTO     `json:"incoming"`
	Existing transactionResponse `json:"existing"`
}

type importConflictResponse struct {
	New       []recordParamsDTO `json:"new"`
	Conflicts []conflictDTO     `json:"conflicts"`
}

type confirmRequest struct {
	Params []recordParamsDTO `json:"params"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatStatement
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for i, p := range params {
		if p.Category != "" {
			continue
		}

		suggested, err := h.categorySvc.Suggest(r.Context(), p.Memo)
		if err != nil {
			slog.Error("category suggestion failed", "memo", p.Memo, "error", err)
		}

		if suggested == "" {
			suggested = fallbackCategory
		}

		params[i].Category = suggested
	}

	result, err := h.txSvc.ImportBatch(r.Context(), params)
	if err != nil {
		if transaction.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if len(result.Conflicts) > 0 {
		w.WriteHeader(http.StatusConflict)

		resp := importConflictResponse{
			New:       toParamsDTOs(result.New),
			Conflicts: toConflictDTOs(result.Conflicts),
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	resp := importSuccessResponse{
		Imported:     len(result.Imported),
		Transactions: toResponseList(result.Imported),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]transaction.RecordParams, 0, len(req.Params))

	for _, dto := range req.Params {
		date, err := time.Parse(time.DateOnly, dto.Date)
		if err != nil {
			http.Error(w, "invalid date: "+dto.Date, http.StatusBadRequest)
			return
		}

		params = append(params, transaction.RecordParams{
			Amount:   dto.Amount,
			Type:     dto.Type,
			Category: dto.Category,
			Memo:     dto.Memo,
			Date:     date,
		})
	}

	txs, err := h.txSvc.ConfirmBatch(r.Context(), params)
	if err != nil {
		if transaction.IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := importSuccessResponse{
		Imported:     len(txs),
		Transactions: toResponseList(txs),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = transactionResponse{
			ID:        tx.ID,
			Amount:    tx.Amount,
			Type:      tx.Type,
			Category:  tx.Category,
			Memo:      tx.Memo,
			Date:      tx.Date.Format(time.DateOnly),
			CreatedAt: tx.CreatedAt,
		}
	}

	return resp
}

func toParamsDTOs(params []transaction.RecordParams) []recordParamsDTO {
	dtos := make([]recordParamsDTO, len(params))
	for i, p := range params {
		dtos[i] = recordParamsDTO{
			Amount:   p.Amount,
			Type:     p.Type,
			Category: p.Category,
			Memo:     p.Memo,
			Date:     p.Date.Format(time.DateOnly),
		}
	}

	return dtos
}

func toConflictDTOs(conflicts []transaction.Conflict) []conflictDTO {
	dtos := make([]conflictDTO, len(conflicts))
	for i, c := range conflicts {
		dtos[i] = conflictDTO{
			Incoming: recordParamsDTO{
				Amount:   c.Incoming.Amount,
				Type:     c.Incoming.Type,
				Category: c.Incoming.Category,
				Memo:     c.Incoming.Memo,
				Date:     c.Incoming.Date.Format(time.DateOnly),
			},
			Existing: transactionResponse{
				ID:        c.Existing.ID,
				Amount:    c.Existing.Amount,
				Type:      c.Existing.Type,
				Category:  c.Existing.Category,
				Memo:      c.Existing.Memo,
				Date:      c.Existing.Date.Format(time.DateOnly),
				CreatedAt: c.Existing.CreatedAt,
			},
		}
	}

	return dtos
}
