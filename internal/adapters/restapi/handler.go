package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"spv_wallet_summary/internal/core/application"
	"spv_wallet_summary/internal/core/domain"
	"spv_wallet_summary/internal/core/domain/repository"
	"spv_wallet_summary/internal/logger"
	"spv_wallet_summary/pkg/summaryapi"
)

// HTTPHandler handles incoming HTTP requests for the summary API.
type HTTPHandler struct {
	summaryService summaryapi.Service
	logger         logger.AppLogger
}

// NewHTTPHandler creates a new handler with the necessary service dependency.
func NewHTTPHandler(summaryService summaryapi.Service, appLogger logger.AppLogger) (*HTTPHandler, error) {
	if summaryService == nil {
		return nil, errors.New("summaryService cannot be nil for HTTPHandler")
	}
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for HTTPHandler")
	}
	return &HTTPHandler{
		summaryService: summaryService,
		logger:         appLogger,
	}, nil
}

// HandleGetTransactions handles requests to GET /accounts/{account}/transactions
func (h *HTTPHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	account := r.PathValue("account")
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path, "account", account)

	var since int64
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Query parameter 'since' must be an integer of milliseconds", requestLogger)
			return
		}
		since = parsed
	}

	rows, err := h.summaryService.GetTransactionsSince(r.Context(), account, since)
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to retrieve transactions", requestLogger)
		return
	}

	requestLogger.Info("Successfully retrieved transactions", "count", len(rows), "since", since)
	respondWithJSON(w, http.StatusOK, GetTransactionsResponse{
		Account:      account,
		Since:        since,
		Count:        len(rows),
		Transactions: rows,
	}, requestLogger)
}

// HandleGetTransaction handles requests to GET /accounts/{account}/transactions/{txid}
func (h *HTTPHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	account := r.PathValue("account")
	txid := r.PathValue("txid")
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path, "account", account, "txid", txid)

	row, err := h.summaryService.GetTransaction(r.Context(), account, txid)
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to retrieve transaction", requestLogger)
		return
	}

	respondWithJSON(w, http.StatusOK, row, requestLogger)
}

// HandleRecordSnapshot handles requests to POST /accounts/{account}/transactions
func (h *HTTPHandler) HandleRecordSnapshot(w http.ResponseWriter, r *http.Request) {
	account := r.PathValue("account")
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path, "account", account)

	defer func() {
		if err := r.Body.Close(); err != nil {
			requestLogger.Warn("Failed to close request body in HandleRecordSnapshot", "error", err)
		}
	}()

	var snapshot summaryapi.SummarySnapshot
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&snapshot); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), requestLogger)
		return
	}

	if err := h.summaryService.RecordSnapshot(r.Context(), account, snapshot); err != nil {
		h.respondWithServiceError(w, err, "Failed to record transaction", requestLogger)
		return
	}

	requestLogger.Debug("Transaction snapshot recorded", "txid", snapshot.ID, "confirmations", snapshot.Confirmations)
	w.WriteHeader(http.StatusNoContent)
}

// HandleCancel handles requests to DELETE /accounts/{account}/transactions/{txid}
func (h *HTTPHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	account := r.PathValue("account")
	txid := r.PathValue("txid")
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path, "account", account, "txid", txid)

	if err := h.summaryService.Cancel(r.Context(), account, txid); err != nil {
		h.respondWithServiceError(w, err, "Failed to cancel transaction", requestLogger)
		return
	}

	requestLogger.Info("Queued transaction cancelled")
	respondWithJSON(w, http.StatusOK, CancelResponse{
		Success: true,
		Message: "Queued transaction cancelled",
	}, requestLogger)
}

// respondWithServiceError maps service errors to HTTP status codes.
// Unexpected errors are logged and hidden behind fallbackMessage.
func (h *HTTPHandler) respondWithServiceError(w http.ResponseWriter, err error, fallbackMessage string, l logger.AppLogger) {
	code := statusForError(err)
	if code == http.StatusInternalServerError {
		l.Error(fallbackMessage, "error", err)
		respondWithError(w, code, fallbackMessage, l)
		return
	}
	respondWithError(w, code, err.Error(), l)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, application.ErrInvalidAccountID),
		errors.Is(err, domain.ErrInvalidTransactionIDFormat),
		errors.Is(err, domain.ErrInvalidAddressFormat),
		errors.Is(err, domain.ErrInvalidAmountFormat),
		errors.Is(err, domain.ErrUnsupportedCurrency):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrSummaryNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrNotCancelable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError logs a warning and sends a JSON error response with the given code and message.
func respondWithError(w http.ResponseWriter, code int, message string, l logger.AppLogger) {
	if l == nil {
		l = logger.NewSlogAdapter(slog.Default())
	}
	l.Warn("Responding with error", "http_code", code, "message", message)
	respondWithJSON(w, code, ErrorResponse{Error: message}, l)
}

// respondWithJSON marshals the given payload into JSON and writes it to the response writer.
func respondWithJSON(w http.ResponseWriter, code int, payload any, l logger.AppLogger) {
	if l == nil {
		l = logger.NewSlogAdapter(slog.Default())
	}

	response, err := json.Marshal(payload)
	if err != nil {
		l.Error("!!! Critical: Error marshaling JSON response !!!",
			"error", err.Error(),
			"payload_type", fmt.Sprintf("%T", payload),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(code)

	n, writeErr := w.Write(response)
	if writeErr != nil {
		l.Error("Error writing response body", "error", writeErr, "bytes_written", n)
	}
}
