package table

import (
	"baccarat_backend/internal/converter"
	"baccarat_backend/internal/logger"
	"baccarat_backend/internal/service"
	"baccarat_backend/pkg/resp"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

const defaultArchiveLimit = 20

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Strategies отдает каталог стратегий для экрана выбора
func (h *Handler) Strategies(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStrategyInfos(h.serv.Strategies()))
}

// Stats - сводная статистика стола по всем сессиям
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTableStatsResponse(h.serv.TableStats()))
}

// Archive - последние завершенные сессии, ?limit=N
func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	limit := defaultArchiveLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	sessions, err := h.serv.Archive(limit)
	if err != nil {
		logger.Log.Error("read archive", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToArchivedSessions(sessions))
}
