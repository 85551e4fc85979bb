package session

import (
	dto "baccarat_backend/internal/api/dto/session"
	"baccarat_backend/internal/api/stream"
	"baccarat_backend/internal/converter"
	"baccarat_backend/internal/logger"
	"baccarat_backend/internal/middleware"
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/service"
	"baccarat_backend/pkg/req"
	"baccarat_backend/pkg/resp"
	"baccarat_backend/pkg/token"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv        service.GameService
	Hub         *stream.Hub
	Defaults    model.Settings
	TokenSecret []byte
	TokenTTL    time.Duration
}

type Handler struct {
	serv        service.GameService
	hub         *stream.Hub
	defaults    model.Settings
	tokenSecret []byte
	tokenTTL    time.Duration
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:        deps.Serv,
		hub:         deps.Hub,
		defaults:    deps.Defaults,
		tokenSecret: deps.TokenSecret,
		tokenTTL:    deps.TokenTTL,
	}
}

// Create создает сессию и возвращает токен для остальных запросов
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SettingsRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	settings := converter.ToSettings(h.defaults, payload)
	view, err := h.serv.Create(r.Context(), &settings)
	if err != nil {
		writeError(w, err)
		return
	}

	tok, err := token.GenerateSessionToken(view.ID, h.tokenSecret, h.tokenTTL)
	if err != nil {
		logger.Log.Error("sign session token", zap.String("session_id", view.ID), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, dto.CreateResponse{
		SessionID: view.ID,
		Token:     tok,
		Session:   converter.ToSessionResponse(*view),
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.serv.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*view))
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	payload, err := req.Decode[dto.SettingsRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.serv.UpdateSettings(r.Context(), id, converter.ToSettingsPatch(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*view))
}

func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	result, view, err := h.serv.Play(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayResponse(result, *view))
}

func (h *Handler) StepBack(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	stepped, view, err := h.serv.StepBack(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.StepBackResponse{
		SteppedBack: stepped,
		Session:     converter.ToSessionResponse(*view),
	})
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.serv.Reset(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*view))
}

func (h *Handler) NewGame(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	payload, err := req.Decode[dto.NewGameRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.serv.NewGame(r.Context(), id, payload.Hands)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*view))
}

func (h *Handler) ImportShoe(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	payload, err := req.Decode[dto.ImportShoeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.serv.ImportShoe(r.Context(), id, payload.Data)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*view))
}

func (h *Handler) GenerateShoe(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	payload, err := req.Decode[dto.GenerateShoeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.serv.GenerateShoe(r.Context(), id, converter.ToShoeRequest(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*view))
}

// ExportShoe отдает шу файлом shoe-<unix>.txt
func (h *Handler) ExportShoe(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	shoe, err := h.serv.ExportShoe(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="shoe-%d.txt"`, time.Now().Unix()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(shoe))
}

func (h *Handler) StartAutoPlay(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	payload, err := req.Decode[dto.AutoPlayRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.serv.StartAutoPlay(r.Context(), id, payload.SpeedMs)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*view))
}

func (h *Handler) StopAutoPlay(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.serv.StopAutoPlay(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*view))
}

// Stream подписывает websocket клиента на обновления сессии
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.serv.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	h.hub.Serve(w, r, id, *view)
}

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
	}
	return id, ok
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidSettings):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrSessionFinished):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		logger.Log.Error("request failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
