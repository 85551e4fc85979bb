package session

import (
	dto "baccarat_backend/internal/api/dto/session"
	"baccarat_backend/internal/api/stream"
	"baccarat_backend/internal/middleware"
	"baccarat_backend/internal/model"
	repoModel "baccarat_backend/internal/repository/table_stats_repo/model"
	"baccarat_backend/internal/service"
	"baccarat_backend/pkg/token"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

var secret = []byte("handler-secret")

// stubService keeps one session view and records what handlers pass in.
type stubService struct {
	view     model.SessionView
	settings *model.Settings
	hands    int
	imported string
	shoeReq  model.ShoeRequest
	speed    int
	err      error
}

func (s *stubService) current() (*model.SessionView, error) {
	if s.err != nil {
		return nil, s.err
	}
	v := s.view
	return &v, nil
}

func (s *stubService) Create(_ context.Context, settings *model.Settings) (*model.SessionView, error) {
	s.settings = settings
	return s.current()
}

func (s *stubService) Get(_ context.Context, id string) (*model.SessionView, error) {
	if id != s.view.ID {
		return nil, service.ErrSessionNotFound
	}
	return s.current()
}

func (s *stubService) Play(_ context.Context, _ string) (model.PlayResult, *model.SessionView, error) {
	v, err := s.current()
	if err != nil {
		return model.PlayResult{}, nil, err
	}
	return model.PlayResult{
		Played: true,
		Record: model.BetRecord{Hand: 1, Result: model.ResultPlayer, BetType: model.BetPlayer,
			BetAmount: decimal.NewFromInt(25), Payout: decimal.NewFromInt(25), Balance: decimal.NewFromInt(6025)},
	}, v, nil
}

func (s *stubService) StepBack(_ context.Context, _ string) (bool, *model.SessionView, error) {
	v, err := s.current()
	return err == nil, v, err
}

func (s *stubService) Reset(_ context.Context, _ string) (*model.SessionView, error) {
	return s.current()
}

func (s *stubService) NewGame(_ context.Context, _ string, hands int) (*model.SessionView, error) {
	s.hands = hands
	return s.current()
}

func (s *stubService) ImportShoe(_ context.Context, _ string, data string) (*model.SessionView, error) {
	s.imported = data
	return s.current()
}

func (s *stubService) GenerateShoe(_ context.Context, _ string, req model.ShoeRequest) (*model.SessionView, error) {
	s.shoeReq = req
	return s.current()
}

func (s *stubService) ExportShoe(_ context.Context, _ string) (string, error) {
	return "BPT", s.err
}

func (s *stubService) UpdateSettings(_ context.Context, _ string, patch model.SettingsPatch) (*model.SessionView, error) {
	settings := patch.Apply(s.view.Settings)
	s.settings = &settings
	return s.current()
}

func (s *stubService) StartAutoPlay(_ context.Context, _ string, speedMs int) (*model.SessionView, error) {
	s.speed = speedMs
	return s.current()
}

func (s *stubService) StopAutoPlay(_ context.Context, _ string) (*model.SessionView, error) {
	return s.current()
}

func (s *stubService) Strategies() []model.StrategyInfo { return nil }

func (s *stubService) TableStats() repoModel.TableState { return repoModel.TableState{} }

func (s *stubService) Archive(int) ([]model.ArchivedSession, error) { return nil, nil }

func (s *stubService) Shutdown() {}

func newTestRouter(serv service.GameService) http.Handler {
	h := NewHandler(HandlerDeps{
		Serv: serv,
		Hub:  stream.NewHub(time.Second),
		Defaults: model.Settings{
			BetType:      model.BetPlayer,
			StrategyType: model.StrategyLabouchere,
			BaseUnit:     25,
		},
		TokenSecret: secret,
		TokenTTL:    time.Hour,
	})

	r := chi.NewRouter()
	r.Post("/sessions", h.Create)
	r.Route("/session", func(rr chi.Router) {
		rr.Use(middleware.SessionAuth(secret))
		rr.Get("/", h.Get)
		rr.Put("/settings", h.UpdateSettings)
		rr.Post("/play", h.Play)
		rr.Post("/step-back", h.StepBack)
		rr.Post("/new-game", h.NewGame)
		rr.Post("/shoe/import", h.ImportShoe)
		rr.Post("/shoe/generate", h.GenerateShoe)
		rr.Get("/shoe/export", h.ExportShoe)
		rr.Post("/autoplay/start", h.StartAutoPlay)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body, tok string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if tok != "" {
		r.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func sessionToken(t *testing.T, id string) string {
	t.Helper()
	tok, err := token.GenerateSessionToken(id, secret, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return tok
}

func TestCreate(t *testing.T) {
	serv := &stubService{view: model.SessionView{ID: "s1", Status: model.StatusIdle}}
	router := newTestRouter(serv)

	w := do(t, router, http.MethodPost, "/sessions", `{"strategy_type":"martingale","base_unit":10}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body)
	}

	var out dto.CreateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.SessionID != "s1" || out.Session.Status != "idle" {
		t.Errorf("unexpected response %+v", out)
	}
	claims, err := token.VerifyToken(out.Token, secret)
	if err != nil || claims.SessionID() != "s1" {
		t.Errorf("token does not carry the session: %v", err)
	}

	if serv.settings == nil || serv.settings.StrategyType != model.StrategyMartingale ||
		serv.settings.BaseUnit != 10 || serv.settings.BetType != model.BetPlayer {
		t.Errorf("settings not merged onto defaults: %+v", serv.settings)
	}
}

func TestCreate_EmptyBodyUsesDefaults(t *testing.T) {
	serv := &stubService{view: model.SessionView{ID: "s1"}}
	w := do(t, newTestRouter(serv), http.MethodPost, "/sessions", "", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if serv.settings.StrategyType != model.StrategyLabouchere || serv.settings.BaseUnit != 25 {
		t.Errorf("expected defaults, got %+v", serv.settings)
	}
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid settings", fmt.Errorf("%w: bad", service.ErrInvalidSettings), http.StatusBadRequest},
		{"finished", service.ErrSessionFinished, http.StatusConflict},
		{"internal", fmt.Errorf("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serv := &stubService{view: model.SessionView{ID: "s1"}, err: tt.err}
			w := do(t, newTestRouter(serv), http.MethodPost, "/session/play", "", sessionToken(t, "s1"))
			if w.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestSessionRoutes(t *testing.T) {
	serv := &stubService{view: model.SessionView{
		ID:       "s1",
		Settings: model.Settings{BetType: model.BetBanker, StrategyType: model.StrategyFlat, BaseUnit: 50},
		Status:   model.StatusPaused,
	}}
	router := newTestRouter(serv)
	tok := sessionToken(t, "s1")

	if w := do(t, router, http.MethodGet, "/session/", "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
	if w := do(t, router, http.MethodGet, "/session/", "", sessionToken(t, "other")); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown session, got %d", w.Code)
	}

	w := do(t, router, http.MethodPost, "/session/play", "", tok)
	var play dto.PlayResponse
	if err := json.Unmarshal(w.Body.Bytes(), &play); err != nil || !play.Played || play.Record == nil {
		t.Fatalf("unexpected play response %s (%v)", w.Body, err)
	}

	do(t, router, http.MethodPost, "/session/new-game", `{"hands": 40}`, tok)
	if serv.hands != 40 {
		t.Errorf("expected 40 hands, got %d", serv.hands)
	}

	do(t, router, http.MethodPost, "/session/shoe/import", `{"data": "bbp"}`, tok)
	if serv.imported != "bbp" {
		t.Errorf("expected import data, got %q", serv.imported)
	}

	do(t, router, http.MethodPost, "/session/shoe/generate", `{"hands": 30, "source": "cards", "decks": 6}`, tok)
	if serv.shoeReq != (model.ShoeRequest{Hands: 30, Source: model.ShoeCards, Decks: 6}) {
		t.Errorf("unexpected shoe request %+v", serv.shoeReq)
	}

	do(t, router, http.MethodPost, "/session/autoplay/start", `{"speed_ms": 200}`, tok)
	if serv.speed != 200 {
		t.Errorf("expected speed 200, got %d", serv.speed)
	}

	if w := do(t, router, http.MethodPost, "/session/play", `{`, tok); w.Code != http.StatusOK {
		t.Errorf("play ignores the body, got %d", w.Code)
	}
	if w := do(t, router, http.MethodPost, "/session/new-game", `{"hands": "x"}`, tok); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad body, got %d", w.Code)
	}
}

func TestUpdateSettings_MergesOntoCurrent(t *testing.T) {
	serv := &stubService{view: model.SessionView{
		ID:       "s1",
		Settings: model.Settings{BetType: model.BetBanker, StrategyType: model.StrategyFlat, BaseUnit: 50},
	}}

	w := do(t, newTestRouter(serv), http.MethodPut, "/session/settings", `{"base_unit": 75}`, sessionToken(t, "s1"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if serv.settings.BaseUnit != 75 || serv.settings.BetType != model.BetBanker || serv.settings.StrategyType != model.StrategyFlat {
		t.Errorf("unexpected merged settings %+v", serv.settings)
	}
}

func TestExportShoe(t *testing.T) {
	serv := &stubService{view: model.SessionView{ID: "s1"}}
	w := do(t, newTestRouter(serv), http.MethodGet, "/session/shoe/export", "", sessionToken(t, "s1"))

	if w.Code != http.StatusOK || w.Body.String() != "BPT" {
		t.Fatalf("unexpected export %d %q", w.Code, w.Body)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, `attachment; filename="shoe-`) {
		t.Errorf("unexpected disposition %q", cd)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("unexpected content type %q", ct)
	}
}
