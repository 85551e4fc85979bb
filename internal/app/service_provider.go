package app

import (
	sessionAPI "baccarat_backend/internal/api/session"
	"baccarat_backend/internal/api/stream"
	tableAPI "baccarat_backend/internal/api/table"
	"baccarat_backend/internal/config"
	"baccarat_backend/internal/config/env"
	"baccarat_backend/internal/logger"
	"baccarat_backend/internal/middleware"
	"baccarat_backend/internal/recorder"
	"baccarat_backend/internal/repository"
	"baccarat_backend/internal/repository/session_repo"
	"baccarat_backend/internal/repository/settings_repo"
	"baccarat_backend/internal/repository/table_stats_repo"
	"baccarat_backend/internal/service"
	"baccarat_backend/internal/service/game"
	"baccarat_backend/internal/service/session"
	"baccarat_backend/pkg/resp"
	"context"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Configs
	gameCfg    config.GameConfig
	tokenCfg   config.TokenConfig
	archiveCfg config.ArchiveConfig
	logCfg     config.LogConfig

	// Session bits
	sessionRepo  repository.SessionRepository
	settingsRepo repository.SettingsRepository
	statsRepo    repository.StatsRepository
	recorder     recorder.Recorder
	hub          *stream.Hub
	gameServ     service.GameService
	sessionHand  *sessionAPI.Handler
	tableHand    *tableAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) TokenCfg() config.TokenConfig {
	if sp.tokenCfg == nil {
		cfg, err := env.NewTokenConfig()
		if err != nil {
			panic("failed to get token config: " + err.Error())
		}
		sp.tokenCfg = cfg
	}
	return sp.tokenCfg
}

func (sp *ServiceProvider) ArchiveCfg() config.ArchiveConfig {
	if sp.archiveCfg == nil {
		cfg, err := env.NewArchiveConfig()
		if err != nil {
			panic("failed to get archive config: " + err.Error())
		}
		sp.archiveCfg = cfg
	}
	return sp.archiveCfg
}

func (sp *ServiceProvider) SessionRepository(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.DBClient(ctx))
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) SettingsRepository(ctx context.Context) repository.SettingsRepository {
	if sp.settingsRepo == nil {
		sp.settingsRepo = settings_repo.NewSettingsRepository(sp.DBClient(ctx))
	}
	return sp.settingsRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = table_stats_repo.NewTableStatsRepository(sp.GameCfg().StatsWindow())
	}
	return sp.statsRepo
}

// Recorder Архив завершенных сессий. Без пути или при ошибке открытия архив отключается
func (sp *ServiceProvider) Recorder() recorder.Recorder {
	if sp.recorder == nil {
		path := sp.ArchiveCfg().SQLitePath()
		if path == "" {
			sp.recorder = recorder.NewNoopRecorder()
			return sp.recorder
		}

		rec, err := recorder.NewSQLiteRecorder(path)
		if err != nil {
			logger.Log.Error("open session archive, archive disabled", zap.String("path", path), zap.Error(err))
			sp.recorder = recorder.NewNoopRecorder()
			return sp.recorder
		}
		sp.recorder = rec
	}
	return sp.recorder
}

func (sp *ServiceProvider) Hub() *stream.Hub {
	if sp.hub == nil {
		sp.hub = stream.NewHub(sp.GameCfg().StreamPingInterval())
	}
	return sp.hub
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(
			session.RulesFromConfig(sp.GameCfg()),
			sp.SessionRepository(ctx),
			sp.SettingsRepository(ctx),
			sp.StatsRepository(),
			sp.Recorder(),
			sp.Hub(),
			sp.TXManager(ctx),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) SessionHandler(ctx context.Context) *sessionAPI.Handler {
	if sp.sessionHand == nil {
		sp.sessionHand = sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Serv:        sp.GameService(ctx),
			Hub:         sp.Hub(),
			Defaults:    sp.GameCfg().DefaultSettings(),
			TokenSecret: sp.TokenCfg().SecretKey(),
			TokenTTL:    sp.TokenCfg().TokenDuration(),
		})
	}
	return sp.sessionHand
}

func (sp *ServiceProvider) TableHandler(ctx context.Context) *tableAPI.Handler {
	if sp.tableHand == nil {
		sp.tableHand = tableAPI.NewHandler(tableAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.tableHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link", "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))
		r.Use(middleware.Metrics)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Handle("/metrics", promhttp.Handler())

		// Table endpoints
		tableHandler := sp.TableHandler(ctx)
		r.Get("/strategies", tableHandler.Strategies)
		r.Get("/table/stats", tableHandler.Stats)
		r.Get("/archive", tableHandler.Archive)

		// Session endpoints
		sessionHandler := sp.SessionHandler(ctx)
		r.Post("/sessions", sessionHandler.Create)
		r.Route("/session", func(rr chi.Router) {
			rr.Use(middleware.SessionAuth(sp.TokenCfg().SecretKey()))
			rr.Get("/", sessionHandler.Get)
			rr.Put("/settings", sessionHandler.UpdateSettings)
			rr.Post("/play", sessionHandler.Play)
			rr.Post("/step-back", sessionHandler.StepBack)
			rr.Post("/reset", sessionHandler.Reset)
			rr.Post("/new-game", sessionHandler.NewGame)
			rr.Post("/shoe/import", sessionHandler.ImportShoe)
			rr.Post("/shoe/generate", sessionHandler.GenerateShoe)
			rr.Get("/shoe/export", sessionHandler.ExportShoe)
			rr.Post("/autoplay/start", sessionHandler.StartAutoPlay)
			rr.Post("/autoplay/stop", sessionHandler.StopAutoPlay)
			rr.Get("/stream", sessionHandler.Stream)
		})

		sp.router = r
	}

	return sp.router
}

// Close останавливает автоигру и освобождает ресурсы
func (sp *ServiceProvider) Close() {
	if sp.gameServ != nil {
		sp.gameServ.Shutdown()
	}
	if sp.hub != nil {
		sp.hub.Close()
	}
	if sp.recorder != nil {
		if err := sp.recorder.Close(); err != nil {
			logger.Log.Warn("close session archive", zap.Error(err))
		}
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
