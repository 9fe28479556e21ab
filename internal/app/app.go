package app

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/addthemup/hoopgeek-sub001/internal/config"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/draft"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/lineup"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/player"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/team"
	"github.com/addthemup/hoopgeek-sub001/internal/infrastructure/account/courtside"
	cacherepo "github.com/addthemup/hoopgeek-sub001/internal/infrastructure/repository/cache"
	"github.com/addthemup/hoopgeek-sub001/internal/infrastructure/repository/memory"
	"github.com/addthemup/hoopgeek-sub001/internal/infrastructure/repository/postgres"
	"github.com/addthemup/hoopgeek-sub001/internal/interfaces/httpapi"
	basecache "github.com/addthemup/hoopgeek-sub001/internal/platform/cache"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/id"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/logging"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/resilience"
	"github.com/addthemup/hoopgeek-sub001/internal/usecase"
)

// NewHTTPServer wires repositories, services, and the HTTP router into a
// ready-to-run server. The returned cleanup closes owned resources.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, closeRepos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.leagues = cacherepo.NewLeagueRepository(repos.leagues, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		logger.Info("read-through cache enabled", "ttl", cfg.CacheTTL.String())
	}

	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.teams, logger)
	playerSvc := usecase.NewPlayerService(repos.leagues, repos.players, logger)
	lineupSvc := usecase.NewLineupService(repos.leagues, repos.teams, repos.players, repos.lineups, logger)
	draftSvc := usecase.NewDraftService(repos.leagues, repos.teams, repos.drafts, logger)
	auditSvc := usecase.NewRosterAuditService(repos.leagues, repos.teams, repos.lineups, id.NewRandomGenerator(), cfg.AuditWorkerCount, logger)

	var breaker *resilience.CircuitBreaker
	if cfg.CourtsideCircuitEnabled {
		breaker = resilience.NewCircuitBreaker(
			cfg.CourtsideCircuitFailureCount,
			cfg.CourtsideCircuitOpenTimeout,
			cfg.CourtsideCircuitHalfOpenMaxReq,
		)
	}
	courtsideClient := courtside.NewClient(
		&http.Client{Timeout: cfg.CourtsideTimeout},
		cfg.CourtsideBaseURL,
		cfg.CourtsideIntrospectPath,
		breaker,
		logger,
	)

	handler := httpapi.NewHandler(leagueSvc, playerSvc, lineupSvc, draftSvc, auditSvc, logger)
	router := httpapi.NewRouter(handler, courtsideClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = closeRepos(context.Background())
		return nil, nil, errors.New("http server addr cannot be empty")
	}

	return server, closeRepos, nil
}

type repositories struct {
	leagues league.Repository
	teams   team.Repository
	players player.Repository
	lineups lineup.Repository
	drafts  draft.Repository
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (*repositories, func(context.Context) error, error) {
	if !cfg.DBEnabled {
		logger.Info("storage backend", "kind", "memory")
		return &repositories{
			leagues: memory.NewLeagueRepository(memory.SeedLeagues()),
			teams:   memory.NewTeamRepository(memory.SeedTeams()),
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			lineups: memory.NewLineupRepository(),
			drafts:  memory.NewDraftRepository(),
		}, func(context.Context) error { return nil }, nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := sqlx.Open("postgres", dbURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open postgres connection")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, errors.Wrap(err, "ping postgres")
	}

	logger.Info("storage backend", "kind", "postgres", "database", dbNameFromURL(cfg.DBURL))

	return &repositories{
			leagues: postgres.NewLeagueRepository(db),
			teams:   postgres.NewTeamRepository(db),
			players: postgres.NewPlayerRepository(db),
			lineups: postgres.NewLineupRepository(db),
			drafts:  postgres.NewDraftRepository(db),
		}, func(context.Context) error {
			return db.Close()
		}, nil
}
