package app

import (
	"github.com/cinematch/core/internal/config"
	http_auth "github.com/cinematch/core/internal/delivery/http/auth"
	http_chat "github.com/cinematch/core/internal/delivery/http/chat"
	http_home "github.com/cinematch/core/internal/delivery/http/home"
	http_init "github.com/cinematch/core/internal/delivery/http/init"
	http_session_middleware "github.com/cinematch/core/internal/delivery/http/middleware/session"
	http_movie "github.com/cinematch/core/internal/delivery/http/movie"
	http_watchlist "github.com/cinematch/core/internal/delivery/http/watchlist"
	ws_notify "github.com/cinematch/core/internal/delivery/ws/notify"
	infra_catalog "github.com/cinematch/core/internal/infra/catalog"
	infra_redis_init "github.com/cinematch/core/internal/infra/redis/init"
	infra_session_cache "github.com/cinematch/core/internal/infra/redis/session"
	infra_store_init "github.com/cinematch/core/internal/infra/store/init"
	infra_store_kv "github.com/cinematch/core/internal/infra/store/kv"
	service_hero "github.com/cinematch/core/internal/service/hero"
	service_signal "github.com/cinematch/core/internal/service/signal"
	storage_session "github.com/cinematch/core/internal/storage/session"
	usecase_chat "github.com/cinematch/core/internal/usecase/chat"
	usecase_feed "github.com/cinematch/core/internal/usecase/feed"
	usecase_interaction "github.com/cinematch/core/internal/usecase/interaction"
	usecase_movie "github.com/cinematch/core/internal/usecase/movie"
	usecase_watchlist "github.com/cinematch/core/internal/usecase/watchlist"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	db := infra_store_init.MustOpen(cfg.Store)

	catalog := infra_catalog.New(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)

	bus := service_signal.New()
	notify := service_signal.NewNotify(bus)

	sessionStore := storage_session.New(
		infra_store_kv.New(db, "session"),
		catalog,
		bus,
	)
	sessionStore.Restore()

	interactionUC := usecase_interaction.New(catalog, notify)
	watchlistUC := usecase_watchlist.New(catalog, infra_store_kv.New(db, "watchlist"), notify)
	feedUC := usecase_feed.New(catalog, watchlistUC, notify,
		usecase_feed.WithLimits(cfg.Feed.PopularLimit, cfg.Feed.GenreRowLimit))
	movieUC := usecase_movie.New(catalog)
	chatUC := usecase_chat.New(catalog, notify)

	// The watch-list cache follows the session across login and logout.
	sessionStore.Subscribe(watchlistUC.Sync)
	watchlistUC.Sync(sessionStore.Current())

	hero := service_hero.New(cfg.Hero.Interval, cfg.Hero.Slots, notify)

	sessionCache := infra_session_cache.New(redisConn, "session_cache")
	middleware := http_session_middleware.New(sessionCache, sessionStore)

	hub := ws_notify.New(bus)
	go hub.Run()

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_auth.New(sessionStore, sessionCache))
	controllerPool.Add(http_home.New(feedUC, hero, sessionStore, sessionCache))
	controllerPool.Add(http_movie.New(movieUC, interactionUC, middleware))
	controllerPool.Add(http_watchlist.New(watchlistUC, middleware))
	controllerPool.Add(http_chat.New(chatUC, middleware))
	controllerPool.Add(hub)

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
