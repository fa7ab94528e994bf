package server

import (
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"

	"github.com/iota-uz/iota-actions/modules/actions/presentation/controllers"
	"github.com/iota-uz/iota-actions/pkg/application"
	"github.com/iota-uz/iota-actions/pkg/configuration"
	"github.com/iota-uz/iota-actions/pkg/constants"
	"github.com/iota-uz/iota-actions/pkg/middleware"
	"github.com/iota-uz/iota-actions/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
	Entrypoint    string
}

func loggerOptions(conf *configuration.Configuration) middleware.LoggerOptions {
	opts := middleware.DefaultLoggerOptions()
	if conf.RequestIDHeader != "" {
		opts.RequestIDHeader = conf.RequestIDHeader
	}
	if conf.RealIPHeader != "" {
		opts.RealIPHeader = conf.RealIPHeader
	}
	return opts
}

func rateLimitStore(conf *configuration.Configuration, logger *logrus.Logger) limiter.Store {
	if conf.RateLimit.Storage != "redis" {
		return middleware.NewMemoryStore()
	}
	store, err := middleware.NewRedisStore(conf.RateLimit.RedisURL)
	if err != nil {
		logger.WithError(err).Warn("Failed to create Redis store for rate limiting, falling back to memory")
		return middleware.NewMemoryStore()
	}
	return store
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	conf := options.Configuration

	// WithLogger opens the root span, so it goes first
	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger, loggerOptions(conf)),

		middleware.TracedMiddleware("database"),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, options.Pool),

		middleware.TracedMiddleware("cors"),
		middleware.Cors(conf.AllowedOrigins()...),
	}

	if conf.RateLimit.Enabled {
		middlewares = append(middlewares,
			middleware.TracedMiddleware("rateLimit"),
			middleware.RateLimit(middleware.RateLimitConfig{
				RequestsPerPeriod: conf.RateLimit.GlobalRPS,
				Store:             rateLimitStore(conf, options.Logger),
			}),
		)
	}

	app.RegisterMiddleware(middlewares...)

	handlerOpts := controllers.ErrorHandlersOptions{
		Entrypoint: options.Entrypoint,
	}
	serverInstance := server.NewHTTPServer(
		app,
		controllers.NotFound(app, handlerOpts),
		controllers.MethodNotAllowed(handlerOpts),
	)
	return serverInstance, nil
}
