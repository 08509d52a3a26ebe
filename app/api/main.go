package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/database/mongoclient"
	"github.com/prompthub/marketplace/base/database/redisclient"
	"github.com/prompthub/marketplace/base/log"
	"github.com/prompthub/marketplace/base/metrics"
	bValidator "github.com/prompthub/marketplace/base/validator"
	mmiddleware "github.com/prompthub/marketplace/middleware"
	"github.com/prompthub/marketplace/service/event"
	"github.com/prompthub/marketplace/service/query"
	"github.com/prompthub/marketplace/service/redis"
	account_delivery "github.com/prompthub/marketplace/stores/account/delivery/http"
	account_repository "github.com/prompthub/marketplace/stores/account/repository"
	account_usecase "github.com/prompthub/marketplace/stores/account/usecase"
	activity_delivery "github.com/prompthub/marketplace/stores/activity/delivery/http"
	activity_repository "github.com/prompthub/marketplace/stores/activity/repository"
	activity_subscriber "github.com/prompthub/marketplace/stores/activity/subscriber"
	activity_usecase "github.com/prompthub/marketplace/stores/activity/usecase"
	auth_delivery "github.com/prompthub/marketplace/stores/auth/delivery/http"
	auth_middleware "github.com/prompthub/marketplace/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/prompthub/marketplace/stores/auth/usecase"
	custody_repository "github.com/prompthub/marketplace/stores/custody/repository"
	hc_delivery "github.com/prompthub/marketplace/stores/healthcheck/delivery/http"
	hc_repo "github.com/prompthub/marketplace/stores/healthcheck/repository"
	hc_usecase "github.com/prompthub/marketplace/stores/healthcheck/usecase"
	ledger_delivery "github.com/prompthub/marketplace/stores/ledger/delivery/http"
	ledger_repository "github.com/prompthub/marketplace/stores/ledger/repository"
	ledger_usecase "github.com/prompthub/marketplace/stores/ledger/usecase"
	listing_delivery "github.com/prompthub/marketplace/stores/listing/delivery/http"
	listing_repository "github.com/prompthub/marketplace/stores/listing/repository"
	listing_usecase "github.com/prompthub/marketplace/stores/listing/usecase"
	marketplace_delivery "github.com/prompthub/marketplace/stores/marketplace/delivery/http"
	marketplace_repository "github.com/prompthub/marketplace/stores/marketplace/repository"
	marketplace_usecase "github.com/prompthub/marketplace/stores/marketplace/usecase"
	prompt_delivery "github.com/prompthub/marketplace/stores/prompt/delivery/http"
	prompt_repository "github.com/prompthub/marketplace/stores/prompt/repository"
	prompt_usecase "github.com/prompthub/marketplace/stores/prompt/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	marketplaceRepo := marketplace_repository.New(q)
	promptRepo := prompt_repository.New(q, redisCache)
	listingRepo := listing_repository.New(q)
	custodyRepo := custody_repository.New(q)
	ledgerRepo := ledger_repository.New(q)
	activityRepo := activity_repository.New(q)
	accountRepo := account_repository.New(q, redisCache)

	publisher := event.NewPublisher(activity_subscriber.New(activityRepo))

	hc := hc_usecase.New(hcRepo)
	marketplace := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		MarketplaceRepo: marketplaceRepo,
	})
	prompt := prompt_usecase.New(&prompt_usecase.PromptUseCaseCfg{
		PromptRepo:  promptRepo,
		CustodyRepo: custodyRepo,
		Query:       q,
		Publisher:   publisher,
	})
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:     listingRepo,
		PromptRepo:      promptRepo,
		CustodyRepo:     custodyRepo,
		LedgerRepo:      ledgerRepo,
		MarketplaceRepo: marketplaceRepo,
		Query:           q,
		Publisher:       publisher,
	})
	ledger := ledger_usecase.New(&ledger_usecase.LedgerUseCaseCfg{
		LedgerRepo: ledgerRepo,
	})
	activity := activity_usecase.New(&activity_usecase.ActivityUseCaseCfg{
		ActivityRepo: activityRepo,
	})
	account := account_usecase.New(&account_usecase.AccountUseCaseCfg{
		AccountRepo: accountRepo,
	})
	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		SigningMsgTemplate: viper.GetString("auth.signatureMsg"),
		Account:            account,
	})

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMiddleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	account_delivery.New(e, account)
	marketplace_delivery.New(e, marketplace, authMiddleware.Auth(), authMiddleware.IsAdmin())
	prompt_delivery.New(e, prompt, authMiddleware.Auth())
	listing_delivery.New(e, listing, authMiddleware.Auth())
	ledger_delivery.New(e, ledger, authMiddleware.Auth(), authMiddleware.IsAdmin())
	activity_delivery.New(e, activity)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
