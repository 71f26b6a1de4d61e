package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/viney-shih/goroutines"
	"google.golang.org/api/option"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/database/mongoclient"
	"github.com/gaslex/goapi/base/database/redisclient"
	"github.com/gaslex/goapi/base/env"
	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/base/metrics"
	bValidator "github.com/gaslex/goapi/base/validator"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/ad"
	dchain "github.com/gaslex/goapi/domain/chain"
	hcdomain "github.com/gaslex/goapi/domain/healthcheck"
	"github.com/gaslex/goapi/domain/keys"
	mmiddleware "github.com/gaslex/goapi/middleware"
	"github.com/gaslex/goapi/service/cache"
	"github.com/gaslex/goapi/service/cache/provider"
	"github.com/gaslex/goapi/service/cache/provider/primitive"
	redisprovider "github.com/gaslex/goapi/service/cache/provider/redis"
	"github.com/gaslex/goapi/service/chain"
	"github.com/gaslex/goapi/service/notify"
	"github.com/gaslex/goapi/service/query"
	"github.com/gaslex/goapi/service/redis"
	"github.com/gaslex/goapi/service/sponsor"
	ad_delivery "github.com/gaslex/goapi/stores/ad/delivery/http"
	ad_repository "github.com/gaslex/goapi/stores/ad/repository"
	ad_usecase "github.com/gaslex/goapi/stores/ad/usecase"
	auth_delivery "github.com/gaslex/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/gaslex/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/gaslex/goapi/stores/auth/usecase"
	hc_delivery "github.com/gaslex/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/gaslex/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/gaslex/goapi/stores/healthcheck/usecase"
	transfer_delivery "github.com/gaslex/goapi/stores/transfer/delivery/http"
	transfer_usecase "github.com/gaslex/goapi/stores/transfer/usecase"
	wallet_delivery "github.com/gaslex/goapi/stores/wallet/delivery/http"
	wallet_repository "github.com/gaslex/goapi/stores/wallet/repository"
	wallet_usecase "github.com/gaslex/goapi/stores/wallet/usecase"
	webresource_repository "github.com/gaslex/goapi/stores/web_resource/repository"
	webresource_usecase "github.com/gaslex/goapi/stores/web_resource/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/gaslex/goapi/app/api/docs"
)

var configFile = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")

func init() {
	pflag.Parse()

	if err := env.Load(); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	// e.g. GASLEX_AUTH_JWTSECRET overrides auth.jwtSecret
	viper.SetEnvPrefix("gaslex")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if err := log.Init(viper.GetBool(`debug`)); err != nil {
		panic(err)
	}
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Gaslex Wallet API
//	@version		1.0
//	@description	Wallet dashboard API: sessions, balances, ad gated transfers and sponsored ads.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/sessions/post_sessions and apply with `bearer {token}`
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware(viper.GetString("server.allowOrigin"))
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()
	context.WithFields(log.Fields{
		"env":    env.EnvName(),
		"pod":    env.PodName(),
		"config": *configFile,
	}).Info("starting")
	if err := sponsor.CheckBackend(viper.GetString("sponsor.url"), viper.GetString("mongo.uri")); err != nil {
		context.WithField("err", err).Panic("sponsor.CheckBackend failed")
	}

	pingers := []hcdomain.Pinger{}

	// init mongo client, an empty uri keeps ads in memory
	var adRepo ad.Repo
	if uri := viper.GetString("mongo.uri"); uri != "" {
		context.Info("init mongo")
		mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
			Uri:                uri,
			AuthDBName:         viper.GetString("mongo.authDBName"),
			DBName:             viper.GetString("mongo.dbName"),
			Ssl:                viper.GetBool("mongo.enableSSL"),
			SetSafe:            true,
			PoolSizeMultiplier: 2,
		})
		q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
		adRepo = ad_repository.New(q)
		if err := adRepo.EnsureIndexes(context); err != nil {
			context.WithField("err", err).Panic("adRepo.EnsureIndexes failed")
		}
		pingers = append(pingers, hc_repo.NewMongoPinger(mongoClient))
	} else {
		context.Warn("mongo.uri not set, ads are kept in memory")
		adRepo = ad_repository.NewMemory()
	}

	// init cache provider, redis when configured
	var cacheProvider provider.Provider
	if uri := viper.GetString("redis_cache.uri"); uri != "" {
		context.Info("init redis cache")
		redisCacheName := viper.GetString("redis_cache.name")
		redisCachePool := redisclient.MustConnectRedis(uri, viper.GetString("redis_cache.password"), redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		})
		redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)
		cacheProvider = redisprovider.NewRedis(redisCache)
		pingers = append(pingers, hc_repo.NewCachePinger(redisCacheName, cacheProvider))
	} else {
		cacheProvider = primitive.NewPrimitive("local", viper.GetInt("local_cache.sizeMB"))
		pingers = append(pingers, hc_repo.NewCachePinger("local", cacheProvider))
	}
	mmiddleware.SetupCache(cacheProvider)

	// init ledger
	keystore, err := chain.LoadKeystore(viper.GetString("keystore.dir"))
	if err != nil {
		context.WithField("err", err).Panic("chain.LoadKeystore failed")
	}
	networks := viper.Sub("networks")
	networkNames := []string{}
	for k := range networks.AllSettings() {
		networkNames = append(networkNames, k)
	}
	// without a default the first network in name order is used
	sort.Strings(networkNames)
	networkCfgs := []chain.NetworkCfg{}
	for _, k := range networkNames {
		networkCfgs = append(networkCfgs, chain.NetworkCfg{
			Name:    domain.Network(networks.GetString(fmt.Sprintf("%s.name", k))),
			Label:   networks.GetString(fmt.Sprintf("%s.label", k)),
			RpcUrl:  networks.GetString(fmt.Sprintf("%s.rpcUrl", k)),
			Default: networks.GetBool(fmt.Sprintf("%s.default", k)),
		})
	}
	ledger, err := chain.NewClient(context, &chain.ClientCfg{
		Networks:        networkCfgs,
		Keystore:        keystore,
		Commitment:      dchain.ConfirmationStatus(viper.GetString("ledger.commitment")),
		ConfirmTimeout:  viper.GetDuration("ledger.confirmTimeout"),
		ConfirmInterval: viper.GetDuration("ledger.confirmInterval"),
		MaxConcurrency:  viper.GetInt("ledger.maxConcurrency"),
	})
	if err != nil {
		context.WithField("err", err).Warn("ledger started with error")
	}

	// init blob storage
	var writer domain.WebResourceWriterRepository
	switch backend := viper.GetString("storage.backend"); backend {
	case "gcs":
		opts := []option.ClientOption{}
		if f := viper.GetString("cloud-storage.credentialsFile"); f != "" {
			opts = append(opts, option.WithCredentialsFile(f))
		}
		storageClient, err := storage.NewClient(context, opts...)
		if err != nil {
			context.WithField("err", err).Panic("storage.NewClient failed")
		}
		writer, err = webresource_repository.NewCloudStorageWriterRepo(&webresource_repository.CloudStorageWriterRepoCfg{
			Timeout:      viper.GetDuration("cloud-storage.timeout"),
			Client:       storageClient,
			BucketName:   viper.GetString("cloud-storage.bucket"),
			Url:          viper.GetString("cloud-storage.url"),
			CacheControl: viper.GetString("cloud-storage.cacheControl"),
		})
		if err != nil {
			context.WithField("err", err).Panic("NewCloudStorageWriterRepo failed")
		}
	case "ipfs":
		writer = webresource_repository.NewIpfsNodeWriterRepo(
			viper.GetString("ipfs.api"),
			viper.GetString("ipfs.gateway"),
			viper.GetDuration("ipfs.timeout"),
		)
	default:
		context.WithField("backend", backend).Panic("unknown storage.backend")
	}
	maxContentBytes := viper.GetInt("ads.maxContentBytes")
	webResource := webresource_usecase.NewWebResourceUseCase(&webresource_usecase.WebResourceUseCaseCfg{
		Writer:          writer,
		MaxContentBytes: maxContentBytes,
	})

	// init notifiers
	notifyPool := goroutines.NewPool(viper.GetInt("notify.workers"), goroutines.WithTaskQueueLength(64))
	defer notifyPool.Release()
	targets := []notify.Notifier{}
	if botKey := viper.GetString("discord.botKey"); botKey != "" {
		d, err := notify.NewDiscord(botKey, viper.GetString("discord.channelId"))
		if err != nil {
			context.WithField("err", err).Panic("notify.NewDiscord failed")
		}
		targets = append(targets, d)
	}
	if token := viper.GetString("telegram.token"); token != "" {
		t, err := notify.NewTelegram(token, viper.GetInt64("telegram.chatId"))
		if err != nil {
			context.WithField("err", err).Panic("notify.NewTelegram failed")
		}
		targets = append(targets, t)
	}
	notifier := notify.NewAsync(notifyPool, targets...)

	// construct repository, usecase and delivery
	adCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("ads.cacheTtl"),
		Pfx:   keys.PfxAds,
		Cache: cacheProvider,
	})
	balanceCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("wallet.balanceCacheTtl"),
		Pfx:   keys.PfxBalance,
		Cache: cacheProvider,
	})
	sponsorUsecase := ad_usecase.New(adRepo, adCache)

	var tracker ad.Tracker = sponsorUsecase
	if url := viper.GetString("sponsor.url"); url != "" {
		tracker = sponsor.NewClient(&sponsor.ClientCfg{
			HttpClient: http.Client{},
			Timeout:    viper.GetDuration("sponsor.timeout"),
			Url:        url,
		})
	}

	wallets := wallet_usecase.New(context, &wallet_usecase.Cfg{
		Repo:            wallet_repository.NewSessionRepo(),
		Ledger:          ledger,
		Keystore:        keystore,
		BalanceCache:    balanceCache,
		RefreshInterval: viper.GetDuration("wallet.balanceRefreshInterval"),
		SessionTtl:      viper.GetDuration("wallet.sessionTtl"),
		SweepInterval:   viper.GetDuration("wallet.sweepInterval"),
	})
	defer wallets.Close()

	feeLamports, err := dchain.ParseSol(viper.GetString("ads.fee"))
	if err != nil {
		context.WithFields(log.Fields{"err": err, "fee": viper.GetString("ads.fee")}).Panic("invalid ads.fee")
	}
	treasury := domain.TreasuryPubkey
	if t := viper.GetString("ads.treasury"); t != "" {
		treasury = domain.Pubkey(t)
	}
	submission := ad_usecase.NewSubmission(&ad_usecase.SubmissionCfg{
		Wallets:     wallets,
		Ledger:      ledger,
		Ads:         sponsorUsecase,
		WebResource: webResource,
		Notifier:    notifier,
		FeeLamports: feeLamports,
		Treasury:    treasury,
	})
	transfer := transfer_usecase.New(wallets, adRepo, sponsorUsecase, ledger)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetDuration("auth.tokenTtl"))
	hc := hc_usecase.New(viper.GetDuration("healthcheck.timeout"), pingers...)

	authMw := auth_middleware.New(auth).Auth()

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, wallets, authMw)
	wallet_delivery.New(e, wallets, ledger, authMw, mmiddleware.CacheHttp(viper.GetDuration("server.networksCacheTtl")))
	transfer_delivery.New(e, transfer, authMw)
	ad_delivery.New(e, &ad_delivery.HandlerCfg{
		Sponsor:         sponsorUsecase,
		Tracker:         tracker,
		Submission:      submission,
		Wallets:         wallets,
		Auth:            authMw,
		MaxContentBytes: int64(maxContentBytes),
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
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
