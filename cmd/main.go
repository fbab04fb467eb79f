package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"mattespel/internal/adapters"
	"mattespel/internal/bootstrap"
	authDelivery "mattespel/internal/delivery/auth"
	profileDelivery "mattespel/internal/delivery/profile"
	questionDelivery "mattespel/internal/delivery/question"
	shopDelivery "mattespel/internal/delivery/shop"
	ownMiddleware "mattespel/internal/middleware"
	"mattespel/internal/repository"
	profileUC "mattespel/internal/usecase/profile"
	questionUC "mattespel/internal/usecase/question"
	shopUC "mattespel/internal/usecase/shop"
)

type mainDeliveryHandler struct {
	auth     *authDelivery.AuthHandler
	profile  *profileDelivery.ProfileHandler
	shop     *shopDelivery.ShopHandler
	question *questionDelivery.QuestionHandler
}

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	logger := NewLogger()
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	databaseAdapters := initDatabaseAdapters(ctx, logger, cfg)
	defer databaseAdapters.mongoAdapter.Close(ctx)
	defer databaseAdapters.redisAdapter.Close(ctx)

	r := chi.NewRouter()
	handlers := initializeDeliveryHandlers(cfg, logger, databaseAdapters)
	handlers.Router(r, cfg.IsLocalCors)

	port := ":" + cfg.ServerPort
	logger.Infof("Server is running on port %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)

	r.Post("/signup", h.auth.Signup)
	r.Post("/login", h.auth.Login)
	r.Delete("/logout", h.auth.Logout)

	r.Get("/profile", h.profile.GetProfile)
	r.Post("/profile", h.profile.UpdateProfile)

	r.Post("/purchase", h.shop.Purchase)
	r.Post("/equip", h.shop.Equip)
	r.Get("/shop/items", h.shop.Items)

	r.Get("/question", h.question.GetQuestion)
	r.Post("/answer", h.question.SubmitAnswer)
	r.Post("/game/result", h.question.GameResult)
	r.Get("/achievements", h.question.Achievements)
}

func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) *dataBaseAdapters {
	mongoAdapter := adapters.NewAdapterMongo(cfg)
	if err := mongoAdapter.Init(ctx); err != nil {
		log.Fatal("Failed to initialize MongoDB", zap.Error(err))
	}

	redisAdapter := adapters.NewAdapterRedis(cfg)
	if err := redisAdapter.Init(ctx); err != nil {
		log.Fatal("Failed to initialize Redis", zap.Error(err))
	}

	log.Info("Database adapters initialized")
	return &dataBaseAdapters{
		redisAdapter: redisAdapter,
		mongoAdapter: mongoAdapter,
	}
}

func initializeDeliveryHandlers(
	cfg *bootstrap.Config,
	log *zap.SugaredLogger,
	databaseAdapters *dataBaseAdapters,
) *mainDeliveryHandler {
	userStorage := repository.NewMongoUserStorage(databaseAdapters.mongoAdapter, log)
	sessionStorage := repository.NewSessionRedisStorage(
		databaseAdapters.redisAdapter.GetClient(),
		log,
		time.Duration(cfg.SessionTTLHours)*time.Hour,
	)
	profileStorage := repository.NewRedisProfileStorage(
		databaseAdapters.redisAdapter.GetClient(),
		log,
		cfg.ProfileUpdateRetries,
	)

	gateway := profileUC.NewGatewayHandler(profileStorage)
	bank := questionUC.NewBank(time.Now().UnixNano())

	authHandler := authDelivery.NewAuthHandler(userStorage, sessionStorage, log)
	profileHandler := profileDelivery.NewProfileHandler(log, authHandler, gateway)
	shopHandler := shopDelivery.NewShopHandler(log, authHandler, shopUC.NewShopUsecaseHandler(profileStorage))
	questionHandler := questionDelivery.NewQuestionHandler(log, authHandler, bank, gateway)

	return &mainDeliveryHandler{
		auth:     authHandler,
		profile:  profileHandler,
		shop:     shopHandler,
		question: questionHandler,
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
	time.Sleep(1 * time.Second)
}
