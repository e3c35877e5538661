package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopcart/internal/config"
	"shopcart/internal/handler"
	"shopcart/internal/infra/db"
	infraRepo "shopcart/internal/infra/repository"
	"shopcart/internal/middleware"
	"shopcart/internal/server"
	"shopcart/internal/usecase"
	auth "shopcart/internal/usecase/auth_usecase"
	"shopcart/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無くてもよい
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	e := server.NewEcho(cfg)
	logger := e.Logger

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatalf("db connect: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatalf("db migrate: %v", err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	itemRepo := infraRepo.NewItemGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	hasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTExpiration, idGen)

	//Usecase生成
	details := auth.NewUserDetailsService(userRepo, logger)
	registerUC := auth.NewRegisterUserUsecase(txm, userRepo, hasher, validator.NewUserValidator(), logger)
	loginUC := auth.NewLoginUsecase(details, verifier, issuer, clock)
	userUC := usecase.NewUserUsecase(userRepo, logger)
	itemUC := usecase.NewItemUsecase(itemRepo, logger)
	cartUC := usecase.NewCartUsecase(txm, userRepo, itemRepo, logger)
	orderUC := usecase.NewOrderUsecase(txm, userRepo, cfg.ClearCartOnSubmit, logger)

	if cfg.SeedItems {
		if _, err := itemUC.SeedDefaults(context.Background()); err != nil {
			logger.Fatalf("seed items: %v", err)
		}
	}

	//Handler生成・ルーティング
	server.RegisterRoutes(e, server.Handlers{
		User:  handler.NewUserHandler(userUC, registerUC),
		Item:  handler.NewItemHandler(itemUC),
		Cart:  handler.NewCartHandler(cartUC),
		Order: handler.NewOrderHandler(orderUC),
		Auth:  handler.NewAuthHandler(loginUC),
	}, middleware.AuthJWT(cfg), middleware.PrincipalGuard(details))

	//Server起動（SIGINT/SIGTERMで停止）
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx, e, cfg.Addr()); err != nil {
		logger.Fatalf("server: %v", err)
	}
}
