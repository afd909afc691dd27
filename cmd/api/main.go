package main

import (
	"log"

	"quickstore/internal/config"
	"quickstore/internal/domain/model"
	"quickstore/internal/handler"
	"quickstore/internal/infra/db"
	infraRepo "quickstore/internal/infra/repository"
	"quickstore/internal/server"
	"quickstore/internal/usecase"
	"quickstore/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := gormDB.AutoMigrate(
		&model.Company{},
		&model.Store{},
		&model.User{},
		&model.Unit{},
		&model.Product{},
		&model.InventoryAdjustment{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderEditHistory{},
		&model.CustomerName{},
		&model.Session{},
		&model.Combo{},
		&model.ComboItem{},
	); err != nil {
		log.Fatal(err)
	}

	//単位マスタ投入（冪等）
	if err := db.SeedUnits(gormDB); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	txManager := infraRepo.NewTxManagerGorm(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	storeRepo := infraRepo.NewStoreGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	unitRepo := infraRepo.NewUnitGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerNameGormRepository(gormDB)
	sessionRepo := infraRepo.NewSessionGormRepository(gormDB)
	comboRepo := infraRepo.NewComboGormRepository(gormDB)
	comboItemRepo := infraRepo.NewComboItemGormRepository(gormDB)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, validator.NewAuthValidator())
	productUC := usecase.NewProductUsecase(txManager, productRepo, unitRepo)
	unitUC := usecase.NewUnitUsecase(unitRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo)
	customerUC := usecase.NewCustomerUsecase(customerRepo)
	sessionUC := usecase.NewSessionUsecase(sessionRepo)
	comboUC := usecase.NewComboUsecase(txManager, comboRepo, comboItemRepo)

	//Handler生成
	deps := server.Deps{
		Auth:     handler.NewAuthHandler(authUC),
		Product:  handler.NewProductHandler(productUC),
		Order:    handler.NewOrderHandler(orderUC),
		Unit:     handler.NewUnitHandler(unitUC),
		Customer: handler.NewCustomerHandler(customerUC),
		Session:  handler.NewSessionHandler(sessionUC),
		Combo:    handler.NewComboHandler(comboUC),
		Users:    userRepo,
		Stores:   storeRepo,
	}

	//Server起動
	if err := server.Start(cfg, deps); err != nil {
		log.Fatal(err)
	}
}
