package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront-api/internal/auth"
	"storefront-api/internal/config"
	"storefront-api/internal/database"
	"storefront-api/internal/handlers"
	"storefront-api/internal/mailer"
	"storefront-api/internal/repository"
	"storefront-api/internal/routes"
	"storefront-api/internal/services"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET must be set")
	}

	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)

	userRepo := repository.NewUserRepository(db.Collection("users"))
	productRepo := repository.NewProductRepository(db.Collection("products"))
	cartRepo := repository.NewCartRepository(db.Collection("carts"))
	orderRepo := repository.NewOrderRepository(db.Collection("orders"))

	notifier := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	defer notifier.Close()

	tokens := auth.NewTokenService(cfg.JWTSecret)
	gate := auth.NewGate(tokens)

	userSvc := services.NewUserService(userRepo, tokens, notifier)
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	orderSvc := services.NewOrderService(orderRepo, cartRepo)

	router := gin.Default()
	routes.Register(router, gate, routes.Handlers{
		Users:    handlers.NewUserHandler(userSvc),
		Products: handlers.NewProductHandler(productSvc),
		Carts:    handlers.NewCartHandler(cartSvc),
		Orders:   handlers.NewOrderHandler(orderSvc),
	})

	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
