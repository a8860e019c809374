package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"property-backend/config"
	"property-backend/controllers"
	"property-backend/routes"
	"property-backend/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env not found, continuing with environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		logrus.WithError(err).Fatal("database connect failed")
	}
	logrus.Info("database connection established, schema migrated")

	reservationService := services.NewReservationService(db)
	orderService := services.NewOrderService(db)
	billingService := services.NewBillingService(db)
	menuService := services.NewMenuService(db)
	propertyService := services.NewPropertyService(db)
	dashboardService := services.NewDashboardService(db)

	router := routes.SetupRouter(
		controllers.NewAuthController(db),
		controllers.NewDashboardController(dashboardService),
		controllers.NewReservationController(reservationService),
		controllers.NewPropertyController(propertyService),
		controllers.NewMenuController(menuService),
		controllers.NewOrderController(orderService),
		controllers.NewBillingController(billingService),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("listen and serve failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}

	logrus.Info("server stopped gracefully")
}
