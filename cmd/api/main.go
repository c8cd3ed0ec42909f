package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "realname-backend/internal/adapter/http"
	mw "realname-backend/internal/adapter/middleware"
	"realname-backend/internal/adapter/repository/mysql"
	"realname-backend/internal/config"
	"realname-backend/internal/infrastructure/cache"
	"realname-backend/internal/infrastructure/db"
	appUsecase "realname-backend/internal/usecase/application"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	appRepo := mysql.NewApplicationRepository(gdb)
	auditRepo := mysql.NewAuditLogRepository(gdb)
	tx := mysql.NewGormUoW(gdb)
	uc := appUsecase.NewUsecase(appRepo, auditRepo, tx)

	h := httpadp.NewHandler()
	ah := httpadp.NewApplicationHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// reads
	e.GET("/health", h.Health)
	e.GET("/applications/:app_id", ah.GetDetail)

	// mutations go through the idempotency middleware
	idem := mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	g := e.Group("", idem)
	g.POST("/applications", ah.Submit)
	g.POST("/applications/:app_id/resubmit", ah.Resubmit)
	g.POST("/applications/:app_id/cancel", ah.Cancel)
	g.POST("/applications/:app_id/decision", ah.Decide)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
