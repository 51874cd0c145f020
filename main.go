package main

import (
	"time"

	"doris-art/config"
	"doris-art/database"
	"doris-art/datastore"
	routes "doris-art/internal/app/http"
	"doris-art/internal/infra/cache"
	"doris-art/internal/infra/notify"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	datastore.Init(config.DATA_DIR, config.BACKUP_DIR)
	database.InitDB(config.DB_URL)
	notify.Init(notify.Options{
		SMTPHost:     config.SMTP_HOST,
		SMTPPort:     config.SMTP_PORT,
		SMTPFrom:     config.SMTP_FROM,
		SMTPPassword: config.SMTP_PASSWORD,
		RabbitMQURL:  config.RABBITMQ_URL,
		DB:           database.DB,
	})
	rdb := cache.NewRedisClient(config.REDIS_ADDR, config.REDIS_PASSWORD, config.REDIS_DB)

	r := gin.Default()

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.MaxMultipartMemory = 12 << 20

	routes.RegisterRoutes(r, rdb)

	r.Run(":" + config.PORT)
}
