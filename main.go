package main

import (
	"event_manager/config"
	"event_manager/database"
	"event_manager/handler"
	"event_manager/helper"
	"event_manager/router"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	config.LoadEnv()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	handler.InitRedis()

	helper.StartEventStatusScheduler()
	defer helper.StopEventStatusScheduler()

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			<-ticker.C
			handler.ExpirePendingRegistrations()
		}
	}()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.ConfigDefault("PORT", "8080")))
}
