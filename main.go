package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"courseloc/config"
	controllers "courseloc/controllers/course"
	"courseloc/database"
	courseRoutes "courseloc/routers/courseRoutes"
	"courseloc/store"
	"courseloc/utils"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH",
		AllowHeaders: "Content-Type",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	st := store.New(db)
	handler := controllers.NewHandler(st)

	courseRoutes.SetupCourseRoutes(app, handler)

	utils.InitializeReconcileScheduler(st)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
