package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	_ "github.com/suryansh14it/eco-sphere-sub000/docs"
	"github.com/suryansh14it/eco-sphere-sub000/src/database"
	"github.com/suryansh14it/eco-sphere-sub000/src/jobs"
	"github.com/suryansh14it/eco-sphere-sub000/src/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title EcoSphere API
// @version 1.0
// @description Environmental project attendance and participation backend
// @BasePath /
func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis and Asynq are optional; without them the profile-sync outbox
	// runs inline.
	database.InitRedis()
	database.InitAsynq()
	if database.AsynqClient != nil {
		go func() {
			if err := jobs.RunWorker(); err != nil {
				log.Println("Worker stopped:", err)
			}
		}()
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
