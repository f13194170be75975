package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smarthealth/supply-chain-backend/internal/comment"
	"github.com/smarthealth/supply-chain-backend/internal/config"
	"github.com/smarthealth/supply-chain-backend/internal/supply"
	"github.com/smarthealth/supply-chain-backend/internal/testimonial"
	"github.com/smarthealth/supply-chain-backend/internal/user"
	"github.com/smarthealth/supply-chain-backend/internal/volunteer"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := mustConnect(ctx, cfg.MongoURI)
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	log.Println("Connected to MongoDB")

	db := client.Database(cfg.MongoDatabase)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigin,
		AllowCredentials: true,
	}))

	userRepo := user.NewMongoRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("creating user indexes: %v", err)
	}
	userHandler := user.NewHandler(user.NewService(userRepo), cfg.JWTSecret, cfg.TokenLifetime)
	userHandler.RegisterRoutes(app)

	supplyHandler := supply.NewHandler(supply.NewService(supply.NewMongoRepository(db)))
	supplyHandler.RegisterRoutes(app)

	volunteerHandler := volunteer.NewHandler(volunteer.NewService(volunteer.NewMongoRepository(db)))
	volunteerHandler.RegisterRoutes(app)

	testimonialHandler := testimonial.NewHandler(testimonial.NewService(testimonial.NewMongoRepository(db)))
	testimonialHandler.RegisterRoutes(app)

	commentHandler := comment.NewHandler(comment.NewService(comment.NewMongoRepository(db)))
	commentHandler.RegisterRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Server is running smoothly",
			"timestamp": time.Now(),
		})
	})

	log.Printf("Server is running on http://localhost%s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func mustConnect(ctx context.Context, uri string) *mongo.Client {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetConnectTimeout(5*time.Second))
	if err != nil {
		log.Fatalf("connecting to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("pinging MongoDB: %v", err)
	}

	return client
}
