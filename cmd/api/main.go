package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"agrimarket/internal/database"
	"agrimarket/internal/middleware"
	"agrimarket/internal/modules/auth"
	"agrimarket/internal/modules/booking"
	"agrimarket/internal/modules/equipment"
	"agrimarket/internal/modules/labor"
	"agrimarket/internal/modules/market"
	"agrimarket/internal/modules/notification"
	"agrimarket/internal/modules/tracking"
	jwtsvc "agrimarket/internal/pkg/jwt"
	"agrimarket/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	laborRepo := repository.NewLaborProfileRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notifRepo := notification.NewNotificationRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := notification.NewHub()
	notifService := notification.NewService(notifRepo, hub)
	notifHandler := notification.NewHandler(notifService)
	wsHandler := notification.NewWSHandler(hub, j)

	authService := auth.NewService(userRepo, laborRepo, j)
	authHandler := auth.NewHandler(authService)

	equipmentService := equipment.NewService(equipmentRepo)
	equipmentHandler := equipment.NewHandler(equipmentService)

	bookingService := booking.NewService(bookingRepo, equipmentRepo, notifService)
	bookingHandler := booking.NewHandler(bookingService)

	marketService := market.NewService(productRepo, orderRepo)
	marketHandler := market.NewHandler(marketService)

	laborService := labor.NewService(laborRepo)
	laborHandler := labor.NewHandler(laborService)

	trackingService := tracking.NewService(bookingService, marketService)
	trackingHandler := tracking.NewHandler(trackingService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		equipmentHandler.RegisterRoutes(v1)
		marketHandler.RegisterRoutes(v1)
		laborHandler.RegisterRoutes(v1)
		wsHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(authMiddleware(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			notifHandler.RegisterRoutes(protected)

			farmer := protected.Group("/")
			farmer.Use(middleware.FarmerOnly())
			{
				bookingHandler.RegisterFarmerRoutes(farmer)
				marketHandler.RegisterFarmerRoutes(farmer)
				trackingHandler.RegisterFarmerRoutes(farmer)
			}

			seller := protected.Group("/")
			seller.Use(middleware.SellerOnly())
			{
				bookingHandler.RegisterSellerRoutes(seller)
				equipmentHandler.RegisterSellerRoutes(seller)
			}

			laborer := protected.Group("/")
			laborer.Use(middleware.LaborerOnly())
			{
				laborHandler.RegisterLaborerRoutes(laborer)
			}
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing Authorization header",
				},
			})
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid Authorization header",
				},
			})
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Empty token",
				},
			})
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid token",
				},
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
