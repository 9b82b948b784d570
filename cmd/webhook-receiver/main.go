// Command webhook-receiver is a runnable demonstration of inbound webhook
// verification. It listens for Tapsilat webhook deliveries, verifies their
// signature and timestamp, and logs the verified events.
package main

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tapsilat/tapsilat-go/logger"
	"github.com/tapsilat/tapsilat-go/webhook"
)

const signatureHeader = "X-Tapsilat-Signature"

func main() {
	_ = godotenv.Load()
	logger.InitLogger(os.Getenv("GIN_MODE") == "release")

	secret := os.Getenv("TAPSILAT_WEBHOOK_SECRET")
	if secret == "" {
		logger.Error("TAPSILAT_WEBHOOK_SECRET is not set")
		os.Exit(1)
	}

	tolerance := 5 * time.Minute

	router := gin.Default()
	router.POST("/webhooks/tapsilat", func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			logger.Error("Failed to read webhook body", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
			return
		}

		signature := c.GetHeader(signatureHeader)
		if signature == "" {
			logger.Error("Missing signature header")
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing signature header"})
			return
		}

		result := webhook.Verify(payload, signature, secret, webhook.WithTolerance(tolerance))
		if !result.IsValid {
			logger.Warn("Webhook verification failed", zap.String("reason", result.Error))
			c.JSON(http.StatusBadRequest, gin.H{"error": "verification failed"})
			return
		}

		event, err := webhook.Parse(payload)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}

		logger.Info("Webhook verified",
			zap.String("event_type", event.EventType.String()),
			zap.String("order_id", event.Data.OrderID),
			zap.String("payment_id", event.Data.PaymentID),
			zap.String("status", event.Data.Status))

		c.JSON(http.StatusOK, gin.H{"received": true})
	})

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	if err := router.Run(addr); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		os.Exit(1)
	}
}
