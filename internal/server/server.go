package server

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"gstdesk-api/internal/client/irp"
	"gstdesk-api/internal/db"
	"gstdesk-api/internal/einvoice"
	"gstdesk-api/internal/handlers"
	"gstdesk-api/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var (
	dbQueries      *db.Queries
	dbPool         *pgxpool.Pool
	commonServices *handlers.CommonServices

	einvoiceService     *einvoice.Service
	submissionProcessor *einvoice.SubmissionProcessor
)

// InitializeHandlers wires the database pool, the IRP client and the
// e-invoicing service, and builds the shared handler services
func InitializeHandlers() {
	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries = db.New(dbPool)

	irpConfig := irp.ConfigFromEnv()
	if !irpConfig.Configured() {
		logger.Warn("IRP credentials not fully configured; e-invoicing endpoints will refuse requests")
	}
	irpClient := irp.NewClient(irpConfig)

	einvoiceService = einvoice.NewService(dbQueries, irpClient)
	submissionProcessor = einvoice.NewSubmissionProcessor(einvoiceService, dbQueries)

	commonServices = handlers.NewCommonServices(handlers.CommonServicesConfig{
		DB:        dbQueries,
		DBPool:    dbPool,
		Einvoice:  einvoiceService,
		Processor: submissionProcessor,
		Logger:    logger.Log,
	})
}

// InitializeRoutes registers middleware and the API routes, and starts the
// background submission processor
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	submissionProcessor.Start(context.Background())

	v1 := router.Group("/api/v1")
	{
		// Tenant management
		v1.POST("/tenants", commonServices.CreateTenant)
		v1.GET("/tenants", commonServices.ListTenants)
		v1.GET("/tenants/:tenant_id", commonServices.GetTenant)
		v1.POST("/tenants/:tenant_id/gst-registrations", commonServices.CreateGstRegistration)
		v1.GET("/tenants/:tenant_id/gst-registrations", commonServices.ListGstRegistrations)

		// Invoices
		v1.POST("/invoices", commonServices.CreateInvoice)
		v1.GET("/invoices", commonServices.ListInvoices)
		v1.GET("/invoices/:invoice_id", commonServices.GetInvoice)
		v1.POST("/invoices/:invoice_id/einvoice", commonServices.SubmitInvoice)

		// IRP operations
		irpGroup := v1.Group("/irp")
		{
			irpGroup.POST("/generate/:invoice_id", commonServices.GenerateIrn)
			irpGroup.GET("/invoice/:irn", commonServices.LookupIrn)
			irpGroup.POST("/cancel", commonServices.CancelIrn)
			irpGroup.GET("/status", commonServices.IrpStatus)
		}
	}
}

// Shutdown stops the submission processor and closes the database pool
func Shutdown() {
	if submissionProcessor != nil {
		submissionProcessor.Stop()
	}
	if dbPool != nil {
		dbPool.Close()
	}
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key", "X-Tenant-ID"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}
