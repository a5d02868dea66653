package handlers

import (
	"errors"
	"net/http"

	"gstdesk-api/internal/db"
	"gstdesk-api/internal/einvoice"
	"gstdesk-api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// CommonServices holds the dependencies shared across handlers
type CommonServices struct {
	db        db.Querier
	dbPool    *pgxpool.Pool
	einvoice  *einvoice.Service
	processor *einvoice.SubmissionProcessor
	logger    *zap.Logger
}

// CommonServicesConfig contains everything needed to create CommonServices
type CommonServicesConfig struct {
	DB        db.Querier
	DBPool    *pgxpool.Pool
	Einvoice  *einvoice.Service
	Processor *einvoice.SubmissionProcessor
	Logger    *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}
	return &CommonServices{
		db:        config.DB,
		dbPool:    config.DBPool,
		einvoice:  config.Einvoice,
		processor: config.Processor,
		logger:    config.Logger,
	}
}

// GetDB returns the database querier
func (s *CommonServices) GetDB() db.Querier {
	return s.db
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// sendError logs the error and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleDBError maps database errors to appropriate HTTP status codes
func handleDBError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess sends a success response with the given payload
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}
