package handlers

import (
	"net/http"
	"time"

	"gstdesk-api/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// CreateTenantRequest represents the payload for onboarding a tenant. The
// primary GSTIN and admin email are registered together with the tenant.
type CreateTenantRequest struct {
	Name       string `json:"name" binding:"required"`
	Pan        string `json:"pan" binding:"required,len=10"`
	PlanCode   string `json:"plan_code" binding:"required"`
	Gstin      string `json:"gstin" binding:"required,len=15"`
	AdminEmail string `json:"admin_email" binding:"required,email"`
}

// CreateGstRegistrationRequest represents the payload for adding a GSTIN to
// an existing tenant
type CreateGstRegistrationRequest struct {
	Gstin            string `json:"gstin" binding:"required,len=15"`
	RegistrationDate string `json:"registration_date" binding:"required"`
	IsPrimary        bool   `json:"is_primary"`
}

// TenantResponse is the API shape of a tenant
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Object    string    `json:"object"`
	Name      string    `json:"name"`
	Pan       string    `json:"pan"`
	PlanCode  string    `json:"plan_code"`
	CreatedAt time.Time `json:"created_at"`
}

func toTenantResponse(tenant db.Tenant) TenantResponse {
	return TenantResponse{
		ID:        tenant.ID,
		Object:    "tenant",
		Name:      tenant.Name,
		Pan:       tenant.Pan,
		PlanCode:  tenant.PlanCode,
		CreatedAt: tenant.CreatedAt.Time,
	}
}

// CreateTenant onboards a tenant with its primary GST registration and an
// admin user
func (s *CommonServices) CreateTenant(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return
	}

	tenant, err := s.db.CreateTenant(c.Request.Context(), db.CreateTenantParams{
		Name:     req.Name,
		Pan:      req.Pan,
		PlanCode: req.PlanCode,
	})
	if err != nil {
		handleDBError(c, err, "Failed to create tenant")
		return
	}

	// A GSTIN embeds the state code in its first two characters
	_, err = s.db.CreateGstRegistration(c.Request.Context(), db.CreateGstRegistrationParams{
		TenantID:         tenant.ID,
		Gstin:            req.Gstin,
		StateCode:        req.Gstin[:2],
		RegistrationDate: pgtype.Date{Time: time.Now(), Valid: true},
		Status:           "active",
		IsPrimary:        true,
	})
	if err != nil {
		handleDBError(c, err, "Failed to create GST registration")
		return
	}

	_, err = s.db.CreateUser(c.Request.Context(), db.CreateUserParams{
		TenantID:         tenant.ID,
		Email:            req.AdminEmail,
		Role:             "admin",
		TwoFactorEnabled: true,
	})
	if err != nil {
		handleDBError(c, err, "Failed to create admin user")
		return
	}

	s.logger.Info("tenant onboarded",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("gstin", req.Gstin))

	sendSuccess(c, http.StatusCreated, toTenantResponse(tenant))
}

// GetTenant returns a single tenant by id
func (s *CommonServices) GetTenant(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid tenant ID format", err)
		return
	}

	tenant, err := s.db.GetTenant(c.Request.Context(), tenantID)
	if err != nil {
		handleDBError(c, err, "Tenant not found")
		return
	}

	sendSuccess(c, http.StatusOK, toTenantResponse(tenant))
}

// ListTenants returns all tenants, newest first
func (s *CommonServices) ListTenants(c *gin.Context) {
	tenants, err := s.db.ListTenants(c.Request.Context())
	if err != nil {
		handleDBError(c, err, "Failed to list tenants")
		return
	}

	responses := make([]TenantResponse, 0, len(tenants))
	for _, tenant := range tenants {
		responses = append(responses, toTenantResponse(tenant))
	}
	sendList(c, responses)
}

// CreateGstRegistration adds a GSTIN to an existing tenant
func (s *CommonServices) CreateGstRegistration(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid tenant ID format", err)
		return
	}

	var req CreateGstRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return
	}

	registrationDate, err := time.Parse("2006-01-02", req.RegistrationDate)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid registration_date, expected YYYY-MM-DD", err)
		return
	}

	if _, err := s.db.GetTenant(c.Request.Context(), tenantID); err != nil {
		handleDBError(c, err, "Tenant not found")
		return
	}

	registration, err := s.db.CreateGstRegistration(c.Request.Context(), db.CreateGstRegistrationParams{
		TenantID:         tenantID,
		Gstin:            req.Gstin,
		StateCode:        req.Gstin[:2],
		RegistrationDate: pgtype.Date{Time: registrationDate, Valid: true},
		Status:           "active",
		IsPrimary:        req.IsPrimary,
	})
	if err != nil {
		handleDBError(c, err, "Failed to create GST registration")
		return
	}

	sendSuccess(c, http.StatusCreated, registration)
}

// ListGstRegistrations returns the GSTINs registered for a tenant
func (s *CommonServices) ListGstRegistrations(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid tenant ID format", err)
		return
	}

	registrations, err := s.db.ListGstRegistrationsByTenant(c.Request.Context(), tenantID)
	if err != nil {
		handleDBError(c, err, "Failed to list GST registrations")
		return
	}

	sendList(c, registrations)
}
