// File: crewledger/handlers/bundle.go
package handlers

import (
	operatorRepoPkg "crewledger/database/repository/operator"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	OperatorRepo operatorRepoPkg.OperatorRepository

	// Operator endpoints
	RegisterOperatorHandler gin.HandlerFunc
	LoginOperatorHandler    gin.HandlerFunc
	LogoutOperatorHandler   gin.HandlerFunc
	GetOperatorHandler      gin.HandlerFunc

	// Crew endpoints
	RegisterCrewHandler  gin.HandlerFunc
	UpdateCrewHandler    gin.HandlerFunc
	DeleteCrewHandler    gin.HandlerFunc
	GetCrewHandler       gin.HandlerFunc
	ListCrewHandler      gin.HandlerFunc
	GetRoleProfilesByMID gin.HandlerFunc

	// Project endpoints
	CreateProjectHandler    gin.HandlerFunc
	UpdateProjectHandler    gin.HandlerFunc
	DeleteProjectHandler    gin.HandlerFunc
	GetProjectHandler       gin.HandlerFunc
	ListProjectsHandler     gin.HandlerFunc
	AssignCrewHandler       gin.HandlerFunc
	UpdateAssignmentHandler gin.HandlerFunc
	UnassignCrewHandler     gin.HandlerFunc

	// Shift endpoints
	LogShiftHandler    gin.HandlerFunc
	UpdateShiftHandler gin.HandlerFunc
	DeleteShiftHandler gin.HandlerFunc
	GetShiftHandler    gin.HandlerFunc
	ListProjectShifts  gin.HandlerFunc
	ListCrewShifts     gin.HandlerFunc

	// Payment endpoints
	RecordPaymentHandler  gin.HandlerFunc
	ReversePaymentHandler gin.HandlerFunc
	PaymentHistoryHandler gin.HandlerFunc

	// Report endpoints
	CrewProjectSummaryHandler   gin.HandlerFunc
	ProjectSummaryHandler       gin.HandlerFunc
	PersonSummaryHandler        gin.HandlerFunc
	ProjectCrewBreakdownHandler gin.HandlerFunc

	// Health endpoint
	HealthHandler gin.HandlerFunc
}
