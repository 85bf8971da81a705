package domain

import "errors"

// ============================================================================
// Tenant / Billing Errors
// ============================================================================

var (
	ErrContractorNotFound      = errors.New("contractor not found")
	ErrContractorEmailConflict = errors.New("contractor with this email already exists")
	ErrMissingContractorID     = errors.New("contractor ID is required (Contractor-ID header)")
	ErrInvalidContractorID     = errors.New("invalid contractor ID")
	ErrInvalidContractorName   = errors.New("contractor company name is required")
	ErrInvalidContractorEmail  = errors.New("contractor email is required")
	ErrInvalidPlan             = errors.New("invalid subscription plan")
	ErrInvalidSubscription     = errors.New("invalid subscription status")
)

// ============================================================================
// Client Errors
// ============================================================================

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientName = errors.New("client name is required")
	ErrClientHasProjects = errors.New("cannot delete client: client has projects")
)

// ============================================================================
// Project Errors
// ============================================================================

var (
	ErrProjectNotFound         = errors.New("project not found")
	ErrInvalidProjectName      = errors.New("project name is required")
	ErrInvalidProjectStatus    = errors.New("invalid project status")
	ErrInvalidStatusTransition = errors.New("project status transition not allowed")
)

// ============================================================================
// Estimate Errors
// ============================================================================

var (
	ErrEstimateNotFound         = errors.New("estimate not found")
	ErrInvalidEstimateTitle     = errors.New("estimate title is required")
	ErrInvalidEstimateStatus    = errors.New("invalid estimate status")
	ErrEstimateHasNoItems       = errors.New("estimate must have at least one item")
	ErrEstimateNotApproved      = errors.New("only approved estimates can be converted")
	ErrEstimateAlreadyConverted = errors.New("estimate has already been converted")
	ErrCannotModifyConverted    = errors.New("cannot modify a converted estimate")
)

// ============================================================================
// Invoice Errors
// ============================================================================

var (
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrInvoiceNumberConflict = errors.New("invoice number already exists for this contractor")
	ErrInvoiceHasNoItems     = errors.New("invoice must have at least one item")
	ErrInvoiceNotPayable     = errors.New("invoice is not open for payment")
	ErrInvalidPaymentAmount  = errors.New("payment amount must be greater than zero")
	ErrPaymentExceedsBalance = errors.New("payment exceeds outstanding balance")
	ErrCannotDeleteInvoice   = errors.New("cannot delete invoice: payments have been applied")
)

// ============================================================================
// Scheduling Errors
// ============================================================================

var (
	ErrAgentNotFound     = errors.New("agent not found")
	ErrInvalidAgentName  = errors.New("agent name is required")
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidEventTitle = errors.New("event title is required")
	ErrInvalidTimeRange  = errors.New("event start must be before end")
	ErrScheduleConflict  = errors.New("agent already has an event in this time range")
)

// ============================================================================
// Achievement / Analysis Errors
// ============================================================================

var (
	ErrAchievementNotFound  = errors.New("achievement not found")
	ErrNoAnalysisItems      = errors.New("cost analysis requires at least one line item")
	ErrAnalysisNotAvailable = errors.New("cost analysis backend is not available")
	ErrAnalysisFailed       = errors.New("cost analysis backend returned an unusable response")
)
