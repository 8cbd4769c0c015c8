package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyUserName  contextKey = "user_name"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// ERP module identifiers gated by the role-access table.
const (
	ModuleDashboard    = "dashboard"
	ModuleBookings     = "bookings"
	ModuleRooms        = "rooms"
	ModuleCheckIn      = "check-in"
	ModuleHousekeeping = "housekeeping"
	ModuleStaff        = "staff"
	ModuleGuests       = "guests"
	ModulePayments     = "payments"
	ModuleAnalytics    = "analytics"
	ModuleSettings     = "settings"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
)

const (
	RoomTypeStandard     = "standard"
	RoomTypeDeluxe       = "deluxe"
	RoomTypeExecutive    = "executive"
	RoomTypeSuite        = "suite"
	RoomTypePresidential = "presidential"
)

const (
	CheckInStatusExpected   = "expected"
	CheckInStatusCheckedIn  = "checked_in"
	CheckInStatusCheckedOut = "checked_out"
	CheckInStatusNoShow     = "no_show"
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

const (
	TaskTypeCleaning    = "cleaning"
	TaskTypeMaintenance = "maintenance"
	TaskTypeInspection  = "inspection"
	TaskTypeTurnover    = "turnover"
)

const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
	TaskPriorityUrgent = "urgent"
)

const (
	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
	ShiftNight     = "night"
)

const (
	StaffStatusActive   = "active"
	StaffStatusInactive = "inactive"
	StaffStatusOnLeave  = "on_leave"
)

const (
	AudiencePublic = "public"
	AudienceStaff  = "staff"
	AudienceAll    = "all"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID         = "id"
	RequestParamReference  = "ref"
	RequestParamDocumentID = "document_id"
	RequestParamViewAs     = "view_as"
	RequestMaxMemory       = 10 << 20 // 10 MB
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat         = time.RFC3339
	DateFormatDateOnly = "2006-01-02"
)

const (
	ReportWindowDays = 30
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFile                     = "file"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
