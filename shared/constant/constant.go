package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUsername contextKey = "username"
	ContextKeyUserRole contextKey = "user_role"
	ContextKeyBranchID contextKey = "branch_id"
	ContextKeyTokenID  contextKey = "token_id"
)

const (
	RoleAdmin        = "ADMIN"
	RoleReceptionist = "RECEPTIONIST"
	RoleAccountant   = "ACCOUNTANT"
)

const (
	RoomStatusAvailable = "AVAILABLE"
	RoomStatusOccupied  = "OCCUPIED"
	RoomStatusDirty     = "DIRTY"
	RoomStatusFixing    = "FIXING"
)

const (
	BookingStatusReserved  = "RESERVED"
	BookingStatusCheckedIn = "CHECKED_IN"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "CANCELLED"
)

const (
	BookingTypeHourly    = "HOURLY"
	BookingTypeDaily     = "DAILY"
	BookingTypeOvernight = "OVERNIGHT"
)

const (
	FlowTypeReceipt = "RECEIPT"
	FlowTypePayment = "PAYMENT"
)

const (
	CashCategoryRoomRevenue = "room revenue"
	CashCategoryMaintenance = "maintenance expense"
)

const (
	DeviceStatusGood   = "GOOD"
	DeviceStatusBroken = "BROKEN"
	DeviceStatusFixing = "FIXING"
)

const (
	CustomerTypeIndividual = "INDIVIDUAL"
	CustomerTypeCompany    = "COMPANY"
)

const (
	IdentityTypeNationalID    = "CCCD"
	IdentityTypePassport      = "PASSPORT"
	IdentityTypeDriverLicense = "DRIVER_LICENSE"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID     = "id"
	RequestParamFilter = "filter"
	RequestParamBranch = "branch"
	RequestParamStatus = "status"
	RequestParamDevice = "device"
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
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
	CodeTimeFormat = "20060102150405"
)

const (
	BookingCodePrefixWalkIn      = "DP"
	BookingCodePrefixReservation = "RES"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
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
)

const (
	ContentTypeJSON = "application/json"
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
	KafkaTopicCheckout    = "hotelier.booking.checkout"
	KafkaTopicMaintenance = "hotelier.device.maintenance"
)

const (
	HoursPerDay    = 24
	SecondsPerHour = 3600
	SecondsPerDay  = 86400
)

const (
	Asterix = "*"
	Empty   = ""
)
