package apperrors

// Error codes - organized by domain

// Authentication errors (AUTH_*)
const (
	ErrCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "AUTH_TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "AUTH_TOKEN_INVALID"
	ErrCodeNotAuthenticated   = "AUTH_NOT_AUTHENTICATED"
)

// Authorization errors (AUTHZ_*)
const (
	ErrCodeForbidden   = "AUTHZ_FORBIDDEN"
	ErrCodeInvalidRole = "AUTHZ_INVALID_ROLE"
)

// Validation errors (VALIDATION_*)
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeInvalidInput     = "VALIDATION_INVALID_INPUT"
	ErrCodeInvalidBody      = "VALIDATION_INVALID_BODY"
	ErrCodeMissingField     = "VALIDATION_MISSING_FIELD"
)

// Resource errors (RESOURCE_*)
const (
	ErrCodeContentNotFound  = "RESOURCE_CONTENT_NOT_FOUND"
	ErrCodeCategoryNotFound = "RESOURCE_CATEGORY_NOT_FOUND"
	ErrCodeTagNotFound      = "RESOURCE_TAG_NOT_FOUND"
	ErrCodeMediaNotFound    = "RESOURCE_MEDIA_NOT_FOUND"
	ErrCodeProfileNotFound  = "RESOURCE_PROFILE_NOT_FOUND"
	ErrCodeDuplicateSlug    = "RESOURCE_DUPLICATE_SLUG"
	ErrCodeResourceInUse    = "RESOURCE_IN_USE"
)

// Internal errors (INTERNAL_*)
const (
	ErrCodeDatabaseError   = "INTERNAL_DATABASE_ERROR"
	ErrCodeStorageError    = "INTERNAL_STORAGE_ERROR"
	ErrCodeParseError      = "INTERNAL_PARSE_ERROR"
	ErrCodeUnexpectedError = "INTERNAL_UNEXPECTED_ERROR"
)

// Media specific errors (MEDIA_*)
const (
	ErrCodeMediaInvalidType  = "MEDIA_INVALID_TYPE"
	ErrCodeMediaTooLarge     = "MEDIA_TOO_LARGE"
	ErrCodeMediaUploadFailed = "MEDIA_UPLOAD_FAILED"
)
