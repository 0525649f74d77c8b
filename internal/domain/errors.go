package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already exists")

	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrInvalidUploadType   = errors.New("invalid upload type")

	ErrCatNotFound        = errors.New("cat not found")
	ErrInvalidCat         = errors.New("invalid cat")
	ErrInvalidBirthday    = errors.New("birthday must be YYYY-MM-DD")
	ErrInvalidPrice       = errors.New("price must be greater than zero")
	ErrUnknownBreed       = errors.New("breed is not a configured value")
	ErrUnknownStore       = errors.New("store is not a configured store")
	ErrUnknownStatus      = errors.New("catcafe status is not a configured value")
	ErrEmptyBulkSelection = errors.New("no ids given")

	ErrDuplicateBreed     = errors.New("breed value already exists")
	ErrDuplicateStatus    = errors.New("status value already exists")
	ErrDuplicateStore     = errors.New("store name already exists")
	ErrInvalidStoreType   = errors.New("invalid store type")
	ErrInvalidConfigValue = errors.New("config value does not match its schema")

	ErrUnsupportedExportFormat = errors.New("unsupported export format")

	ErrDraftNotFound       = errors.New("draft not found")
	ErrFillInProgress      = errors.New("an AI fill is already running for this draft")
	ErrEmptyFillText       = errors.New("fill text is empty")
	ErrUnsupportedFormType = errors.New("unsupported form type")
)
