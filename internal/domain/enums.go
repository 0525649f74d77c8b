package domain

// ImageType represents the allowed image types for upload.
type ImageType string

const (
	ImageTypeJPG  ImageType = "jpg"
	ImageTypePNG  ImageType = "png"
	ImageTypeWEBP ImageType = "webp"
)

// AllowedImageTypes maps ImageType to its MIME content type.
var AllowedImageTypes = map[ImageType]string{
	ImageTypeJPG:  "image/jpeg",
	ImageTypePNG:  "image/png",
	ImageTypeWEBP: "image/webp",
}

// AllowedContentTypes maps MIME content types back to ImageType.
var AllowedContentTypes = map[string]ImageType{
	"image/jpeg": ImageTypeJPG,
	"image/png":  ImageTypePNG,
	"image/webp": ImageTypeWEBP,
}

// AllowedExtensions maps file extensions (without dot) to ImageType.
var AllowedExtensions = map[string]ImageType{
	"jpg":  ImageTypeJPG,
	"jpeg": ImageTypeJPG,
	"png":  ImageTypePNG,
	"webp": ImageTypeWEBP,
}

// UserRole defines the role of a dashboard user.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// StoreType distinguishes the main cattery from its branches.
type StoreType string

const (
	StoreTypeMain   StoreType = "main"
	StoreTypeBranch StoreType = "branch"
)

// ValidStoreTypes lists all accepted store types.
var ValidStoreTypes = map[StoreType]bool{
	StoreTypeMain:   true,
	StoreTypeBranch: true,
}

// UploadType names what an uploaded image is for; it becomes the key prefix.
type UploadType string

const (
	UploadTypeCatImage   UploadType = "cat_image"
	UploadTypeStoreImage UploadType = "store_image"
)

// ValidUploadTypes lists all accepted upload types.
var ValidUploadTypes = map[UploadType]bool{
	UploadTypeCatImage:   true,
	UploadTypeStoreImage: true,
}

// FormType names a form the AI fill endpoint can populate.
type FormType string

const (
	FormTypeCat FormType = "cat"
)
