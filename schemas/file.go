package schemas

// UploadMeta is the validated metadata of a multipart upload. Size is the
// byte length of the payload actually read, not the client-declared size.
type UploadMeta struct {
	Name     string `validate:"required,max=255"`
	Mimetype string `validate:"required"`
	Size     int64  `validate:"required,gt=0,lte=5242880"`
}

var uploadMessages = map[string]string{
	"Name.required":     "Filename is required",
	"Name.max":          "Filename too long",
	"Mimetype.required": "MIME type is required",
	"Size.required":     "File size must be positive",
	"Size.gt":           "File size must be positive",
	"Size.lte":          "File size cannot exceed 5MB",
}

func (m *UploadMeta) Validate() error {
	return check(m, uploadMessages)
}
