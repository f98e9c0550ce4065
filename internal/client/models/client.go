package models

// Client is the view-model for one tenant client record. Field names follow
// the console's own convention; the backend's mixed casing is translated in
// the client service.
type Client struct {
	ID             int64
	Name           string
	DBName         string
	Owner          string
	Address        string
	PrimaryPhone   string
	SecondaryPhone string
	PrimaryEmail   string
	SecondaryEmail string
	SMSService     bool
	ApprovalSystem bool
	// CollectionApp gates deletion: an active client is refused client-side.
	CollectionApp bool
	Logo          string
	CreatedBy     int64
	ModifiedBy    int64
	CreatedDate   string
	ModifiedDate  string
}

// NewClient is the create/edit draft. LogoFile, when set, switches the
// submission to multipart.
type NewClient struct {
	Name           string
	DBName         string
	Owner          string
	Address        string
	PrimaryPhone   string
	SecondaryPhone string
	PrimaryEmail   string
	SecondaryEmail string
	SMSService     bool
	ApprovalSystem bool
	CollectionApp  bool
	LogoFile       *FileAttachment
}

// FileAttachment is a file picked for upload.
type FileAttachment struct {
	Name        string
	ContentType string
	Data        []byte
}
