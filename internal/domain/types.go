package domain

// Dish is one entry of the restaurant menu as the admin dashboard edits it.
// IDs are caller-assigned.
type Dish struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Badge       string `json:"badge"`
}

// GalleryImage is one photo of the public gallery carousel.
type GalleryImage struct {
	ID          int    `json:"id"`
	Src         string `json:"src"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
}

// AuditEntry records one administrative action. Date and Time duplicate
// Timestamp in the display format the dashboard renders directly.
type AuditEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Username  string `json:"username"`
	Action    string `json:"action"`
	Type      string `json:"type"`
	Details   string `json:"details"`
}

// Photo categories accepted by the generic upload endpoint.
const (
	PhotoTypeMenu    = "menu"
	PhotoTypeGallery = "gallery"
)

// PhotoMeta describes an uploaded file. Filename keeps the original name for
// display only; Path is the public location of the stored copy.
type PhotoMeta struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	Path       string `json:"path"`
	UploadedAt string `json:"uploadedAt"`
	Type       string `json:"type"`
}
