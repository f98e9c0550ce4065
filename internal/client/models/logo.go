package models

// Logo is the tenant's current logo record. There is no list beyond
// "current"; upload/replace/delete are the only mutations.
type Logo struct {
	ID           int64
	FileName     string
	ContentType  string
	URL          string
	UploadedDate string
}

// DashboardStats is the aggregate counters screen payload.
type DashboardStats struct {
	TotalClients    int `json:"totalClients"`
	TotalUsers      int `json:"totalUsers"`
	TotalDatabases  int `json:"totalDatabases"`
	ActiveClients   int `json:"activeClients"`
	ActiveUsers     int `json:"activeUsers"`
	ActiveDatabases int `json:"activeDatabases"`
}
