package dto

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

type BannerResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
