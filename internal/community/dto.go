package community

import "github.com/google/uuid"

// SimilarVendorDTO is one ranked entry in a vendor's similarity list.
type SimilarVendorDTO struct {
	VendorID        uuid.UUID `json:"vendor_id"`
	BusinessName    string    `json:"business_name"`
	Industry        string    `json:"industry"`
	SimilarityScore float64   `json:"similarity_score"`
	CommonFeatures  []string  `json:"common_features"`
}

// GroupDTO is one community group produced by the clustering pass.
type GroupDTO struct {
	Name           string      `json:"name"`
	Members        []uuid.UUID `json:"members"`
	Size           int         `json:"size"`
	CommonIndustry string      `json:"common_industry"`
}

// ActionDTO is one recommended community action for a vendor.
type ActionDTO struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
	Priority    string `json:"priority"`
}
