package dto

import "github.com/ahatanar/StudentSpace/internal/app/models"

// HeatmapQuery carries the query parameters of GET /heatmap after binding.
// Defaults for term, campus, and hybrid handling come from configuration and
// are applied by the service; only bounds are validated here.
type HeatmapQuery struct {
	Term          string `form:"term"`
	Interval      int    `form:"interval" validate:"omitempty,min=1,max=1440"`
	Campus        string `form:"campus"`
	IncludeHybrid *bool  `form:"include_hybrid"`
	IncludeRaw    bool   `form:"include_raw"`
}

// HeatmapResponse is the payload of GET /heatmap. RawSections and
// RawSectionsCount are mutually exclusive: the full section list is returned
// only when include_raw is set, otherwise it is stripped and replaced by its
// count to bound the payload size.
type HeatmapResponse struct {
	Term             string                    `json:"term" example:"202601"`
	Campus           string                    `json:"campus" example:"Oshawa"`
	TotalSections    int                       `json:"totalSections" example:"412"`
	HeatmapData      map[string]map[string]int `json:"heatmapData"`
	TimeSlots        []string                  `json:"timeSlots"`
	Interval         int                       `json:"interval" example:"30"`
	RawSections      []models.Section          `json:"rawSections,omitempty"`
	RawSectionsCount *int                      `json:"rawSectionsCount,omitempty"`
}

// TermListResponse is the payload of GET /heatmap/terms.
type TermListResponse struct {
	Terms []models.DatasetInfo `json:"terms"`
}
