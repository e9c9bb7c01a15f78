package models

import "time"

// DatasetInfo describes one stored term dataset without carrying its payload.
type DatasetInfo struct {
	Term         string     `json:"term"`
	SectionCount int        `json:"sectionCount"`
	FetchedAt    *time.Time `json:"fetchedAt,omitempty"`
}
