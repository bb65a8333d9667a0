package dto

import (
	"bestevents/shared/constant"
	"bestevents/shared/model"
	"bestevents/shared/timezone"
	"time"
)

// Metadata leaves out timestamps a record never received, such as records
// imported from snapshots written before stamping was introduced.
type Metadata struct {
	CreatedAt  string `json:"created_at,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = formatStamp(model.CreatedAt)
	m.ModifiedAt = formatStamp(model.ModifiedAt)
}

func formatStamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, constant.DateFormat)
}
