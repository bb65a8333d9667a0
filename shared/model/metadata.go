package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	ModifiedAt time.Time `json:"modified_at" yaml:"modified_at"`
}

// Touch stamps the record as modified at t, setting the creation time on first use.
func (m *Metadata) Touch(t time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = t
	}

	m.ModifiedAt = t
}
