package model

import (
	"time"

	"gorm.io/datatypes"
)

// Durable KV keys. The analysis collection and the access-code session are
// the only two persisted values; each is overwritten wholesale.
const (
	KeyExamAnalyses    = "exam_analyses"
	KeyStaffAccessCode = "staff_access_code"
)

// KVEntry is one persisted JSON document.
type KVEntry struct {
	Key       string         `gorm:"primaryKey;size:64" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}
