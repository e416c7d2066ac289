package models

// Agrokit is a registry entry for a field device. A row is created the
// first time a reading arrives from an unseen id_agrokit; after that the
// entry is never overwritten by later readings.
type Agrokit struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	IDAgrokit string `json:"id_agrokit" gorm:"column:id_agrokit;unique"`
	Name      string `json:"name"`
	// APIKey is reserved for per-device ingest credentials; no endpoint
	// consumes it yet.
	APIKey string `json:"-" gorm:"column:api_key"`
}

func (Agrokit) TableName() string { return "agrokits" }
