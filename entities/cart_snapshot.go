package entities

// CartSnapshot holds one serialized cart state per storage key. The blob is
// the JSON cart state; only its items array is trusted when reloading.
type CartSnapshot struct {
	Key  string `gorm:"primary_key;size:128" json:"key"`
	Data []byte `gorm:"type:bytea" json:"data"`

	Timestamp
}
