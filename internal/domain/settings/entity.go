package settings

// Theme holds the display preferences persisted on the device.
type Theme struct {
	Dark bool `json:"dark"`
}
