package responses

// Slot is a transient view object, never persisted.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
