package launches

import "time"

// Launch is one activation of the editor's Execute button.
type Launch struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// Paging limits for List.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// timeLayout sorts lexically in the same order as chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"
