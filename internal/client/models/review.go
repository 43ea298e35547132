package models

// Review is one thumbs-up/down attendance verdict: did the person attend
// the activity this week.
type Review struct {
	ID         int64  `json:"id"`
	ActivityID int64  `json:"activity_id"`
	PersonID   int64  `json:"person_id"`
	InPresence bool   `json:"in_presence"`
	ReviewedAt string `json:"dt_revisao,omitempty"`

	// Denormalized display fields the weekly endpoint includes so the
	// client does not have to join locally.
	ActivityName string `json:"tx_atividade,omitempty"`
	PersonName   string `json:"tx_pessoa,omitempty"`
}
