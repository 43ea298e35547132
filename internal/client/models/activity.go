package models

// Activity is a scheduled weekly activity.
type Activity struct {
	ID   int64  `json:"id"`
	Name string `json:"tx_nome"`
	Day  string `json:"dt_dia"`
}
