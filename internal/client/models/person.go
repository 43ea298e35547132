package models

// PersonHelped is a person assisted by the program, assigned to a leader.
type PersonHelped struct {
	ID       int64  `json:"id"`
	Name     string `json:"tx_nome"`
	DDD      int    `json:"nu_ddd"`
	Phone    int64  `json:"nu_telefone"`
	Birth    string `json:"dt_nascimento"`
	LeaderID int64  `json:"leader_id"`
}
