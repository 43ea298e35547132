package models

// Leader is a program leader responsible for a group of people being
// helped.
type Leader struct {
	ID    int64  `json:"id"`
	Name  string `json:"tx_nome"`
	Email string `json:"tx_email"`
	DDD   int    `json:"nu_ddd"`
	Phone int64  `json:"nu_telefone"`
	Birth string `json:"dt_nascimento"`
}
