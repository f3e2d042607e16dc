package models

import "time"

// Message представляет одно сообщение между двумя пользователями
type Message struct {
	From string    `json:"from"` // username отправителя
	To   string    `json:"to"`   // username получателя
	Text string    `json:"text"` // текст как ввел пользователь, без санитизации
	Ts   time.Time `json:"ts"`   // время отправки
}
