package models

import "time"

type Receiver struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// Notification is an admin message addressed to one account. In list
// responses the receiver reference is populated with the username; create
// and update requests send the plain receiver id instead.
type Notification struct {
	ID        string    `json:"_id"`
	Receiver  Receiver  `json:"id_user"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"create_at"`
}

func (n Notification) EntityID() string { return n.ID }

type NotificationDraft struct {
	ReceiverID string
	Message    string
}

func DraftOfNotification(n Notification) NotificationDraft {
	return NotificationDraft{ReceiverID: n.Receiver.ID, Message: n.Message}
}
