package models

import "time"

// Message is a direct message between two users. Rows are immutable once
// created: the autoincrement ID is assigned by the store in the same insert
// as CreatedAt, so ID order and CreatedAt order agree for every message
// written through the delivery path. ID doubles as the pagination cursor.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"index;not null" json:"senderId"`
	Sender     User      `gorm:"foreignKey:SenderID" json:"sender"`
	ReceiverID uint      `gorm:"index;not null" json:"receiverId"`
	Receiver   User      `gorm:"foreignKey:ReceiverID" json:"receiver"`
	Content    string    `gorm:"not null" json:"content"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}

// Stamp returns the message's position in the global send order.
func (m *Message) Stamp() Stamp {
	return Stamp{CreatedAt: m.CreatedAt, ID: m.ID}
}

// Stamp is the (createdAt, id) composite every ordering decision compares
// on. CreatedAt alone is not a total order: the store's clock resolution can
// collide under load, so ties fall through to the unique ID.
type Stamp struct {
	CreatedAt time.Time
	ID        uint
}

// After reports whether s sorts strictly later than other.
func (s Stamp) After(other Stamp) bool {
	if !s.CreatedAt.Equal(other.CreatedAt) {
		return s.CreatedAt.After(other.CreatedAt)
	}
	return s.ID > other.ID
}
