package entities

import (
	"github.com/google/uuid"
)

const (
	FriendStatusPending  = "pending"
	FriendStatusAccepted = "accepted"
)

type FriendRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RequesterID uuid.UUID `json:"requester_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	// PairKey is the sorted concatenation of the two user ids. The unique
	// index on it guarantees at most one request per unordered pair, in
	// either direction, regardless of concurrent submissions.
	PairKey string `gorm:"uniqueIndex" json:"-"`
	Status  string `json:"status"` // "pending", "accepted"

	Requester *User `gorm:"foreignKey:RequesterID"`
	Recipient *User `gorm:"foreignKey:RecipientID"`
	Timestamp
}

// FriendPairKey builds the direction-independent key for a pair of users.
func FriendPairKey(a, b uuid.UUID) string {
	if a.String() < b.String() {
		return a.String() + ":" + b.String()
	}
	return b.String() + ":" + a.String()
}

// OtherParty returns the participant that is not userID.
func (f *FriendRequest) OtherParty(userID uuid.UUID) *User {
	if f.RequesterID == userID {
		return f.Recipient
	}
	return f.Requester
}
