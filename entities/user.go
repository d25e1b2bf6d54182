package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email        string    `gorm:"size:254;uniqueIndex" json:"email"`
	Username     string    `gorm:"size:150;uniqueIndex" json:"username"`
	FirstName    string    `gorm:"size:150" json:"first_name"`
	LastName     string    `gorm:"size:150" json:"last_name"`
	PasswordHash string    `json:"-"`
	AvatarURL    string    `json:"avatar_url,omitempty"`

	Timestamp
}

type Subscription struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FollowerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follower_author" json:"follower_id"`
	AuthorID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follower_author" json:"author_id"`

	Follower *User `gorm:"foreignKey:FollowerID"`
	Author   *User `gorm:"foreignKey:AuthorID"`
	Timestamp
}
