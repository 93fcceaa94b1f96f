package models

import "time"

// UserModel is a registered family-side account.
type UserModel struct {
	Base
	Name          string     `json:"name"`
	Email         string     `json:"email" gorm:"uniqueIndex;not null"`
	Password      string     `json:"-"     gorm:"not null"`
	Avatar        string     `json:"avatar"`
	IsAdmin       bool       `json:"isAdmin" gorm:"default:false"`
	LastLoginTime *time.Time `json:"lastLoginTime"`
	LastLoginIP   string     `json:"-"`

	Favorites []FavoriteModel `json:"favorites,omitempty" gorm:"foreignKey:UserID"`
}

func (UserModel) TableName() string { return "users" }

// UserSession is a server-side login session a JWT is bound to.
type UserSession struct {
	Base
	UserID    string     `json:"-"  gorm:"index;not null"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua" gorm:"type:varchar(512)"`
	ExpiresAt time.Time  `json:"expiresAt" gorm:"index"`
	RevokedAt *time.Time `json:"revokedAt"`
}

func (UserSession) TableName() string { return "user_sessions" }
