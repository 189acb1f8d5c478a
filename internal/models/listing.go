package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrInvalidFlatType = errors.New("invalid flat type")
	ErrInvalidPostType = errors.New("invalid post type")
)

// FlatType is the size category of a listed flat.
type FlatType string

const (
	FlatType1RK  FlatType = "1RK"
	FlatType1BHK FlatType = "1BHK"
	FlatType2BHK FlatType = "2BHK"
	FlatType3BHK FlatType = "3BHK"
	FlatType4BHK FlatType = "4BHK"
	FlatType5BHK FlatType = "5BHK"
)

// FlatTypes lists every flat type in display order.
var FlatTypes = []FlatType{FlatType1RK, FlatType1BHK, FlatType2BHK, FlatType3BHK, FlatType4BHK, FlatType5BHK}

func ParseFlatType(s string) (FlatType, error) {
	switch t := FlatType(s); t {
	case FlatType1RK, FlatType1BHK, FlatType2BHK, FlatType3BHK, FlatType4BHK, FlatType5BHK:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFlatType, s)
}

func (t FlatType) Valid() bool {
	_, err := ParseFlatType(string(t))
	return err == nil
}

// PostType says whether a listing offers a whole flat or a room in a shared one.
type PostType string

const (
	PostTypeFlat     PostType = "flat"
	PostTypeRoommate PostType = "roommate"
)

var PostTypes = []PostType{PostTypeFlat, PostTypeRoommate}

// ParsePostType maps the empty string to PostTypeFlat, the column default.
func ParsePostType(s string) (PostType, error) {
	switch t := PostType(s); t {
	case "":
		return PostTypeFlat, nil
	case PostTypeFlat, PostTypeRoommate:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPostType, s)
}

func (t PostType) Valid() bool {
	return t == PostTypeFlat || t == PostTypeRoommate
}

// Availability scopes listing queries by the is_available flag.
type Availability int

const (
	AvailableOnly Availability = iota
	AnyAvailability
)

// Listing is a flat or roommate post owned by a User.
type Listing struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	FlatType     FlatType  `gorm:"size:20;not null;index" json:"flat_type"`
	Location     string    `gorm:"size:200;not null" json:"location"`
	Rent         int       `gorm:"not null" json:"rent"`
	Description  string    `gorm:"type:text" json:"description"`
	ImagePath    *string   `gorm:"size:200" json:"image_path,omitempty"`
	VideoPath    *string   `gorm:"size:200" json:"video_path,omitempty"`
	ContactName  string    `gorm:"size:100;not null" json:"contact_name"`
	ContactPhone string    `gorm:"size:15;not null" json:"contact_phone"`
	ContactEmail string    `gorm:"size:120;not null" json:"contact_email"`
	IsAvailable  bool      `gorm:"not null;default:true;index" json:"is_available"`
	PostType     PostType  `gorm:"size:20;not null;default:'flat';index" json:"post_type"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	Owner        User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

// BeforeSave keeps rows inside the enumerations whatever the caller did.
func (l *Listing) BeforeSave(_ *gorm.DB) error {
	if l.PostType == "" {
		l.PostType = PostTypeFlat
	}
	if !l.FlatType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFlatType, l.FlatType)
	}
	if !l.PostType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPostType, l.PostType)
	}
	return nil
}
