package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID        string            `json:"_id" bson:"_id" gorm:"primaryKey;size:24"`
	Email     string            `json:"email" bson:"email" gorm:"not null;uniqueIndex"`
	Role      string            `json:"role,omitempty" bson:"role,omitempty" gorm:"not null;default:''"`
	Name      string            `json:"name,omitempty" bson:"name,omitempty"`
	Image     string            `json:"image,omitempty" bson:"image,omitempty"`
	Phone     string            `json:"phone,omitempty" bson:"phone,omitempty"`
	Address   string            `json:"address,omitempty" bson:"address,omitempty"`
	Education string            `json:"education,omitempty" bson:"education,omitempty"`
	LinkedIn  string            `json:"linkedin,omitempty" bson:"linkedin,omitempty" gorm:"column:linkedin"`
	CreatedAt time.Time         `json:"createdAt" bson:"createdAt"`
	Extras    datatypes.JSONMap `json:"-" bson:",inline" gorm:"column:extras"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}

var (
	userKeys = keySet("email", "role", "name", "image", "phone", "address", "education", "linkedin")
	// カラムを持つプロフィール項目
	profileColumns = keySet("name", "image", "phone", "address", "education", "linkedin")
)

type userDocument User

func (u User) MarshalJSON() ([]byte, error) {
	return marshalWithExtras(userDocument(u), u.Extras)
}

func (u *User) UnmarshalJSON(data []byte) error {
	var doc userDocument
	extras, err := unmarshalWithExtras(data, &doc, userKeys)
	if err != nil {
		return err
	}
	*u = User(doc)
	u.Extras = extras
	return nil
}

// ProfileColumns カラムを持つプロフィール項目の現在値
func (u User) ProfileColumns() map[string]interface{} {
	return map[string]interface{}{
		"name":      u.Name,
		"image":     u.Image,
		"phone":     u.Phone,
		"address":   u.Address,
		"education": u.Education,
		"linkedin":  u.LinkedIn,
	}
}

// UserProfile PUT /user/:email で$setするフィールド
// 本文の任意のキーを受け付けるが、email・role・_idはここからは変更できない
type UserProfile map[string]interface{}

// NewUserProfile 本文から変更できないキーを取り除く
// カラムを持つ項目は文字列にそろえる
func NewUserProfile(body map[string]interface{}) UserProfile {
	profile := UserProfile{}
	for k, v := range body {
		if k == "email" || k == "role" || reservedKeys[k] {
			continue
		}
		if profileColumns[k] {
			v = profileString(v)
		}
		profile[k] = v
	}
	return profile
}

func profileString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

// Split カラムを持つ項目とextrasに入る項目に分ける
func (p UserProfile) Split() (columns map[string]interface{}, extras map[string]interface{}) {
	columns = map[string]interface{}{}
	extras = map[string]interface{}{}
	for k, v := range p {
		if profileColumns[k] {
			columns[k] = v
			continue
		}
		extras[k] = v
	}
	return columns, extras
}

// ApplyTo 新規作成するユーザーにプロフィールを反映する
func (p UserProfile) ApplyTo(u *User) {
	columns, extras := p.Split()
	for k, v := range columns {
		s, _ := v.(string)
		switch k {
		case "name":
			u.Name = s
		case "image":
			u.Image = s
		case "phone":
			u.Phone = s
		case "address":
			u.Address = s
		case "education":
			u.Education = s
		case "linkedin":
			u.LinkedIn = s
		}
	}
	if len(extras) > 0 {
		u.Extras = extras
	}
}
