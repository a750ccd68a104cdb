package dto

import "gin-manufacturer/models"

// UpsertUserInput 名前付きの項目の検証用。本文のそれ以外のキーもプロフィールとして保存する
// roleは受け付けない（昇格はPUT /user/admin/:emailのみ）
type UpsertUserInput struct {
	Name      *string `json:"name"`
	Image     *string `json:"image" binding:"omitempty,url"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Education *string `json:"education"`
	LinkedIn  *string `json:"linkedin" binding:"omitempty,url"`
}

type UpsertUserResponse struct {
	Result *models.UpdateResult `json:"result"`
	Token  string               `json:"token"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}
