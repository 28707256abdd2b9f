package models

// TokenDetails содержит сгенерированную пару токенов и их метаданные.
type TokenDetails struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	AccessUUID   string `json:"-"`
	RefreshUUID  string `json:"-"`
	AtExpires    int64  `json:"-"` // Unix-время истечения access токена
	RtExpires    int64  `json:"-"` // Unix-время истечения refresh токена
}
