package domain

import "time"

// LinkRecord associates a Discord account with osu! OAuth credentials.
// At most one record exists per DiscordID.
type LinkRecord struct {
	DiscordID    string    `json:"discordId"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	LinkedAt     time.Time `json:"linkedAt"`
}

// TokenPair mirrors the identity provider's token response.
type TokenPair struct {
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// GuildMember is the subset of a Discord guild member used for search.
type GuildMember struct {
	UserID        string `json:"userId"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	GlobalName    string `json:"globalName"`
}
