package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload carried on every authenticated request. The org
// level and anchor ids drive scope resolution for list and act paths.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	Level    string `json:"level"`
	MuqamID  *uint  `json:"muqam_id,omitempty"`
	DilaID   *uint  `json:"dila_id,omitempty"`
	ZoneID   *uint  `json:"zone_id,omitempty"`
	jwt.RegisteredClaims
}
