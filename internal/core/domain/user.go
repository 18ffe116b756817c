package domain

// User is the advertiser account that owns campaigns. One remote order is
// kept per user and every new line item is filed under it.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
}
