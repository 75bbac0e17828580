package models

// User holds the minimal account fields this core touches. Profile
// management lives in the account service; settlement only clears the
// pending cart after a successful payment.
type User struct {
	ID       string                 `bson:"id" json:"id"`
	Name     string                 `bson:"name" json:"name"`
	Email    string                 `bson:"email" json:"email"`
	CartData map[string]interface{} `bson:"cart_data" json:"cartData"`
}
