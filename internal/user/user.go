package user

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account is a registered login. The stored password is a bcrypt hash and is
// never serialized back to clients.
type Account struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}
