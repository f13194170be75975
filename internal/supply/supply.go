package supply

import "go.mongodb.org/mongo-driver/bson/primitive"

// Supply is a donated stock listing. Email refers to the donor's account by
// value only; nothing enforces that the account exists.
type Supply struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Amount      float64            `bson:"amount" json:"amount"`
	Image       string             `bson:"image" json:"image"`
	Email       string             `bson:"email" json:"email"`
}
