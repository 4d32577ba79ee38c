package domain

import "time"

// Category is read-mostly reference data.
type Category struct {
	ID   int64  `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// Product is a catalog entry. Categories are stored as references and
// resolved on the read side; the embedded list is never persisted with the
// product document.
type Product struct {
	ID          int64     `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	ImgURL      string    `json:"img_url" bson:"img_url"`
	CategoryIDs []int64   `json:"category_ids" bson:"category_ids"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
