package cli

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/dscommerce/commerce-api/internal/core/domain"
	mongodb "github.com/dscommerce/commerce-api/internal/infrastructure/db/mongo"
)

const seedPassword = "123456"

// seed loads the reference dataset the demo environment and the integration
// checks rely on. Repositories allocate sequential ids, so insertion order
// fixes the well-known ids: user 1 is the client, user 2 the admin, product 1
// is referenced by the seeded order.
func seed(ctx context.Context, db *mongo.Database) error {
	users := mongodb.NewUserRepository(db)
	categories := db.Collection("categories")
	products := mongodb.NewProductRepository(db)
	orders := mongodb.NewOrderRepository(db)

	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := products.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := orders.EnsureIndexes(ctx); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	seedUsers := []domain.User{
		{Name: "Maria Brown", Email: "maria@gmail.com", Roles: []string{domain.RoleClient}},
		{Name: "Alex Green", Email: "alex@gmail.com", Roles: []string{domain.RoleAdmin}},
	}
	for i := range seedUsers {
		seedUsers[i].PasswordHash = string(hash)
		seedUsers[i].CreatedAt = now
		seedUsers[i].UpdatedAt = now
		if _, err := users.Create(ctx, &seedUsers[i]); err != nil {
			return err
		}
	}

	seedCategories := []domain.Category{
		{ID: 1, Name: "Books"},
		{ID: 2, Name: "Electronics"},
		{ID: 3, Name: "Computers"},
	}
	for _, c := range seedCategories {
		if _, err := categories.InsertOne(ctx, c); err != nil {
			return err
		}
	}

	seedProducts := []domain.Product{
		{Name: "The Lord of the Rings", Description: "The complete single-volume edition of the trilogy", Price: 90.5, CategoryIDs: []int64{1}},
		{Name: "Smart TV", Description: "A 55 inch 4K panel with built-in streaming apps", Price: 2190.0, CategoryIDs: []int64{2, 3}},
		{Name: "Macbook Pro", Description: "Apple laptop with a 14 inch liquid retina display", Price: 1250.0, CategoryIDs: []int64{3}},
		{Name: "PC Gamer", Description: "Entry-level gaming desktop with dedicated graphics", Price: 1200.0, CategoryIDs: []int64{3}},
		{Name: "PC Gamer Tera", Description: "Mid-range gaming desktop with liquid cooling", Price: 1950.0, CategoryIDs: []int64{3}},
		{Name: "PC Gamer Hera", Description: "High-end gaming desktop with a flagship GPU", Price: 2250.0, CategoryIDs: []int64{3}},
		{Name: "PC Gamer Weed", Description: "Enthusiast gaming desktop with custom water loop", Price: 2700.0, CategoryIDs: []int64{3}},
	}
	for i := range seedProducts {
		seedProducts[i].ImgURL = "https://img.example.com/products/" + seedProducts[i].Name
		seedProducts[i].CreatedAt = now
		seedProducts[i].UpdatedAt = now
		if err := products.Create(ctx, &seedProducts[i]); err != nil {
			return err
		}
	}

	// One order owned by the client, referencing product 1: deleting that
	// product must fail with a referential-integrity conflict.
	order := domain.Order{
		UserID:    seedUsers[0].ID,
		OrderedAt: now,
		Status:    domain.StatusInitial,
		Items: []domain.OrderItem{
			{
				ProductID: seedProducts[0].ID,
				Name:      seedProducts[0].Name,
				UnitPrice: seedProducts[0].Price,
				Quantity:  1,
			},
		},
	}
	return orders.Create(ctx, &order)
}
