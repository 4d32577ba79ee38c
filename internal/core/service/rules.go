package service

import (
	"strings"

	"github.com/dscommerce/commerce-api/internal/core/ports"
	"github.com/dscommerce/commerce-api/internal/core/validation"
)

// productRules is the full ruleset applied to product create and update.
// Every rule runs on every request so a single response reports all
// simultaneous violations.
var productRules = validation.Ruleset[ports.ProductInput]{
	{
		Field:   "name",
		Message: "Product name cannot be blank",
		Valid: func(in ports.ProductInput) bool {
			return strings.TrimSpace(in.Name) != ""
		},
	},
	{
		Field:   "description",
		Message: "Description has to have at least 10 characters",
		Valid: func(in ports.ProductInput) bool {
			return len(strings.TrimSpace(in.Description)) >= 10
		},
	},
	{
		Field:   "price",
		Message: "Product price must be a positive value",
		Valid: func(in ports.ProductInput) bool {
			return in.Price > 0
		},
	},
	{
		Field:   "categories",
		Message: "There must be at least one category",
		Valid: func(in ports.ProductInput) bool {
			return len(in.CategoryIDs) > 0
		},
	},
}

// orderRules validates the requested item list before any product lookup.
var orderRules = validation.Ruleset[[]ports.OrderItemInput]{
	{
		Field:   "items",
		Message: "There must be at least one item",
		Valid: func(items []ports.OrderItemInput) bool {
			return len(items) > 0
		},
	},
	{
		Field:   "items",
		Message: "Item quantity must be a positive value",
		Valid: func(items []ports.OrderItemInput) bool {
			for _, it := range items {
				if it.Quantity <= 0 {
					return false
				}
			}
			return true
		},
	},
}
