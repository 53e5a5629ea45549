package catalog

import "context"

// Gateway reads catalog data from the back-office service.
type Gateway interface {
	ListMaterials(ctx context.Context) ([]Material, error)
	GetMaterial(ctx context.Context, id int64) (Material, error)
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (Product, error)
	ListComponents(ctx context.Context, productID int64) ([]RecipeComponent, error)
}
