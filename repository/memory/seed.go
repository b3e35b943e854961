package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pushkarbw/sample-e-com-sub003/models"
)

// Seed loads the demo catalog into the product repository. Stock and
// prices are arbitrary but stable so the storefront has something to
// browse on first start.
func Seed(ctx context.Context, products *ProductRepo) error {
	now := time.Now()
	catalog := []models.Product{
		{Name: "Wireless Headphones", Description: "Over-ear Bluetooth headphones with active noise cancellation", Price: 199.99, Category: "Electronics", Image: "/images/headphones.jpg", Stock: 25, Rating: 4.6, ReviewCount: 214, Featured: true},
		{Name: "Smart Watch", Description: "Fitness tracking watch with heart-rate monitor and GPS", Price: 249.00, Category: "Electronics", Image: "/images/smartwatch.jpg", Stock: 18, Rating: 4.3, ReviewCount: 98, Featured: true},
		{Name: "Mechanical Keyboard", Description: "Tenkeyless mechanical keyboard with hot-swappable switches", Price: 129.50, Category: "Electronics", Image: "/images/keyboard.jpg", Stock: 40, Rating: 4.8, ReviewCount: 341, Featured: false},
		{Name: "Leather Wallet", Description: "Slim bifold wallet in full-grain leather", Price: 49.99, Category: "Accessories", Image: "/images/wallet.jpg", Stock: 60, Rating: 4.4, ReviewCount: 77, Featured: false},
		{Name: "Canvas Backpack", Description: "Water-resistant 20L backpack with laptop sleeve", Price: 89.00, Category: "Accessories", Image: "/images/backpack.jpg", Stock: 32, Rating: 4.5, ReviewCount: 152, Featured: true},
		{Name: "Ceramic Mug Set", Description: "Set of four 350ml stoneware mugs", Price: 34.95, Category: "Home", Image: "/images/mugs.jpg", Stock: 50, Rating: 4.2, ReviewCount: 45, Featured: false},
		{Name: "Desk Lamp", Description: "Dimmable LED desk lamp with USB charging port", Price: 59.99, Category: "Home", Image: "/images/lamp.jpg", Stock: 27, Rating: 4.1, ReviewCount: 63, Featured: false},
		{Name: "Running Shoes", Description: "Lightweight road running shoes with responsive foam", Price: 139.95, Category: "Sports", Image: "/images/shoes.jpg", Stock: 22, Rating: 4.7, ReviewCount: 188, Featured: true},
		{Name: "Yoga Mat", Description: "Non-slip 6mm yoga mat with carry strap", Price: 29.99, Category: "Sports", Image: "/images/yogamat.jpg", Stock: 45, Rating: 4.0, ReviewCount: 39, Featured: false},
		{Name: "Espresso Maker", Description: "Stovetop espresso maker, 6-cup", Price: 44.50, Category: "Home", Image: "/images/espresso.jpg", Stock: 15, Rating: 4.3, ReviewCount: 121, Featured: false},
	}

	for i := range catalog {
		catalog[i].ID = uuid.NewString()
		catalog[i].CreatedAt = now
		catalog[i].UpdatedAt = now
		if err := products.Create(ctx, &catalog[i]); err != nil {
			return err
		}
	}
	return nil
}
