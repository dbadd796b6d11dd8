package menu

import (
	"github.com/eakarsu/go_deli/internal/customize"
	"github.com/eakarsu/go_deli/internal/money"
)

// SeedItems is the deli menu the storefront launches with.
func SeedItems() []Item {
	return []Item{
		{ID: 1, Name: "Acai Bowl", Description: "Acai, Banana, Blueberry, Strawberry, Granola, Coconut, Honey", Price: money.MustParse("12.97"), Image: "https://images.unsplash.com/photo-1511690743698-d9d85f2fbf38?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "acai-bowls", Tags: []string{"healthy", "vegan"}, Available: true},
		{ID: 2, Name: "French Toast", Description: "Texas style french toast served with butter and syrup", Price: money.MustParse("9.95"), Image: "https://images.unsplash.com/photo-1484723091739-30a097e8f929?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "breakfast-combos", Tags: []string{}, Available: true},
		{ID: 3, Name: "Healthy One", Description: "Three egg whites, turkey, spinach, Alpine Lace Swiss, in a whole wheat wrap", Price: money.MustParse("11.64"), Image: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "breakfast-combos", Tags: []string{"healthy"}, Available: true},
		{ID: 4, Name: "Hungry Man", Description: "Three eggs, ham, bacon, sausage, and cheese on a hero", Price: money.MustParse("12.95"), Image: "https://images.unsplash.com/photo-1533089860892-a7c6f0a88666?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "breakfast-combos", Tags: []string{}, Available: true},
		{ID: 5, Name: "Melville Platter", Description: "Two eggs, ham, bacon, sausage, home-fries, and toast", Price: money.MustParse("12.95"), Image: "https://images.unsplash.com/photo-1525351484163-7529414344d8?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "breakfast-combos", Tags: []string{}, Available: true},
		{ID: 6, Name: "Balsamic Avocado Hero", Description: "Turkey breast, avocado, tomato, romaine lettuce and balsamic vinaigrette", Price: money.MustParse("17.95"), Image: "https://images.unsplash.com/photo-1520072959219-c595dc870360?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "cold-sandwiches", Tags: []string{"healthy"}, Available: true},
		{ID: 7, Name: "Italian Hero", Description: "Capicola ham, salami, pepperoni, lettuce, tomato, Provolone cheese and Italian dressing on a hero", Price: money.MustParse("17.95"), Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "cold-sandwiches", Tags: []string{}, Available: true},
		{ID: 8, Name: "Turkey Club Hero", Description: "Roast turkey breast, bacon, lettuce, tomato and mayo on a hero", Price: money.MustParse("17.95"), Image: "https://images.unsplash.com/photo-1567234669003-dce7a7a88821?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "cold-sandwiches", Tags: []string{}, Available: true},
		{ID: 9, Name: "Chicken Fiesta Hero", Description: "Fried chicken cutlet, fresh mozzarella, roasted red peppers and spicy mayo on a toasted hero", Price: money.MustParse("17.95"), Image: "https://images.unsplash.com/photo-1606755456206-1f6d5ba933df?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "hot-sandwiches", Tags: []string{"spicy"}, Available: true},
		{ID: 10, Name: "Texas Hero", Description: "Fried chicken cutlet, bacon, fried onions, Mozzarella, Cheddar and barbeque sauce on a toasted garlic hero", Price: money.MustParse("17.95"), Image: "https://images.unsplash.com/photo-1551782450-17144efb9c50?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "hot-sandwiches", Tags: []string{}, Available: true},
		{ID: 11, Name: "California Panini", Description: "Turkey breast, tomato, avocado, Mozzarella cheese and Russian dressing", Price: money.MustParse("15.95"), Image: "https://images.unsplash.com/photo-1528736235302-52922df5c122?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "paninis", Tags: []string{"healthy"}, Available: true},
		{ID: 12, Name: "Chef Salad", Description: "Mixed lettuce, ham, eggs, turkey, carrots, Cheddar cheese, cucumber, tomatoes and green peppers", Price: money.MustParse("15.95"), Image: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "salads", Tags: []string{"healthy"}, Available: true},
		{ID: 13, Name: "Greek Salad", Description: "Romaine lettuce, tomatoes, stuffed grape leaves, green peppers, Feta cheese and black olives", Price: money.MustParse("15.95"), Image: "https://images.unsplash.com/photo-1544025162-d76694265947?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "salads", Tags: []string{"healthy", "vegetarian"}, Available: true},
		{ID: 14, Name: "American Omelet", Description: "ham, American cheese, and tomato", Price: money.MustParse("10.32"), Image: "https://images.unsplash.com/photo-1525351484163-7529414344d8?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "omelets", Tags: []string{}, Available: true},
		{ID: 15, Name: "Beef Gyro", Description: "Lettuce, tomato, cucumbers, onions, gyro sauce", Price: money.MustParse("12.94"), Image: "https://images.unsplash.com/photo-1563379091639-cdcb3c995001?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "grill-menu", Tags: []string{}, Available: true},
		{ID: 16, Name: "Philly Cheese Steak", Description: "Tender rib-eye steak, sautéed peppers, onions, and mixed Cheese", Price: money.MustParse("14.24"), Image: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "grill-menu", Tags: []string{}, Available: true},
		{ID: 17, Name: "Chocolate Chip Cookies", Description: "Fresh baked chocolate chip cookies", Price: money.MustParse("2.29"), Image: "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "desserts", Tags: []string{}, Available: true},
		{ID: 18, Name: "Rice Pudding", Description: "Creamy homemade rice pudding", Price: money.MustParse("4.54"), Image: "https://images.unsplash.com/photo-1488477181946-6428a0291777?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600", Category: "desserts", Tags: []string{}, Available: true},
	}
}

// SeedCustomizableItems is the build-your-own catalog with its rule sets.
func SeedCustomizableItems() []CustomizableItem {
	return []CustomizableItem{
		{
			ID:          1,
			Name:        "Build Your Own Breakfast",
			BasePrice:   money.MustParse("2.60"),
			Image:       "https://images.unsplash.com/photo-1533089860892-a7c6f0a88666?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Category:    "breakfast",
			Description: "Create your perfect breakfast with our fresh ingredients",
			Rules: []customize.Rule{
				{
					Name: "Breakfast Bread",
					Mode: customize.ExactlyOne,
					Options: []customize.Option{
						{Name: "Roll", PriceDelta: 0, SizeLabel: "Medium"},
						{Name: "Hero", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Whole Wheat Wrap", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Everything Bagel", PriceDelta: 50, SizeLabel: "Medium"},
						{Name: "Plain Bagel", PriceDelta: 50, SizeLabel: "Medium"},
						{Name: "English Muffin", PriceDelta: 50, SizeLabel: "Medium"},
					},
				},
				{
					Name: "Breakfast Egg Quantity",
					Mode: customize.ExactlyOne,
					Options: []customize.Option{
						{Name: "1 Egg", PriceDelta: 75, SizeLabel: "Small"},
						{Name: "2 Eggs", PriceDelta: 150, SizeLabel: "Small"},
						{Name: "3 Eggs", PriceDelta: 225, SizeLabel: "Small"},
					},
				},
				{
					Name: "Breakfast Egg Option",
					Mode: customize.ExactlyOne,
					Options: []customize.Option{
						{Name: "Scrambled", PriceDelta: 0, SizeLabel: "Small"},
						{Name: "Over Easy", PriceDelta: 0, SizeLabel: "Small"},
						{Name: "Over Hard", PriceDelta: 0, SizeLabel: "Small"},
						{Name: "Egg Whites", PriceDelta: 0, SizeLabel: "Small"},
					},
				},
				{
					Name: "Breakfast Meat",
					Mode: customize.ExactlyOne,
					Options: []customize.Option{
						{Name: "No Meat", PriceDelta: 0, SizeLabel: "Small"},
						{Name: "Bacon", PriceDelta: 200, SizeLabel: "Small"},
						{Name: "Sausage", PriceDelta: 150, SizeLabel: "Small"},
						{Name: "Ham", PriceDelta: 150, SizeLabel: "Small"},
						{Name: "Turkey", PriceDelta: 200, SizeLabel: "Small"},
					},
				},
				{
					Name:          "Breakfast Cheese",
					Mode:          customize.UpToN,
					MaxSelections: 2,
					Options: []customize.Option{
						{Name: "American Cheese", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Cheddar", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Swiss", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Mozzarella", PriceDelta: 100, SizeLabel: "Medium"},
					},
				},
			},
		},
		{
			ID:          2,
			Name:        "Build Your Own Sandwich",
			BasePrice:   money.MustParse("16.00"),
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Category:    "sandwiches",
			Description: "Craft your ideal sandwich with premium ingredients",
			Rules: []customize.Rule{
				{
					Name: "Bread",
					Mode: customize.ExactlyOne,
					Options: []customize.Option{
						{Name: "Roll", PriceDelta: 0, SizeLabel: "Medium"},
						{Name: "Hero", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Whole Wheat Wrap", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Everything Bagel", PriceDelta: 50, SizeLabel: "Medium"},
						{Name: "Rye Bread (sliced)", PriceDelta: 0, SizeLabel: "Medium"},
					},
				},
				{
					Name:          "Protein",
					Mode:          customize.UpToN,
					MaxSelections: 5,
					Options: []customize.Option{
						{Name: "House Roast Turkey", PriceDelta: 200, SizeLabel: "Medium"},
						{Name: "Ham", PriceDelta: 200, SizeLabel: "Medium"},
						{Name: "Roast Beef", PriceDelta: 300, SizeLabel: "Medium"},
						{Name: "Grilled Chicken", PriceDelta: 200, SizeLabel: "Medium"},
						{Name: "Tuna Salad", PriceDelta: 200, SizeLabel: "Medium"},
						{Name: "Chicken Salad", PriceDelta: 200, SizeLabel: "Medium"},
					},
				},
				{
					Name:          "Cheese",
					Mode:          customize.UpToN,
					MaxSelections: 5,
					Options: []customize.Option{
						{Name: "American Cheese", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Cheddar", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Swiss", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Provolone", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Fresh Mozzarella", PriceDelta: 100, SizeLabel: "Medium"},
					},
				},
				{
					Name:          "Toppings",
					Mode:          customize.UpToN,
					MaxSelections: 10,
					Options: []customize.Option{
						{Name: "Lettuce", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Tomato", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Onion", PriceDelta: 75, SizeLabel: "Medium"},
						{Name: "Avocado", PriceDelta: 150, SizeLabel: "Medium"},
						{Name: "Roasted Red Peppers", PriceDelta: 100, SizeLabel: "Medium"},
						{Name: "Cucumber", PriceDelta: 75, SizeLabel: "Medium"},
					},
				},
			},
		},
		{
			ID:          3,
			Name:        "Build Your Own Salad",
			BasePrice:   money.MustParse("9.95"),
			Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Category:    "salads",
			Description: "Create a fresh, healthy salad with your favorite ingredients",
			Rules: []customize.Rule{
				{
					Name: "Salad Base",
					Mode: customize.ExactlyOne,
					Options: []customize.Option{
						{Name: "Mixed Greens", PriceDelta: 0, SizeLabel: "Small"},
						{Name: "Romaine", PriceDelta: 0, SizeLabel: "Small"},
						{Name: "Spinach", PriceDelta: 0, SizeLabel: "Small"},
					},
				},
				{
					Name:          "Salad Add-ons",
					Mode:          customize.UpToN,
					MaxSelections: 10,
					Options: []customize.Option{
						{Name: "Grilled Chicken", PriceDelta: 200, SizeLabel: "Small"},
						{Name: "Grilled Salmon", PriceDelta: 300, SizeLabel: "Small"},
						{Name: "Marinated Steak", PriceDelta: 300, SizeLabel: "Small"},
						{Name: "Feta Cheese", PriceDelta: 200, SizeLabel: "Small"},
						{Name: "Cheddar Cheese", PriceDelta: 200, SizeLabel: "Small"},
						{Name: "Almonds", PriceDelta: 200, SizeLabel: "Small"},
						{Name: "Walnuts", PriceDelta: 200, SizeLabel: "Small"},
						{Name: "Cranberries (dried)", PriceDelta: 50, SizeLabel: "Small"},
						{Name: "Tomatoes", PriceDelta: 50, SizeLabel: "Small"},
						{Name: "Cucumber", PriceDelta: 50, SizeLabel: "Small"},
					},
				},
				{
					Name:          "Salad Dressing",
					Mode:          customize.UpToN,
					MaxSelections: 3,
					Options: []customize.Option{
						{Name: "Ranch", PriceDelta: 0, SizeLabel: "Small"},
						{Name: "Caesar", PriceDelta: 0, SizeLabel: "Small"},
						{Name: "Balsamic Vinaigrette", PriceDelta: 0, SizeLabel: "Small"},
						{Name: "Italian", PriceDelta: 0, SizeLabel: "Small"},
						{Name: "Oil & Vinegar", PriceDelta: 0, SizeLabel: "Small"},
					},
				},
			},
		},
	}
}
