package menu

import (
	"rumbles-backend/domain"
)

var categories = []domain.Category{
	{ID: "fish", Name: "Fish", Slug: "fish", Description: "Our signature fish, freshly battered and fried to golden perfection", ImageURL: "images/categories/fish.jpg"},
	{ID: "kebabs", Name: "Kebabs", Slug: "kebabs", Description: "Authentic doner, shish, and kofte kebabs with fresh salad", ImageURL: "images/categories/kebabs.jpg"},
	{ID: "burgers", Name: "Burgers", Slug: "burgers", Description: "Classic quarter pounder burgers with all the trimmings", ImageURL: "images/categories/burgers.jpg"},
	{ID: "smash-burgers", Name: "Smash Burgers", Slug: "smash-burgers", Description: "Premium smashed patties with gourmet toppings, wings, and loaded fries", ImageURL: "images/categories/smash-burgers.jpg"},
	{ID: "pies", Name: "Pies", Slug: "pies", Description: "Traditional British pies, perfect with chips and gravy", ImageURL: "images/categories/pies.jpg"},
	{ID: "seafood-basket", Name: "Seafood Basket", Slug: "seafood-basket", Description: "Mixed seafood platters for the ultimate catch", ImageURL: "images/categories/seafood.jpg"},
	{ID: "usa-fried-chicken", Name: "Fried Chicken", Slug: "usa-fried-chicken", Description: "American-style crispy fried chicken", ImageURL: "images/categories/chicken.jpg"},
	{ID: "veggie-wraps", Name: "Veggie Wraps", Slug: "veggie-wraps", Description: "Delicious vegetarian wraps and options", ImageURL: "images/categories/veggie.jpg"},
	{ID: "extras", Name: "Extras", Slug: "extras", Description: "Sides, sauces, and all the extras you need", ImageURL: "images/categories/extras.jpg"},
	{ID: "kids-meal", Name: "Kids Meal", Slug: "kids-meal", Description: "Smaller portions perfect for little ones", ImageURL: "images/categories/kids.jpg"},
	{ID: "desserts", Name: "Desserts", Slug: "desserts", Description: "Sweet treats to finish your meal", ImageURL: "images/categories/desserts.jpg"},
	{ID: "drinks", Name: "Drinks", Slug: "drinks", Description: "Soft drinks, cans, and bottles", ImageURL: "images/categories/drinks.jpg"},
	{ID: "beers", Name: "Beers", Slug: "beers", Description: "Selection of bottled beers and ciders", ImageURL: "images/categories/beers.jpg"},
}

// Featured categories shown on the homepage.
var featuredCategoryIDs = []string{"fish", "kebabs", "burgers", "usa-fried-chicken", "kids-meal", "drinks"}

var fishItems = []domain.MenuItem{
	{ID: "fish-cod", Name: "Cod", Description: "Freshly battered cod fillet, fried to order", CategoryID: "fish", Price: 6.50, IsPopular: true},
	{ID: "fish-haddock", Name: "Haddock", Description: "North Sea haddock in our crispy golden batter", CategoryID: "fish", Price: 7.00, IsPopular: true},
	{ID: "fish-plaice", Name: "Plaice", Description: "Delicate plaice fillet in light batter", CategoryID: "fish", Price: 7.50},
	{ID: "fish-cod-chips", Name: "Cod & Chips", Description: "Our signature cod with a generous portion of chips", CategoryID: "fish", IsPopular: true, Variants: []domain.MenuItemVariant{
		{ID: "regular", Name: "Regular", Price: 8.50},
		{ID: "large", Name: "Large", Price: 9.95},
	}},
	{ID: "fish-haddock-chips", Name: "Haddock & Chips", Description: "Haddock fillet with chips", CategoryID: "fish", Variants: []domain.MenuItemVariant{
		{ID: "regular", Name: "Regular", Price: 9.00},
		{ID: "large", Name: "Large", Price: 10.45},
	}},
	{ID: "fish-rock-eel", Name: "Rock Eel", Description: "Traditional rock eel in crispy batter", CategoryID: "fish", Price: 8.00},
	{ID: "fish-skate", Name: "Skate Wing", Description: "Skate wing, battered and fried", CategoryID: "fish", Price: 9.50},
	{ID: "fish-scampi", Name: "Scampi (10pc)", Description: "Whole tail breaded scampi", CategoryID: "fish", Price: 6.95},
	{ID: "fish-cakes", Name: "Fish Cakes (2pc)", Description: "Homemade fish cakes", CategoryID: "fish", Price: 3.50},
	{ID: "fish-roe", Name: "Cod Roe", Description: "Battered cod roe", CategoryID: "fish", Price: 3.95},
}

var kebabItems = []domain.MenuItem{
	{ID: "kebab-doner", Name: "Doner Kebab", Description: "Sliced doner meat in pitta with fresh salad", CategoryID: "kebabs", IsPopular: true, Variants: []domain.MenuItemVariant{
		{ID: "small", Name: "Small", Price: 6.50},
		{ID: "large", Name: "Large", Price: 8.00},
	}},
	{ID: "kebab-chicken-shish", Name: "Chicken Shish", Description: "Marinated chicken cubes grilled on a skewer", CategoryID: "kebabs", Price: 8.50, IsPopular: true},
	{ID: "kebab-kofte", Name: "Kofte Kebab", Description: "Seasoned minced lamb kofte with salad", CategoryID: "kebabs", Price: 8.00},
	{ID: "kebab-mixed", Name: "Mixed Kebab", Description: "Doner, chicken shish and kofte combination", CategoryID: "kebabs", Price: 10.50},
	{ID: "kebab-doner-wrap", Name: "Doner Wrap", Description: "Doner meat wrapped in a soft tortilla", CategoryID: "kebabs", Price: 7.00},
	{ID: "kebab-doner-chips", Name: "Doner Meat & Chips", Description: "Doner meat served over chips", CategoryID: "kebabs", Price: 7.50},
}

var burgerItems = []domain.MenuItem{
	{ID: "burger-quarter", Name: "1/4 Pounder", Description: "Classic quarter pounder beef burger with fresh salad", CategoryID: "burgers", Price: 5.50, IsPopular: true},
	{ID: "burger-half", Name: "1/2 Pounder", Description: "Double beef patty burger for bigger appetites", CategoryID: "burgers", Price: 6.90, IsPopular: true},
	{ID: "burger-veggie", Name: "Vegetarian Burger", Description: "Delicious meat-free burger with fresh salad", CategoryID: "burgers", Price: 5.50, IsVegetarian: true},
	{ID: "burger-bacon", Name: "Bacon Burger", Description: "Beef burger topped with crispy bacon rashers", CategoryID: "burgers", Price: 6.90},
	{ID: "burger-chicken", Name: "Chicken Burger", Description: "Breaded chicken fillet in a soft bun", CategoryID: "burgers", Price: 5.50},
	{ID: "burger-chicken-wrap", Name: "Chicken Wrap Burger", Description: "Chicken fillet served in a soft tortilla wrap", CategoryID: "burgers", Price: 6.00},
}

var smashBurgerItems = []domain.MenuItem{
	{ID: "smash-classic", Name: "Classic Smash", Description: "Double smashed patties, american cheese, house sauce", CategoryID: "smash-burgers", Price: 8.50, IsPopular: true, IsNew: true},
	{ID: "smash-bacon", Name: "Bacon Smash", Description: "Double smashed patties with streaky bacon and cheese", CategoryID: "smash-burgers", Price: 9.50, IsNew: true},
	{ID: "smash-wings", Name: "Buffalo Wings (6pc)", Description: "Crispy wings tossed in buffalo sauce", CategoryID: "smash-burgers", Price: 6.50},
	{ID: "smash-loaded-fries", Name: "Loaded Fries", Description: "Fries loaded with cheese sauce, crispy onions and jalapenos", CategoryID: "smash-burgers", Price: 5.95, IsPopular: true},
}

var pieItems = []domain.MenuItem{
	{ID: "pie-steak-kidney", Name: "Steak & Kidney Pie", Description: "Traditional steak and kidney in rich gravy", CategoryID: "pies", Price: 4.50, IsPopular: true},
	{ID: "pie-chicken-mushroom", Name: "Chicken & Mushroom Pie", Description: "Creamy chicken and mushroom filling", CategoryID: "pies", Price: 4.50},
	{ID: "pie-meat-potato", Name: "Meat & Potato Pie", Description: "Hearty minced beef and potato", CategoryID: "pies", Price: 4.50},
	{ID: "pie-cheese-onion", Name: "Cheese & Onion Pie", Description: "Melted cheese and onion in shortcrust pastry", CategoryID: "pies", Price: 4.25, IsVegetarian: true},
	{ID: "pie-pukka", Name: "Pukka Pie", Description: "Famous Pukka steak pie", CategoryID: "pies", Price: 4.75},
}

var seafoodBasketItems = []domain.MenuItem{
	{ID: "seafood-platter-1", Name: "Seafood Platter for 1", Description: "Fish, scampi, prawns and calamari with chips", CategoryID: "seafood-basket", Price: 12.95, IsPopular: true},
	{ID: "seafood-platter-2", Name: "Seafood Platter for 2", Description: "Generous sharing platter with assorted fried seafood and chips", CategoryID: "seafood-basket", Price: 22.95, IsPopular: true},
	{ID: "seafood-scampi-basket", Name: "Scampi Basket", Description: "Whole tail scampi served with chips and tartare sauce", CategoryID: "seafood-basket", Price: 8.95},
	{ID: "seafood-prawn-basket", Name: "Prawn Basket", Description: "Breaded king prawns with chips", CategoryID: "seafood-basket", Price: 8.95},
	{ID: "seafood-calamari-basket", Name: "Calamari Basket", Description: "Tender squid rings in light crispy coating with chips", CategoryID: "seafood-basket", Price: 8.95},
	{ID: "seafood-mixed-basket", Name: "Mixed Seafood Basket", Description: "Selection of scampi, prawns and calamari with chips", CategoryID: "seafood-basket", Price: 10.95},
}

var friedChickenItems = []domain.MenuItem{
	{ID: "chicken-2pc", Name: "2pc Chicken & Chips", Description: "Two pieces of crispy fried chicken with chips", CategoryID: "usa-fried-chicken", Price: 5.50, IsPopular: true},
	{ID: "chicken-3pc", Name: "3pc Chicken & Chips", Description: "Three pieces of crispy fried chicken with chips", CategoryID: "usa-fried-chicken", Price: 6.95},
	{ID: "chicken-strips", Name: "Chicken Strips (5pc)", Description: "Breaded chicken breast strips", CategoryID: "usa-fried-chicken", Price: 5.95},
	{ID: "chicken-nuggets", Name: "Chicken Nuggets (10pc)", Description: "Golden chicken nuggets", CategoryID: "usa-fried-chicken", Price: 4.95},
	{ID: "chicken-bucket", Name: "Family Bucket (8pc)", Description: "Eight pieces of fried chicken with two large chips", CategoryID: "usa-fried-chicken", Price: 15.95},
}

var veggieWrapItems = []domain.MenuItem{
	{ID: "veggie-falafel-wrap", Name: "Falafel Wrap", Description: "Homemade falafel with hummus, salad and tahini dressing in a soft wrap", CategoryID: "veggie-wraps", Price: 6.50, IsPopular: true, IsVegetarian: true},
	{ID: "veggie-halloumi-wrap", Name: "Halloumi Wrap", Description: "Grilled halloumi cheese with fresh salad and mint yogurt dressing", CategoryID: "veggie-wraps", Price: 7.00, IsPopular: true, IsVegetarian: true},
	{ID: "veggie-salad-wrap", Name: "Mixed Salad Wrap", Description: "Fresh mixed salad with house dressing in a soft tortilla", CategoryID: "veggie-wraps", Price: 5.00, IsVegetarian: true},
	{ID: "veggie-cheese-wrap", Name: "Cheese Wrap", Description: "Melted cheese with salad in a toasted wrap", CategoryID: "veggie-wraps", Price: 5.50, IsVegetarian: true},
	{ID: "veggie-hummus-wrap", Name: "Hummus & Salad Wrap", Description: "Creamy hummus with fresh crunchy salad", CategoryID: "veggie-wraps", Price: 5.50, IsVegetarian: true},
	{ID: "veggie-mushroom-wrap", Name: "Mushroom Wrap", Description: "Sauteed mushrooms with garlic, onions and melted cheese", CategoryID: "veggie-wraps", Price: 6.00, IsVegetarian: true},
}

var extrasItems = []domain.MenuItem{
	{ID: "extras-chips", Name: "Chips", Description: "Proper chippy chips", CategoryID: "extras", IsPopular: true, IsVegetarian: true, Variants: []domain.MenuItemVariant{
		{ID: "small", Name: "Small", Price: 2.50},
		{ID: "large", Name: "Large", Price: 3.50},
	}},
	{ID: "extras-cheesy-chips", Name: "Cheesy Chips", Description: "Chips topped with melted cheese", CategoryID: "extras", Price: 4.00, IsVegetarian: true},
	{ID: "extras-mushy-peas", Name: "Mushy Peas", Description: "Homemade mushy peas", CategoryID: "extras", Price: 1.80, IsVegetarian: true},
	{ID: "extras-curry-sauce", Name: "Curry Sauce", Description: "Chip shop curry sauce", CategoryID: "extras", Price: 1.80, IsVegetarian: true},
	{ID: "extras-gravy", Name: "Gravy", Description: "Rich meaty gravy", CategoryID: "extras", Price: 1.80},
	{ID: "extras-pickled-onion", Name: "Pickled Onion", Description: "Traditional pickled onion", CategoryID: "extras", Price: 0.80, IsVegetarian: true},
	{ID: "extras-gherkin", Name: "Pickled Gherkin", Description: "Large pickled gherkin", CategoryID: "extras", Price: 1.20, IsVegetarian: true},
	{ID: "extras-bread-butter", Name: "Bread & Butter", Description: "Two slices, perfect for a chip butty", CategoryID: "extras", Price: 1.00, IsVegetarian: true},
}

var kidsMealItems = []domain.MenuItem{
	{ID: "kids-fish-chips", Name: "Kids Fish & Chips", Description: "Small portion of battered fish with chips", CategoryID: "kids-meal", Price: 5.50, IsPopular: true},
	{ID: "kids-chicken-nuggets", Name: "Chicken Nuggets & Chips", Description: "6 chicken nuggets with chips", CategoryID: "kids-meal", Price: 4.95, IsPopular: true},
	{ID: "kids-sausage-chips", Name: "Sausage & Chips", Description: "Jumbo sausage with chips", CategoryID: "kids-meal", Price: 4.50},
	{ID: "kids-fish-fingers", Name: "Fish Fingers & Chips", Description: "4 fish fingers with chips", CategoryID: "kids-meal", Price: 4.95},
	{ID: "kids-burger-chips", Name: "Kids Burger & Chips", Description: "Small beef burger with chips", CategoryID: "kids-meal", Price: 5.00},
	{ID: "kids-chicken-strips", Name: "Chicken Strips & Chips", Description: "3 chicken strips with chips", CategoryID: "kids-meal", Price: 5.50},
}

var dessertItems = []domain.MenuItem{
	{ID: "dessert-ice-cream", Name: "Ice Cream Tub", Description: "Creamy vanilla ice cream", CategoryID: "desserts", Price: 2.50},
	{ID: "dessert-chocolate-bar", Name: "Deep Fried Mars Bar", Description: "Classic Mars bar in crispy batter - a British chippy favourite", CategoryID: "desserts", Price: 3.50, IsPopular: true},
	{ID: "dessert-battered-oreos", Name: "Battered Oreos (4pc)", Description: "Oreo cookies in sweet batter, deep fried to perfection", CategoryID: "desserts", Price: 3.95, IsPopular: true},
	{ID: "dessert-churros", Name: "Churros (6pc)", Description: "Spanish-style churros with chocolate dipping sauce", CategoryID: "desserts", Price: 4.50},
	{ID: "dessert-cookie-dough", Name: "Cookie Dough Bites", Description: "Warm cookie dough bites with vanilla ice cream", CategoryID: "desserts", Price: 4.95},
	{ID: "dessert-apple-pie", Name: "Apple Pie", Description: "Warm apple pie slice", CategoryID: "desserts", Price: 2.50},
}

var drinkItems = []domain.MenuItem{
	{ID: "drink-coke-can", Name: "Coca-Cola Can", Description: "330ml can", CategoryID: "drinks", Price: 1.50, IsPopular: true},
	{ID: "drink-coke-bottle", Name: "Coca-Cola Bottle", Description: "500ml bottle", CategoryID: "drinks", Price: 2.20},
	{ID: "drink-fanta", Name: "Fanta Orange", Description: "330ml can", CategoryID: "drinks", Price: 1.50},
	{ID: "drink-sprite", Name: "Sprite", Description: "330ml can", CategoryID: "drinks", Price: 1.50},
	{ID: "drink-water", Name: "Still Water", Description: "500ml bottle", CategoryID: "drinks", Price: 1.20},
	{ID: "drink-irn-bru", Name: "Irn-Bru", Description: "330ml can", CategoryID: "drinks", Price: 1.60},
}

var beerItems = []domain.MenuItem{
	{ID: "beer-peroni", Name: "Peroni", Description: "Italian lager 330ml bottle", CategoryID: "beers", Price: 3.50, IsPopular: true},
	{ID: "beer-corona", Name: "Corona", Description: "Mexican lager 330ml bottle", CategoryID: "beers", Price: 3.50, IsPopular: true},
	{ID: "beer-budweiser", Name: "Budweiser", Description: "American lager 330ml bottle", CategoryID: "beers", Price: 3.00},
	{ID: "beer-stella", Name: "Stella Artois", Description: "Belgian lager 330ml bottle", CategoryID: "beers", Price: 3.50},
	{ID: "beer-becks", Name: "Becks", Description: "German lager 275ml bottle", CategoryID: "beers", Price: 3.00},
	{ID: "beer-heineken", Name: "Heineken", Description: "Dutch lager 330ml bottle", CategoryID: "beers", Price: 3.50},
	{ID: "beer-cider", Name: "Kopparberg", Description: "Swedish mixed fruit cider 500ml bottle", CategoryID: "beers", Price: 4.00},
}

var menuByCategory = map[string][]domain.MenuItem{
	"fish":              fishItems,
	"kebabs":            kebabItems,
	"burgers":           burgerItems,
	"smash-burgers":     smashBurgerItems,
	"pies":              pieItems,
	"seafood-basket":    seafoodBasketItems,
	"usa-fried-chicken": friedChickenItems,
	"veggie-wraps":      veggieWrapItems,
	"extras":            extrasItems,
	"kids-meal":         kidsMealItems,
	"desserts":          dessertItems,
	"drinks":            drinkItems,
	"beers":             beerItems,
}
