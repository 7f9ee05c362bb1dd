package services

// unknownFood is returned when the classifier reports a class index outside
// the table.
const unknownFood = "Unknown Food"

// foodClasses maps the classifier's class index to a human-readable food
// name. The model is trained on the Food-101 label set; the table order must
// match the model's output indices exactly.
var foodClasses = [101]string{
	"Apple Pie",
	"Baby Back Ribs",
	"Baklava",
	"Beef Carpaccio",
	"Beef Tartare",
	"Beet Salad",
	"Beignets",
	"Bibimbap",
	"Bread Pudding",
	"Breakfast Burrito",
	"Bruschetta",
	"Caesar Salad",
	"Cannoli",
	"Caprese Salad",
	"Carrot Cake",
	"Ceviche",
	"Cheesecake",
	"Cheese Plate",
	"Chicken Curry",
	"Chicken Quesadilla",
	"Chicken Wings",
	"Chocolate Cake",
	"Chocolate Mousse",
	"Churros",
	"Clam Chowder",
	"Club Sandwich",
	"Crab Cakes",
	"Creme Brulee",
	"Croque Madame",
	"Cup Cakes",
	"Deviled Eggs",
	"Donuts",
	"Dumplings",
	"Edamame",
	"Eggs Benedict",
	"Escargots",
	"Falafel",
	"Filet Mignon",
	"Fish and Chips",
	"Foie Gras",
	"French Fries",
	"French Onion Soup",
	"French Toast",
	"Fried Calamari",
	"Fried Rice",
	"Frozen Yogurt",
	"Garlic Bread",
	"Gnocchi",
	"Greek Salad",
	"Grilled Cheese Sandwich",
	"Grilled Salmon",
	"Guacamole",
	"Gyoza",
	"Hamburger",
	"Hot and Sour Soup",
	"Hot Dog",
	"Huevos Rancheros",
	"Hummus",
	"Ice Cream",
	"Lasagna",
	"Lobster Bisque",
	"Lobster Roll Sandwich",
	"Macaroni and Cheese",
	"Macarons",
	"Miso Soup",
	"Mussels",
	"Nachos",
	"Omelette",
	"Onion Rings",
	"Oysters",
	"Pad Thai",
	"Paella",
	"Pancakes",
	"Panna Cotta",
	"Peking Duck",
	"Pho",
	"Pizza",
	"Pork Chop",
	"Poutine",
	"Prime Rib",
	"Pulled Pork Sandwich",
	"Ramen",
	"Ravioli",
	"Red Velvet Cake",
	"Risotto",
	"Samosa",
	"Sashimi",
	"Scallops",
	"Seaweed Salad",
	"Shrimp and Grits",
	"Spaghetti Bolognese",
	"Spaghetti Carbonara",
	"Spring Rolls",
	"Steak",
	"Strawberry Shortcake",
	"Sushi",
	"Tacos",
	"Takoyaki",
	"Tiramisu",
	"Tuna Tartare",
	"Waffles",
}

// foodClassName resolves a class index, falling back to "Unknown Food" for
// out-of-range indices instead of erroring.
func foodClassName(index int) string {
	if index < 0 || index >= len(foodClasses) {
		return unknownFood
	}
	return foodClasses[index]
}
