package seed

// Reference data matching the production seeding scripts.

var cropNames = []string{
	// Cereals
	"Wheat", "Rice (Basmati)", "Rice (Common)", "Maize", "Jowar", "Bajra", "Ragi",
	// Pulses
	"Bengal Gram (Chana)", "Red Gram (Tur)", "Green Gram (Moong)", "Black Gram (Urad)", "Lentil (Masur)",
	// Oilseeds
	"Groundnut", "Mustard", "Soybean", "Sunflower", "Sesame",
	// Vegetables
	"Tomato", "Onion", "Potato", "Brinjal", "Cabbage", "Cauliflower", "Okra", "Spinach", "Carrot", "Green Chilli", "Ginger", "Garlic",
	// Fruits
	"Apple", "Banana", "Mango", "Orange", "Grapes", "Papaya", "Pomegranate",
	// Commercial
	"Sugarcane", "Cotton", "Jute", "Coconut",
	// Spices
	"Turmeric", "Coriander", "Cumin", "Black Pepper",
}

type marketSeed struct {
	Name     string
	Location string
	Lat      float64
	Lng      float64
	Risk     string
}

var marketSeeds = []marketSeed{
	{"Azadpur Mandi", "Delhi", 28.7041, 77.1025, "Low"},
	{"Vashi Market", "Mumbai", 19.0760, 72.8777, "Medium"},
	{"Koyambedu Market", "Chennai", 13.0827, 80.2707, "Low"},
	{"Yeshwanthpur", "Bangalore", 13.0206, 77.5485, "Low"},
	{"Bowenpally", "Hyderabad", 17.4764, 78.4716, "Low"},
	{"Ghazipur", "Delhi", 28.6256, 77.3323, "High"},
	{"Gultekdi", "Pune", 18.4890, 73.8665, "Low"},
	{"Keshopur", "Delhi", 28.6430, 77.0870, "Medium"},
	{"Manikpool", "Kolkata", 22.5726, 88.3639, "High"},
}
