package catalog

// defaultProducts is the embedded catalog used when no products file is
// available, mirroring the demo's shipped inventory.
var defaultProducts = []Product{
	{
		ID:          1,
		Name:        "Wireless Headphones",
		Price:       2999,
		Description: "High-quality wireless headphones with noise cancellation feature. Perfect for music lovers and professionals who demand crystal clear audio quality.",
		Image:       "Wireless Headphones Image",
		Category:    "Electronics",
		InStock:     true,
		SKU:         "WH001",
		Rating:      4.5,
		Reviews:     128,
	},
	{
		ID:          2,
		Name:        "Smart Watch",
		Price:       8999,
		Description: "Feature-rich smartwatch with health monitoring, GPS tracking, and smartphone connectivity. Track your fitness goals and stay connected on the go.",
		Image:       "Smart Watch Image",
		Category:    "Electronics",
		InStock:     true,
		SKU:         "SW002",
		Rating:      4.3,
		Reviews:     89,
	},
	{
		ID:          3,
		Name:        "Laptop Stand",
		Price:       1499,
		Description: "Ergonomic laptop stand for better posture and improved workspace organization. Made from premium aluminum with adjustable height settings.",
		Image:       "Laptop Stand Image",
		Category:    "Accessories",
		InStock:     true,
		SKU:         "LS003",
		Rating:      4.7,
		Reviews:     156,
	},
	{
		ID:          4,
		Name:        "USB-C Hub",
		Price:       2499,
		Description: "Multi-port USB-C hub with fast charging capability and multiple connectivity options. Expand your laptop's connectivity with ease.",
		Image:       "USB-C Hub Image",
		Category:    "Electronics",
		InStock:     true,
		SKU:         "UH004",
		Rating:      4.4,
		Reviews:     73,
	},
	{
		ID:          5,
		Name:        "Bluetooth Speaker",
		Price:       3999,
		Description: "Portable Bluetooth speaker with rich bass and crystal clear sound quality. Waterproof design perfect for outdoor adventures.",
		Image:       "Bluetooth Speaker Image",
		Category:    "Electronics",
		InStock:     true,
		SKU:         "BS005",
		Rating:      4.6,
		Reviews:     204,
	},
	{
		ID:          6,
		Name:        "Phone Case",
		Price:       799,
		Description: "Protective phone case with elegant design and superior drop protection. Available in multiple colors to match your style.",
		Image:       "Phone Case Image",
		Category:    "Accessories",
		InStock:     true,
		SKU:         "PC006",
		Rating:      4.2,
		Reviews:     92,
	},
	{
		ID:          7,
		Name:        "Wireless Mouse",
		Price:       1299,
		Description: "Ergonomic wireless mouse with precision tracking and long battery life. Perfect for work and gaming applications.",
		Image:       "Wireless Mouse Image",
		Category:    "Electronics",
		InStock:     true,
		SKU:         "WM007",
		Rating:      4.3,
		Reviews:     67,
	},
	{
		ID:          8,
		Name:        "Power Bank",
		Price:       1999,
		Description: "High-capacity power bank with fast charging support. Keep your devices powered throughout the day with 20000mAh capacity.",
		Image:       "Power Bank Image",
		Category:    "Electronics",
		InStock:     true,
		SKU:         "PB008",
		Rating:      4.5,
		Reviews:     143,
	},
	{
		ID:          9,
		Name:        "Desk Organizer",
		Price:       899,
		Description: "Wooden desk organizer to keep your workspace tidy and organized. Multiple compartments for pens, papers, and accessories.",
		Image:       "Desk Organizer Image",
		Category:    "Accessories",
		InStock:     true,
		SKU:         "DO009",
		Rating:      4.1,
		Reviews:     45,
	},
	{
		ID:          10,
		Name:        "LED Desk Lamp",
		Price:       2299,
		Description: "Adjustable LED desk lamp with multiple brightness levels and color temperatures. Perfect for reading and working late hours.",
		Image:       "LED Desk Lamp Image",
		Category:    "Accessories",
		InStock:     true,
		SKU:         "DL010",
		Rating:      4.4,
		Reviews:     78,
	},
	{
		ID:          11,
		Name:        "Wireless Earbuds",
		Price:       4999,
		Description: "True wireless earbuds with active noise cancellation and premium sound quality. Comfortable fit for all-day listening.",
		Image:       "Wireless Earbuds Image",
		Category:    "Electronics",
		InStock:     true,
		SKU:         "WE011",
		Rating:      4.7,
		Reviews:     189,
	},
	{
		ID:          12,
		Name:        "Keyboard Cover",
		Price:       599,
		Description: "Silicone keyboard cover to protect your laptop keyboard from dust and spills. Ultra-thin design maintains typing comfort.",
		Image:       "Keyboard Cover Image",
		Category:    "Accessories",
		InStock:     true,
		SKU:         "KC012",
		Rating:      4.0,
		Reviews:     34,
	},
}
