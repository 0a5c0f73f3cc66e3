// AngelaMos | 2026
// seed.go

package product

import "github.com/shopspring/decimal"

// SeedCatalog returns the launch catalog used by cmd/seed. Prices are
// parsed from string literals so they round-trip exactly.
func SeedCatalog() []Product {
	return []Product{
		{
			ID:          "kb-1",
			Name:        "Mechanical RGB Keyboard",
			Price:       price("149.99"),
			Image:       "/images/keyboard.jpg",
			Rating:      5,
			Category:    CategoryKeyboard,
			Description: "Premium mechanical keyboard with customizable RGB lighting and Cherry MX switches",
			Features:    Features{"Cherry MX Red Switches", "Per-key RGB", "USB-C Connection", "N-key Rollover"},
			InStock:     true,
			Stock:       50,
		},
		{
			ID:          "kb-2",
			Name:        "Wireless Gaming Keyboard",
			Price:       price("129.99"),
			Image:       "/images/keyboard.jpg",
			Rating:      4,
			Category:    CategoryKeyboard,
			Description: "Compact wireless mechanical keyboard with low-latency connection",
			Features:    Features{"Wireless 2.4GHz", "Hot-swappable switches", "Aluminum frame", "40-hour battery"},
			InStock:     true,
			Stock:       35,
		},
		{
			ID:          "kb-3",
			Name:        "TKL Mechanical Keyboard",
			Price:       price("119.99"),
			Image:       "/images/keyboard.jpg",
			Rating:      5,
			Category:    CategoryKeyboard,
			Description: "Tenkeyless design perfect for competitive gaming",
			Features:    Features{"Compact TKL layout", "Doubleshot PBT keycaps", "Detachable cable", "Programmable keys"},
			InStock:     true,
			Stock:       40,
		},
		{
			ID:          "kb-4",
			Name:        "RGB Mechanical Keyboard Pro",
			Price:       price("179.99"),
			Image:       "/images/keyboard.jpg",
			Rating:      5,
			Category:    CategoryKeyboard,
			Description: "Full-size mechanical keyboard with premium build quality",
			Features:    Features{"Aircraft-grade aluminum", "Hot-swap sockets", "Dynamic RGB effects", "Magnetic wrist rest"},
			InStock:     true,
			Stock:       25,
		},
		{
			ID:          "kb-5",
			Name:        "Mini Keyboard 60%",
			Price:       price("99.99"),
			Image:       "/images/keyboard.jpg",
			Rating:      4,
			Category:    CategoryKeyboard,
			Description: "Ultra-compact 60% layout for minimalist setups",
			Features:    Features{"60% compact design", "Bluetooth 5.0", "Rechargeable battery", "Custom keymaps"},
			InStock:     true,
			Stock:       60,
		},
		{
			ID:          "ms-1",
			Name:        "Pro Gaming Mouse",
			Price:       price("89.99"),
			Image:       "/images/mouse.jpg",
			Rating:      5,
			Category:    CategoryMouse,
			Description: "Professional gaming mouse with high-precision sensor",
			Features:    Features{"20,000 DPI sensor", "8 programmable buttons", "RGB lighting", "Ergonomic design"},
			InStock:     true,
			Stock:       100,
		},
		{
			ID:          "ms-2",
			Name:        "Wireless Gaming Mouse",
			Price:       price("69.99"),
			Image:       "/images/mouse.jpg",
			Rating:      4,
			Category:    CategoryMouse,
			Description: "Lightweight wireless mouse with long battery life",
			Features:    Features{"Wireless 2.4GHz", "16,000 DPI", "70-hour battery", "Lightweight 60g"},
			InStock:     true,
			Stock:       80,
		},
		{
			ID:          "ms-3",
			Name:        "Ultra-Light Gaming Mouse",
			Price:       price("79.99"),
			Image:       "/images/mouse.jpg",
			Rating:      5,
			Category:    CategoryMouse,
			Description: "Featherweight mouse for competitive gaming",
			Features:    Features{"Honeycomb shell", "48g weight", "PAW3370 sensor", "PTFE feet"},
			InStock:     true,
			Stock:       70,
		},
		{
			ID:          "ms-4",
			Name:        "Ergonomic Wireless Mouse",
			Price:       price("49.99"),
			Image:       "/images/mouse.jpg",
			Rating:      4,
			Category:    CategoryMouse,
			Description: "Comfortable mouse for all-day use",
			Features:    Features{"Ergonomic shape", "Silent clicks", "Bluetooth", "Precision scroll"},
			InStock:     true,
			Stock:       90,
		},
		{
			ID:          "ms-5",
			Name:        "RGB Gaming Mouse Pro",
			Price:       price("99.99"),
			Image:       "/images/mouse.jpg",
			Rating:      5,
			Category:    CategoryMouse,
			Description: "Premium RGB gaming mouse with advanced features",
			Features:    Features{"25,000 DPI", "10 buttons", "Customizable RGB", "On-board memory"},
			InStock:     true,
			Stock:       55,
		},
		{
			ID:          "hs-1",
			Name:        "Wireless Gaming Headset",
			Price:       price("199.99"),
			Image:       "/images/headset.jpg",
			Rating:      4,
			Category:    CategoryHeadset,
			Description: "Premium wireless headset with 7.1 surround sound",
			Features:    Features{"7.1 Surround sound", "50mm drivers", "Wireless 2.4GHz", "20-hour battery"},
			InStock:     true,
			Stock:       45,
		},
		{
			ID:          "hs-2",
			Name:        "Premium Gaming Headset",
			Price:       price("299.99"),
			Image:       "/images/headset.jpg",
			Rating:      5,
			Category:    CategoryHeadset,
			Description: "Flagship gaming headset with studio quality",
			Features:    Features{"Hi-Res audio certified", "Planar magnetic drivers", "Wireless + wired", "Noise cancellation"},
			InStock:     true,
			Stock:       20,
		},
		{
			ID:          "hs-3",
			Name:        "Budget Gaming Headset",
			Price:       price("49.99"),
			Image:       "/images/headset.jpg",
			Rating:      3,
			Category:    CategoryHeadset,
			Description: "Affordable gaming headset with good sound",
			Features:    Features{"40mm drivers", "Wired connection", "LED lighting", "Padded ear cups"},
			InStock:     true,
			Stock:       100,
		},
		{
			ID:          "hs-4",
			Name:        "Pro Gaming Headset",
			Price:       price("179.99"),
			Image:       "/images/headset.jpg",
			Rating:      5,
			Category:    CategoryHeadset,
			Description: "Professional-grade gaming headset",
			Features:    Features{"Studio-quality sound", "Detachable mic", "Aluminum frame", "Memory foam"},
			InStock:     true,
			Stock:       35,
		},
		{
			ID:          "hs-5",
			Name:        "Wireless Headset RGB",
			Price:       price("159.99"),
			Image:       "/images/headset.jpg",
			Rating:      4,
			Category:    CategoryHeadset,
			Description: "RGB wireless headset with great battery",
			Features:    Features{"RGB lighting", "30-hour battery", "USB-C charging", "Discord certified"},
			InStock:     true,
			Stock:       40,
		},
		{
			ID:          "mn-1",
			Name:        "4K Gaming Monitor 27\"",
			Price:       price("499.99"),
			Image:       "/images/monitor.jpg",
			Rating:      5,
			Category:    CategoryMonitor,
			Description: "Ultra HD 4K gaming monitor with HDR",
			Features:    Features{"4K UHD 3840x2160", "144Hz refresh", "1ms response", "HDR400"},
			InStock:     true,
			Stock:       30,
		},
		{
			ID:          "mn-2",
			Name:        "Ultrawide Curved Monitor",
			Price:       price("699.99"),
			Image:       "/images/monitor.jpg",
			Rating:      5,
			Category:    CategoryMonitor,
			Description: "34-inch curved ultrawide for immersive gaming",
			Features:    Features{"3440x1440 resolution", "100Hz refresh", "1800R curvature", "AMD FreeSync"},
			InStock:     true,
			Stock:       20,
		},
		{
			ID:          "mn-3",
			Name:        "240Hz Gaming Monitor",
			Price:       price("449.99"),
			Image:       "/images/monitor.jpg",
			Rating:      5,
			Category:    CategoryMonitor,
			Description: "Ultra-fast 240Hz for competitive gaming",
			Features:    Features{"1920x1080 FHD", "240Hz refresh", "0.5ms response", "G-Sync Compatible"},
			InStock:     true,
			Stock:       25,
		},
		{
			ID:          "mn-4",
			Name:        "Budget Gaming Monitor",
			Price:       price("179.99"),
			Image:       "/images/monitor.jpg",
			Rating:      4,
			Category:    CategoryMonitor,
			Description: "Affordable 24-inch gaming monitor",
			Features:    Features{"1920x1080 FHD", "75Hz refresh", "5ms response", "FreeSync"},
			InStock:     true,
			Stock:       50,
		},
		{
			ID:          "mn-5",
			Name:        "Premium 4K Monitor",
			Price:       price("899.99"),
			Image:       "/images/monitor.jpg",
			Rating:      5,
			Category:    CategoryMonitor,
			Description: "Top-tier 4K monitor for gaming and productivity",
			Features:    Features{"4K UHD", "165Hz refresh", "0.5ms response", "HDR600", "USB-C"},
			InStock:     true,
			Stock:       15,
		},
		{
			ID:          "ct-1",
			Name:        "Wireless Pro Controller",
			Price:       price("69.99"),
			Image:       "/images/controller.jpg",
			Rating:      5,
			Category:    CategoryController,
			Description: "Professional wireless controller",
			Features:    Features{"Wireless connectivity", "Hall effect sticks", "Rechargeable battery", "Customizable buttons"},
			InStock:     true,
			Stock:       60,
		},
		{
			ID:          "ct-2",
			Name:        "Elite Gaming Controller",
			Price:       price("179.99"),
			Image:       "/images/controller.jpg",
			Rating:      5,
			Category:    CategoryController,
			Description: "Premium controller with swappable parts",
			Features:    Features{"Adjustable tension", "Paddles", "Trigger stops", "Carry case"},
			InStock:     true,
			Stock:       25,
		},
		{
			ID:          "ct-3",
			Name:        "Budget Controller",
			Price:       price("29.99"),
			Image:       "/images/controller.jpg",
			Rating:      3,
			Category:    CategoryController,
			Description: "Affordable wired controller",
			Features:    Features{"Wired USB", "Standard layout", "LED indicator", "Plug and play"},
			InStock:     true,
			Stock:       100,
		},
		{
			ID:          "ct-4",
			Name:        "Fight Stick Pro",
			Price:       price("249.99"),
			Image:       "/images/controller.jpg",
			Rating:      5,
			Category:    CategoryController,
			Description: "Arcade-style fight stick",
			Features:    Features{"Sanwa buttons", "Tournament legal", "Heavy base", "Customizable art"},
			InStock:     true,
			Stock:       15,
		},
		{
			ID:          "ct-5",
			Name:        "Racing Wheel",
			Price:       price("399.99"),
			Image:       "/images/controller.jpg",
			Rating:      5,
			Category:    CategoryController,
			Description: "Force feedback racing wheel",
			Features:    Features{"900° rotation", "Force feedback", "Pedals included", "Compatible with PC/Console"},
			InStock:     true,
			Stock:       10,
		},
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
