package catalog

import (
	domain "github.com/LeonardBuda/forever-zama/internal/entity"
)

// Catalog data from the March 2025 PDF catalog. Prices are Rand cents.
// Section order is fixed and significant: the name index is built in this
// order, so it also decides which entry wins on an exact duplicate.
var sections = []Section{
	{
		Name: "Health & Wellness",
		Groups: []Group{
			{
				Name: "Supplements",
				Products: []domain.Product{
					{Name: "Forever Active Boost", PriceCents: 10122, Description: "Quick energy boost, no calories, carbs, or sugar. ⚡"},
					{Name: "Forever Fast Break", PriceCents: 11157, Description: "Nutrient-packed meal replacement. 🍽️"},
					{Name: "Nature Min", PriceCents: 38100, Description: "Multi-minerals for anemia, arthritis, and bone health. 🦴"},
					{Name: "Absorbent-C", PriceCents: 36811, Description: "Supports immunity, blood pressure, and respiratory health. 🛡️"},
					{Name: "Bee Pollen", PriceCents: 32880, Description: "Immune booster, energy enhancer, supports skin health. 🐝"},
					{Name: "Forever Therm", PriceCents: 60773, Description: "Accelerates metabolism and reduces fatigue. 🔥"},
					{Name: "Forever Lite", PriceCents: 65021, Description: "Supports weight loss, muscle gain, normalizes blood sugar, high in antioxidants. 🥗"},
					{Name: "Lycium Plus", PriceCents: 65296, Description: "Supports vision, diabetes, and liver/kidney health. 👀"},
					{Name: "Aloe Vera Gel", PriceCents: 56146, Description: "Detoxifies, controls diabetes, and boosts immunity. 🌱"},
					{Name: "Royal Jelly", PriceCents: 71107, Description: "Hormone balance, anti-aging, immune support. 👑"},
					{Name: "Aloe Berry Nectar", PriceCents: 56146, Description: "Supports healthy digestive system, period pains, womb problems, constipation, low blood pressure, heart issues. 🍓"},
					{Name: "Forever Garlic-Thyme", PriceCents: 39000, Description: "Boosts immunity, supports heart and respiratory health, natural antibiotic. 🧄"},
					{Name: "Forever ImmuBlend", PriceCents: 49500, Description: "Immune support with vitamins C & D and zinc, full-body formula. 💪"},
					{Name: "Forever Arctic Sea", PriceCents: 65909, Description: "Supports prostate health, cholesterol, blood pressure, cardiovascular system, skin health. 🐟"},
					{Name: "Forever Freedom", PriceCents: 80256, Description: "Promotes joint health for sports, stroke, arthritis, gout, and muscle cramps. 🏃"},
					{Name: "Aloe Blossom Herbal Tea", PriceCents: 37867, Description: "Caffeine-free, relieves stress, insomnia, improves digestion. ☕"},
					{Name: "Bee Propolis", PriceCents: 68740, Description: "Boosts immunity, fights bacteria, viruses, infections, allergies, and skin diseases. 🐝"},
					{Name: "Multi Maca", PriceCents: 56914, Description: "Boosts energy, endurance, supports sexual health, fertility, hormonal balance. 60 tablets. 💊"},
					{Name: "Forever iVision", PriceCents: 68219, Description: "Improves eye circulation, high in vitamins C & A, supports vision, contains bilberry, protects retina. 60 softgels. 👁️"},
					{Name: "Forever Immune Gummy", PriceCents: 78810, Description: "Supports immune system with 10 vitamins and zinc, tropical-flavored, vegan-friendly. 🍬"},
					{Name: "Vitolize for Men", PriceCents: 63964, Description: "Supports fertility, PMS, urinary function, prostate health. 🧑"},
					{Name: "Vitolize for Women", PriceCents: 67705, Description: "Supports fertility, PMS, urinary function. 👩"},
					{Name: "Active Pro-B", PriceCents: 78376, Description: "Promotes healthy digestion, nutrient absorption. 🦠"},
					{Name: "Forever Supergreens", PriceCents: 82095, Description: "Supports natural defenses, metabolism, energy levels. 🥬"},
					{Name: "Forever Focus", PriceCents: 17831, Description: "Enhances focus, concentration, brain energy for students, athletes, professionals. 🧠"},
					{Name: "Aloe Drinks Tripack Aloe Vera Gel", PriceCents: 166958, Description: "Pack of 3 x 1 litre aloe vera gel drinks. 🥤"},
					{Name: "Aloe Drinks Tripack Variety", PriceCents: 166958, Description: "Pack of 1 litre Aloe Vera Gel, Aloe Peaches, Aloe Berry Nectar. 🍹"},
					{Name: "Aloe Drinks Tripack Aloe Berry Nectar", PriceCents: 166958, Description: "Pack of 3 x 1 litre aloe berry nectar. 🍓"},
					{Name: "Forever Calcium", PriceCents: 52110, Description: "Supports bone and teeth health with vitamins C & D. 🦷"},
					{Name: "Cardio Health", PriceCents: 70747, Description: "Supports heart function and blood flow. ❤️"},
					{Name: "Active HA", PriceCents: 71931, Description: "Joint lubrication and arthritis support. 🦵"},
					{Name: "ARGI+", PriceCents: 161274, Description: "Anti-aging, energy, cardiovascular health. 🩺"},
					{Name: "Forever Move", PriceCents: 133254, Description: "Supports joint health, flexibility, cartilage, reduces stiffness. 🏋️"},
					{Name: "Forever Aloe Peaches", PriceCents: 54730, Description: "Supports digestive health and immunity. 🍑"},
					{Name: "Forever Daily", PriceCents: 42643, Description: "Supports general health with vitamins and minerals. 💊"},
				},
			},
		},
	},
	{
		Name: "Skincare & Personal Care",
		Groups: []Group{
			{
				Name: "Products",
				Products: []domain.Product{
					{Name: "Aloe & Avocado Soap", PriceCents: 14327, Description: "Gentle cleanser for all skin types. 🧼"},
					{Name: "Aloe Moisturizing Lotion", PriceCents: 32056, Description: "Hydrates with collagen and elastin, maintains skin’s pH balance. 💧"},
					{Name: "Aloe Ever-Shield", PriceCents: 15447, Description: "Aluminium-free deodorant, long-lasting, gentle, no stains. 🛡️"},
					{Name: "Aloe Propolis Crème", PriceCents: 42622, Description: "Treats acne, eczema, burns. 🩹"},
					{Name: "Aloe Jojoba Shampoo & Conditioning Rinse", PriceCents: 49511, Description: "Strengthens hair, relieves dandruff. 🧴"},
					{Name: "Aloe Vera Gelly", PriceCents: 32056, Description: "Soothes skin irritations, deep hydration, speeds healing. 🌿"},
					{Name: "Aloe Heat Lotion", PriceCents: 32000, Description: "Soothes muscle and joint pain, ideal for massages. 💆"},
					{Name: "Forever R3 Factor", PriceCents: 68740, Description: "Retains skin moisture, restores resilience with aloe vera, collagen, vitamins A & E. 🌟"},
					{Name: "Replenishing Skin Oil", PriceCents: 64420, Description: "Nourishes skin, combats environmental stressors, suitable for dry/sensitive skin. 🛢️"},
					{Name: "Aloe Scrub", PriceCents: 33800, Description: "Natural exfoliator, prepares skin for moisturization, promotes silky skin. ✨"},
					{Name: "Aloe Sunscreen", PriceCents: 44249, Description: "SPF 30, natural zinc oxide, water-resistant, soothes with aloe and vitamin E. ☀️"},
					{Name: "Aloe Body Lotion", PriceCents: 48454, Description: "Promotes hydration, supports skin’s moisture barrier, non-greasy. 💦"},
					{Name: "Forever Marine Collagen", PriceCents: 178000, Description: "Promotes youthful skin, healthier hair, stronger nails, high in vitamins and zinc. 💅"},
					{Name: "Smoothing Exfoliator", PriceCents: 38903, Description: "Evens skin tone, brightens complexion, reduces dark spots. 🌞"},
					{Name: "Balancing Toner", PriceCents: 46341, Description: "Balances skin moisture for combination skin. ⚖️"},
					{Name: "Awakening Eye Cream", PriceCents: 38903, Description: "Reduces puffiness, dark circles, wrinkles, rejuvenates eyes. 👁️"},
					{Name: "Aloe Activator", PriceCents: 34127, Description: "Moisturizes, cleanses, soothes, used with Forever Mask for face mask. 😷"},
					{Name: "Hydrating Serum", PriceCents: 74000, Description: "Boosts hydration with hyaluronic acid, reduces fine lines, protects skin. 💧"},
					{Name: "Infinite Skin Care Kit", PriceCents: 344080, Description: "Includes Hydrating Cleanser (R51.18), Firming Serum (R51.96), Firming Complex (R51.96), Restoring Crème (R1066.07). 🎁"},
					{Name: "Aloe Lips", PriceCents: 7480, Description: "Moisturizes lips, treats dry lips, insect bites, small cuts. 💋"},
					{Name: "Forever Bright Toothgel", PriceCents: 16504, Description: "Cleans and whitens teeth, fights plaque, fluoride-free, minty taste. 🦷"},
					{Name: "Gentleman's Pride", PriceCents: 32056, Description: "Moisturizing aftershave, alcohol-free, masculine scent. 🧔"},
					{Name: "Deodorant Sprays", PriceCents: 13826, Description: "Aloe-enriched, high fragrance, paraben-free, up to 1020 sprays. 🌬️"},
					{Name: "MSM Gel", PriceCents: 49743, Description: "Soothes joints, muscles, non-staining. 🦵"},
					{Name: "Aloe Liquid Soap", PriceCents: 39938, Description: "Gentle cleanser, retains skin moisture, promotes hydration. 🧼"},
					{Name: "Aloe Body Wash", PriceCents: 47926, Description: "Gentle cleanser, retains skin moisture, promotes hydration. 🚿"},
					{Name: "Sonya Precision Liquid Eyeliner", PriceCents: 38417, Description: "Rich black color, defined brush for fine lines, natural wax for thickness. 🖌️"},
					{Name: "Sonya Daily Skincare System", PriceCents: 181700, Description: "Balances moisture for combination skin, aloe-based, cruelty-free. 🌸"},
					{Name: "Aloe First", PriceCents: 42263, Description: "Soothes skin irritations, promotes healing. 🩹"},
				},
			},
		},
	},
	{
		Name: "Weight Management",
		Groups: []Group{
			{
				Name: "Products",
				Products: []domain.Product{
					{Name: "Garcinia Plus", PriceCents: 65296, Description: "Reduces appetite, stabilizes blood sugar. 🍎"},
					{Name: "Forever Lean", PriceCents: 88984, Description: "Blocks calorie absorption for weight control. ⚖️"},
					{Name: "C9 Pack", PriceCents: 260210, Description: "9-day detox and weight loss program, available in Vanilla or Chocolate. 🥗"},
					{Name: "F15", PriceCents: 315637, Description: "15-day natural weight loss program. 🏃"},
					{Name: "Forever Fibre", PriceCents: 61281, Description: "Improves digestion, helps feel fuller, slows nutrient absorption. 🌾"},
					{Name: "Forever Lite", PriceCents: 65021, Description: "Supports weight loss, muscle gain, normalizes blood sugar, high in antioxidants. 💪"},
				},
			},
		},
	},
	{
		Name: "Kids & Family",
		Groups: []Group{
			{
				Name: "Products",
				Products: []domain.Product{
					{Name: "Kids Chewables", PriceCents: 31972, Description: "Vitamins and minerals for children’s health. 🍬"},
					{Name: "Happy Kids", PriceCents: 31979, Description: "General health support for children. 120 tablets. 👶"},
					{Name: "Fields of Greens", PriceCents: 27431, Description: "Dietary supplement with barley grass and alfalfa. 80 tablets. 🥬"},
				},
			},
		},
	},
	{
		Name: "Combos",
		Groups: []Group{
			{
				Name: "Products",
				Products: []domain.Product{
					{Name: "Asthma Combo", PriceCents: 0, Description: "Combination pack for asthma support. 🫁"},
					{Name: "Diabetes Combo", PriceCents: 0, Description: "Combination pack for diabetes management. 💉"},
					{Name: "Stroke Support Combo", PriceCents: 0, Description: "Combination pack for stroke recovery support. 🩺"},
					{Name: "Stroke Recovery Pack", PriceCents: 0, Description: "Comprehensive pack for stroke recovery. 🩹"},
					{Name: "Weight Gain Muscle Gain Combo", PriceCents: 0, Description: "Combination pack for weight and muscle gain. 💪"},
					{Name: "Health 4 Men Combo", PriceCents: 0, Description: "Health support combo for men. 🧑"},
					{Name: "Male Performance Combo", PriceCents: 0, Description: "Performance enhancement combo for men. 💪"},
					{Name: "Mvusa Nduku Combo", PriceCents: 0, Description: "Traditional wellness combo. 🌿"},
					{Name: "Gentlemen's Combo", PriceCents: 0, Description: "Gentlemen’s wellness pack. 🧔"},
				},
			},
		},
	},
}

// Join packages are a flat list, not a section with subgroups.
var joinOptions = []domain.Product{
	{Name: "Minimum Purchase", PriceCents: 158400, Type: "Preferred Customer", Description: "Starter pack for Preferred Customers (0.25cc). 🎉"},
	{Name: "Quarter Stock", PriceCents: 299800, Type: "Preferred Customer", Description: "Preferred Customer pack (0.5cc). 🌟"},
	{Name: "Half Stock", PriceCents: 512500, Type: "Preferred Customer", Description: "Preferred Customer pack (1cc). 🚀"},
	{Name: "Start Your Journey", PriceCents: 711000, Type: "Full Membership", Description: "Full membership starter pack (2cc). 💼"},
	{Name: "Full Stock", PriceCents: 1015000, Type: "Full Membership", Description: "Full membership with comprehensive inventory (4cc). 🎁"},
}
