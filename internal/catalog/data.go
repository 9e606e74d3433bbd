// internal/catalog/data.go
package catalog

// Static catalog data. The storefront ships its catalog compiled in;
// nothing here is mutated after load.

var products = []Product{
	{
		ID:                     "1",
		Name:                   "Paracetamol",
		Composition:            "Paracetamol 500mg",
		Price:                  50,
		OriginalPrice:          60,
		Discount:               17,
		Image:                  "/assets/products/paracetamol.png",
		IsPrescriptionRequired: false,
		Tags:                   []string{"Tablet"},
		Stock:                  5,
		Category:               "Pain Relief",
		Description:            "Effective relief from fever, headache and mild to moderate pain.",
		Dosage:                 "1 tablet every 4-6 hours after food, maximum 4 tablets in 24 hours",
		SideEffects:            []string{"Nausea", "Skin rash (rare)"},
		Usage:                  "Fever and pain relief",
		BestSeller:             true,
		Rating:                 4.5,
		Reviews:                1240,
	},
	{
		ID:                     "2",
		Name:                   "Azithromycin 500",
		Composition:            "Azithromycin 500mg",
		Price:                  118,
		OriginalPrice:          145,
		Discount:               19,
		Image:                  "/assets/products/azithromycin.png",
		IsPrescriptionRequired: true,
		Tags:                   []string{"Tablet", "Antibiotic"},
		Stock:                  12,
		Category:               "Fever",
		Description:            "Broad-spectrum antibiotic for bacterial infections of the chest, throat and ear.",
		Dosage:                 "1 tablet daily for 3-5 days as directed by physician",
		SideEffects:            []string{"Diarrhoea", "Abdominal pain", "Nausea"},
		Usage:                  "Bacterial infection treatment",
		Rating:                 4.2,
		Reviews:                318,
	},
	{
		ID:                     "3",
		Name:                   "Cetirizine Syrup",
		Composition:            "Cetirizine Hydrochloride 5mg/5ml",
		Price:                  65,
		OriginalPrice:          82,
		Discount:               21,
		Image:                  "/assets/products/cetirizine.png",
		IsPrescriptionRequired: false,
		Tags:                   []string{"Syrup", "Antihistamine"},
		Stock:                  24,
		Category:               "Cough & Cold",
		Description:            "Fast relief from sneezing, runny nose and allergic rhinitis.",
		Dosage:                 "5ml once daily at bedtime",
		SideEffects:            []string{"Drowsiness", "Dry mouth"},
		Usage:                  "Allergy and cold relief",
		BestSeller:             true,
		Rating:                 4.4,
		Reviews:                562,
	},
	{
		ID:                     "4",
		Name:                   "Metformin 500",
		Composition:            "Metformin Hydrochloride 500mg",
		Price:                  34,
		OriginalPrice:          42,
		Discount:               19,
		Image:                  "/assets/products/metformin.png",
		IsPrescriptionRequired: true,
		Tags:                   []string{"Tablet"},
		Stock:                  40,
		Category:               "Diabetes",
		Description:            "First-line medication for the management of type 2 diabetes.",
		Dosage:                 "As directed by physician, usually with meals",
		SideEffects:            []string{"Metallic taste", "Stomach upset"},
		Usage:                  "Blood sugar control",
		Rating:                 4.6,
		Reviews:                890,
	},
	{
		ID:                     "5",
		Name:                   "Vitamin C Chewable",
		Composition:            "Ascorbic Acid 500mg",
		Price:                  145,
		OriginalPrice:          199,
		Discount:               27,
		Image:                  "/assets/products/vitamin-c.png",
		IsPrescriptionRequired: false,
		Tags:                   []string{"Tablet", "Supplement"},
		Stock:                  60,
		Category:               "Vitamins",
		Description:            "Daily immunity support with orange flavoured chewable vitamin C.",
		Dosage:                 "1 tablet daily after breakfast",
		SideEffects:            []string{},
		Usage:                  "Immunity booster",
		BestSeller:             true,
		Rating:                 4.7,
		Reviews:                2104,
	},
	{
		ID:                     "6",
		Name:                   "Povidone Iodine Ointment",
		Composition:            "Povidone Iodine 5% w/w",
		Price:                  92,
		OriginalPrice:          110,
		Discount:               16,
		Image:                  "/assets/products/povidone.png",
		IsPrescriptionRequired: false,
		Tags:                   []string{"Cream", "Antiseptic"},
		Stock:                  18,
		Category:               "First Aid",
		Description:            "Antiseptic ointment for cuts, wounds and minor burns.",
		Dosage:                 "Apply thinly over affected area 2-3 times a day",
		SideEffects:            []string{"Local irritation (rare)"},
		Usage:                  "Wound care and antiseptic",
		Rating:                 4.3,
		Reviews:                201,
	},
	{
		ID:                     "7",
		Name:                   "Insulin Glargine",
		Composition:            "Insulin Glargine 100IU/ml",
		Price:                  689,
		OriginalPrice:          750,
		Discount:               8,
		Image:                  "/assets/products/insulin.png",
		IsPrescriptionRequired: true,
		Tags:                   []string{"Injection"},
		Stock:                  0,
		Category:               "Diabetes",
		Description:            "Long-acting insulin analogue for once-daily dosing.",
		Dosage:                 "Subcutaneous injection as directed by physician",
		SideEffects:            []string{"Hypoglycaemia", "Injection site reaction"},
		Usage:                  "Blood sugar control",
		Rating:                 4.8,
		Reviews:                77,
	},
	{
		ID:                     "8",
		Name:                   "Saline Nasal Drops",
		Composition:            "Sodium Chloride 0.65% w/v",
		Price:                  48,
		OriginalPrice:          55,
		Discount:               13,
		Image:                  "/assets/products/nasal-drops.png",
		IsPrescriptionRequired: false,
		Tags:                   []string{"Drops"},
		Stock:                  33,
		Category:               "Cough & Cold",
		Description:            "Gentle saline drops to relieve blocked nose in children and adults.",
		Dosage:                 "2-3 drops in each nostril as required",
		SideEffects:            []string{},
		Usage:                  "Nasal congestion relief",
		Rating:                 4.1,
		Reviews:                149,
	},
	{
		ID:                     "9",
		Name:                   "Aloe Vera Moisturiser",
		Composition:            "Aloe Barbadensis Extract 10%",
		Price:                  210,
		OriginalPrice:          280,
		Discount:               25,
		Image:                  "/assets/products/aloe-moisturiser.png",
		IsPrescriptionRequired: false,
		Tags:                   []string{"Cream"},
		Stock:                  27,
		Category:               "Skincare",
		Description:            "Non-greasy daily moisturiser for dry and sensitive skin.",
		Dosage:                 "Apply on clean skin twice daily",
		SideEffects:            []string{},
		Usage:                  "Skin hydration and care",
		Rating:                 4.5,
		Reviews:                640,
	},
	{
		ID:                     "10",
		Name:                   "Ibuprofen 400",
		Composition:            "Ibuprofen 400mg",
		Price:                  38,
		OriginalPrice:          45,
		Discount:               16,
		Image:                  "/assets/products/ibuprofen.png",
		IsPrescriptionRequired: false,
		Tags:                   []string{"Tablet"},
		Stock:                  52,
		Category:               "Pain Relief",
		Description:            "Anti-inflammatory pain reliever for body ache, toothache and joint pain.",
		Dosage:                 "1 tablet every 6-8 hours after food",
		SideEffects:            []string{"Heartburn", "Stomach upset"},
		Usage:                  "Pain and inflammation relief",
		Rating:                 4.4,
		Reviews:                930,
	},
}

var categories = []Category{
	{ID: "1", Name: "Diabetes", Image: "/assets/sugar-blood-level.png", Description: "Products for diabetes management"},
	{ID: "2", Name: "Fever", Image: "/assets/sick.png", Description: "Medication for fever and temperature control"},
	{ID: "3", Name: "Pain Relief", Image: "/assets/pain.png", Description: "Products for pain management"},
	{ID: "4", Name: "Immunity", Image: "/assets/healthcare.png", Description: "Products to boost your immune system"},
	{ID: "5", Name: "First Aid", Image: "/assets/first-aid-kit.png", Description: "Essential first aid supplies"},
	{ID: "6", Name: "Skincare", Image: "/assets/skincare.png", Description: "Products for skin health and care"},
	{ID: "7", Name: "Vitamins", Image: "/assets/vitamin.png", Description: "Essential vitamins and supplements"},
	{ID: "8", Name: "Cough & Cold", Image: "/assets/cough.png", Description: "Remedies for cough, cold and flu"},
}

var healthConcerns = []HealthConcern{
	{ID: "1", Name: "Diabetes Care", Description: "Monitors, Strips & more", Image: "https://images.unsplash.com/photo-1579684385127-1ef15d508118?w=600&h=300"},
	{ID: "2", Name: "Cardiac Care", Description: "BP Monitors & Supplements", Image: "https://images.unsplash.com/photo-1550831107-1553da8c8464?w=600&h=300"},
	{ID: "3", Name: "Skin & Hair", Description: "Creams, Serums & more", Image: "https://images.unsplash.com/photo-1571781926291-c477ebfd024b?w=600&h=300"},
	{ID: "4", Name: "Vitamins & Supplements", Description: "Daily Nutritional Support", Image: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=600&h=300"},
	{ID: "5", Name: "Respiratory Care", Description: "Inhalers, Nebulizers & more", Image: "https://images.unsplash.com/photo-1584555613497-9ecf9dd06f68?w=600&h=300"},
}

var labTests = []LabTest{
	{
		ID: "1", Name: "Complete Blood Count",
		Description:   "Comprehensive analysis of blood cells",
		Price:         399, OriginalPrice: 599, Discount: 33,
		Image:          "https://images.unsplash.com/photo-1579154341098-e4e158cc7f55?w=600&h=300",
		Category:       "Blood", ReportTime: "12 hours", HomeCollection: true,
		Prerequisites:  "8 hours fasting recommended",
	},
	{
		ID: "2", Name: "Thyroid Profile",
		Description:   "Comprehensive thyroid function assessment",
		Price:         449, OriginalPrice: 699, Discount: 35,
		Image:          "https://images.unsplash.com/photo-1624727828489-a1e03b79bba8?w=600&h=300",
		Category:       "Hormone", ReportTime: "24 hours", HomeCollection: true,
		Prerequisites:  "No special preparation needed",
	},
	{
		ID: "3", Name: "Full Body Checkup",
		Description:   "Comprehensive health assessment",
		Price:         1999, OriginalPrice: 3299, Discount: 40,
		Image:          "https://images.unsplash.com/photo-1581595219315-a187dd40c322?w=600&h=300",
		Category:       "Package", ReportTime: "48 hours", HomeCollection: true,
		Prerequisites:  "10-12 hours overnight fasting required",
	},
	{
		ID: "4", Name: "HbA1c",
		Description:   "Average blood sugar over the last three months",
		Price:         349, OriginalPrice: 499, Discount: 30,
		Image:          "https://images.unsplash.com/photo-1576086213369-97a306d36557?w=600&h=300",
		Category:       "Blood", ReportTime: "12 hours", HomeCollection: true,
		Prerequisites:  "No fasting required",
	},
}

var babyCareProducts = []BabyCareProduct{
	{
		ID: "bc1", Name: "Gentle Baby Shampoo",
		Description: "Tear-free formula for sensitive baby skin",
		Price:       199, OriginalPrice: 249, Discount: 20,
		Image:       "https://images.unsplash.com/photo-1594117782204-e0d2c1a32e60?w=600&h=400",
		AgeGroup:    "0-12 months", Category: "Bath & Skincare",
	},
	{
		ID: "bc2", Name: "Baby Diaper Rash Cream",
		Description: "Soothes and prevents diaper rash",
		Price:       149, OriginalPrice: 199, Discount: 25,
		Image:       "https://images.unsplash.com/photo-1527613426441-4da17471b66d?w=600&h=400",
		AgeGroup:    "0-24 months", Category: "Bath & Skincare",
	},
	{
		ID: "bc3", Name: "Soft Teething Toy",
		Description: "BPA-free silicone toy to soothe sore gums",
		Price:       249, OriginalPrice: 329, Discount: 24,
		Image:       "https://images.unsplash.com/photo-1515488042361-ee00e0ddd4e4?w=600&h=400",
		AgeGroup:    "3-18 months", Category: "Toys & Teethers",
	},
	{
		ID: "bc4", Name: "Baby Massage Oil",
		Description: "Nourishing oil with coconut and almond",
		Price:       179, OriginalPrice: 229, Discount: 22,
		Image:       "https://images.unsplash.com/photo-1544126592-807ade215a0b?w=600&h=400",
		AgeGroup:    "0-36 months", Category: "Bath & Skincare",
	},
}
