// internal/domain/blog/data.go
package blog

var categories = []string{
	"All",
	"Medication Safety",
	"Wellness",
	"Chronic Care",
	"Nutrition",
	"Seasonal Health",
}

var posts = []Post{
	{
		ID:          "1",
		Title:       "Why You Should Always Finish Your Antibiotic Course",
		Excerpt:     "Stopping antibiotics early can breed resistant bacteria. Here is what actually happens when you skip the last few doses.",
		Content:     "Antibiotics work by keeping drug levels in your blood high enough to kill bacteria faster than they multiply. When you stop early, the hardiest bacteria survive and pass on their resistance. Always complete the prescribed course, even if you feel better after two days, and never reuse leftover antibiotics for a new illness without consulting a doctor.",
		Author:      "Dr. Meera Nair",
		PublishDate: "2024-11-18",
		Category:    "Medication Safety",
		Image:       "/images/blog/antibiotics.jpg",
		ReadTime:    "4 min read",
		Tags:        []string{"antibiotics", "prescriptions", "resistance"},
	},
	{
		ID:          "2",
		Title:       "Vitamin D Deficiency: The Indoor Epidemic",
		Excerpt:     "Most urban Indians are vitamin D deficient without knowing it. Learn the symptoms and how supplementation helps.",
		Content:     "Vitamin D is synthesised in the skin under sunlight, which makes office workers and apartment dwellers especially prone to deficiency. Fatigue, bone pain and frequent infections are common signs. A simple blood test confirms levels, and weekly supplementation under medical guidance restores them safely within a few months.",
		Author:      "Dr. Arjun Pillai",
		PublishDate: "2024-10-02",
		Category:    "Nutrition",
		Image:       "/images/blog/vitamin-d.jpg",
		ReadTime:    "5 min read",
		Tags:        []string{"vitamins", "supplements", "deficiency"},
	},
	{
		ID:          "3",
		Title:       "Managing Diabetes: Beyond the Glucometer",
		Excerpt:     "Blood sugar readings are only one part of diabetes care. Diet timing, foot care and regular screening matter just as much.",
		Content:     "Good diabetes management combines medication adherence with lifestyle routines. Eat meals at consistent times, inspect your feet daily for cuts that heal slowly, and schedule an HbA1c test every three months. Store insulin in the refrigerator door, never the freezer, and rotate injection sites to avoid lumps under the skin.",
		Author:      "Dr. Meera Nair",
		PublishDate: "2024-09-14",
		Category:    "Chronic Care",
		Image:       "/images/blog/diabetes.jpg",
		ReadTime:    "6 min read",
		Tags:        []string{"diabetes", "insulin", "lifestyle"},
	},
	{
		ID:          "4",
		Title:       "Monsoon Illnesses and How to Stay Ahead of Them",
		Excerpt:     "Dengue, typhoid and fungal infections spike every monsoon. A short checklist to keep your family protected.",
		Content:     "Stagnant water and humidity make the monsoon India's busiest season for infections. Empty coolers and plant trays weekly, drink boiled or filtered water, and keep antifungal powder handy for skin folds. Fever lasting more than two days deserves a blood test rather than self-medication with leftover tablets.",
		Author:      "Dr. Kavya Shetty",
		PublishDate: "2024-07-21",
		Category:    "Seasonal Health",
		Image:       "/images/blog/monsoon.jpg",
		ReadTime:    "4 min read",
		Tags:        []string{"monsoon", "fever", "prevention"},
	},
	{
		ID:          "5",
		Title:       "Reading a Medicine Label Like a Pharmacist",
		Excerpt:     "Expiry dates, storage notes and salt names hide in plain sight on every strip. Here is how to decode them.",
		Content:     "The generic salt name printed under the brand name tells you what the medicine actually is, which helps you avoid doubling up on the same drug sold under two brands. Check the expiry month, store strips away from bathroom humidity, and note whether the label says before or after food. When in doubt, ask your pharmacist rather than the internet.",
		Author:      "Rahul Menon",
		PublishDate: "2024-06-05",
		Category:    "Medication Safety",
		Image:       "/images/blog/labels.jpg",
		ReadTime:    "3 min read",
		Tags:        []string{"labels", "storage", "generic medicines"},
	},
	{
		ID:          "6",
		Title:       "Small Habits, Better Sleep",
		Excerpt:     "You do not need supplements to fix most sleep problems. Start with light, caffeine and a fixed wake time.",
		Content:     "Sleep quality responds quickly to routine. Fix your wake time first, get ten minutes of morning daylight, and stop caffeine after 2 pm. Keep screens out of the last half hour before bed. If insomnia persists beyond a month despite these changes, talk to a doctor before reaching for over-the-counter sleep aids.",
		Author:      "Dr. Arjun Pillai",
		PublishDate: "2024-05-12",
		Category:    "Wellness",
		Image:       "/images/blog/sleep.jpg",
		ReadTime:    "4 min read",
		Tags:        []string{"sleep", "habits", "wellness"},
	},
}
