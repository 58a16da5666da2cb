package catalog

import "github.com/Mohisvst29/moal/entity"

// Bundled baseline catalog. Served whenever the remote catalog is
// unreachable, misconfigured or empty, so the menu never renders blank.
// Treat as read-only.

const (
	imgHotCoffee = "https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg?auto=compress&cs=tinysrgb&w=400"
	imgEspresso  = "https://images.pexels.com/photos/312418/pexels-photo-312418.jpeg?auto=compress&cs=tinysrgb&w=400"
	imgLatte     = "https://images.pexels.com/photos/324028/pexels-photo-324028.jpeg?auto=compress&cs=tinysrgb&w=400"
	imgTea       = "https://images.pexels.com/photos/1638280/pexels-photo-1638280.jpeg?auto=compress&cs=tinysrgb&w=400"
	imgJuice     = "https://images.pexels.com/photos/96974/pexels-photo-96974.jpeg?auto=compress&cs=tinysrgb&w=400"
	imgPizza     = "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg?auto=compress&cs=tinysrgb&w=400"
	imgSandwich  = "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=400"
	imgDessert   = "https://images.pexels.com/photos/230325/pexels-photo-230325.jpeg?auto=compress&cs=tinysrgb&w=400"
)

var teapotSizes = []entity.MenuItemSize{
	{Size: "كاسة واحدة", Price: 8},
	{Size: "براد صغير (2-3 أكواب)", Price: 14},
	{Size: "براد وسط (4-5 أكواب)", Price: 18},
	{Size: "براد كبير (6-8 أكواب)", Price: 25},
}

var fallbackSections = []entity.MenuSection{
	{ID: "section-hot-coffee", Title: "القهوة الساخنة", Icon: "☕", OrderIndex: 1},
	{ID: "section-cold-coffee", Title: "القهوة الباردة", Icon: "🧊", OrderIndex: 2},
	{ID: "section-tea", Title: "الشاي", Icon: "🍵", OrderIndex: 3},
	{ID: "section-juices", Title: "العصيرات الطبيعية", Icon: "🍹", OrderIndex: 4},
	{ID: "section-pizza", Title: "البيتزا", Icon: "🍕", OrderIndex: 5},
	{ID: "section-sandwiches", Title: "الساندوتش والبرجر", Icon: "🥪", OrderIndex: 6},
	{ID: "section-desserts", Title: "الحلى", Icon: "🍰", OrderIndex: 7},
	{ID: "section-shisha", Title: "الشيشة", Icon: "💨", OrderIndex: 8},
}

var fallbackItems = []entity.MenuItem{
	// القهوة الساخنة
	{ID: "item-1", SectionID: "section-hot-coffee", Name: "قهوة عربي", Price: 10, Calories: 5, Image: imgHotCoffee, Description: "قهوة عربية تقليدية", Available: true, OrderIndex: 1},
	{ID: "item-2", SectionID: "section-hot-coffee", Name: "قهوة تركي", Price: 10, Calories: 8, Image: imgTea, Description: "قهوة تركية أصيلة", Available: true, OrderIndex: 2},
	{ID: "item-3", SectionID: "section-hot-coffee", Name: "اسبريسو", Price: 12, Calories: 3, Image: imgEspresso, Description: "قهوة إيطالية كلاسيكية", Available: true, OrderIndex: 3},
	{ID: "item-6", SectionID: "section-hot-coffee", Name: "أمريكانو", Price: 13, Calories: 5, Image: imgHotCoffee, Description: "قهوة أمريكية كلاسيكية", Available: true, OrderIndex: 4},
	{ID: "item-9", SectionID: "section-hot-coffee", Name: "فلات وايت", Price: 15, Calories: 120, Image: imgHotCoffee, Description: "قهوة أسترالية بالحليب المخملي", Available: true, OrderIndex: 5},
	{ID: "item-10", SectionID: "section-hot-coffee", Name: "لاتيه", Price: 16, Calories: 150, Popular: true, Image: imgLatte, Description: "قهوة بالحليب الناعم", Available: true, OrderIndex: 6},
	{ID: "item-11", SectionID: "section-hot-coffee", Name: "كابتشينو", Price: 16, Calories: 80, Popular: true, Image: imgEspresso, Description: "قهوة بالحليب المرغي", Available: true, OrderIndex: 7},
	{ID: "item-15", SectionID: "section-hot-coffee", Name: "V60", Price: 19, Calories: 5, Image: imgHotCoffee, Description: "قهوة مقطرة بطريقة V60", Available: true, OrderIndex: 8},

	// القهوة الباردة
	{ID: "item-16", SectionID: "section-cold-coffee", Name: "قهوة اليوم باردة", Price: 12, Calories: 5, Image: imgHotCoffee, Description: "قهوة اليوم مثلجة ومنعشة", Available: true, OrderIndex: 1},
	{ID: "item-17", SectionID: "section-cold-coffee", Name: "آيس أمريكانو", Price: 14, Calories: 5, Image: imgEspresso, Description: "أمريكانو مثلج منعش", Available: true, OrderIndex: 2},
	{ID: "item-18", SectionID: "section-cold-coffee", Name: "آيس لاتيه", Price: 17, Calories: 160, Image: imgLatte, Description: "لاتيه مثلج بالحليب البارد", Available: true, OrderIndex: 3},
	{ID: "item-20", SectionID: "section-cold-coffee", Name: "آيس موكا", Price: 19, Calories: 230, Image: imgEspresso, Description: "موكا مثلج بالشوكولاتة", Available: true, OrderIndex: 4},

	// الشاي (أسعار البراد حسب الحجم)
	{ID: "item-22", SectionID: "section-tea", Name: "شاي أخضر", Price: 8, Calories: 2, Image: imgTea, Description: "شاي أخضر طبيعي مفيد للصحة", Available: true, OrderIndex: 1, Sizes: teapotSizes},
	{ID: "item-23", SectionID: "section-tea", Name: "شاي أتاي", Price: 8, Calories: 25, Popular: true, Image: imgTea, Description: "شاي مغربي تقليدي بالنعناع والسكر", Available: true, OrderIndex: 2, Sizes: teapotSizes},
	{ID: "item-24", SectionID: "section-tea", Name: "شاي أحمر", Price: 8, Calories: 3, Image: imgTea, Description: "شاي أحمر كلاسيكي", Available: true, OrderIndex: 3, Sizes: teapotSizes},

	// العصيرات الطبيعية
	{ID: "item-25", SectionID: "section-juices", Name: "عصير برتقال", Price: 19, Calories: 110, Image: imgJuice, Description: "عصير برتقال طازج 100%", Available: true, OrderIndex: 1},
	{ID: "item-27", SectionID: "section-juices", Name: "عصير مانجو", Price: 19, Calories: 120, Image: imgJuice, Description: "عصير مانجو استوائي طازج", Available: true, OrderIndex: 2},
	{ID: "item-28", SectionID: "section-juices", Name: "عصير ليمون نعناع", Price: 19, Calories: 60, Image: imgJuice, Description: "عصير ليمون منعش بالنعناع الطازج", Available: true, OrderIndex: 3},

	// البيتزا
	{ID: "item-38", SectionID: "section-pizza", Name: "بيتزا خضار", Price: 12, Calories: 250, Image: imgPizza, Description: "بيتزا بالخضار الطازجة والجبن", Available: true, OrderIndex: 1, Sizes: []entity.MenuItemSize{
		{Size: "صغير (6 قطع)", Price: 12},
		{Size: "وسط (8 قطع)", Price: 18},
		{Size: "كبير (12 قطعة)", Price: 24},
	}},
	{ID: "item-39", SectionID: "section-pizza", Name: "بيتزا دجاج", Price: 14, Calories: 320, Popular: true, Image: imgPizza, Description: "بيتزا بقطع الدجاج المشوي والخضار", Available: true, OrderIndex: 2, Sizes: []entity.MenuItemSize{
		{Size: "صغير (6 قطع)", Price: 14},
		{Size: "وسط (8 قطع)", Price: 20},
		{Size: "كبير (12 قطعة)", Price: 27},
	}},

	// الساندوتش والبرجر
	{ID: "item-49", SectionID: "section-sandwiches", Name: "كروسان", Price: 12, Calories: 230, Image: imgSandwich, Description: "كرواسان فرنسي طازج ومقرمش", Available: true, OrderIndex: 1},
	{ID: "item-51", SectionID: "section-sandwiches", Name: "ساندوتش حلومي", Price: 15, Calories: 380, Image: imgSandwich, Description: "ساندوتش بجبن الحلومي المشوي", Available: true, OrderIndex: 2},
	{ID: "item-57", SectionID: "section-sandwiches", Name: "برجر دجاج", Price: 12, Calories: 520, Popular: true, Image: imgSandwich, Description: "برجر دجاج مشوي مع الخضار", Available: true, OrderIndex: 3},
	{ID: "item-58", SectionID: "section-sandwiches", Name: "برجر لحم", Price: 12, Calories: 580, Popular: true, Image: imgSandwich, Description: "برجر لحم طازج مع الإضافات", Available: true, OrderIndex: 4},

	// الحلى
	{ID: "item-59", SectionID: "section-desserts", Name: "كوكيز", Price: 12, Calories: 150, Image: imgDessert, Description: "كوكيز محضر طازج بالشوكولاتة", Available: true, OrderIndex: 1},
	{ID: "item-61", SectionID: "section-desserts", Name: "كيك تمر", Price: 20, Calories: 280, Image: imgDessert, Description: "كيك التمر الصحي واللذيذ", Available: true, OrderIndex: 2},
	{ID: "item-62", SectionID: "section-desserts", Name: "سان سبيستيان", Price: 22, Calories: 380, Image: imgDessert, Description: "تشيز كيك سان سبيستيان الإسباني", Available: true, OrderIndex: 3},
	{ID: "item-63", SectionID: "section-desserts", Name: "كيك نوتيلا", Price: 22, Calories: 420, Popular: true, Image: imgDessert, Description: "كيك النوتيلا الكريمي الشهير", Available: true, OrderIndex: 4},

	// الشيشة
	{ID: "item-66", SectionID: "section-shisha", Name: "معسل تفاحتين", Price: 35, Popular: true, Image: imgJuice, Description: "معسل التفاحتين الكلاسيكي المحبوب", Available: true, OrderIndex: 1},
	{ID: "item-69", SectionID: "section-shisha", Name: "معسل ليمون نعناع", Price: 35, Image: imgJuice, Description: "معسل الليمون والنعناع المنعش", Available: true, OrderIndex: 2},
	{ID: "item-74", SectionID: "section-shisha", Name: "تغيير رأس", Price: 25, Image: imgJuice, Description: "تغيير رأس الشيشة بنكهة جديدة", Available: true, OrderIndex: 3},
}

var fallbackOffers = []entity.SpecialOffer{
	{
		ID:            "offer-1",
		Title:         "عرض الإفطار المميز",
		Description:   "قهوة + كرواسون + عصير طازج",
		OriginalPrice: 43,
		OfferPrice:    35,
		ValidUntil:    "31 ديسمبر 2024",
		Calories:      355,
		Image:         imgHotCoffee,
		Active:        true,
	},
	{
		ID:            "offer-2",
		Title:         "عرض المساء الخاص",
		Description:   "شاي أتاي + كيك نوتيلا + كوكيز",
		OriginalPrice: 54,
		OfferPrice:    45,
		ValidUntil:    "31 ديسمبر 2024",
		Calories:      585,
		Image:         imgDessert,
		Active:        true,
	},
}

// Fallback returns the bundled baseline snapshot.
func Fallback() Snapshot {
	return Snapshot{
		Sections: fallbackSections,
		Items:    fallbackItems,
		Offers:   fallbackOffers,
	}
}
