package core

// Display hints are resolved at creation time from static tables so a
// transaction renders the same way for its whole life, even if the tables
// change later.

const (
	fallbackIcon = "category"

	incomeIconBG  = "bg-emerald-100 text-emerald-600"
	expenseIconBG = "bg-blue-100 text-primary"

	// DebtIcon decorates debt book entries.
	DebtIcon = "account_balance_wallet"
)

var categoryIcons = map[string]string{
	"Alimentos":  "restaurant",
	"Transporte": "directions_car",
	"Vivienda":   "home",
	"Compras":    "shopping_bag",
	"Ocio":       "confirmation_number",
	"Salud":      "medical_services",
	"Servicios":  "bolt",
	"Sueldo":     "payments",
	"Inversión":  "trending_up",
	"Regalo":     "card_giftcard",
	"Otros":      "category",
	"Deudas":     "receipt_long",
}

// IconFor maps a category to its material icon name. Unknown categories get
// the fallback, never an error.
func IconFor(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return fallbackIcon
}

// IconBGFor picks the icon background classes by transaction type.
func IconBGFor(t TransactionType) string {
	if t == Income {
		return incomeIconBG
	}
	return expenseIconBG
}

// CategoryOption is one selectable category in the new-transaction form.
type CategoryOption struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

var expenseCategories = []CategoryOption{
	{ID: "food", Name: "Alimentos", Icon: "restaurant", Color: "bg-orange-500"},
	{ID: "transport", Name: "Transporte", Icon: "directions_car", Color: "bg-blue-500"},
	{ID: "housing", Name: "Vivienda", Icon: "home", Color: "bg-indigo-500"},
	{ID: "shopping", Name: "Compras", Icon: "shopping_bag", Color: "bg-pink-500"},
	{ID: "entertainment", Name: "Ocio", Icon: "confirmation_number", Color: "bg-purple-500"},
	{ID: "health", Name: "Salud", Icon: "medical_services", Color: "bg-red-500"},
	{ID: "services", Name: "Servicios", Icon: "bolt", Color: "bg-yellow-500"},
	{ID: "other_exp", Name: "Otros", Icon: "more_horiz", Color: "bg-slate-500"},
}

var incomeCategories = []CategoryOption{
	{ID: "salary", Name: "Sueldo", Icon: "payments", Color: "bg-emerald-500"},
	{ID: "invest", Name: "Inversión", Icon: "trending_up", Color: "bg-teal-500"},
	{ID: "gift", Name: "Regalo", Icon: "card_giftcard", Color: "bg-cyan-500"},
	{ID: "other_inc", Name: "Otros", Icon: "add_chart", Color: "bg-slate-500"},
}

// Categories returns the selectable categories for a transaction type.
func Categories(t TransactionType) []CategoryOption {
	var src []CategoryOption
	if t == Income {
		src = incomeCategories
	} else {
		src = expenseCategories
	}
	return append([]CategoryOption(nil), src...)
}
