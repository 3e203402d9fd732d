package entity

type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryHousing        Category = "Housing"
	CategoryUtilities      Category = "Utilities"
	CategoryInsurance      Category = "Insurance"
	CategorySavings        Category = "Savings"
	CategoryInvestment     Category = "Investment"
	CategorySalary         Category = "Salary"
	CategoryFreelance      Category = "Freelance"
	CategoryOther          Category = "Other"
)

// TransactionCategories lists every category a transaction may carry, in display order.
var TransactionCategories = []Category{
	CategoryFoodDining,
	CategoryTransportation,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryEducation,
	CategoryHousing,
	CategoryUtilities,
	CategoryInsurance,
	CategorySavings,
	CategoryInvestment,
	CategorySalary,
	CategoryFreelance,
	CategoryOther,
}

// BudgetCategories is the spendable subset of TransactionCategories.
var BudgetCategories = []Category{
	CategoryFoodDining,
	CategoryTransportation,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryEducation,
	CategoryHousing,
	CategoryUtilities,
	CategoryInsurance,
	CategoryOther,
}

func IsValidTransactionCategory(category string) bool {
	switch Category(category) {
	case CategoryFoodDining, CategoryTransportation, CategoryShopping, CategoryEntertainment,
		CategoryHealthcare, CategoryEducation, CategoryHousing, CategoryUtilities,
		CategoryInsurance, CategorySavings, CategoryInvestment, CategorySalary,
		CategoryFreelance, CategoryOther:
		return true
	default:
		return false
	}
}

func IsValidBudgetCategory(category string) bool {
	switch Category(category) {
	case CategoryFoodDining, CategoryTransportation, CategoryShopping, CategoryEntertainment,
		CategoryHealthcare, CategoryEducation, CategoryHousing, CategoryUtilities,
		CategoryInsurance, CategoryOther:
		return true
	default:
		return false
	}
}

func CategoryNames(categories []Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}
	return names
}
