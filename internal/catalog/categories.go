package catalog

// The seven category slugs are fixed configuration, not part of the loaded
// dataset. Every Book.Category must be one of these.
var Categories = []Category{
	{Slug: "investing", Name: "Investing", Description: "Learn to grow your wealth through smart investments"},
	{Slug: "budgeting", Name: "Budgeting", Description: "Master your money with effective budgeting strategies"},
	{Slug: "real-estate", Name: "Real Estate", Description: "Build wealth through property investment"},
	{Slug: "entrepreneurship", Name: "Entrepreneurship", Description: "Start and grow your own business"},
	{Slug: "retirement", Name: "Retirement Planning", Description: "Secure your financial future"},
	{Slug: "debt-management", Name: "Debt Management", Description: "Strategies to eliminate debt and stay debt-free"},
	{Slug: "financial-planning", Name: "Financial Planning", Description: "Comprehensive guides to financial success"},
}

// CategoryBySlug returns the category for slug, or ok=false for an unknown
// slug. Unknown is not an error.
func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

func validCategory(slug string) bool {
	_, ok := CategoryBySlug(slug)
	return ok
}
