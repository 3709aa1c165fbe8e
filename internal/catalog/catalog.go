// Package catalog holds the immutable book/author/collection dataset and the
// pure lookup, filter and sort operations the API serves from it. Everything
// is loaded once at startup; nothing here mutates state afterwards.
package catalog

// Book is a single recommended title. Author is a denormalized display name,
// not a foreign key; a book with no matching Author record is valid.
type Book struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Subtitle       string      `json:"subtitle,omitempty"`
	Author         string      `json:"author"`
	Description    string      `json:"description"`
	CoverImage     string      `json:"coverImage"`
	AffiliateURL   string      `json:"affiliateUrl"`
	Price          float64     `json:"price"`
	Rating         float64     `json:"rating"`
	ReviewCount    int         `json:"reviewCount"`
	Category       string      `json:"category"`
	PublishedDate  string      `json:"publishedDate"` // ISO 8601; string order == date order
	ISBN           string      `json:"isbn"`
	PageCount      int         `json:"pageCount"`
	AmazonRank     int         `json:"amazonRank,omitempty"` // 0 = not a bestseller
	KeyTakeaways   []string    `json:"keyTakeaways"`
	TargetAudience string      `json:"targetAudience"` // beginner | intermediate | advanced
	Tags           []string    `json:"tags"`
	Summary        string      `json:"summary"`
	ProsAndCons    ProsAndCons `json:"prosAndCons"`
}

type ProsAndCons struct {
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// Author.Books is a weak back-reference of Book ids; lookup only, never
// enforced.
type Author struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Bio           string   `json:"bio"`
	Image         string   `json:"image"`
	Books         []string `json:"books"`
	Expertise     []string `json:"expertise"`
	Website       string   `json:"website,omitempty"`
	NetWorth      string   `json:"netWorth"`
	KeyPhilosophy string   `json:"keyPhilosophy"`
}

// Collection groups books under a theme. BookIDs order is the suggested
// reading order and must be preserved when resolving.
type Collection struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	BookIDs     []string `json:"bookIds"`
	Category    string   `json:"category,omitempty"`
	Featured    bool     `json:"featured"`
}

type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
