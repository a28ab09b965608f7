package models

// Casino is a published (or draft) casino listing. Slug is the
// stable external identifier; uniqueness is checked before insert.
type Casino struct {
	Base               `bson:",inline"`
	Name               string   `json:"name"                bson:"name"`
	Slug               string   `json:"slug"                bson:"slug"`
	LogoURL            string   `json:"logo_url,omitempty"  bson:"logo_url,omitempty"`
	AffiliateURL       string   `json:"affiliate_url"       bson:"affiliate_url"`
	BonusText          string   `json:"bonus_text,omitempty" bson:"bonus_text,omitempty"`
	Features           []string `json:"features"            bson:"features"`
	SupportedCountries []string `json:"supported_countries" bson:"supported_countries"`
	BaseScore          float64  `json:"base_score"          bson:"base_score"`
	Pros               []string `json:"pros"                bson:"pros"`
	Cons               []string `json:"cons"                bson:"cons"`
	PaymentMethods     []string `json:"payment_methods"     bson:"payment_methods"`
	Providers          []string `json:"providers"           bson:"providers"`
	Gallery            []string `json:"gallery"             bson:"gallery"`
	SEOTitle           string   `json:"seo_title,omitempty" bson:"seo_title,omitempty"`
	SEODescription     string   `json:"seo_description,omitempty" bson:"seo_description,omitempty"`
	IsPublished        bool     `json:"is_published"        bson:"is_published"`
}

// Offer is a promotion belonging to a casino by slug reference.
type Offer struct {
	Base        `bson:",inline"`
	CasinoSlug  string `json:"casino_slug"             bson:"casino_slug"`
	Title       string `json:"title"                   bson:"title"`
	Description string `json:"description,omitempty"   bson:"description,omitempty"`
	BonusAmount string `json:"bonus_amount,omitempty"  bson:"bonus_amount,omitempty"`
	Wagering    string `json:"wagering,omitempty"      bson:"wagering,omitempty"`
	Code        string `json:"code,omitempty"          bson:"code,omitempty"`
}
