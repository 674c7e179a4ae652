package models

type PricingTier struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Recommended bool     `json:"recommended,omitempty"`
}

type FaqItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Service struct {
	ID          EventType `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Accent      string    `json:"accent"`
}

type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

type NavLink struct {
	Label  string `json:"label"`
	Anchor string `json:"anchor"`
}
