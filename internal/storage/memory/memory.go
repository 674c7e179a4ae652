package memory

import (
	"slices"

	"eventPandey/internal/models"
)

// Storage serves the fixed site catalog. Every getter returns a copy.
type Storage struct {
	nav      []models.NavLink
	about    []string
	services []models.Service
	stats    []models.Stat
	pricing  []models.PricingTier
	faq      []models.FaqItem
	planning []string
}

func New() *Storage {
	return &Storage{
		nav: []models.NavLink{
			{Label: "About", Anchor: "about"},
			{Label: "Services", Anchor: "services"},
			{Label: "Pricing", Anchor: "pricing"},
			{Label: "Planning", Anchor: "planning"},
			{Label: "FAQ", Anchor: "faq"},
		},
		about: []string{
			"Aggressive Timeline Management",
			"Ruthless Vendor Negotiation",
			"Zero Tolerance for Boring",
			"Snow Machine Experts (Seriously)",
		},
		services: []models.Service{
			{
				ID:          models.EventWedding,
				Title:       "Weddings",
				Description: "Not your grandma's wedding. Unless she likes pyrotechnics.",
				Image:       "https://picsum.photos/400/300?random=4",
				Accent:      "pink",
			},
			{
				ID:          models.EventCorporate,
				Title:       "Corporate",
				Description: "Team building that doesn't make you want to quit.",
				Image:       "https://picsum.photos/400/300?random=5",
				Accent:      "blue",
			},
			{
				ID:          models.EventPolitical,
				Title:       "Political",
				Description: "Campaign rallies with better lighting than a rock concert.",
				Image:       "https://picsum.photos/400/300?random=6",
				Accent:      "orange",
			},
		},
		stats: []models.Stat{
			{Number: "500+", Label: "Events Curated"},
			{Number: "100%", Label: "Stress Removed"},
			{Number: "24/7", Label: "Support Team"},
			{Number: "∞", Label: "High Fives"},
		},
		pricing: []models.PricingTier{
			{
				Name:     "Basic",
				Price:    "$2,500",
				Features: []string{"Vendor coordination", "Day-of management", "Timeline creation", "1 Planner"},
			},
			{
				Name:        "Pro",
				Price:       "$5,000",
				Features:    []string{"Full styling & design", "Vendor negotiation", "Budget management", "2 Planners", "Snow Machine ❄️"},
				Recommended: true,
			},
			{
				Name:     "Mega",
				Price:    "$8.5k+",
				Features: []string{"Complete bespoke design", "Destination management", "Unlimited meetings", "Full Team", "Custom Installations"},
			},
		},
		faq: []models.FaqItem{
			{Question: "Real snow indoors?", Answer: "Yes. Bio-degradable. Non-toxic. Looks awesome. Feels cold. We bring the machines, you bring the coats."},
			{Question: "Destination weddings?", Answer: "We travel. You pay. We make it look like a movie. Simple."},
			{Question: "Cancellation policy?", Answer: "Reschedule up to 30 days out. Cancel completely? We keep the deposit to buy more confetti."},
			{Question: "Do you do food?", Answer: "We know people who do food. Good food. We coordinate them. We don't cook."},
		},
		planning: []string{"Wedding", "Corporate Gala", "Birthday Bash", "Political Rally"},
	}
}

func (s *Storage) NavLinks() []models.NavLink {
	return slices.Clone(s.nav)
}

func (s *Storage) AboutPoints() []string {
	return slices.Clone(s.about)
}

func (s *Storage) Services() []models.Service {
	return slices.Clone(s.services)
}

func (s *Storage) Stats() []models.Stat {
	return slices.Clone(s.stats)
}

func (s *Storage) PricingTiers() []models.PricingTier {
	tiers := make([]models.PricingTier, len(s.pricing))
	for i, t := range s.pricing {
		t.Features = slices.Clone(t.Features)
		tiers[i] = t
	}

	return tiers
}

func (s *Storage) FaqItems() []models.FaqItem {
	return slices.Clone(s.faq)
}

// PlanningOptions are the event labels offered by the quote form.
func (s *Storage) PlanningOptions() []string {
	return slices.Clone(s.planning)
}
