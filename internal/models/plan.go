package models

import "math"

// PostpaidPlan is a recurring monthly subscription sold on the plans page and
// attachable to a device purchase as a bundle.
type PostpaidPlan struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	MonthlyPrice    float64  `json:"monthlyPrice"`
	Commitment      string   `json:"commitment"`
	CommitmentValue float64  `json:"commitmentValue"`
	Data            string   `json:"data"`
	Minutes         string   `json:"minutes"`
	Texts           string   `json:"texts"`
	Extras          []string `json:"extras"`
}

// PrepaidBundle is a one-time, time-limited data/voice bundle.
type PrepaidBundle struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Validity string   `json:"validity"`
	Data     string   `json:"data"`
	Minutes  string   `json:"minutes"`
	Texts    string   `json:"texts"`
	Extras   []string `json:"extras"`
}

// PostpaidPlans is the static postpaid catalog. The storefront does not
// manage plans through the product catalog; they are fixed marketing SKUs.
var PostpaidPlans = []PostpaidPlan{
	{
		ID:              "lite",
		Name:            "Lite",
		MonthlyPrice:    89,
		Commitment:      "2-year",
		CommitmentValue: 500,
		Data:            "5GB",
		Minutes:         "300 minutes",
		Texts:           "Unlimited texts",
		Extras:          nil,
	},
	{
		ID:              "flex",
		Name:            "Flex",
		MonthlyPrice:    129,
		Commitment:      "2-year",
		CommitmentValue: 800,
		Data:            "15GB",
		Minutes:         "Unlimited local minutes",
		Texts:           "Unlimited texts",
		Extras:          []string{"Free social media data"},
	},
	{
		ID:              "unlimited",
		Name:            "Unlimited",
		MonthlyPrice:    169,
		Commitment:      "2-year",
		CommitmentValue: 1200,
		Data:            "Unlimited",
		Minutes:         "Unlimited local minutes",
		Texts:           "Unlimited texts",
		Extras:          []string{"5GB hotspot", "Free streaming music"},
	},
	{
		ID:              "unlimited-plus",
		Name:            "Unlimited Plus",
		MonthlyPrice:    219,
		Commitment:      "2-year",
		CommitmentValue: 1600,
		Data:            "Unlimited",
		Minutes:         "Unlimited local + CARICOM minutes",
		Texts:           "Unlimited texts",
		Extras:          []string{"15GB hotspot", "HD streaming", "Device protection"},
	},
	{
		ID:              "family",
		Name:            "Family Share",
		MonthlyPrice:    299,
		Commitment:      "2-year",
		CommitmentValue: 2400,
		Data:            "Unlimited (4 lines)",
		Minutes:         "Unlimited local minutes",
		Texts:           "Unlimited texts",
		Extras:          []string{"4 SIM cards", "Parental controls"},
	},
}

// FeaturedPlanIDs selects the plans highlighted on the home page.
var FeaturedPlanIDs = []string{"flex", "unlimited", "unlimited-plus"}

// PrepaidBundles is the static prepaid catalog.
var PrepaidBundles = []PrepaidBundle{
	{
		ID:       "daily-boost",
		Name:     "Daily Boost",
		Price:    10,
		Validity: "1 day",
		Data:     "1GB",
		Minutes:  "30 minutes",
		Texts:    "50 texts",
		Extras:   nil,
	},
	{
		ID:       "weekly-surf",
		Name:     "Weekly Surf",
		Price:    35,
		Validity: "7 days",
		Data:     "5GB",
		Minutes:  "100 minutes",
		Texts:    "Unlimited texts",
		Extras:   []string{"Free WhatsApp"},
	},
	{
		ID:       "weekly-max",
		Name:     "Weekly Max",
		Price:    55,
		Validity: "7 days",
		Data:     "12GB",
		Minutes:  "250 minutes",
		Texts:    "Unlimited texts",
		Extras:   []string{"Free WhatsApp", "Free social media"},
	},
	{
		ID:       "monthly-smart",
		Name:     "Monthly Smart",
		Price:    99,
		Validity: "30 days",
		Data:     "20GB",
		Minutes:  "500 minutes",
		Texts:    "Unlimited texts",
		Extras:   []string{"Rollover data"},
	},
	{
		ID:       "monthly-pro",
		Name:     "Monthly Pro",
		Price:    149,
		Validity: "30 days",
		Data:     "45GB",
		Minutes:  "Unlimited local minutes",
		Texts:    "Unlimited texts",
		Extras:   []string{"Rollover data", "Free streaming music"},
	},
	{
		ID:       "monthly-ultra",
		Name:     "Monthly Ultra",
		Price:    199,
		Validity: "30 days",
		Data:     "Unlimited",
		Minutes:  "Unlimited local minutes",
		Texts:    "Unlimited texts",
		Extras:   []string{"10GB hotspot"},
	},
}

// Device-bundle financing terms: phone plus commitment value amortized
// monthly over the bundle term.
const (
	BundleTermMonths  = 8
	BundleMonthlyRate = 0.0125
)

// MonthlyInstallment amortizes a principal over the given number of months at
// a flat monthly rate. A zero rate degenerates to principal / months.
func MonthlyInstallment(principal, rate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if rate == 0 {
		return principal / float64(months)
	}
	factor := math.Pow(1+rate, float64(months))
	return principal * (rate * factor) / (factor - 1)
}

// PostpaidPlanByID looks up a postpaid plan, returning nil when absent.
func PostpaidPlanByID(id string) *PostpaidPlan {
	for i := range PostpaidPlans {
		if PostpaidPlans[i].ID == id {
			return &PostpaidPlans[i]
		}
	}
	return nil
}

// PrepaidBundleByID looks up a prepaid bundle, returning nil when absent.
func PrepaidBundleByID(id string) *PrepaidBundle {
	for i := range PrepaidBundles {
		if PrepaidBundles[i].ID == id {
			return &PrepaidBundles[i]
		}
	}
	return nil
}
