package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/earg-org/earg-api/internal/content"
	"github.com/earg-org/earg-api/internal/db/models"
)

// Entry is one settings document of the seed.
type Entry struct {
	Key   string
	Value any
}

// Dataset is the content written into an empty database.
type Dataset struct {
	Gallery  []models.GalleryItem
	Stories  []models.Story
	Team     []models.TeamMember
	Journey  []models.Milestone
	Programs []models.Program
	Settings []Entry
	// Products are only written by a full reset, never by the startup seed.
	Products []models.Product
}

// Value is one entry of the values section.
type Value struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Desc  string `json:"desc"`
}

// Default returns the dataset of a fresh installation.
func Default() Dataset {
	return Dataset{
		Programs: defaultPrograms(),
		Settings: []Entry{
			{Key: content.KeyHomeProductIDs, Value: []string{}},
			{Key: content.KeyCategories, Value: []string{"General"}},
			{Key: content.KeyContactInfo, Value: map[string]string{
				"email":   "info@educateruralgirl.org",
				"phone":   "",
				"address": "Tharaka Nithi County, Kenya",
			}},
			{Key: content.KeyHomeHero, Value: map[string]string{
				"title":    "Empowering Rural Girls",
				"subtitle": "Building a sustainable future through education and leadership.",
				"image":    "",
			}},
			{Key: content.KeyAboutHero, Value: map[string]string{
				"title": "About EARG",
				"subtitle": "Educate A Rural Girl Organization (EARG) is a community-based organization that exists " +
					"to empower women and girls from rural areas of Tharaka Nithi County to be agents of change in " +
					"their communities while advocating for equality, inclusion, and sustainable development.",
				"image": "",
			}},
			{Key: content.KeyVision, Value: "A society where empowered rural women lead positive and sustainable change."},
			{Key: content.KeyMission, Value: "To educate, mentor and inspire the community to create an ecosystem " +
				"that supports the holistic development of girls enabling the to realize their full potential"},
			{Key: content.KeyValues, Value: []Value{
				{Title: "Innovative", Icon: "lightbulb", Desc: "Embracing new ideas to solve challenges."},
				{Title: "Integrity", Icon: "verified_user", Desc: "Operating with honesty and transparency."},
				{Title: "Impact", Icon: "ads_click", Desc: "Focusing on tangible, lasting results."},
				{Title: "Inclusion", Icon: "diversity_3", Desc: "Ensuring no one is left behind."},
				{Title: "Inspiration", Icon: "auto_awesome", Desc: "Empowering others to dream big."},
			}},
			{Key: content.KeyImpactStats, Value: []any{}},
		},
	}
}

func defaultPrograms() []models.Program {
	return []models.Program{
		{
			Title: "Women's Economic Empowerment and Financial Inclusion Program",
			Description: "This program strengthens the economic participation of rural women by building the capacity " +
				"of women-led chamas through financial literacy training, use of digital financial tools, and access " +
				"to formal credit facilities. The program promotes savings, investment, and business development to " +
				"enable women to engage in sustainable income-generating activities and achieve long-term financial " +
				"independence.",
			Image:    "https://images.unsplash.com/photo-1590650153855-d9e808231d41?auto=format&fit=crop&q=80&w=800",
			Features: []string{"Financial Literacy Training", "Digital Financial Tools", "Credit Access"},
		},
		{
			Title: "Women-Led Chamas Strengthening and Enterprise Development Program",
			Description: "This program focuses on strengthening women-led chamas as platforms for collective savings, " +
				"investment, and entrepreneurship. It enhances group governance, financial management, and linkages " +
				"to financial institutions to expand economic opportunities for rural women.",
			Image:    "https://images.unsplash.com/photo-1531206715517-5c0ba140b2b8?auto=format&fit=crop&q=80&w=800",
			Features: []string{"Group Governance", "Financial Management", "Institutional Linkages"},
		},
		{
			Title: "Menstrual Health and Dignity Program for Girls and Young Women",
			Description: "This program improves access to menstrual health resources by implementing a sustainable " +
				"model that ensures the consistent availability of menstrual products for girls and young women. It " +
				"also promotes menstrual health education to reduce stigma, school absenteeism, and economic " +
				"vulnerability.",
			Image:    "https://images.unsplash.com/photo-1576091160550-2173dba999ef?auto=format&fit=crop&q=80&w=800",
			Features: []string{"Product Availability", "Health Education", "Stigma Reduction"},
		},
		{
			Title: "Adolescent Girls and Young Women SRHR Education Program",
			Description: "This program increases access to Sexual and Reproductive Health and Rights (SRHR) " +
				"information and services through sensitization campaigns delivered in collaboration with local " +
				"hospitals and health experts. It aims to reduce teenage pregnancies, improve health outcomes, and " +
				"support girls’ education and future economic participation.",
			Image:    "https://images.unsplash.com/photo-1579684385127-1ef15d508118?auto=format&fit=crop&q=80&w=800",
			Features: []string{"SRHR Sensitization", "Hospital Collaboration", "Teen Pregnancy Reduction"},
		},
		{
			Title: "Gender-Based Violence Awareness and Referral Program",
			Description: "This program raises awareness on gender-based violence and strengthens community-level " +
				"referral pathways to health, legal, and psychosocial services. By addressing GBV, the program " +
				"reduces barriers that disrupt women’s education, livelihoods, and economic empowerment.",
			Image:    "https://images.unsplash.com/photo-1509062522246-3755977927d7?auto=format&fit=crop&q=80&w=800",
			Features: []string{"GBV Awareness", "Referral Pathways", "Community Support"},
		},
		{
			Title: "Integrated Economic Empowerment and SRHR Program",
			Description: "This flagship program integrates financial inclusion and SRHR interventions to enhance the " +
				"economic resilience of women and girls. By combining women’s economic empowerment, menstrual health " +
				"support, SRHR education, and policy advocacy, the program enables women and girls to complete their " +
				"education, participate effectively in economic activities, and achieve sustainable livelihoods.",
			Image:    "https://images.unsplash.com/photo-1517486808906-6ca8b3f04846?auto=format&fit=crop&q=80&w=800",
			Features: []string{"Flagship Integration", "Resilience Building", "Livelihood Support"},
		},
		{
			Title: "Women and Girls Economic Empowerment and SRHR Policy Advocacy Program",
			Description: "This program advocates for gender-responsive policies that support women’s economic " +
				"empowerment and access to SRHR services. It engages community leaders, policymakers, and " +
				"institutions to influence policies and resource allocation that promote financial inclusion, " +
				"reproductive health rights, and social protection for women and girls.",
			Image:    "https://images.unsplash.com/photo-1450101499163-c8848c66ca85?auto=format&fit=crop&q=80&w=800",
			Features: []string{"Policy Advocacy", "Stakeholder Engagement", "Resource Allocation"},
		},
	}
}

// LoadProducts reads a JSON array of products, as exported from the storefront.
func LoadProducts(path string) ([]models.Product, error) {
	raw, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	var products []models.Product
	if err = json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products file %s: %w", path, err)
	}

	return products, nil
}
