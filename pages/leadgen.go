package pages

import "github.com/eringen/sitegen"

// LeadGeneration returns the pages of the Lead Generation section.
func LeadGeneration() sitegen.Table {
	return sitegen.NewTable(
		sitegen.Page{
			Path:   "lead-generation/index.html",
			Config: sitegen.PageConfig{
				Title:      "Lead Generation Services | SEM, SEO & Local Listing | IntelliCloud",
				H1:         "Drive Qualified Leads to Your Business",
				Desc:       "Comprehensive lead generation services with SEM, SEO, and local listing optimization",
				Breadcrumb: "Lead Generation",
				Color:      "blue",
				Services:   []string{"Search Engine Marketing (SEM)", "Search Engine Optimization (SEO)", "Local Listing Management", "Google Ads", "Content Strategy", "Conversion Optimization"},
				Stats:      []string{"300% Avg ROI", "$50M+ Ad Spend", "1000+ Campaigns", "Proven Results"},
			},
		},
		sitegen.Page{
			Path:   "lead-generation/sem/index.html",
			Config: sitegen.PageConfig{
				Title:      "Search Engine Marketing | SEM Services | IntelliCloud",
				H1:         "Search Engine Marketing for Immediate Results",
				Desc:       "Professional SEM services with Google Ads and PPC campaign management",
				Breadcrumb: "SEM",
				Color:      "blue",
				Services:   []string{"Google Ads Management", "PPC Campaign Management", "Keyword Research", "Ad Copywriting", "Bid Management", "Conversion Tracking"},
				Stats:      []string{"300% Avg ROI", "$50M+ Managed", "500+ Campaigns", "Certified Experts"},
			},
		},
		sitegen.Page{
			Path:   "lead-generation/sem/google-ads.html",
			Config: sitegen.PageConfig{
				Title:      "Google Ads Management | PPC Experts | IntelliCloud",
				H1:         "Google Ads Experts",
				Desc:       "Professional Google Ads management for search, display, shopping, and video campaigns",
				Breadcrumb: "Google Ads",
				Color:      "blue",
				Services:   []string{"Search Ads", "Display Ads", "Shopping Ads", "Video Ads", "Remarketing", "Performance Max"},
				Stats:      []string{"300% Avg ROI", "$50M+ Ad Spend", "Google Partner", "Certified Team"},
			},
		},
		sitegen.Page{
			Path:   "lead-generation/sem/ppc-campaigns.html",
			Config: sitegen.PageConfig{
				Title:      "PPC Campaign Management | IntelliCloud",
				H1:         "PPC Campaign Management",
				Desc:       "Full-service PPC management with landing page optimization and conversion tracking",
				Breadcrumb: "PPC Campaigns",
				Color:      "blue",
				Services:   []string{"Campaign Setup", "Landing Page Optimization", "Conversion Tracking", "A/B Testing", "Continuous Optimization", "ROI Reporting"},
				Stats:      []string{"500+ PPC Campaigns", "Data-Driven", "Optimized Daily", "Transparent Reporting"},
			},
		},
		sitegen.Page{
			Path:   "lead-generation/seo/index.html",
			Config: sitegen.PageConfig{
				Title:      "SEO Services | Search Engine Optimization | IntelliCloud",
				H1:         "Organic SEO for Long-term Growth",
				Desc:       "Comprehensive SEO services with on-page, technical, and content strategy",
				Breadcrumb: "SEO",
				Color:      "green",
				Services:   []string{"On-page SEO", "Technical SEO", "Content Strategy", "Link Building", "Local SEO", "SEO Audits"},
				Stats:      []string{"200+ SEO Projects", "Top 3 Rankings", "Organic Growth", "Sustainable Results"},
			},
		},
		sitegen.Page{
			Path:   "lead-generation/seo/on-page-seo.html",
			Config: sitegen.PageConfig{
				Title:      "On-page SEO Optimization | IntelliCloud",
				H1:         "On-page SEO Optimization",
				Desc:       "Comprehensive on-page SEO with title tags, meta descriptions, headers, and content optimization",
				Breadcrumb: "On-page SEO",
				Color:      "green",
				Services:   []string{"Title & Meta Tags", "Header Optimization", "Content Optimization", "Internal Linking", "Image Optimization", "Schema Markup"},
				Stats:      []string{"500+ Pages Optimized", "Top Rankings", "Higher CTR", "Better Conversions"},
			},
		},
		sitegen.Page{
			Path:   "lead-generation/seo/technical-seo.html",
			Config: sitegen.PageConfig{
				Title:      "Technical SEO Services | IntelliCloud",
				H1:         "Technical SEO Foundation",
				Desc:       "Technical SEO optimization for site speed, mobile, crawlability, and indexing",
				Breadcrumb: "Technical SEO",
				Color:      "green",
				Services:   []string{"Site Speed Optimization", "Mobile Optimization", "Crawlability", "Indexing", "Structured Data", "Core Web Vitals"},
				Stats:      []string{"100+ Technical Audits", "90+ Page Speed", "Mobile-First", "Search Console Experts"},
			},
		},
		sitegen.Page{
			Path:   "lead-generation/seo/content-strategy.html",
			Config: sitegen.PageConfig{
				Title:      "SEO Content Strategy | IntelliCloud",
				H1:         "SEO Content Strategy",
				Desc:       "Data-driven content strategy with keyword research, topic clustering, and editorial planning",
				Breadcrumb: "Content Strategy",
				Color:      "green",
				Services:   []string{"Keyword Research", "Topic Clustering", "Content Calendar", "Editorial Standards", "Performance Monitoring", "Content Updates"},
				Stats:      []string{"1000+ Content Pieces", "Top Rankings", "Organic Traffic", "Engagement Focus"},
			},
		},
		sitegen.Page{
			Path:   "lead-generation/local-listing/index.html",
			Config: sitegen.PageConfig{
				Title:      "Local Listing Services | Google Business Profile | IntelliCloud",
				H1:         "Local Business Visibility",
				Desc:       "Local listing optimization with Google Business Profile and local SEO strategy",
				Breadcrumb: "Local Listing",
				Color:      "orange",
				Services:   []string{"Google Business Profile", "Local SEO Strategy", "Citation Management", "Review Generation", "Local Content", "Map Pack Optimization"},
				Stats:      []string{"300+ Local Businesses", "Map Pack Rankings", "More Calls & Visits", "Review Management"},
			},
		},
		sitegen.Page{
			Path:   "lead-generation/local-listing/google-business.html",
			Config: sitegen.PageConfig{
				Title:      "Google Business Profile Optimization | IntelliCloud",
				H1:         "Google Business Profile Optimization",
				Desc:       "Complete Google Business Profile setup, verification, and optimization",
				Breadcrumb: "Google Business Profile",
				Color:      "orange",
				Services:   []string{"Profile Setup & Verification", "Category Optimization", "Photo Management", "Review Monitoring", "Post Publishing", "Insights Analysis"},
				Stats:      []string{"500+ Profiles Optimized", "42% More Clicks", "Higher Visibility", "Review Management"},
			},
		},
		sitegen.Page{
			Path:   "lead-generation/local-listing/local-seo.html",
			Config: sitegen.PageConfig{
				Title:      "Local SEO Strategy | IntelliCloud",
				H1:         "Local SEO Strategy",
				Desc:       "Comprehensive local SEO with keywords, citations, link building, and content",
				Breadcrumb: "Local SEO",
				Color:      "orange",
				Services:   []string{"Local Keywords", "Citations & Directories", "Local Link Building", "Review Generation", "Local Content", "NAP Consistency"},
				Stats:      []string{"200+ Local SEO Projects", "Map Pack Rankings", "More Foot Traffic", "Phone Calls Increase"},
			},
		},
	)
}
