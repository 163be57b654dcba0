package pages

import "github.com/eringen/sitegen"

// Services returns the pages of the Services section.
func Services() sitegen.Table {
	return sitegen.NewTable(
		sitegen.Page{
			Path:   "services/cloud-architecture/google-cloud.html",
			Config: sitegen.PageConfig{
				Title:      "Google Cloud Platform | IntelliCloud",
				H1:         "Google Cloud Platform Solutions",
				Desc:       "AI-powered cloud infrastructure with BigQuery, Cloud AI, and Firestore",
				Breadcrumb: "Google Cloud",
				Color:      "blue",
				Services:   []string{"BigQuery & Analytics", "Cloud AI Platform", "Firestore Database", "Compute Engine", "Cloud Storage", "Cloud Functions"},
				Stats:      []string{"75+ GCP Projects", "AI/ML Certified", "BigQuery Experts", "24/7 Support"},
			},
		},
		sitegen.Page{
			Path:   "services/cloud-architecture/salesforce.html",
			Config: sitegen.PageConfig{
				Title:      "Salesforce Cloud Solutions | IntelliCloud",
				H1:         "Salesforce CRM Cloud",
				Desc:       "World's #1 CRM with powerful customization, automation, and integration capabilities",
				Breadcrumb: "Salesforce",
				Color:      "cyan",
				Services:   []string{"CRM Implementation", "Custom Development", "Integration Services", "Automation & Workflows", "Reporting & Analytics", "Training & Support"},
				Stats:      []string{"200+ Salesforce Projects", "Certified Experts", "Full-Stack Capabilities", "Ongoing Support"},
			},
		},
		sitegen.Page{
			Path:   "services/website-creation/index.html",
			Config: sitegen.PageConfig{
				Title:      "Website Creation | Custom Websites & SaaS Platforms | IntelliCloud",
				H1:         "Custom Websites Built for Conversion",
				Desc:       "High-performance websites and SaaS platforms with modern design and technology",
				Breadcrumb: "Website Creation",
				Color:      "purple",
				Services:   []string{"SaaS Platforms", "Responsive Design", "Performance Optimization", "SEO-Friendly", "E-commerce Ready", "Mobile-First"},
				Stats:      []string{"300+ Websites Built", "98% Performance Score", "Mobile-Optimized", "Conversion-Focused"},
			},
		},
		sitegen.Page{
			Path:   "services/website-creation/saas-platforms.html",
			Config: sitegen.PageConfig{
				Title:      "SaaS Platform Development | IntelliCloud",
				H1:         "High-Performance SaaS Applications",
				Desc:       "Custom SaaS platforms with authentication, dashboards, APIs, and payment processing",
				Breadcrumb: "SaaS Platforms",
				Color:      "purple",
				Services:   []string{"User Authentication", "Real-time Dashboards", "Data Visualization", "API Integration", "Payment Processing", "Multi-tenancy"},
				Stats:      []string{"50+ SaaS Platforms", "Node.js/React Stack", "Scalable Architecture", "Secure by Design"},
			},
		},
		sitegen.Page{
			Path:   "services/website-creation/responsive-design.html",
			Config: sitegen.PageConfig{
				Title:      "Responsive Web Design | Mobile-First | IntelliCloud",
				H1:         "Mobile-First Design for All Devices",
				Desc:       "Beautiful, responsive websites that work perfectly on desktop, tablet, and mobile",
				Breadcrumb: "Responsive Design",
				Color:      "purple",
				Services:   []string{"Mobile-First Approach", "Cross-Browser Compatible", "Performance Optimized", "Accessible Design", "Touch-Friendly", "Flexible Layouts"},
				Stats:      []string{"100% Mobile-Optimized", "WCAG 2.1 AA", "Fast Load Times", "All Devices Supported"},
			},
		},
		sitegen.Page{
			Path:   "services/ecommerce/index.html",
			Config: sitegen.PageConfig{
				Title:      "eCommerce Solutions | Shopify & Custom Platforms | IntelliCloud",
				H1:         "eCommerce Platforms That Convert",
				Desc:       "Powerful eCommerce solutions on Shopify and custom platforms with conversion optimization",
				Breadcrumb: "eCommerce",
				Color:      "green",
				Services:   []string{"Shopify Development", "Custom Platforms", "Payment Integration", "Inventory Management", "Conversion Optimization", "Analytics & Reporting"},
				Stats:      []string{"500+ Stores Launched", "35% Avg Revenue Increase", "Secure Payments", "Global Shipping"},
			},
		},
		sitegen.Page{
			Path:   "services/ecommerce/shopify.html",
			Config: sitegen.PageConfig{
				Title:      "Shopify Development | Store Setup & Customization | IntelliCloud",
				H1:         "Shopify Stores Built for Growth",
				Desc:       "Professional Shopify development with custom themes, app integration, and optimization",
				Breadcrumb: "Shopify",
				Color:      "green",
				Services:   []string{"Store Setup & Design", "App Integration", "Theme Customization", "Performance Optimization", "Payment Gateway Setup", "Migration Services"},
				Stats:      []string{"500+ Shopify Stores", "Shopify Partners", "35% Revenue Increase", "Fast & Secure"},
			},
		},
		sitegen.Page{
			Path:   "services/ecommerce/custom-platforms.html",
			Config: sitegen.PageConfig{
				Title:      "Custom eCommerce Development | IntelliCloud",
				H1:         "Custom eCommerce Solutions",
				Desc:       "Enterprise eCommerce platforms for complex business logic and unique requirements",
				Breadcrumb: "Custom Platforms",
				Color:      "green",
				Services:   []string{"Custom Architecture", "API Development", "Advanced Features", "Integration Suite", "B2B Capabilities", "Scalable Infrastructure"},
				Stats:      []string{"50+ Custom Platforms", "Enterprise-Grade", "High Volume Ready", "Full Customization"},
			},
		},
		sitegen.Page{
			Path:   "services/mobile-application/index.html",
			Config: sitegen.PageConfig{
				Title:      "Mobile App Development | iOS & Android | IntelliCloud",
				H1:         "Native & Cross-Platform Mobile Apps",
				Desc:       "Professional iOS and Android app development that engages users and drives results",
				Breadcrumb: "Mobile Applications",
				Color:      "orange",
				Services:   []string{"iOS Development", "Android Development", "Push Notifications", "Offline Mode", "App Store Optimization", "Analytics Integration"},
				Stats:      []string{"100+ Apps Launched", "4.5+ Star Rating", "Native Performance", "App Store Approved"},
			},
		},
		sitegen.Page{
			Path:   "services/mobile-application/ios.html",
			Config: sitegen.PageConfig{
				Title:      "iOS App Development | Swift & SwiftUI | IntelliCloud",
				H1:         "Native iOS App Development",
				Desc:       "Professional iOS apps built with Swift and SwiftUI for iPhone and iPad",
				Breadcrumb: "iOS Development",
				Color:      "orange",
				Services:   []string{"Swift Development", "SwiftUI Interfaces", "App Store Submission", "Push Notifications", "In-App Purchases", "CloudKit Integration"},
				Stats:      []string{"75+ iOS Apps", "Swift Certified", "App Store Experts", "Regular Updates"},
			},
		},
		sitegen.Page{
			Path:   "services/mobile-application/android.html",
			Config: sitegen.PageConfig{
				Title:      "Android App Development | Kotlin & Jetpack | IntelliCloud",
				H1:         "Native Android App Development",
				Desc:       "High-performance Android apps built with Kotlin and Jetpack Compose",
				Breadcrumb: "Android Development",
				Color:      "orange",
				Services:   []string{"Kotlin Development", "Jetpack Compose", "Play Store Submission", "Firebase Integration", "Material Design", "Backward Compatibility"},
				Stats:      []string{"75+ Android Apps", "Kotlin Experts", "Play Store Certified", "All Devices Supported"},
			},
		},
		sitegen.Page{
			Path:   "services/api-integration/index.html",
			Config: sitegen.PageConfig{
				Title:      "API Integration Services | REST APIs & Third-Party | IntelliCloud",
				H1:         "Seamless API Integration Solutions",
				Desc:       "Expert API development and third-party integration for connected systems",
				Breadcrumb: "API Integration",
				Color:      "indigo",
				Services:   []string{"REST API Development", "Third-Party Integration", "API Documentation", "Webhook Management", "Authentication & Security", "Rate Limiting"},
				Stats:      []string{"200+ Integrations", "Real-time APIs", "Secure & Reliable", "Full Documentation"},
			},
		},
		sitegen.Page{
			Path:   "services/api-integration/rest-apis.html",
			Config: sitegen.PageConfig{
				Title:      "REST API Development | Node.js & Express | IntelliCloud",
				H1:         "Building & Integrating REST APIs",
				Desc:       "Custom REST API development with Node.js, Express, and PostgreSQL",
				Breadcrumb: "REST APIs",
				Color:      "indigo",
				Services:   []string{"API Design", "Development & Testing", "Documentation", "Versioning", "Authentication", "Performance Optimization"},
				Stats:      []string{"100+ APIs Built", "RESTful Standards", "OpenAPI/Swagger", "High Performance"},
			},
		},
		sitegen.Page{
			Path:   "services/api-integration/third-party-integration.html",
			Config: sitegen.PageConfig{
				Title:      "Third-Party API Integration | IntelliCloud",
				H1:         "Third-Party API Integration",
				Desc:       "Seamless integration with payment, CRM, communication, and analytics services",
				Breadcrumb: "Third-Party Integration",
				Color:      "indigo",
				Services:   []string{"Payment APIs (Stripe, PayPal)", "CRM (Salesforce, HubSpot)", "Communication (Twilio, SendGrid)", "Analytics (Google, Mixpanel)", "Storage (AWS S3, GCS)", "Social Media APIs"},
				Stats:      []string{"50+ API Partners", "Secure Integration", "Real-time Sync", "Expert Support"},
			},
		},
		sitegen.Page{
			Path:   "services/ui-ux/index.html",
			Config: sitegen.PageConfig{
				Title:      "UI/UX Design Services | User Research & Design Systems | IntelliCloud",
				H1:         "User-Centered Design Excellence",
				Desc:       "Professional UI/UX design with user research, prototyping, and design systems",
				Breadcrumb: "UI/UX Design",
				Color:      "pink",
				Services:   []string{"User Research & Testing", "Design Systems", "Prototyping", "Wireframing", "Visual Design", "Usability Testing"},
				Stats:      []string{"200+ Designs Created", "User-Centered", "Data-Driven", "Award-Winning"},
			},
		},
		sitegen.Page{
			Path:   "services/ui-ux/user-research.html",
			Config: sitegen.PageConfig{
				Title:      "User Research & Testing | UX Research | IntelliCloud",
				H1:         "Understand Your Users Deeply",
				Desc:       "Comprehensive user research with interviews, testing, and persona development",
				Breadcrumb: "User Research",
				Color:      "pink",
				Services:   []string{"User Interviews", "Usability Testing", "Competitive Analysis", "User Personas", "Journey Mapping", "A/B Testing"},
				Stats:      []string{"100+ Research Projects", "Data-Driven Insights", "Actionable Results", "Expert Researchers"},
			},
		},
		sitegen.Page{
			Path:   "services/ui-ux/design-system.html",
			Config: sitegen.PageConfig{
				Title:      "Design Systems | Component Libraries | IntelliCloud",
				H1:         "Scalable Design Systems",
				Desc:       "Comprehensive design systems for consistency, efficiency, and scalability",
				Breadcrumb: "Design Systems",
				Color:      "pink",
				Services:   []string{"Component Libraries", "Style Guides", "Documentation", "Design Tokens", "Accessibility Standards", "Version Control"},
				Stats:      []string{"25+ Design Systems", "Atomic Design", "Fully Documented", "Developer-Friendly"},
			},
		},
	)
}
