package naivebayes

import "github.com/fwojciec/sitegraph"

// DefaultCorpus returns the built-in training set, five samples per
// category.
func DefaultCorpus() []Sample {
	return []Sample{
		{"Shop our latest products with free shipping on orders over $50. Add items to cart and checkout.", sitegraph.CategoryECommerce},
		{"Product catalog with detailed specifications and pricing. Buy now and save 20% on your purchase.", sitegraph.CategoryECommerce},
		{"Online store featuring electronics, clothing, and home goods. View shopping cart and payment options.", sitegraph.CategoryECommerce},
		{"Best deals on brand name products. Add to wishlist or add to cart for immediate purchase.", sitegraph.CategoryECommerce},
		{"Digital marketplace for buying and selling handmade items. Secure checkout and buyer protection.", sitegraph.CategoryECommerce},

		{"Personal blog about travel adventures and photography tips. Read my latest post about sunset photography.", sitegraph.CategoryBlog},
		{"Lifestyle blog featuring recipes, home decor, and family activities. Subscribe for weekly articles.", sitegraph.CategoryBlog},
		{"Tech blog with in-depth tutorials and product reviews. Comment below and share your thoughts.", sitegraph.CategoryBlog},
		{"Author's personal journal documenting creative writing process. Archive of previous blog posts available.", sitegraph.CategoryBlog},
		{"Health and wellness blog with expert advice. Latest post: 10 ways to improve your morning routine.", sitegraph.CategoryBlog},

		{"Breaking news: Latest developments in politics, economy, and world events. Subscribe to our newsletter.", sitegraph.CategoryNews},
		{"Daily news updates covering local and international headlines. Reporter John Smith reports from Washington.", sitegraph.CategoryNews},
		{"News analysis and editorial opinions on current events. Read today's top headlines and featured stories.", sitegraph.CategoryNews},
		{"Sports news covering latest games, player transfers, and league standings. Match report and statistics.", sitegraph.CategoryNews},
		{"Technology news featuring product launches and company announcements. Latest industry trends and insights.", sitegraph.CategoryNews},

		{"Designer portfolio showcasing UI/UX projects and creative work. View my case studies and design process.", sitegraph.CategoryPortfolio},
		{"Photography portfolio with galleries organized by theme. Professional headshots and landscape photography.", sitegraph.CategoryPortfolio},
		{"Web developer portfolio with code samples and live project demos. Skills include React, Node, and Python.", sitegraph.CategoryPortfolio},
		{"Artist portfolio featuring paintings, illustrations, and digital art. Commission information and artist CV.", sitegraph.CategoryPortfolio},
		{"Architecture portfolio with 3D renderings and completed building projects. Resume and professional experience.", sitegraph.CategoryPortfolio},

		{"Company overview, mission statement, and corporate values. Learn about our team and business strategy.", sitegraph.CategoryCorporate},
		{"Enterprise solutions for businesses of all sizes. Our services include consulting, implementation, and support.", sitegraph.CategoryCorporate},
		{"Meet our executive leadership team and board of directors. Company history and achievements.", sitegraph.CategoryCorporate},
		{"Business partnerships and client testimonials. Industries served and case studies of successful implementations.", sitegraph.CategoryCorporate},
		{"Corporate responsibility initiatives and sustainability reports. How we give back to our community.", sitegraph.CategoryCorporate},

		{"Online courses in programming, design, and business. Enroll now and start learning with our expert instructors.", sitegraph.CategoryEducational},
		{"University homepage with information for students, faculty, and prospective applicants. Academic programs and majors.", sitegraph.CategoryEducational},
		{"Educational resources for K-12 teachers and students. Lesson plans, worksheets, and interactive activities.", sitegraph.CategoryEducational},
		{"Professional certification programs and continuing education. Industry-recognized credentials and skills assessment.", sitegraph.CategoryEducational},
		{"Learning management system with course materials, assignments, and discussion forums. Student login and registration.", sitegraph.CategoryEducational},

		{"Connect with friends, share photos and videos. Create your profile and join the conversation.", sitegraph.CategorySocial},
		{"Social network for professionals. Build your network, find jobs, and share industry knowledge.", sitegraph.CategorySocial},
		{"Photo and video sharing platform. Follow your favorite creators and discover trending content.", sitegraph.CategorySocial},
		{"Community forums and discussion groups on various topics. Join the conversation and meet like-minded people.", sitegraph.CategorySocial},
		{"Real-time updates and short posts about what's happening. Trending topics and hashtag challenges.", sitegraph.CategorySocial},

		{"Stream your favorite movies and TV shows. New releases and classic titles available on demand.", sitegraph.CategoryEntertainment},
		{"Gaming platform with latest releases and multiplayer options. Create your gamer profile and track achievements.", sitegraph.CategoryEntertainment},
		{"Music streaming service with millions of songs and custom playlists. Listen on any device, anytime.", sitegraph.CategoryEntertainment},
		{"Online videos, channels, and content creators. Subscribe to your favorite channels for updates.", sitegraph.CategoryEntertainment},
		{"Celebrity news, interviews, and entertainment coverage. Behind the scenes and red carpet events.", sitegraph.CategoryEntertainment},

		{"Online banking login. Access your checking, savings, and credit accounts securely. View statements and transaction history.", sitegraph.CategoryBanking},
		{"Apply for a mortgage, auto loan, or personal loan. Competitive interest rates and flexible payment options.", sitegraph.CategoryBanking},
		{"Banking services for individuals and businesses. Transfer funds, pay bills, and deposit checks remotely.", sitegraph.CategoryBanking},
		{"Mobile banking app that lets you manage your accounts on the go. Secure authentication and instant alerts.", sitegraph.CategoryBanking},
		{"ATM locator, branch hours, and banking services. Schedule an appointment with a financial advisor.", sitegraph.CategoryBanking},

		{"Investment opportunities and wealth management solutions. Retirement planning and portfolio diversification.", sitegraph.CategoryFinancial},
		{"Financial planning services for individuals and families. Tax strategies, estate planning, and asset management.", sitegraph.CategoryFinancial},
		{"Market analysis, stock quotes, and investment research. Tools for monitoring your investment performance.", sitegraph.CategoryFinancial},
		{"Financial calculators for loans, mortgages, and retirement planning. Estimate your payments and savings goals.", sitegraph.CategoryFinancial},
		{"Insurance products including life, health, auto, and home policies. Get a quote and apply online.", sitegraph.CategoryFinancial},

		{"Management consulting services to improve organizational performance. Strategy development and implementation.", sitegraph.CategoryConsulting},
		{"IT consulting and digital transformation. Cloud migration, cybersecurity, and system integration services.", sitegraph.CategoryConsulting},
		{"Business process optimization and operational excellence. Lean methodology and efficiency improvements.", sitegraph.CategoryConsulting},
		{"Human resources consulting and talent management. Leadership development and organizational culture.", sitegraph.CategoryConsulting},
		{"Strategic consulting for startups and established businesses. Market entry, growth strategy, and competitive analysis.", sitegraph.CategoryConsulting},

		{"Government services portal for citizens. Apply for permits, licenses, and official documents online.", sitegraph.CategoryGovernment},
		{"Public records, tax information, and municipal regulations. Download forms and schedule appointments.", sitegraph.CategoryGovernment},
		{"City council meetings, public announcements, and community events. Local government initiatives and programs.", sitegraph.CategoryGovernment},
		{"Federal agency providing resources and services to the public. Compliance information and regulatory guidelines.", sitegraph.CategoryGovernment},
		{"Voter registration, election information, and civic engagement opportunities. Government transparency and accountability.", sitegraph.CategoryGovernment},
	}
}

// EvalCorpus returns held-out samples for Evaluate.
func EvalCorpus() []Sample {
	return []Sample{
		{"Shop our clearance sale with discounts up to 70%. Free shipping on orders over $100.", sitegraph.CategoryECommerce},
		{"My personal travel journal documenting adventures across Asia. New photos posted weekly.", sitegraph.CategoryBlog},
		{"Breaking news: Government announces new climate policy. Opposition responds with criticism.", sitegraph.CategoryNews},
		{"Graphic design portfolio showcasing branding projects and package design work.", sitegraph.CategoryPortfolio},
		{"Our company provides enterprise IT solutions for financial institutions worldwide.", sitegraph.CategoryCorporate},
		{"Interactive online courses in mathematics, science, and computer programming.", sitegraph.CategoryEducational},
		{"Share your moments with friends and family. Privacy controls for your personal content.", sitegraph.CategorySocial},
		{"Streaming platform for movies, TV shows, and documentaries. Watch on any device.", sitegraph.CategoryEntertainment},
	}
}
