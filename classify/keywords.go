package classify

import "github.com/fwojciec/sitegraph"

// keywordSet lists the indicative phrases of one category. Phrases are
// lowercase and matched as substrings.
type keywordSet struct {
	category sitegraph.Category
	keywords []string
}

// keywordSets is in canonical category order.
var keywordSets = []keywordSet{
	{sitegraph.CategoryECommerce, []string{"shop", "cart", "product", "buy", "price", "store", "checkout", "shipping", "order", "payment"}},
	{sitegraph.CategoryBlog, []string{"blog", "post", "article", "comment", "author", "publish", "read more", "tags", "categories", "archive"}},
	{sitegraph.CategoryNews, []string{"news", "article", "headline", "reporter", "editor", "breaking", "latest", "update", "coverage", "report"}},
	{sitegraph.CategoryPortfolio, []string{"portfolio", "project", "work", "skill", "resume", "cv", "showcase", "gallery", "creative", "designer"}},
	{sitegraph.CategoryCorporate, []string{"company", "business", "service", "client", "team", "about us", "mission", "values", "industry", "solution"}},
	{sitegraph.CategoryEducational, []string{"course", "learn", "student", "teacher", "education", "school", "university", "training", "lesson", "quiz"}},
	{sitegraph.CategorySocial, []string{"profile", "friend", "follow", "share", "connect", "community", "network", "message", "post", "like"}},
	{sitegraph.CategoryEntertainment, []string{"entertainment", "game", "movie", "music", "play", "stream", "video", "show", "watch", "fun"}},
	{sitegraph.CategoryBanking, []string{"banking", "bank", "account", "transfer", "deposit", "withdraw", "atm", "branch", "checking", "savings"}},
	{sitegraph.CategoryFinancial, []string{"financial", "investment", "portfolio", "stocks", "bonds", "market", "wealth", "advisor", "retirement", "fund"}},
	{sitegraph.CategoryConsulting, []string{"consulting", "consultant", "strategy", "analysis", "implementation", "optimization", "assessment", "recommendation", "expertise", "solutions"}},
	{sitegraph.CategoryGovernment, []string{"government", "public", "citizen", "official", "regulation", "compliance", "agency", "municipal", "federal", "permit"}},
}
