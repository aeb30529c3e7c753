package relevance

// Keyword tables driving the rule-based classifier. Grouped by concern;
// matching is always lowercase substring.

// indiaKeywords establish Indian context.
var indiaKeywords = []string{
	"india", "indian", "bharat", "delhi", "new delhi", "mumbai", "bengaluru",
	"chennai", "kolkata", "hyderabad", "lok sabha", "rajya sabha", "parliament of india",
	"supreme court of india", "rbi", "reserve bank", "sebi", "trai", "niti aayog",
	"pib", "centre", "central government", "state government", "union cabinet",
	"union budget", "ministry of", "gst", "aadhaar", "upi", "panchayat",
	"modi", "president of india", "prime minister",
}

// foreignKeywords establish clearly-foreign context.
var foreignKeywords = []string{
	"u.s.", "united states", "american", "washington", "white house", "senate",
	"pentagon", "federal reserve", "capitol hill",
	"united kingdom", "britain", "british", "downing street", "westminster",
	"european union", "brussels", "eu commission", "bundestag",
	"china", "chinese", "beijing", "pakistan", "islamabad", "russia", "moscow",
	"kremlin", "japan", "tokyo", "australia", "canberra", "united nations",
}

// usDisambiguators resolve the ambiguous token "congress": with these
// present and no India keyword, "congress" reads as the U.S. legislature
// rather than the Indian party.
var usDisambiguators = []string{"u.s.", "american", "washington"}

// organizationalPhrases are boilerplate page titles rejected on government
// portals: exact match or prefix.
var organizationalPhrases = []string{
	"about us", "contact us", "who we are", "our team", "careers",
	"privacy policy", "terms of service", "disclaimer", "sitemap",
	"copyright", "accessibility",
}

// policyIndicators rescue an organizational-looking title that still names
// a policy instrument.
var policyIndicators = []string{
	"policy", "notification", "circular", "guideline", "regulation", "act",
	"bill", "amendment", "order", "rule", "scheme", "announcement",
	"decision", "approval", "implementation",
}

// highImpactKeywords signal parliamentary action, constitutional matter or
// nationwide mandate; two or more hits mark an article high-impact.
var highImpactKeywords = []string{
	"cabinet", "parliament", "bill passed", "ordinance", "supreme court",
	"constitutional", "mandatory", "compliance", "nationwide", "tax rate",
	"interest rate", "subsidy", "welfare", "regulatory change", "new rules",
	"deadline", "penalty",
}

// exclusionCategory weights non-policy content classes. Each category
// contributes min(1, matches/len(keywords) * weight * 1.5) to the exclusion
// score.
type exclusionCategory struct {
	name     string
	weight   float64
	keywords []string
}

var exclusionCategories = []exclusionCategory{
	{"organizational_content", 2.0, []string{
		"about us", "contact", "careers", "our team", "vacancy", "recruitment",
		"tender", "helpline", "faq", "login", "register",
	}},
	{"celebrity_entertainment", 4.0, []string{
		"bollywood", "celebrity", "actor", "actress", "film review", "box office",
		"movie", "web series", "trailer", "gossip",
	}},
	{"sports_content", 3.5, []string{
		"cricket", "ipl", "world cup", "olympics", "football", "tournament",
		"match", "wicket", "medal", "championship",
	}},
	{"educational_commercial", 3.0, []string{
		"admit card", "exam result", "answer key", "cutoff", "admission open",
		"coaching", "mock test", "syllabus",
	}},
	{"product_launches", 2.0, []string{
		"launched at rs", "price in india", "first look", "unboxing",
		"specifications", "pre-order", "sale starts",
	}},
	{"commercial_content", 1.5, []string{
		"discount", "offer", "deal", "coupon", "cashback", "flash sale",
		"festive sale",
	}},
	{"technology_consumer", 1.0, []string{
		"smartphone", "earbuds", "smartwatch", "laptop review", "gaming",
		"app update", "android", "iphone",
	}},
	{"social_media_features", 1.5, []string{
		"viral", "trending on", "instagram reel", "whatsapp status", "memes",
		"influencer",
	}},
	{"literature_culture", 1.0, []string{
		"book review", "novel", "poetry", "art exhibition", "festival of",
		"theatre",
	}},
}

// contextIndicators mark policy discussion context; used for protection
// against false exclusion.
var contextIndicators = []string{
	"government", "ministry", "policy", "regulation", "parliament",
	"legislation", "governance", "regulator", "public interest",
	"consultation", "stakeholder",
}

// exceptionKeywords immediately grant the highest protection tier: the
// article is about the regulation of a consumer domain, not the domain
// itself.
var exceptionKeywords = []string{
	"ban", "banned", "regulate", "regulated", "guidelines for", "crackdown",
	"notice to", "penalty on", "antitrust", "data protection", "censorship",
	"court order", "it rules",
}

// validationKeywords corroborate policy substance.
var validationKeywords = []string{
	"notification", "circular", "gazette", "amendment", "compliance",
	"enforcement", "framework", "committee", "draft",
}

// businessPolicyKeywords protect business stories with a policy angle.
var businessPolicyKeywords = []string{
	"fdi", "disinvestment", "psu", "taxation", "duty", "tariff", "subsidy",
	"incentive scheme", "pli scheme", "merger approval", "licensing",
}

// strongContextIndicators bump the seed policy score for non-government
// sources.
var strongContextIndicators = []string{
	"policy", "regulation", "bill", "act", "ministry", "government",
	"cabinet", "parliament", "court", "tribunal", "regulator", "notification",
}

// defenseIndicators bump the seed score and amplify the Defence & Security
// sector.
var defenseIndicators = []string{
	"defence", "defense", "military", "armed forces", "drdo", "border",
	"security forces", "missile", "procurement",
}

// highRelevanceKeywords add up to 0.3 to the seed policy score.
var highRelevanceKeywords = []string{
	"policy", "bill", "act", "regulation", "notification", "ordinance",
	"cabinet", "parliament", "supreme court", "high court", "ministry",
	"amendment", "gazette",
}

// mediumRelevanceKeywords add up to 0.2.
var mediumRelevanceKeywords = []string{
	"government", "scheme", "subsidy", "welfare", "committee", "commission",
	"consultation", "draft", "guidelines", "compliance", "governance",
}

// corePolicyTriggers gate sector specificity: without one of these, sector
// score stays zero.
var corePolicyTriggers = []string{
	"policy", "regulation", "bill", "act", "rules", "scheme", "ministry",
	"government", "cabinet", "notification", "court", "tribunal", "governance",
	"regulator", "amendment", "ordinance",
}

// reliabilityRatings maps source-name substrings to a 1–5 rating; divided
// by 5 for the reliability sub-score. Government sources score 1.0 outright.
var reliabilityRatings = []struct {
	match  string
	rating int
}{
	{"prs legislative", 5},
	{"livelaw", 5},
	{"bar and bench", 5},
	{"supreme court observer", 5},
	{"the hindu", 5},
	{"reuters", 4},
	{"indian express", 4},
	{"economic times", 4},
	{"mint", 4},
	{"business standard", 4},
	{"medianama", 4},
	{"observer research", 4},
	{"internet freedom", 4},
	{"the print", 4},
	{"the wire", 4},
	{"scroll", 4},
	{"down to earth", 4},
	{"mongabay", 4},
	{"hindustan times", 3},
	{"times of india", 3},
	{"ndtv", 3},
	{"india today", 3},
	{"firstpost", 3},
	{"news18", 3},
	{"swarajya", 2},
}
