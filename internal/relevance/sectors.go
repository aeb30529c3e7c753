package relevance

// Policy sectors and their keyword vocabularies. Sector specificity is the
// best per-sector density score; a strong best sector also re-categorizes
// generically-labelled articles.

// SectorDefence is special-cased: defence-specific tokens amplify its score.
const SectorDefence = "Defence & Security"

var sectorKeywords = map[string][]string{
	"Technology Policy": {
		"data protection", "digital india", "it act", "it rules", "telecom",
		"spectrum", "cybersecurity", "cyber security", "privacy", "social media",
		"intermediary", "artificial intelligence", "semiconductor", "data centre",
		"broadband", "encryption", "aadhaar", "digital payment", "upi", "fintech regulation",
	},
	"Economic Policy": {
		"gdp", "inflation", "fiscal", "monetary policy", "repo rate", "budget",
		"taxation", "gst", "disinvestment", "fdi", "trade deficit", "subsidy",
		"banking", "rbi", "sebi", "capital markets", "insolvency", "tariff",
	},
	"Healthcare Policy": {
		"health ministry", "ayushman", "vaccine", "drug pricing", "pharma",
		"hospital", "medical council", "public health", "epidemic", "nmc",
		"clinical trial", "telemedicine", "health insurance",
	},
	"Environmental Policy": {
		"pollution", "emission", "environment ministry", "green tribunal",
		"waste management", "air quality", "deforestation", "environmental clearance",
		"plastic ban", "river", "groundwater",
	},
	"Education Policy": {
		"education policy", "nep", "ugc", "school", "university", "curriculum",
		"scholarship", "teacher", "higher education", "literacy", "entrance exam reform",
	},
	"Agricultural Policy": {
		"msp", "farmer", "agriculture ministry", "crop insurance", "fertilizer",
		"irrigation", "mandi", "procurement price", "kisan", "agri export",
		"food security",
	},
	"Foreign Policy": {
		"bilateral", "diplomatic", "foreign ministry", "mea", "treaty", "summit",
		"trade agreement", "border talks", "strategic partnership", "united nations",
		"g20", "brics", "indo-pacific",
	},
	"Constitutional & Legal": {
		"supreme court", "high court", "constitutional", "judiciary", "judgment",
		"bench", "petition", "fundamental rights", "article 370", "collegium",
		"tribunal", "bar council", "chief justice",
	},
	SectorDefence: {
		"defence", "military", "armed forces", "drdo", "procurement",
		"missile", "border security", "air force", "navy", "army",
		"defence budget", "agniveer", "strategic forces",
	},
	"Social Policy": {
		"welfare scheme", "pension", "reservation", "social justice", "minority",
		"women and child", "disability", "labour code", "employment guarantee",
		"mgnrega", "food subsidy", "housing for all",
	},
	"Governance & Administration": {
		"e-governance", "civil services", "administrative reform", "panchayat",
		"municipal", "transparency", "right to information", "rti", "lokpal",
		"election commission", "electoral", "census",
	},
	"Climate Policy": {
		"climate change", "net zero", "carbon", "cop2", "paris agreement",
		"emission target", "climate finance", "adaptation", "mitigation",
		"heatwave policy",
	},
	"Renewable Energy Policy": {
		"solar", "wind energy", "renewable", "green hydrogen", "energy transition",
		"power purchase", "discom", "electricity amendment", "rooftop solar",
		"battery storage",
	},
	"Conservation Policy": {
		"wildlife", "forest conservation", "tiger reserve", "biodiversity",
		"protected area", "eco-sensitive", "wetland", "coastal regulation",
		"project tiger", "sanctuary",
	},
}

// genericCategories are labels weak enough to be overridden by a confident
// sector match.
var genericCategories = map[string]bool{
	"Policy News":     true,
	"General News":    true,
	"Policy Analysis": true,
}

// SectorSpecificity returns the best sector and its score for the text.
// Without a core policy trigger the score is zero. Density scoring:
// min(0.8, matches/len(keywords)*2.5 + matches*0.1), with a 1.5x multiplier
// for Defence & Security when a defence token is present.
func SectorSpecificity(text string) (string, float64) {
	if !anyKeyword(text, corePolicyTriggers) {
		return "", 0
	}

	bestSector := ""
	bestScore := 0.0
	for sector, keywords := range sectorKeywords {
		matches := countKeywords(text, keywords)
		if matches == 0 {
			continue
		}
		density := float64(matches) / float64(len(keywords))
		score := density*2.5 + float64(matches)*0.1
		if score > 0.8 {
			score = 0.8
		}
		if sector == SectorDefence && anyKeyword(text, defenseIndicators) {
			score *= 1.5
		}
		if score > bestScore || (score == bestScore && sector < bestSector) {
			bestSector, bestScore = sector, score
		}
	}
	if bestScore > 1 {
		bestScore = 1
	}
	return bestSector, bestScore
}

// IsGenericCategory reports whether a category label can be overridden by
// sector reassignment.
func IsGenericCategory(category string) bool {
	return genericCategories[category]
}

// Sectors lists the known policy sectors.
func Sectors() []string {
	out := make([]string, 0, len(sectorKeywords))
	for sector := range sectorKeywords {
		out = append(out, sector)
	}
	return out
}
