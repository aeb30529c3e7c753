package registry

import "policyradar/internal/core"

// sources is the curated registry, grouped by default category. Entries with
// Headers/Cookies carry per-source request overrides; Fallback lists
// alternate URLs tried when the primary endpoint yields nothing.
var sources = []core.Source{
	// --- Government: press and parliament ---
	{Name: "Press Information Bureau", URL: "https://pib.gov.in/RssMain.aspx?ModId=6&Lang=1&Regid=3", Category: "Policy News",
		Headers:  map[string]string{"Accept-Language": "en-IN,en;q=0.9"},
		Fallback: []string{"https://pib.gov.in/AllReleasem.aspx"}},
	{Name: "PIB Cabinet Decisions", URL: "https://pib.gov.in/RssMain.aspx?ModId=7&Lang=1&Regid=3", Category: "Governance & Administration"},
	{Name: "Lok Sabha", URL: "https://sansad.in/ls", Category: "Governance & Administration",
		Fallback: []string{"https://sansad.in/ls/legislation"}},
	{Name: "Rajya Sabha", URL: "https://sansad.in/rs", Category: "Governance & Administration"},
	{Name: "President of India", URL: "https://presidentofindia.nic.in/press-release", Category: "Governance & Administration"},
	{Name: "Prime Minister's Office", URL: "https://www.pmindia.gov.in/en/news-updates/", Category: "Governance & Administration"},
	{Name: "Cabinet Secretariat", URL: "https://cabsec.gov.in/", Category: "Governance & Administration"},
	{Name: "NITI Aayog", URL: "https://www.niti.gov.in/whats-new", Category: "Policy News",
		Fallback: []string{"https://www.niti.gov.in/press-releases"}},
	{Name: "MyGov India", URL: "https://www.mygov.in/weekly-updates/", Category: "Governance & Administration"},
	{Name: "Department of Administrative Reforms", URL: "https://darpg.gov.in/whatsnew-all", Category: "Governance & Administration"},

	// --- Government: financial regulators ---
	{Name: "Reserve Bank of India", URL: "https://www.rbi.org.in/pressreleases_rss.xml", Category: "Economic Policy",
		Headers:  map[string]string{"Accept": "application/rss+xml,application/xml"},
		Fallback: []string{"https://www.rbi.org.in/Scripts/BS_PressReleaseDisplay.aspx"}},
	{Name: "RBI Notifications", URL: "https://www.rbi.org.in/notifications_rss.xml", Category: "Economic Policy"},
	{Name: "SEBI", URL: "https://www.sebi.gov.in/sebirss.xml", Category: "Economic Policy",
		Fallback: []string{"https://www.sebi.gov.in/media-and-notifications/press-releases"}},
	{Name: "IRDAI", URL: "https://irdai.gov.in/press-releases", Category: "Economic Policy"},
	{Name: "PFRDA", URL: "https://www.pfrda.org.in/index1.cshtml?lsid=237", Category: "Economic Policy"},
	{Name: "Competition Commission of India", URL: "https://www.cci.gov.in/media-gallery/press-release", Category: "Economic Policy",
		Cookies: map[string]string{"has_js": "1"}},
	{Name: "Insolvency and Bankruptcy Board", URL: "https://ibbi.gov.in/en/whats-new", Category: "Economic Policy"},
	{Name: "Ministry of Finance", URL: "https://finmin.nic.in/press_room", Category: "Economic Policy"},
	{Name: "Department of Economic Affairs", URL: "https://dea.gov.in/press-release", Category: "Economic Policy"},
	{Name: "Central Board of Direct Taxes", URL: "https://incometaxindia.gov.in/Lists/Press%20Releases/AllItems.aspx", Category: "Economic Policy"},
	{Name: "CBIC", URL: "https://www.cbic.gov.in/entities/view-sticker", Category: "Economic Policy"},
	{Name: "GST Council", URL: "https://gstcouncil.gov.in/press-release", Category: "Economic Policy"},
	{Name: "Directorate General of Foreign Trade", URL: "https://www.dgft.gov.in/CP/?opt=notification", Category: "Economic Policy"},
	{Name: "Ministry of Corporate Affairs", URL: "https://www.mca.gov.in/content/mca/global/en/news-updates/press-release.html", Category: "Economic Policy"},
	{Name: "Ministry of Commerce and Industry", URL: "https://commerce.gov.in/press-releases/", Category: "Economic Policy"},
	{Name: "DPIIT", URL: "https://dpiit.gov.in/whats-new", Category: "Economic Policy"},
	{Name: "Ministry of Statistics", URL: "https://mospi.gov.in/press-release", Category: "Economic Policy"},
	{Name: "Finance Commission", URL: "https://fincomindia.nic.in/press-releases", Category: "Economic Policy"},

	// --- Government: technology and telecom ---
	{Name: "Ministry of Electronics and IT", URL: "https://www.meity.gov.in/whatsnew/all", Category: "Technology Policy",
		Fallback: []string{"https://www.meity.gov.in/press-releases"}},
	{Name: "TRAI", URL: "https://www.trai.gov.in/notifications/press-release", Category: "Technology Policy",
		Headers: map[string]string{"Referer": "https://www.trai.gov.in/"}},
	{Name: "Department of Telecommunications", URL: "https://dot.gov.in/whatsnew", Category: "Technology Policy"},
	{Name: "CERT-In", URL: "https://www.cert-in.org.in/", Category: "Technology Policy"},
	{Name: "UIDAI", URL: "https://uidai.gov.in/en/media-resources/media/press-releases.html", Category: "Technology Policy"},
	{Name: "National Informatics Centre", URL: "https://www.nic.in/press-release/", Category: "Technology Policy"},
	{Name: "Digital India", URL: "https://www.digitalindia.gov.in/press-release/", Category: "Technology Policy"},
	{Name: "C-DOT", URL: "https://www.cdot.in/cdotweb/web/pressrelease.php", Category: "Technology Policy"},
	{Name: "Ministry of Information and Broadcasting", URL: "https://mib.gov.in/notifications", Category: "Technology Policy"},

	// --- Government: health, education, social ---
	{Name: "Ministry of Health and Family Welfare", URL: "https://mohfw.gov.in/media/press-releases", Category: "Healthcare Policy"},
	{Name: "ICMR", URL: "https://www.icmr.gov.in/pressrelease", Category: "Healthcare Policy"},
	{Name: "CDSCO", URL: "https://cdsco.gov.in/opencms/opencms/en/Notifications/Public-Notices/", Category: "Healthcare Policy"},
	{Name: "National Health Authority", URL: "https://nha.gov.in/media", Category: "Healthcare Policy"},
	{Name: "FSSAI", URL: "https://fssai.gov.in/cms/press-releases.php", Category: "Healthcare Policy"},
	{Name: "Ministry of AYUSH", URL: "https://ayush.gov.in/#!/whatsnew", Category: "Healthcare Policy"},
	{Name: "Ministry of Education", URL: "https://www.education.gov.in/press-releases", Category: "Education Policy"},
	{Name: "UGC", URL: "https://www.ugc.gov.in/publication/ugc_pressrelease", Category: "Education Policy"},
	{Name: "AICTE", URL: "https://www.aicte-india.org/newsroom/press-releases", Category: "Education Policy"},
	{Name: "NCERT", URL: "https://ncert.nic.in/notices.php", Category: "Education Policy"},
	{Name: "National Testing Agency", URL: "https://nta.ac.in/Noticeboardarchive", Category: "Education Policy"},
	{Name: "Ministry of Women and Child Development", URL: "https://wcd.gov.in/offerings/press-release", Category: "Social Policy"},
	{Name: "Ministry of Social Justice", URL: "https://socialjustice.gov.in/whats-new", Category: "Social Policy"},
	{Name: "Ministry of Rural Development", URL: "https://rural.gov.in/en/press-release", Category: "Social Policy"},
	{Name: "Ministry of Labour and Employment", URL: "https://labour.gov.in/whatsnew", Category: "Social Policy"},
	{Name: "EPFO", URL: "https://www.epfindia.gov.in/site_en/Press_Releases.php", Category: "Social Policy"},
	{Name: "Ministry of Housing and Urban Affairs", URL: "https://mohua.gov.in/cms/whtsnew.php", Category: "Social Policy"},
	{Name: "Ministry of Minority Affairs", URL: "https://www.minorityaffairs.gov.in/en/whatsnew", Category: "Social Policy"},
	{Name: "Ministry of Tribal Affairs", URL: "https://tribal.nic.in/whatsNew.aspx", Category: "Social Policy"},

	// --- Government: environment, agriculture, energy ---
	{Name: "Ministry of Environment", URL: "https://moef.gov.in/whats-new/", Category: "Environmental Policy",
		Fallback: []string{"https://pib.gov.in/PressReleseDetail.aspx?PRID=moefcc"}},
	{Name: "Central Pollution Control Board", URL: "https://cpcb.nic.in/important-notifications/", Category: "Environmental Policy"},
	{Name: "National Green Tribunal", URL: "https://www.greentribunal.gov.in/news-update", Category: "Environmental Policy"},
	{Name: "Ministry of Jal Shakti", URL: "https://jalshakti-dowr.gov.in/whats-new/", Category: "Environmental Policy"},
	{Name: "India Meteorological Department", URL: "https://mausam.imd.gov.in/responsive/press_release.php", Category: "Climate Policy"},
	{Name: "Ministry of Earth Sciences", URL: "https://www.moes.gov.in/whats-new", Category: "Climate Policy"},
	{Name: "Ministry of New and Renewable Energy", URL: "https://mnre.gov.in/whats-new/", Category: "Renewable Energy Policy"},
	{Name: "Solar Energy Corporation of India", URL: "https://www.seci.co.in/whats-new", Category: "Renewable Energy Policy"},
	{Name: "Ministry of Power", URL: "https://powermin.gov.in/en/whats-new", Category: "Renewable Energy Policy"},
	{Name: "CERC", URL: "https://cercind.gov.in/whats_new.html", Category: "Renewable Energy Policy"},
	{Name: "Bureau of Energy Efficiency", URL: "https://beeindia.gov.in/en/whats-new", Category: "Renewable Energy Policy"},
	{Name: "Ministry of Agriculture", URL: "https://agricoop.gov.in/en/whatsnew", Category: "Agricultural Policy"},
	{Name: "ICAR", URL: "https://icar.org.in/whats-new", Category: "Agricultural Policy"},
	{Name: "Food Corporation of India", URL: "https://fci.gov.in/press-releases", Category: "Agricultural Policy"},
	{Name: "APEDA", URL: "https://apeda.gov.in/apedawebsite/press_release/Press_Release.htm", Category: "Agricultural Policy"},
	{Name: "Ministry of Fisheries and Animal Husbandry", URL: "https://dahd.nic.in/whats-new", Category: "Agricultural Policy"},
	{Name: "Ministry of Food Processing", URL: "https://www.mofpi.gov.in/whatsnew", Category: "Agricultural Policy"},
	{Name: "National Biodiversity Authority", URL: "http://nbaindia.org/content/16/14/1/notifications.html", Category: "Conservation Policy"},
	{Name: "Wildlife Institute of India", URL: "https://wii.gov.in/announcements", Category: "Conservation Policy"},
	{Name: "Forest Survey of India", URL: "https://fsi.nic.in/latest-news", Category: "Conservation Policy"},

	// --- Government: defence, external, home ---
	{Name: "Ministry of Defence", URL: "https://mod.gov.in/index.php/en/press-release-mod", Category: "Defence & Security"},
	{Name: "DRDO", URL: "https://www.drdo.gov.in/drdo/press-release", Category: "Defence & Security"},
	{Name: "Ministry of External Affairs", URL: "https://www.mea.gov.in/press-releases.htm", Category: "Foreign Policy",
		Fallback: []string{"https://www.mea.gov.in/media-briefings.htm"}},
	{Name: "Ministry of Home Affairs", URL: "https://www.mha.gov.in/en/media/whats-new", Category: "Defence & Security"},
	{Name: "National Investigation Agency", URL: "https://www.nia.gov.in/press-releases.htm", Category: "Defence & Security"},
	{Name: "Indian Army", URL: "https://indianarmy.nic.in/press-release", Category: "Defence & Security"},
	{Name: "Indian Navy", URL: "https://www.indiannavy.nic.in/content/press-release", Category: "Defence & Security"},
	{Name: "ISRO", URL: "https://www.isro.gov.in/Press.html", Category: "Technology Policy"},

	// --- Government: law, elections ---
	{Name: "Supreme Court of India", URL: "https://main.sci.gov.in/news", Category: "Constitutional & Legal"},
	{Name: "Ministry of Law and Justice", URL: "https://lawmin.gov.in/documents/circular", Category: "Constitutional & Legal"},
	{Name: "Law Commission of India", URL: "https://lawcommissionofindia.nic.in/whats-new/", Category: "Constitutional & Legal"},
	{Name: "Election Commission of India", URL: "https://www.eci.gov.in/press-releases", Category: "Governance & Administration"},
	{Name: "Central Information Commission", URL: "https://cic.gov.in/what-s-new", Category: "Governance & Administration"},
	{Name: "National Human Rights Commission", URL: "https://nhrc.nic.in/media/press-release", Category: "Social Policy"},
	{Name: "Comptroller and Auditor General", URL: "https://cag.gov.in/en/press-release", Category: "Governance & Administration"},

	// --- Legal news ---
	{Name: "LiveLaw", URL: "https://www.livelaw.in/rss/top-stories", Category: "Constitutional & Legal",
		Headers: map[string]string{"Accept": "application/rss+xml"}},
	{Name: "Bar and Bench", URL: "https://www.barandbench.com/feed", Category: "Constitutional & Legal"},
	{Name: "SCC Online Blog", URL: "https://www.scconline.com/blog/feed/", Category: "Constitutional & Legal"},
	{Name: "Legally India", URL: "https://www.legallyindia.com/feed", Category: "Constitutional & Legal"},
	{Name: "The Leaflet", URL: "https://theleaflet.in/feed/", Category: "Constitutional & Legal"},
	{Name: "Law Beat", URL: "https://lawbeat.in/rss.xml", Category: "Constitutional & Legal"},
	{Name: "Verdictum", URL: "https://www.verdictum.in/feed", Category: "Constitutional & Legal"},
	{Name: "Supreme Court Observer", URL: "https://www.scobserver.in/feed/", Category: "Constitutional & Legal"},

	// --- Think tanks and research ---
	{Name: "PRS Legislative Research", URL: "https://prsindia.org/articles-by-prs-team", Category: "Governance & Administration",
		Fallback: []string{"https://prsindia.org/billtrack"}},
	{Name: "Observer Research Foundation", URL: "https://www.orfonline.org/feed", Category: "Foreign Policy"},
	{Name: "Centre for Policy Research", URL: "https://cprindia.org/feed/", Category: "Policy News"},
	{Name: "Takshashila Institution", URL: "https://takshashila.org.in/blog/rss.xml", Category: "Policy News"},
	{Name: "CUTS International", URL: "https://cuts-ccier.org/feed/", Category: "Economic Policy"},
	{Name: "Vidhi Centre for Legal Policy", URL: "https://vidhilegalpolicy.in/feed/", Category: "Constitutional & Legal"},
	{Name: "Carnegie India", URL: "https://carnegieindia.org/rss/solr?query=latest", Category: "Foreign Policy"},
	{Name: "Gateway House", URL: "https://www.gatewayhouse.in/feed/", Category: "Foreign Policy"},
	{Name: "IDSA", URL: "https://www.idsa.in/rss.xml", Category: "Defence & Security"},
	{Name: "CEEW", URL: "https://www.ceew.in/rss.xml", Category: "Climate Policy"},
	{Name: "TERI", URL: "https://www.teriin.org/rss.xml", Category: "Environmental Policy"},
	{Name: "Centre for Science and Environment", URL: "https://www.cseindia.org/rss.xml", Category: "Environmental Policy"},
	{Name: "ICRIER", URL: "https://icrier.org/feed/", Category: "Economic Policy"},
	{Name: "NIPFP", URL: "https://www.nipfp.org.in/blog/feed/", Category: "Economic Policy"},
	{Name: "IndiaSpend", URL: "https://www.indiaspend.com/feed/", Category: "Policy News"},
	{Name: "Internet Freedom Foundation", URL: "https://internetfreedom.in/rss/", Category: "Technology Policy"},
	{Name: "Software Freedom Law Centre", URL: "https://sflc.in/rss.xml", Category: "Technology Policy"},
	{Name: "IT for Change", URL: "https://itforchange.net/rss.xml", Category: "Technology Policy"},
	{Name: "Centre for Internet and Society", URL: "https://cis-india.org/RSS", Category: "Technology Policy"},
	{Name: "Dvara Research", URL: "https://www.dvara.com/research/feed/", Category: "Economic Policy"},
	{Name: "Accountability Initiative", URL: "https://accountabilityindia.in/feed/", Category: "Governance & Administration"},
	{Name: "India Development Review", URL: "https://idronline.org/feed/", Category: "Social Policy"},

	// --- Mainstream media: national ---
	{Name: "The Hindu National", URL: "https://www.thehindu.com/news/national/feeder/default.rss", Category: "Policy News"},
	{Name: "The Hindu Business", URL: "https://www.thehindu.com/business/Economy/feeder/default.rss", Category: "Economic Policy"},
	{Name: "The Hindu Science", URL: "https://www.thehindu.com/sci-tech/science/feeder/default.rss", Category: "Technology Policy"},
	{Name: "Indian Express India", URL: "https://indianexpress.com/section/india/feed/", Category: "Policy News",
		Headers: map[string]string{"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"}},
	{Name: "Indian Express Explained", URL: "https://indianexpress.com/section/explained/feed/", Category: "Policy News"},
	{Name: "Indian Express Business", URL: "https://indianexpress.com/section/business/feed/", Category: "Economic Policy"},
	{Name: "Hindustan Times India", URL: "https://www.hindustantimes.com/feeds/rss/india-news/rssfeed.xml", Category: "General News"},
	{Name: "Times of India India", URL: "https://timesofindia.indiatimes.com/rssfeeds/-2128936835.cms", Category: "General News"},
	{Name: "NDTV India News", URL: "https://feeds.feedburner.com/ndtvnews-india-news", Category: "General News"},
	{Name: "India Today", URL: "https://www.indiatoday.in/rss/1206514", Category: "General News"},
	{Name: "The Print", URL: "https://theprint.in/feed/", Category: "Policy News"},
	{Name: "The Wire", URL: "https://thewire.in/rss", Category: "Policy News"},
	{Name: "Scroll.in", URL: "https://scroll.in/feed", Category: "Policy News"},
	{Name: "Deccan Herald National", URL: "https://www.deccanherald.com/rss-internal/national.rss", Category: "General News"},
	{Name: "The Telegraph India", URL: "https://www.telegraphindia.com/rss/india", Category: "General News"},
	{Name: "Frontline", URL: "https://frontline.thehindu.com/feeder/default.rss", Category: "Policy News"},
	{Name: "Outlook India", URL: "https://www.outlookindia.com/rss/main", Category: "General News"},
	{Name: "Firstpost India", URL: "https://www.firstpost.com/commonfeeds/v1/mfp/rss/india.xml", Category: "General News"},
	{Name: "News18 India", URL: "https://www.news18.com/commonfeeds/v1/eng/rss/india.xml", Category: "General News"},
	{Name: "Reuters India", URL: "https://www.reuters.com/world/india/rss", Category: "General News"},
	{Name: "BBC India", URL: "https://feeds.bbci.co.uk/news/world/asia/india/rss.xml", Category: "General News"},
	{Name: "The Quint", URL: "https://www.thequint.com/stories.rss", Category: "General News"},
	{Name: "Newslaundry", URL: "https://www.newslaundry.com/stories.rss", Category: "Policy News"},
	{Name: "Article 14", URL: "https://article-14.com/rss", Category: "Constitutional & Legal"},
	{Name: "The Caravan", URL: "https://caravanmagazine.in/rss.xml", Category: "Policy News"},
	{Name: "Mongabay India", URL: "https://india.mongabay.com/feed/", Category: "Conservation Policy"},
	{Name: "Down To Earth", URL: "https://www.downtoearth.org.in/rss/all", Category: "Environmental Policy"},
	{Name: "Carbon Copy", URL: "https://carboncopy.info/feed/", Category: "Climate Policy"},
	{Name: "The Third Pole", URL: "https://www.thethirdpole.net/en/feed/", Category: "Climate Policy"},
	{Name: "Gaon Connection", URL: "https://www.gaonconnection.com/feed/", Category: "Agricultural Policy"},
	{Name: "Rural Voice", URL: "https://ruralvoice.in/rss.xml", Category: "Agricultural Policy"},

	// --- Business media ---
	{Name: "Economic Times Policy", URL: "https://economictimes.indiatimes.com/news/economy/policy/rssfeeds/1286551815.cms", Category: "Economic Policy"},
	{Name: "Economic Times Economy", URL: "https://economictimes.indiatimes.com/news/economy/rssfeeds/1373380680.cms", Category: "Economic Policy"},
	{Name: "Economic Times Tech Policy", URL: "https://economictimes.indiatimes.com/tech/technology/rssfeeds/78570530.cms", Category: "Technology Policy"},
	{Name: "Mint Economy", URL: "https://www.livemint.com/rss/economy", Category: "Economic Policy"},
	{Name: "Mint Politics", URL: "https://www.livemint.com/rss/politics", Category: "Policy News"},
	{Name: "Mint Money", URL: "https://www.livemint.com/rss/money", Category: "Economic Policy"},
	{Name: "Business Standard Economy", URL: "https://www.business-standard.com/rss/economy-102.rss", Category: "Economic Policy"},
	{Name: "Business Standard Finance", URL: "https://www.business-standard.com/rss/finance-103.rss", Category: "Economic Policy"},
	{Name: "Financial Express Economy", URL: "https://www.financialexpress.com/economy/feed/", Category: "Economic Policy"},
	{Name: "Moneycontrol Economy", URL: "https://www.moneycontrol.com/rss/economy.xml", Category: "Economic Policy"},
	{Name: "Business Today Economy", URL: "https://www.businesstoday.in/rssfeeds/?id=225346", Category: "Economic Policy"},
	{Name: "BloombergQuint", URL: "https://www.ndtvprofit.com/feed", Category: "Economic Policy"},
	{Name: "The Hindu BusinessLine Economy", URL: "https://www.thehindubusinessline.com/economy/feeder/default.rss", Category: "Economic Policy"},
	{Name: "The Hindu BusinessLine Agri", URL: "https://www.thehindubusinessline.com/economy/agri-business/feeder/default.rss", Category: "Agricultural Policy"},
	{Name: "Fortune India", URL: "https://www.fortuneindia.com/feed", Category: "Economic Policy"},
	{Name: "Inc42", URL: "https://inc42.com/feed/", Category: "Technology Policy"},
	{Name: "Entrackr", URL: "https://entrackr.com/feed/", Category: "Technology Policy"},
	{Name: "The Ken", URL: "https://the-ken.com/feed/", Category: "Technology Policy"},
	{Name: "Moneylife", URL: "https://www.moneylife.in/rss/latestnews.xml", Category: "Economic Policy"},

	// --- Technology and digital policy media ---
	{Name: "MediaNama", URL: "https://www.medianama.com/feed/", Category: "Technology Policy"},
	{Name: "The Hindu Technology", URL: "https://www.thehindu.com/sci-tech/technology/feeder/default.rss", Category: "Technology Policy"},
	{Name: "ET Telecom", URL: "https://telecom.economictimes.indiatimes.com/rss/topstories", Category: "Technology Policy"},
	{Name: "ET CIO Policy", URL: "https://cio.economictimes.indiatimes.com/rss/policy", Category: "Technology Policy"},
	{Name: "Voice and Data", URL: "https://www.voicendata.com/feed/", Category: "Technology Policy"},
	{Name: "Analytics India Magazine", URL: "https://analyticsindiamag.com/feed/", Category: "Technology Policy"},
	{Name: "FactorDaily", URL: "https://factordaily.com/feed/", Category: "Technology Policy"},

	// --- Healthcare, education, sector media ---
	{Name: "ET HealthWorld", URL: "https://health.economictimes.indiatimes.com/rss/topstories", Category: "Healthcare Policy"},
	{Name: "Express Healthcare", URL: "https://www.expresshealthcare.in/feed/", Category: "Healthcare Policy"},
	{Name: "BioSpectrum India", URL: "https://www.biospectrumindia.com/rss/news.xml", Category: "Healthcare Policy"},
	{Name: "Pharmabiz", URL: "http://www.pharmabiz.com/rss/topnews.xml", Category: "Healthcare Policy"},
	{Name: "The Hindu Education", URL: "https://www.thehindu.com/education/feeder/default.rss", Category: "Education Policy"},
	{Name: "Careers360 News", URL: "https://news.careers360.com/feed", Category: "Education Policy"},
	{Name: "EdexLive", URL: "https://www.edexlive.com/feed", Category: "Education Policy"},
	{Name: "ET Energyworld", URL: "https://energy.economictimes.indiatimes.com/rss/topstories", Category: "Renewable Energy Policy"},
	{Name: "Mercom India", URL: "https://www.mercomindia.com/feed", Category: "Renewable Energy Policy"},
	{Name: "Saur Energy", URL: "https://www.saurenergy.com/feed", Category: "Renewable Energy Policy"},
	{Name: "ET Auto Policy", URL: "https://auto.economictimes.indiatimes.com/rss/industry", Category: "Economic Policy"},
	{Name: "Swarajya Economy", URL: "https://www.swarajyamag.com/economy/feed", Category: "Economic Policy"},
	{Name: "ET Government", URL: "https://government.economictimes.indiatimes.com/rss/topstories", Category: "Governance & Administration"},
	{Name: "Governance Now", URL: "https://www.governancenow.com/rss.xml", Category: "Governance & Administration"},
	{Name: "The Better India Governance", URL: "https://www.thebetterindia.com/topics/governance/feed/", Category: "Governance & Administration"},

	// --- Defence and strategic affairs media ---
	{Name: "ET Defence", URL: "https://economictimes.indiatimes.com/news/defence/rssfeeds/4669949.cms", Category: "Defence & Security"},
	{Name: "Bharat Shakti", URL: "https://bharatshakti.in/feed/", Category: "Defence & Security"},
	{Name: "Force India", URL: "https://forceindia.net/feed/", Category: "Defence & Security"},
	{Name: "Defence News India", URL: "https://www.defencenews.in/feed", Category: "Defence & Security"},
	{Name: "StratNews Global", URL: "https://stratnewsglobal.com/feed/", Category: "Foreign Policy"},
	{Name: "The Diplomat South Asia", URL: "https://thediplomat.com/regions/south-asia/feed/", Category: "Foreign Policy"},
	{Name: "ANI National", URL: "https://aniportalimages.s3.amazonaws.com/feeds/national.xml", Category: "General News"},

	// --- Regional / state policy coverage ---
	{Name: "The News Minute", URL: "https://www.thenewsminute.com/feed", Category: "Policy News"},
	{Name: "East Mojo", URL: "https://www.eastmojo.com/feed/", Category: "General News"},
	{Name: "Kashmir Reader", URL: "https://kashmirreader.com/feed/", Category: "General News"},
	{Name: "The Shillong Times", URL: "https://theshillongtimes.com/feed/", Category: "General News"},
	{Name: "OdishaTV English", URL: "https://odishatv.in/feed", Category: "General News"},
	{Name: "The Tribune India", URL: "https://www.tribuneindia.com/rss/feed?catId=1346", Category: "General News"},
	{Name: "Deccan Chronicle Nation", URL: "https://www.deccanchronicle.com/google_feeds.xml", Category: "General News"},
	{Name: "Free Press Journal India", URL: "https://www.freepressjournal.in/stories.rss", Category: "General News"},
	{Name: "The Statesman India", URL: "https://www.thestatesman.com/india/feed", Category: "General News"},
	{Name: "National Herald", URL: "https://www.nationalheraldindia.com/stories.rss", Category: "Policy News"},
	{Name: "Mathrubhumi English", URL: "https://english.mathrubhumi.com/rss/news", Category: "General News"},
	{Name: "Onmanorama News", URL: "https://www.onmanorama.com/news.feeds.onmrss.xml", Category: "General News"},

	// --- International with India policy coverage ---
	{Name: "South China Morning Post India", URL: "https://www.scmp.com/rss/318198/feed", Category: "Foreign Policy"},
	{Name: "Al Jazeera India", URL: "https://www.aljazeera.com/xml/rss/all.xml", Category: "Foreign Policy"},
	{Name: "East Asia Forum", URL: "https://eastasiaforum.org/feed/", Category: "Foreign Policy"},
	{Name: "IMF News", URL: "https://www.imf.org/en/News/RSS?Language=ENG", Category: "Economic Policy"},
	{Name: "World Bank India", URL: "https://www.worldbank.org/en/country/india/whats-new", Category: "Economic Policy"},
	{Name: "UN News Asia", URL: "https://news.un.org/feed/subscribe/en/news/region/asia-pacific/feed/rss.xml", Category: "Foreign Policy"},
}
