package extract

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// closedClass holds function words that are never topic candidates.
var closedClass = wordSet(
	// determiners and quantifiers
	"a", "an", "the", "this", "that", "these", "those", "each", "every", "either", "neither",
	"some", "any", "no", "all", "both", "few", "many", "much", "more", "most", "several",
	"other", "another", "such", "what", "which", "whose", "whatever", "whichever",
	// pronouns
	"i", "me", "my", "mine", "myself", "you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself", "it", "its", "itself",
	"we", "us", "our", "ours", "ourselves", "they", "them", "their", "theirs", "themselves",
	"who", "whom", "someone", "somebody", "something", "anyone", "anybody", "anything",
	"everyone", "everybody", "everything", "nobody", "nothing", "none", "one", "ones",
	// prepositions
	"about", "above", "across", "after", "against", "along", "amid", "among", "around", "as",
	"at", "before", "behind", "below", "beneath", "beside", "besides", "between", "beyond",
	"by", "despite", "down", "during", "except", "for", "from", "in", "inside", "into", "like",
	"near", "of", "off", "on", "onto", "out", "outside", "over", "past", "per", "since",
	"through", "throughout", "till", "to", "toward", "towards", "under", "underneath", "until",
	"up", "upon", "via", "with", "within", "without",
	// conjunctions
	"and", "but", "or", "nor", "so", "yet", "because", "although", "though", "while",
	"whereas", "unless", "whether", "if", "than", "then", "once", "when", "where", "why", "how",
	// auxiliaries and modals
	"am", "is", "are", "was", "were", "be", "been", "being", "do", "does", "did", "doing",
	"have", "has", "had", "having", "will", "would", "shall", "should", "can", "could",
	"may", "might", "must", "ought",
	// adverbs and particles
	"not", "very", "too", "also", "just", "only", "even", "still", "already", "again",
	"ever", "never", "always", "often", "sometimes", "soon", "now", "here", "there", "today",
	"tomorrow", "yesterday", "however", "therefore", "meanwhile", "almost", "quite", "rather",
	"perhaps", "instead", "otherwise", "yes", "well",
)

// verbCues are words after which an open-class word is read as a verb.
var verbCues = wordSet(
	"to", "will", "would", "shall", "should", "can", "could", "may", "might", "must",
	"did", "does", "do", "i", "we", "they", "you", "he", "she", "it", "who",
)

// commonVerbs are frequent news verbs in their inflected forms.
var commonVerbs = wordSet(
	"say", "says", "said", "tell", "tells", "told", "announce", "announces", "announced",
	"report", "reports", "reported", "win", "wins", "won", "lose", "loses", "lost",
	"launch", "launches", "launched", "plan", "plans", "planned", "make", "makes", "made",
	"take", "takes", "took", "taken", "give", "gives", "gave", "given", "get", "gets", "got",
	"go", "goes", "went", "gone", "come", "comes", "came", "see", "sees", "saw", "seen",
	"find", "finds", "found", "show", "shows", "showed", "shown", "become", "becomes", "became",
	"leave", "leaves", "left", "hold", "holds", "held", "bring", "brings", "brought",
	"begin", "begins", "began", "begun", "keep", "keeps", "kept", "meet", "meets", "met",
	"rise", "rises", "rose", "risen", "fall", "falls", "fell", "fallen", "grow", "grows", "grew",
	"build", "builds", "built", "sell", "sells", "sold", "buy", "buys", "bought",
	"pay", "pays", "paid", "run", "runs", "ran", "seek", "seeks", "sought",
	"warn", "warns", "warned", "urge", "urges", "urged", "claim", "claims", "claimed",
	"confirm", "confirms", "confirmed", "deny", "denies", "denied", "reveal", "reveals", "revealed",
	"approve", "approves", "approved", "reject", "rejects", "rejected", "agree", "agrees", "agreed",
	"expect", "expects", "expected", "increase", "increases", "increased", "decrease", "decreases",
	"decreased", "acquire", "acquires", "acquired", "invest", "invests", "invested",
	"arrest", "arrests", "arrested", "sign", "signs", "signed", "vote", "votes", "voted",
	"beat", "beats", "defeat", "defeats", "defeated", "release", "releases", "released",
)

// commonAdjectives are frequent adjectives that no suffix rule catches.
var commonAdjectives = wordSet(
	"new", "old", "big", "small", "large", "great", "good", "bad", "best", "worst", "better",
	"worse", "high", "low", "long", "short", "young", "early", "late", "latest", "major",
	"minor", "main", "key", "top", "strong", "weak", "hard", "easy", "free", "full", "open",
	"close", "real", "true", "false", "whole", "former", "recent", "huge", "tiny", "rich",
	"poor", "cheap", "fast", "slow", "quick", "clear", "common", "local", "global", "public",
	"private", "senior", "junior", "likely", "unlikely", "daily", "weekly", "monthly",
	"yearly", "annual", "first", "last", "next", "previous", "final", "entire", "certain",
	"serious", "severe", "extreme", "rapid", "sudden", "violent", "bright", "dark", "warm",
	"cold", "hot", "heavy", "light", "deep", "wide", "narrow", "safe", "dangerous", "ready",
)

// adjectiveSuffixes mark open-class words read as adjectives.
var adjectiveSuffixes = []string{
	"ous", "ful", "ive", "able", "ible", "less", "ish", "ical", "ic", "ary", "ant", "ent",
}

// verbSuffixes mark open-class words read as verbs.
var verbSuffixes = []string{"ing", "ed", "ize", "ise", "ized", "ised", "ify", "ified"}

// nounExceptions end in a verb or adjective suffix but are nouns.
var nounExceptions = wordSet(
	"building", "meeting", "morning", "evening", "spring", "thing", "king", "ring", "string",
	"wedding", "funding", "hearing", "ceiling", "feeling", "painting", "ruling", "warning",
	"president", "government", "student", "parent", "agent", "event", "percent", "talent",
	"client", "patient", "incident", "accident", "resident", "department", "agreement",
	"statement", "movement", "management", "development", "investment", "environment",
	"parliament", "tournament", "equipment", "treatment", "payment", "element", "moment",
	"comment", "content", "extent", "restaurant", "giant", "merchant", "tenant", "plant",
	"grant", "elephant", "library", "summary", "salary", "secretary", "dictionary", "anniversary",
	"boundary", "military", "republic", "public", "music", "topic", "traffic", "clinic",
	"economic", "pandemic", "epidemic", "mechanic", "critic", "athlete", "bed", "shed", "seed",
	"speed", "need", "feed", "creed", "weed", "exercise", "enterprise", "premise", "promise",
	"franchise", "size", "prize", "olive", "archive", "executive", "detective", "objective",
	"native", "relative", "representative", "initiative", "motive", "alternative", "police",
	"office", "service", "practice", "justice", "table", "cable", "vegetable", "variable",
)

// honorifics introduce a person's name.
var honorifics = wordSet(
	"mr", "mrs", "ms", "miss", "dr", "prof", "professor", "sir", "dame", "lord", "lady",
	"president", "senator", "governor", "mayor", "minister", "chancellor", "judge",
	"general", "captain", "coach", "rev", "saint", "st", "king", "queen", "prince", "princess",
)

// givenNames is a sample of common first names used to recognise people.
var givenNames = wordSet(
	"james", "john", "robert", "michael", "william", "david", "richard", "joseph", "thomas",
	"charles", "christopher", "daniel", "matthew", "anthony", "mark", "donald", "steven",
	"paul", "andrew", "joshua", "kenneth", "kevin", "brian", "george", "timothy", "ronald",
	"edward", "jason", "jeffrey", "ryan", "jacob", "gary", "nicholas", "eric", "jonathan",
	"stephen", "larry", "justin", "scott", "brandon", "benjamin", "samuel", "frank", "peter",
	"alexander", "patrick", "jack", "dennis", "jerry", "tyler", "aaron", "henry", "adam",
	"nathan", "zachary", "kyle", "walter", "harold", "carl", "arthur", "roger", "joe", "juan",
	"albert", "jose", "carlos", "luis", "pedro", "emmanuel", "vladimir", "xi", "narendra",
	"mary", "patricia", "jennifer", "linda", "elizabeth", "barbara", "susan", "jessica",
	"sarah", "karen", "lisa", "nancy", "betty", "margaret", "sandra", "ashley", "kimberly",
	"emily", "donna", "michelle", "carol", "amanda", "dorothy", "melissa", "deborah",
	"stephanie", "rebecca", "sharon", "laura", "cynthia", "kathleen", "amy", "angela",
	"shirley", "anna", "brenda", "pamela", "emma", "nicole", "helen", "samantha", "katherine",
	"christine", "debra", "rachel", "carolyn", "janet", "catherine", "maria", "heather",
	"diane", "ruth", "julie", "olivia", "joyce", "virginia", "victoria", "kelly", "lauren",
	"christina", "joan", "evelyn", "judith", "megan", "andrea", "cheryl", "hannah", "jane",
	"jacqueline", "martha", "gloria", "teresa", "ann", "sara", "madison", "frances", "kathryn",
	"janice", "jean", "abigail", "alice", "judy", "sophia", "grace", "denise", "amber",
	"marilyn", "beverly", "danielle", "theresa", "diana", "natalie", "brittany", "charlotte",
	"marie", "kamala", "angela", "ursula", "giorgia", "keir", "rishi", "boris", "elon",
	"taylor", "serena", "lionel", "cristiano", "roger", "rafael", "novak",
)

// places is a gazetteer of countries, regions and major cities, lowercase.
var places = wordSet(
	"afghanistan", "albania", "algeria", "argentina", "armenia", "australia", "austria",
	"bangladesh", "belarus", "belgium", "bolivia", "bosnia", "brazil", "bulgaria", "cambodia",
	"cameroon", "canada", "chile", "china", "colombia", "croatia", "cuba", "cyprus", "czechia",
	"denmark", "ecuador", "egypt", "england", "estonia", "ethiopia", "finland", "france",
	"georgia", "germany", "ghana", "greece", "hungary", "iceland", "india", "indonesia",
	"iran", "iraq", "ireland", "israel", "italy", "jamaica", "japan", "jordan", "kazakhstan",
	"kenya", "korea", "north korea", "south korea", "kuwait", "latvia", "lebanon", "libya",
	"lithuania", "luxembourg", "malaysia", "mexico", "moldova", "mongolia", "morocco",
	"nepal", "netherlands", "new zealand", "nigeria", "norway", "pakistan", "palestine",
	"panama", "peru", "philippines", "poland", "portugal", "qatar", "romania", "russia",
	"rwanda", "saudi arabia", "scotland", "senegal", "serbia", "singapore", "slovakia",
	"slovenia", "somalia", "south africa", "spain", "sri lanka", "sudan", "sweden",
	"switzerland", "syria", "taiwan", "tanzania", "thailand", "tunisia", "turkey", "uganda",
	"ukraine", "united kingdom", "united states", "uruguay", "venezuela", "vietnam", "wales",
	"yemen", "zambia", "zimbabwe", "america", "britain", "great britain", "europe", "asia",
	"africa", "antarctica", "oceania", "north america", "south america", "latin america",
	"middle east", "gaza", "west bank", "crimea", "siberia", "scandinavia", "balkans",
	"california", "texas", "florida", "new york", "washington", "ohio", "michigan", "virginia",
	"arizona", "nevada", "oregon", "alaska", "hawaii", "colorado", "illinois", "massachusetts",
	"paris", "london", "berlin", "madrid", "rome", "lisbon", "dublin", "amsterdam", "brussels",
	"vienna", "prague", "warsaw", "budapest", "athens", "stockholm", "oslo", "copenhagen",
	"helsinki", "moscow", "kyiv", "kiev", "istanbul", "ankara", "cairo", "lagos", "nairobi",
	"johannesburg", "cape town", "tokyo", "osaka", "beijing", "shanghai", "hong kong",
	"seoul", "delhi", "new delhi", "mumbai", "bangalore", "karachi", "dhaka", "bangkok",
	"jakarta", "manila", "sydney", "melbourne", "auckland", "toronto", "montreal",
	"vancouver", "ottawa", "chicago", "los angeles", "san francisco", "boston", "seattle",
	"miami", "atlanta", "houston", "dallas", "denver", "detroit", "philadelphia",
	"mexico city", "bogota", "lima", "santiago", "buenos aires", "sao paulo", "rio de janeiro",
	"tehran", "baghdad", "riyadh", "dubai", "doha", "jerusalem", "tel aviv", "beirut",
	"damascus", "geneva", "zurich", "munich", "frankfurt", "hamburg", "milan", "barcelona",
	"manchester", "liverpool", "edinburgh", "glasgow", "cardiff", "belfast", "brooklyn",
	"silicon valley", "wall street", "us", "usa", "uk", "uae",
)

// orgSuffixes end an organization name.
var orgSuffixes = wordSet(
	"corp", "corporation", "inc", "incorporated", "ltd", "limited", "llc", "plc", "gmbh", "ag",
	"co", "company", "group", "holdings", "bank", "university", "college", "institute",
	"association", "agency", "council", "committee", "commission", "party", "ministry",
	"department", "foundation", "federation", "league", "union", "club", "fc", "airlines",
	"airways", "motors", "technologies", "systems", "labs", "partners", "industries",
	"times", "post", "news", "journal", "press", "network", "organization", "organisation",
	"school", "hospital", "court", "senate", "congress", "parliament", "police", "army",
	"navy", "reserve",
)

// orgHeads start an organization name when followed by "of".
var orgHeads = wordSet(
	"university", "bank", "ministry", "department", "institute", "college", "museum",
	"church", "house", "court", "office", "board", "league", "federation", "association",
)

// organizations are well-known single-token organization names, lowercase.
var organizations = wordSet(
	"google", "alphabet", "apple", "microsoft", "amazon", "meta", "facebook", "netflix",
	"tesla", "nvidia", "intel", "ibm", "oracle", "samsung", "sony", "toyota", "honda",
	"boeing", "airbus", "reuters", "bloomberg", "nasa", "fifa", "uefa", "nato", "un",
	"unesco", "unicef", "who", "imf", "opec", "eu", "bbc", "cnn", "nbc", "abc", "cbs",
	"fbi", "cia", "nhs", "openai", "spacex", "uber", "twitter", "youtube", "walmart",
	"pfizer", "moderna", "visa", "mastercard", "paypal", "shell", "bp", "exxon", "chevron",
)

// abbreviations keep their trailing period without ending a phrase.
var abbreviations = wordSet(
	"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "rev", "gen", "capt", "sen", "gov",
	"corp", "inc", "ltd", "co", "mt", "ft", "vs", "no",
)

// nameConnectors may join capitalised words inside one name.
var nameConnectors = wordSet("de", "da", "del", "van", "von", "der", "la", "le", "&")
