package textproc

// stopwords is a compact English stopword set. Tokens of length <= 2 are
// filtered before this lookup, so short stopwords are omitted.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "any": true, "can": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"has": true, "had": true, "have": true, "him": true, "his": true,
	"how": true, "its": true, "may": true, "new": true, "now": true,
	"she": true, "see": true, "two": true, "who": true, "why": true,
	"will": true, "with": true, "this": true, "that": true, "they": true,
	"them": true, "then": true, "than": true, "there": true, "these": true,
	"those": true, "their": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "would": true, "could": true, "should": true,
	"about": true, "above": true, "after": true, "again": true, "against": true,
	"been": true, "before": true, "being": true, "below": true, "between": true,
	"both": true, "does": true, "doing": true, "down": true, "during": true,
	"each": true, "from": true, "further": true, "here": true, "into": true,
	"just": true, "more": true, "most": true, "only": true, "other": true,
	"over": true, "same": true, "some": true, "such": true, "through": true,
	"under": true, "until": true, "very": true, "were": true, "your": true,
	"yours": true, "yourself": true, "once": true, "because": true,
	"itself": true, "himself": true, "herself": true, "themselves": true,
	"ours": true, "ourselves": true, "off": true, "too": true, "own": true,
}
