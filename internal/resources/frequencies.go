package resources

// coreFrequencies is a built-in zipf-scale frequency table covering the core
// English vocabulary, used when no FREQUENCY.json lexicon ships with the data
// directory. Values follow the wordfreq large-English corpus; anything absent
// is treated as rare (zipf 0), which biases unknown words toward keep.
var coreFrequencies = map[string]float64{
	"the": 7.73, "to": 7.42, "and": 7.39, "of": 7.34, "a": 7.31,
	"in": 7.18, "i": 7.15, "is": 7.05, "that": 6.98, "you": 7.03,
	"it": 6.99, "for": 6.92, "on": 6.80, "was": 6.78, "with": 6.75,
	"he": 6.72, "as": 6.69, "this": 6.68, "be": 6.67, "are": 6.65,
	"have": 6.56, "at": 6.56, "not": 6.52, "but": 6.52, "we": 6.51,
	"they": 6.44, "his": 6.41, "from": 6.41, "by": 6.40, "what": 6.34,
	"she": 6.33, "or": 6.33, "my": 6.33, "all": 6.31, "her": 6.29,
	"can": 6.27, "me": 6.27, "do": 6.26, "so": 6.26, "if": 6.25,
	"will": 6.24, "your": 6.24, "one": 6.23, "about": 6.21, "there": 6.20,
	"an": 6.19, "like": 6.15, "just": 6.12, "out": 6.11, "up": 6.11,
	"no": 6.10, "get": 6.08, "when": 6.08, "because": 5.81, "him": 5.96,
	"know": 5.99, "how": 6.04, "people": 5.92, "them": 5.96, "time": 5.98,
	"good": 5.91, "some": 5.95, "would": 6.09, "more": 6.06, "now": 6.00,
	"who": 6.02, "go": 5.98, "see": 5.92, "think": 5.90, "which": 5.92,
	"make": 5.84, "want": 5.82, "really": 5.73, "very": 5.71, "here": 5.78,
	"going": 5.76, "said": 5.78, "day": 5.72, "us": 5.83, "work": 5.69,
	"way": 5.77, "new": 5.83, "back": 5.73, "much": 5.76, "then": 5.75,
	"look": 5.59, "come": 5.68, "over": 5.76, "also": 5.81, "well": 5.80,
	"only": 5.80, "year": 5.55, "take": 5.69, "after": 5.64, "first": 5.71,
	"say": 5.73, "other": 5.73, "than": 5.79, "into": 5.74, "could": 5.77,
	"these": 5.69, "two": 5.67, "need": 5.62, "give": 5.45, "thing": 5.42,
	"even": 5.72, "most": 5.66, "why": 5.70, "where": 5.69, "any": 5.74,
	"our": 5.80, "been": 5.90, "had": 6.11, "were": 6.06, "did": 5.81,
	"their": 5.96, "has": 6.08, "should": 5.73, "still": 5.64, "right": 5.76,
	"too": 5.80, "love": 5.59, "got": 5.72, "down": 5.69, "today": 5.54,
	"never": 5.60, "before": 5.59, "let": 5.56, "off": 5.63, "again": 5.60,
	"man": 5.56, "last": 5.58, "home": 5.48, "life": 5.54,
	"little": 5.49, "world": 5.49, "around": 5.49, "long": 5.50, "great": 5.54,
	"hello": 4.73, "hi": 5.26, "thanks": 5.21, "please": 5.45, "sorry": 5.17,
	"okay": 5.20, "ok": 5.50, "yes": 5.58, "maybe": 5.32, "sure": 5.52,
	"send": 5.38, "report": 5.14, "call": 5.54, "help": 5.59, "morning": 5.19,
	"night": 5.37, "food": 5.23, "water": 5.35, "money": 5.42, "house": 5.27,
	"market": 4.94, "office": 5.11, "meeting": 4.97, "school": 5.37, "friend": 5.19,
	"phone": 5.20, "email": 4.86, "computer": 4.96, "internet": 5.01, "online": 5.07,
	"video": 5.31, "game": 5.37, "music": 5.39, "movie": 5.14, "photo": 4.88,
}
