// Package emoji provides the catalogue behind the composer's emoji picker.
package emoji

import "strings"

// Emoji is a picker entry: the character and its search name.
type Emoji struct {
	Char string
	Name string
}

// Catalogue is the picker's emoji set, in display order.
var Catalogue = []Emoji{
	{"😀", "grinning"},
	{"😂", "joy"},
	{"😅", "sweat smile"},
	{"😊", "blush"},
	{"😍", "heart eyes"},
	{"🤔", "thinking"},
	{"😎", "sunglasses"},
	{"😢", "cry"},
	{"😡", "angry"},
	{"🙃", "upside down"},
	{"👍", "thumbs up"},
	{"👎", "thumbs down"},
	{"👋", "wave"},
	{"🙏", "pray"},
	{"👏", "clap"},
	{"💪", "muscle"},
	{"🤝", "handshake"},
	{"❤️", "heart"},
	{"🔥", "fire"},
	{"✨", "sparkles"},
	{"🎉", "party"},
	{"🎯", "dart"},
	{"🚀", "rocket"},
	{"💡", "bulb"},
	{"✅", "check"},
	{"❌", "cross"},
	{"⚠️", "warning"},
	{"❓", "question"},
	{"💬", "speech"},
	{"👀", "eyes"},
	{"☕", "coffee"},
	{"🍕", "pizza"},
	{"🎂", "cake"},
	{"🌮", "taco"},
	{"🐛", "bug"},
	{"🤖", "robot"},
	{"📌", "pin"},
	{"📅", "calendar"},
	{"⏰", "alarm"},
	{"🏆", "trophy"},
}

// Search returns catalogue entries whose name contains the query,
// case-insensitively. An empty query returns the full catalogue.
func Search(query string) []Emoji {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Catalogue
	}

	var out []Emoji
	for _, e := range Catalogue {
		if strings.Contains(e.Name, query) {
			out = append(out, e)
		}
	}
	return out
}
