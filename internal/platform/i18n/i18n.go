package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Order matters: reports render name columns in this order.
var supportedTags = []language.Tag{
	language.Russian,
	language.English,
}

var tagMatcher = language.NewMatcher(supportedTags)
var supportedTagSet = make(map[string]language.Tag, len(supportedTags))

func init() {
	for _, tag := range supportedTags {
		supportedTagSet[tag.String()] = tag
	}
}

// SupportedTags returns the list of supported language tags.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Count returns the number of supported languages.
func Count() int {
	return len(supportedTags)
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return language.English
}

// IsSupported reports whether tag is one of the supported tags.
func IsSupported(tag language.Tag) bool {
	_, ok := supportedTagSet[tag.String()]
	return ok
}

// ParseTag parses value and returns the supported tag it names.
// Regional variants resolve to their base language ("ru-RU" -> "ru").
func ParseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Tag{}, false
	}
	if tag, ok := supportedTagSet[parsed.String()]; ok {
		return tag, true
	}
	base, confidence := parsed.Base()
	if confidence == language.No {
		return language.Tag{}, false
	}
	if tag, ok := supportedTagSet[base.String()]; ok {
		return tag, true
	}
	return language.Tag{}, false
}

// MatchTags returns the supported tag that best matches the preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := tagMatcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

// Code returns the upper-case ISO 639-1 code used as a column label ("RU").
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return strings.ToUpper(base.String())
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
