package sentence

import "strings"

// VerbMarker is contained in every verb tag (VB, VBG, VBN, ...).
const VerbMarker = "V"

// Punctuation are the tags that delimit sentence structure.
const Punctuation = ".,?!;:()-"

var (
	ActualVerbTags = []string{"VB", "VBD", "VBP", "VBZ"}
	ProperNounTags = []string{"NNP", "NNPS"}
	NounTags       = append(append([]string{}, ProperNounTags...), "NN", "NNS", "PRP")
	SubjectTags    = append(append([]string{}, NounTags...), "DT", "WP$", "PRP$")
)

func IsActualVerb(tag string) bool {
	return contains(ActualVerbTags, tag)
}

func IsProperNoun(tag string) bool {
	return contains(ProperNounTags, tag)
}

func IsNoun(tag string) bool {
	return contains(NounTags, tag)
}

// IsSubject reports whether a token with this tag can be part of a subject
// phrase: nouns, pronouns, determiners and possessives.
func IsSubject(tag string) bool {
	return contains(SubjectTags, tag)
}

// IsVerbLike reports whether the tag carries the verb marker. Gerunds and
// participles (VBG, VBN) are verb like but not actual verbs.
func IsVerbLike(tag string) bool {
	return strings.Contains(tag, VerbMarker)
}

// IsPunctuation reports whether the tag is a run of the Punctuation set. An
// empty tag is considered punctuation: it carries no content.
func IsPunctuation(tag string) bool {
	return strings.Contains(Punctuation, tag)
}

// IsOpenBracket and IsCloseBracket operate on the token text, not the tag.
func IsOpenBracket(text string) bool {
	return text == "[" || text == "{" || text == "("
}

func IsCloseBracket(text string) bool {
	return text == "]" || text == "}" || text == ")"
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}

	return false
}
