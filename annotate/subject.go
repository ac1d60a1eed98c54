package annotate

import (
	"strings"

	sent "github.com/revelaction/segmet/sentence"
)

// findSubject backtracks from the verb at index i looking for a noun, or a
// sequence of them. Punctuation before any noun means there is no subject.
//
//	The/DT cat/NN sat/VBD            ->  "The cat"
//	His/PRP$ cat/NN Tom/NNP sat/VBD  ->  "His cat Tom"
//	The/DT big/JJ cat/NN sat/VBD     ->  "cat"
func findSubject(tokens []sent.Token, i int) (string, bool) {
	for ; i >= 0; i-- {
		tag := tokens[i].Tag
		if sent.IsNoun(tag) {
			break
		}
		if sent.IsPunctuation(tag) {
			return "", false
		}
	}

	if i < 0 {
		return "", false
	}

	var words []string
	for ; i >= 0 && sent.IsSubject(tokens[i].Tag); i-- {
		words = append([]string{tokens[i].Text}, words...)

		// determiners and possessives close the phrase
		if !sent.IsNoun(tokens[i].Tag) {
			break
		}
	}

	return strings.Join(words, " "), true
}
