// Package digit recognizes decimal digits in a byte stream, either as ASCII
// characters or as spelled-out English words.
package digit

// MaxWordLen is the length of the longest digit word ("three", "seven", "eight").
const MaxWordLen = 5

// words maps a spelled-out digit to its value: words[i] has value i+1.
var words = [9]string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// Words returns the digit words in value order.
func Words() []string {
	out := make([]string, len(words))
	copy(out, words[:])
	return out
}

// WordValue returns the value of a spelled-out digit.
func WordValue(word string) (int, bool) {
	for i, w := range words {
		if w == word {
			return i + 1, true
		}
	}
	return 0, false
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
