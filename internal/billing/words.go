package billing

import "strings"

var (
	wordOnes = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	wordTens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
	wordTeen = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
)

// AmountInWords converts a non-negative integer amount into its worded
// form using the Indian numbering convention: ones, tens, hundreds,
// thousands, lakhs. There is no crore group, so inputs of one crore
// (10,000,000) or more are outside the supported domain.
func AmountInWords(n int64) string {
	if n == 0 {
		return "Zero"
	}

	if n < 1000 {
		return wordsBelowThousand(n)
	}
	if n < 100000 {
		out := wordsBelowThousand(n/1000) + " Thousand"
		if rem := n % 1000; rem != 0 {
			out += " " + wordsBelowThousand(rem)
		}
		return out
	}

	out := wordsBelowThousand(n/100000) + " Lakh"
	rem := n % 100000
	if rem >= 1000 {
		out += " " + wordsBelowThousand(rem/1000) + " Thousand"
		rem = rem % 1000
	}
	if rem > 0 {
		out += " " + wordsBelowThousand(rem)
	}
	return out
}

// wordsBelowThousand renders 1..999 via hundreds/tens/ones decomposition.
func wordsBelowThousand(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return wordOnes[n]
	case n < 20:
		return wordTeen[n-10]
	case n < 100:
		out := wordTens[n/10]
		if n%10 != 0 {
			out += " " + wordOnes[n%10]
		}
		return out
	default:
		out := wordOnes[n/100] + " Hundred"
		if n%100 != 0 {
			out += " " + wordsBelowThousand(n%100)
		}
		return strings.TrimSpace(out)
	}
}
