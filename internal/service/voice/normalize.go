package voice

// NormalizeDigits reduces caller input to bare digits. Keypad presses take
// precedence over the speech transcription; everything that is not a decimal
// digit is stripped, so "three zero, 301!" and "30301" come out the same.
// Returns "" when nothing numeric remains.
func NormalizeDigits(digits, speech string) string {
	input := digits
	if input == "" {
		input = speech
	}

	out := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		if input[i] >= '0' && input[i] <= '9' {
			out = append(out, input[i])
		}
	}
	return string(out)
}
