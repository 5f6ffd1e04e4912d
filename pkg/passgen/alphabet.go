package passgen

const (
	letters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	special  = "~`!@#$%^&*()-_=+[]{};:'\"\\|/?"
	digits   = "0123456789"
	hexChars = "0123456789abcdef"
)

// Alphabet returns the characters random letters are drawn from.
// Digits are never part of it; they come from the number chance instead.
func Alphabet(includeSpecial bool) []rune {
	if !includeSpecial {
		return []rune(letters)
	}
	return []rune(letters + special)
}
