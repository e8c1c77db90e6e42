package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// resetPasswordLen is the length of passwords handed out by admin resets.
const resetPasswordLen = 10

// passwordClasses are the character classes every generated password must
// draw from, so resets always satisfy the login form's complexity hint.
var passwordClasses = []string{
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"abcdefghijklmnopqrstuvwxyz",
	"0123456789",
	"!@#$%&*",
}

// GeneratePassword returns a random password of n characters with at least
// one character from every class. n is raised to the class count when too
// small. Uses crypto/rand. Do not log the returned string.
func GeneratePassword(n int) (string, error) {
	if n < len(passwordClasses) {
		n = len(passwordClasses)
	}
	pick := func(s string) (byte, error) {
		i, err := rand.Int(rand.Reader, big.NewInt(int64(len(s))))
		if err != nil {
			return 0, err
		}
		return s[i.Int64()], nil
	}

	result := make([]byte, n)
	var all string
	for i, class := range passwordClasses {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		result[i] = c
		all += class
	}
	for i := len(passwordClasses); i < n; i++ {
		c, err := pick(all)
		if err != nil {
			return "", err
		}
		result[i] = c
	}
	// Fisher-Yates so the guaranteed class characters do not cluster at
	// the front.
	for i := n - 1; i >= 1; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("shuffle: %w", err)
		}
		result[i], result[j.Int64()] = result[j.Int64()], result[i]
	}
	return string(result), nil
}
