package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when a login email isn't found, so response
// time stays constant and usernames can't be enumerated by timing.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPasswordCheck runs a bcrypt compare against a throwaway hash.
func BurnPasswordCheck(password string) {
	bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
