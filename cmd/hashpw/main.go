// Command hashpw prints a bcrypt hash for the given password, suitable
// for the AUTH_PASSWORD_HASH environment variable.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <password>\n", os.Args[0])
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	fmt.Println(string(hash))
}
