package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"LapJoint/internal/auth"
)

// Prints a bcrypt hash for OPERATOR_PASSWORD_HASH. The password is taken
// from the first argument or, if absent, from stdin.
func main() {
	var password string
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatal("password required")
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		log.Fatal("password required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("hash error: %v", err)
	}
	fmt.Println(hash)
}
