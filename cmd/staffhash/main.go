// cmd/staffhash/main.go
//
// staffhash prints the bcrypt hash of a staff access code, ready to paste
// into .afrofeast/config.yaml or AFROFEAST_STAFF_HASH.
//
//	staffhash 4729

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kingrea/afrofeast/internal/access"
)

func main() {
	if len(os.Args) != 2 || strings.TrimSpace(os.Args[1]) == "" {
		fmt.Fprintln(os.Stderr, "usage: staffhash <access-code>")
		os.Exit(2)
	}
	hash, err := access.HashCode(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing access code: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
