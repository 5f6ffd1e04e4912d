// Command easypass prints a random password or hex string.
//
// Usage:
//
//	easypass [flags] [words...]
//
// Examples:
//
//	easypass                 # 20 characters, letters and digits
//	easypass correct horse   # words first, random filler after
//	easypass -s words        # leetspeak substitution
//	easypass -Sl 15 words    # special symbols, 15 characters
//	easypass -h -l 32        # 32 hex digits
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
