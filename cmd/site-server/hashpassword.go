package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Its-donkey/archambeau-site/internal/identity"
)

// passwordReader prompts for a secret and returns what was typed.
type passwordReader func(prompt string) (string, error)

// hashPasswordCommand handles the hash-password subcommand and returns the
// process exit code.
func hashPasswordCommand(args []string, read passwordReader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hash-password", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: site-server hash-password\n\n")
		fmt.Fprintf(stderr, "Prints an Argon2id hash for admin.password_hash in config.json.\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	password, err := read("Enter password:   ")
	if err != nil {
		fmt.Fprintf(stderr, "Error reading password: %v\n", err)
		return 1
	}
	if strings.TrimSpace(password) == "" {
		fmt.Fprintln(stderr, "Password cannot be empty")
		return 1
	}
	confirm, err := read("Confirm password: ")
	if err != nil {
		fmt.Fprintf(stderr, "Error reading password confirmation: %v\n", err)
		return 1
	}
	if password != confirm {
		fmt.Fprintln(stderr, "Passwords do not match")
		return 1
	}

	hash, err := identity.HashPassword(password)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, hash)
	return 0
}

// terminalPassword reads without echo from the controlling terminal.
func terminalPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		var line string
		_, err := fmt.Fscanln(os.Stdin, &line)
		return line, err
	}
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(password), nil
}
