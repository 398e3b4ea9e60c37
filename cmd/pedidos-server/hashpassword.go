package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sainthonore/pedidos/internal/auth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Print a username:argon2id-hash line for the users section of the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			return hashPassword(in, cmd.ErrOrStderr(), cmd.OutOrStdout(), secretReader(in, cmd.ErrOrStderr()))
		},
	}
}

// hashPassword prompts on prompt, reads the username from in and the
// password twice through readSecret, and writes the result line to out.
func hashPassword(in *bufio.Reader, prompt, out io.Writer, readSecret func(string) (string, error)) error {
	fmt.Fprint(prompt, "Enter username: ")
	username, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read username: %w", err)
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username cannot be empty")
	}

	password, err := readSecret("Enter password:   ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if password == "" {
		return errors.New("password cannot be empty")
	}
	confirm, err := readSecret("Confirm password: ")
	if err != nil {
		return fmt.Errorf("read password confirmation: %w", err)
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s:%s\n", username, hash)
	return nil
}

// secretReader reads without echo when stdin is a terminal and falls back
// to plain lines from in, so the command also works in a pipe.
func secretReader(in *bufio.Reader, prompt io.Writer) func(string) (string, error) {
	fd := int(os.Stdin.Fd())
	return func(label string) (string, error) {
		fmt.Fprint(prompt, label)
		if term.IsTerminal(fd) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(prompt)
			return string(b), err
		}
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}
