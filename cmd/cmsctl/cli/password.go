package cli

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

const passwordCost = 12

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash and a session secret for the admin .env",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			p, err := promptPassword("Admin password: ")
			if err != nil {
				return err
			}
			password = p
		}
		if strings.TrimSpace(password) == "" {
			return errors.New("password must not be empty")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
		if err != nil {
			return err
		}
		secret, err := newSessionSecret()
		if err != nil {
			return err
		}
		writeCredentials(cmd.OutOrStdout(), string(hash), secret)
		return nil
	},
}

func writeCredentials(w io.Writer, hash, secret string) {
	fmt.Fprintln(w, "Hash:", hash)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add to .env:")
	fmt.Fprintln(w, dotenvLine("ADMIN_PASSWORD_HASH", hash))
	fmt.Fprintln(w, dotenvLine("ADMIN_SESSION_SECRET", secret))
}

// dotenvLine single-quotes the value so godotenv does not expand the '$'
// signs of a bcrypt hash.
func dotenvLine(key, value string) string {
	return key + "='" + strings.ReplaceAll(value, "'", `\'`) + "'"
}

func newSessionSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func promptPassword(prompt string) (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, prompt)
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(b), "\r\n"), nil
	}
	fmt.Fprintln(os.Stderr, "warning: reading password from stdin; input will not be masked")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
