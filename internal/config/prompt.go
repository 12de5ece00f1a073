package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Prompter asks the user a question and returns the typed answer. The
// interface exists so the configure flow can be driven by a scripted
// implementation in tests.
type Prompter interface {
	Ask(question string) (string, error)
}

// StdinPrompter reads answers from standard input.
type StdinPrompter struct {
	reader *bufio.Reader
}

// NewPrompter creates a prompter that reads from standard input.
func NewPrompter() *StdinPrompter {
	return &StdinPrompter{reader: bufio.NewReader(os.Stdin)}
}

// Ask prints question and returns the trimmed line the user entered.
func (p *StdinPrompter) Ask(question string) (string, error) {
	fmt.Printf("%s ", question)
	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// Mask hides a stored value, keeping only the last three characters visible.
// An unset value renders as ten asterisks.
func Mask(v string) string {
	if v == "" {
		return strings.Repeat("*", 10)
	}
	if len(v) <= 3 {
		return v
	}
	return strings.Repeat("*", len(v)-3) + v[len(v)-3:]
}

// Configure interactively (re-)prompts for the token, secret key and API host,
// showing previously stored values masked as defaults, and writes the result
// to path. Empty input keeps the stored value.
func Configure(p Prompter, path string) error {
	existing, err := Load(path)
	if err != nil {
		existing = &Credentials{}
	}

	token, err := ask(p, "Token", existing.Token)
	if err != nil {
		return err
	}
	secretKey, err := ask(p, "Secret Key", existing.SecretKey)
	if err != nil {
		return err
	}
	apiHost, err := ask(p, "API Host", existing.APIHost)
	if err != nil {
		return err
	}

	return Save(path, &Credentials{Token: token, SecretKey: secretKey, APIHost: apiHost})
}

func ask(p Prompter, name, current string) (string, error) {
	answer, err := p.Ask(fmt.Sprintf("%s [%s]:", name, Mask(current)))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}
