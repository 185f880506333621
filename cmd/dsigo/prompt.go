package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// prompter asks labeled questions on the terminal and records every answer
// in a YAML file as it goes, so an interrupted session can be resumed
// without retyping.
type prompter struct {
	in      *bufio.Scanner
	out     io.Writer
	path    string
	answers map[string]string
}

func newPrompter(in io.Reader, out io.Writer, path string) (*prompter, error) {
	p := &prompter{
		in:      bufio.NewScanner(in),
		out:     out,
		path:    path,
		answers: make(map[string]string),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, &p.answers); err != nil {
		return nil, fmt.Errorf("resume %s: %w", path, err)
	}
	if p.answers == nil {
		p.answers = make(map[string]string)
	}
	return p, nil
}

// ask returns the saved answer for key if one exists, otherwise prompts
// with label and persists the reply.
func (p *prompter) ask(key, label string) (string, error) {
	if saved, ok := p.answers[key]; ok {
		return saved, nil
	}
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	answer := p.in.Text()
	p.answers[key] = answer
	return answer, p.save()
}

func (p *prompter) save() error {
	data, err := yaml.Marshal(p.answers)
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o600)
}

// done removes the answers file after a completed session.
func (p *prompter) done() {
	os.Remove(p.path)
}
