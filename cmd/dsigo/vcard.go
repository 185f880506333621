package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dsigo.dev/dsigo/cidutil"
	"dsigo.dev/dsigo/keys"
	"dsigo.dev/dsigo/qr"
	"dsigo.dev/dsigo/security"
	"dsigo.dev/dsigo/vcard"
)

func cmdVCard(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printVCardUsage(errOut)
		return 2
	}
	switch args[0] {
	case "create":
		return cmdVCardCreate(args[1:], out, errOut)
	case "qr":
		return cmdVCardQR(args[1:], out, errOut)
	case "cid":
		return cmdVCardCID(args[1:], out, errOut)
	case "help", "-h", "--help":
		printVCardUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown vcard subcommand: %s\n\n", args[0])
		printVCardUsage(errOut)
		return 2
	}
}

func printVCardUsage(w io.Writer) {
	fmt.Fprintln(w, "dsigo vcard: build and inspect identity records")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  dsigo vcard create --out <file.vcf> [--key <name>] [--dir <dir>] [--answers <file>] [--force]")
	fmt.Fprintln(w, "  dsigo vcard qr [--out <file.png>] [--size <px>] <file.vcf>")
	fmt.Fprintln(w, "  dsigo vcard cid <file.vcf>")
}

// vcardQuestions is the interactive field order for vcard create. The key
// doubles as the resume key in the answers file.
var vcardQuestions = []struct {
	key   string
	label string
	set   func(*vcard.Fields, string)
}{
	{"fn", "Full name (FN)", func(f *vcard.Fields, v string) { f.FN = v }},
	{"nickname", "Nickname", func(f *vcard.Fields, v string) { f.Nickname = v }},
	{"email", "Email", func(f *vcard.Fields, v string) { f.Email = v }},
	{"url", "Website URL", func(f *vcard.Fields, v string) { f.URL = v }},
	{"photo", "Photo URL", func(f *vcard.Fields, v string) { f.Photo = v }},
	{"note", "Note", func(f *vcard.Fields, v string) { f.Note = v }},
	{"lang", "Language (e.g. en)", func(f *vcard.Fields, v string) { f.Lang = v }},
	{"categories", "Categories (comma separated)", func(f *vcard.Fields, v string) { f.Categories = v }},
}

func cmdVCardCreate(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("vcard create", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var outPath string
	var keyName string
	var dir string
	var answersPath string
	var force bool
	fs.StringVar(&outPath, "out", "", "Output record file (.vcf)")
	fs.StringVar(&keyName, "key", "", "Stored key to publish as a KEY line")
	fs.StringVar(&dir, "dir", "", "Key store directory (default ~/.dsigo/keys)")
	fs.StringVar(&answersPath, "answers", "", "Answers file for resumable sessions (default <out>.answers.yaml)")
	fs.BoolVar(&force, "force", false, "Overwrite an existing record file")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if outPath == "" {
		fmt.Fprintln(errOut, "missing --out")
		return 2
	}
	if answersPath == "" {
		answersPath = outPath + ".answers.yaml"
	}
	log := newLogger(errOut)

	if !force {
		if _, err := os.Stat(outPath); err == nil {
			log.WithField("path", outPath).Error("record exists; use --force to overwrite")
			return 1
		}
	}

	prompt, err := newPrompter(os.Stdin, errOut, answersPath)
	if err != nil {
		log.WithError(err).Error("open answers file")
		return 1
	}

	var fields vcard.Fields
	for _, q := range vcardQuestions {
		answer, aerr := prompt.ask(q.key, q.label)
		if aerr != nil {
			log.WithError(aerr).Error("read answer; rerun to resume")
			return 1
		}
		q.set(&fields, strings.TrimSpace(answer))
	}

	var custom []vcard.CustomAttr
	if feedURL, aerr := prompt.ask("feed", "Feed URL (X-FEED, blank to skip)"); aerr != nil {
		log.WithError(aerr).Error("read answer; rerun to resume")
		return 1
	} else if feedURL = strings.TrimSpace(feedURL); feedURL != "" {
		custom = append(custom, vcard.CustomAttr{Name: "X-FEED", Value: feedURL})
	}
	if socials, aerr := prompt.ask("socials", "Social links as platform=url, comma separated (blank to skip)"); aerr != nil {
		log.WithError(aerr).Error("read answer; rerun to resume")
		return 1
	} else {
		for _, pair := range strings.Split(socials, ",") {
			platform, link, ok := strings.Cut(strings.TrimSpace(pair), "=")
			if !ok || platform == "" || link == "" {
				continue
			}
			custom = append(custom, vcard.CustomAttr{Name: vcard.SocialAttrName(platform), Value: link})
		}
	}
	if extras, aerr := prompt.ask("custom", "Custom attributes as NAME=value, comma separated (blank to skip)"); aerr != nil {
		log.WithError(aerr).Error("read answer; rerun to resume")
		return 1
	} else {
		for _, pair := range strings.Split(extras, ",") {
			name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
			if !ok || name == "" || value == "" {
				continue
			}
			custom = append(custom, vcard.CustomAttr{Name: vcard.CustomAttrName(name), Value: value})
		}
	}

	var keyLines []vcard.KeyLine
	if keyName != "" {
		store, serr := keys.Open(dir)
		if serr != nil {
			log.WithError(serr).Error("open key store")
			return 1
		}
		exp, eerr := store.Export(keyName)
		if eerr != nil {
			log.WithError(eerr).Error("load key")
			return 1
		}
		keyLines = append(keyLines, vcard.KeyLine{
			Alg:      security.AlgEd25519,
			KeyB64:   exp.Compact,
			Pref:     1,
			Encoding: "b",
		})
	}

	// The printed CID covers the exact file bytes, so it matches what
	// "vcard cid" computes over the written record.
	record := []byte(vcard.Render(fields, keyLines, custom) + "\n")
	if err := os.WriteFile(outPath, record, 0o644); err != nil {
		log.WithError(err).Error("write record")
		return 1
	}
	prompt.done()
	log.WithField("path", outPath).Info("wrote identity record")
	fmt.Fprintln(out, cidutil.ContentID(record))
	return 0
}

func cmdVCardQR(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("vcard qr", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var outPath string
	var size int
	fs.StringVar(&outPath, "out", "", "Output PNG path (default <file>.png)")
	fs.IntVar(&size, "size", qr.DefaultSize, "Image edge length in pixels")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: dsigo vcard qr [--out <file.png>] [--size <px>] <file.vcf>")
		return 2
	}
	path := fs.Arg(0)
	if outPath == "" {
		outPath = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "read %s: %v\n", path, err)
		return 1
	}
	if err := qr.WriteFile(string(data), outPath, size); err != nil {
		fmt.Fprintf(errOut, "render qr: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, outPath)
	return 0
}

func cmdVCardCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("vcard cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: dsigo vcard cid <file.vcf>")
		return 2
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read %s: %v\n", fs.Arg(0), err)
		return 1
	}
	fmt.Fprintln(out, cidutil.ContentID(data))
	return 0
}
