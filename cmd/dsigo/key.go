package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"dsigo.dev/dsigo/keys"
	"dsigo.dev/dsigo/security"
)

func cmdKey(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printKeyUsage(errOut)
		return 2
	}
	switch args[0] {
	case "create":
		return cmdKeyCreate(args[1:], out, errOut)
	case "restore":
		return cmdKeyRestore(args[1:], out, errOut)
	case "encode":
		return cmdKeyEncode(args[1:], out, errOut)
	case "decode":
		return cmdKeyDecode(args[1:], out, errOut)
	case "list":
		return cmdKeyList(args[1:], out, errOut)
	case "export":
		return cmdKeyExport(args[1:], out, errOut)
	case "help", "-h", "--help":
		printKeyUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown key subcommand: %s\n\n", args[0])
		printKeyUsage(errOut)
		return 2
	}
}

func printKeyUsage(w io.Writer) {
	fmt.Fprintln(w, "dsigo key: local ed25519 key management")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  dsigo key create --name <name> [--dir <dir>] [--force] [--show-mnemonic]")
	fmt.Fprintln(w, "  dsigo key restore --name <name> --mnemonic \"<24 words>\" [--dir <dir>] [--force]")
	fmt.Fprintln(w, "  dsigo key encode <public.pem>")
	fmt.Fprintln(w, "  dsigo key decode <compact-base64>")
	fmt.Fprintln(w, "  dsigo key list [--dir <dir>]")
	fmt.Fprintln(w, "  dsigo key export --name <name> [--dir <dir>]")
}

func cmdKeyCreate(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key create", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var dir string
	var force bool
	var showMnemonic bool
	fs.StringVar(&name, "name", "", "Key name (directory under ~/.dsigo/keys)")
	fs.StringVar(&dir, "dir", "", "Key store directory (default ~/.dsigo/keys)")
	fs.BoolVar(&force, "force", false, "Overwrite existing key files")
	fs.BoolVar(&showMnemonic, "show-mnemonic", false, "Print the BIP-39 backup phrase for the new key")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "missing --name")
		return 2
	}
	log := newLogger(errOut)

	store, err := keys.Open(dir)
	if err != nil {
		log.WithError(err).Error("open key store")
		return 1
	}
	exp, err := store.Create(name, force)
	if err != nil {
		log.WithError(err).Error("create key")
		return 1
	}
	log.WithField("name", name).Info("created key")
	fmt.Fprintln(out, exp.Compact)

	if showMnemonic {
		kp, lerr := store.Load(name)
		if lerr != nil {
			log.WithError(lerr).Error("load key")
			return 1
		}
		mnemonic, merr := kp.Mnemonic()
		if merr != nil {
			log.WithError(merr).Error("derive mnemonic")
			return 1
		}
		fmt.Fprintln(errOut, "Backup phrase (write it down, then clear your terminal):")
		fmt.Fprintln(errOut, mnemonic)
	}
	return 0
}

func cmdKeyRestore(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key restore", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var dir string
	var mnemonic string
	var force bool
	fs.StringVar(&name, "name", "", "Key name (directory under ~/.dsigo/keys)")
	fs.StringVar(&dir, "dir", "", "Key store directory (default ~/.dsigo/keys)")
	fs.StringVar(&mnemonic, "mnemonic", "", "24-word BIP-39 backup phrase")
	fs.BoolVar(&force, "force", false, "Overwrite existing key files")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "missing --name")
		return 2
	}
	if mnemonic == "" {
		fmt.Fprintln(errOut, "missing --mnemonic")
		return 2
	}
	log := newLogger(errOut)

	kp, err := keys.FromMnemonic(mnemonic)
	if err != nil {
		log.WithError(err).Error("restore key")
		return 2
	}
	store, err := keys.Open(dir)
	if err != nil {
		log.WithError(err).Error("open key store")
		return 1
	}
	exp, err := store.Import(name, kp, force)
	if err != nil {
		log.WithError(err).Error("store key")
		return 1
	}
	log.WithField("name", name).Info("restored key")
	fmt.Fprintln(out, exp.Compact)
	return 0
}

func cmdKeyEncode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key encode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: dsigo key encode <public.pem>")
		return 2
	}
	armored, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read %s: %v\n", fs.Arg(0), err)
		return 1
	}
	pub, err := keys.LoadPublic(armored)
	if err != nil {
		fmt.Fprintf(errOut, "invalid public key: %v\n", err)
		return 1
	}
	compact, err := keys.CompactID(pub)
	if err != nil {
		fmt.Fprintf(errOut, "encode: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, compact)
	return 0
}

func cmdKeyDecode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key decode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: dsigo key decode <compact-base64>")
		return 2
	}
	der, err := security.CompactDecode(strings.TrimSpace(fs.Arg(0)))
	if err != nil {
		fmt.Fprintf(errOut, "invalid compact key: %v\n", err)
		return 1
	}
	_, _ = out.Write(security.Armor(der, security.BlockPublic))
	return 0
}

func cmdKeyList(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key list", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var dir string
	fs.StringVar(&dir, "dir", "", "Key store directory (default ~/.dsigo/keys)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	store, err := keys.Open(dir)
	if err != nil {
		fmt.Fprintf(errOut, "open key store: %v\n", err)
		return 1
	}
	entries, err := store.List()
	if err != nil {
		fmt.Fprintf(errOut, "list keys: %v\n", err)
		return 1
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s\t%s\n", e.Name, e.Fingerprint)
	}
	return 0
}

func cmdKeyExport(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key export", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var name string
	var dir string
	fs.StringVar(&name, "name", "", "Key name")
	fs.StringVar(&dir, "dir", "", "Key store directory (default ~/.dsigo/keys)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if name == "" {
		fmt.Fprintln(errOut, "missing --name")
		return 2
	}
	store, err := keys.Open(dir)
	if err != nil {
		fmt.Fprintf(errOut, "open key store: %v\n", err)
		return 1
	}
	exp, err := store.Export(name)
	if err != nil {
		fmt.Fprintf(errOut, "export key: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, exp.Compact)
	return 0
}
