// Command dsigo manages decentralized social identities: ed25519 keys,
// vCard profiles with endorsements and revocations, and signed RSS feeds.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "key":
		return cmdKey(args[1:], out, errOut)
	case "vcard":
		return cmdVCard(args[1:], out, errOut)
	case "feeds":
		return cmdFeeds(args[1:], out, errOut)
	case "connections":
		return cmdConnections(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "dsigo: decentralized social identity toolchain")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  dsigo key create --name <name> [--dir <dir>] [--force] [--show-mnemonic]")
	fmt.Fprintln(w, "  dsigo key restore --name <name> --mnemonic \"<24 words>\" [--dir <dir>] [--force]")
	fmt.Fprintln(w, "  dsigo key encode <public.pem>")
	fmt.Fprintln(w, "  dsigo key decode <compact-base64>")
	fmt.Fprintln(w, "  dsigo key list [--dir <dir>]")
	fmt.Fprintln(w, "  dsigo key export --name <name> [--dir <dir>]")
	fmt.Fprintln(w, "  dsigo vcard create --out <file.vcf> [--key <name>] [--dir <dir>] [--answers <file>]")
	fmt.Fprintln(w, "  dsigo vcard qr [--out <file.png>] [--size <px>] <file.vcf>")
	fmt.Fprintln(w, "  dsigo vcard cid <file.vcf>")
	fmt.Fprintln(w, "  dsigo feeds new --title <title> [--posts <dir>] [--message <text>]")
	fmt.Fprintln(w, "  dsigo feeds build [--config <file>] [--key <name>] [--sign-priv <private.pem>] [--title ...] [--link ...]")
	fmt.Fprintln(w, "  dsigo connections feed [--out <file.opml>] <dir>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - keys are stored under ~/.dsigo/keys/<name> (0600 private key files)")
	fmt.Fprintln(w, "  - feeds build signs items when a key is given, and builds unsigned otherwise")
	fmt.Fprintln(w, "  - vcard create resumes interrupted sessions from the answers file")
}
