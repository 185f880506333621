package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"dsigo.dev/dsigo/config"
	"dsigo.dev/dsigo/feed"
	"dsigo.dev/dsigo/keys"
	"dsigo.dev/dsigo/mdfeed"
)

func cmdFeeds(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printFeedsUsage(errOut)
		return 2
	}
	switch args[0] {
	case "new":
		return cmdFeedsNew(args[1:], out, errOut)
	case "build":
		return cmdFeedsBuild(args[1:], out, errOut)
	case "help", "-h", "--help":
		printFeedsUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown feeds subcommand: %s\n\n", args[0])
		printFeedsUsage(errOut)
		return 2
	}
}

func printFeedsUsage(w io.Writer) {
	fmt.Fprintln(w, "dsigo feeds: publish markdown posts as a signed RSS feed")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  dsigo feeds new --title <title> [--posts <dir>] [--message <text>]")
	fmt.Fprintln(w, "  dsigo feeds build [--config <file>] [--key <name>] [--sign-priv <private.pem>]")
	fmt.Fprintln(w, "                    [--title ...] [--link ...] [--description ...] [--posts <dir>] [--out <file>]")
}

func cmdFeedsNew(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("feeds new", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var title string
	var postsDir string
	var message string
	fs.StringVar(&title, "title", "", "Post title")
	fs.StringVar(&postsDir, "posts", "posts", "Posts directory")
	fs.StringVar(&message, "message", "", "Post body (markdown)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if title == "" {
		fmt.Fprintln(errOut, "missing --title")
		return 2
	}
	log := newLogger(errOut)

	if err := os.MkdirAll(postsDir, 0o755); err != nil {
		log.WithError(err).Error("create posts directory")
		return 1
	}
	path := filepath.Join(postsDir, mdfeed.Slugify(title)+".md")
	if err := mdfeed.CreatePost(path, title, message, time.Now()); err != nil {
		log.WithError(err).Error("create post")
		return 1
	}
	log.WithField("path", path).Info("created post")
	fmt.Fprintln(out, path)
	return 0
}

func cmdFeedsBuild(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("feeds build", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var configPath string
	var keyName string
	var dir string
	var signPriv string
	var flags config.Config
	fs.StringVar(&configPath, "config", "", "Config file (default ~/.dsigo/config.yaml)")
	fs.StringVar(&keyName, "key", "", "Stored key to sign items with")
	fs.StringVar(&dir, "dir", "", "Key store directory (default ~/.dsigo/keys)")
	fs.StringVar(&signPriv, "sign-priv", "", "Armored private key file to sign items with")
	fs.StringVar(&flags.Feed.Title, "title", "", "Feed title")
	fs.StringVar(&flags.Feed.Link, "link", "", "Feed link")
	fs.StringVar(&flags.Feed.Description, "description", "", "Feed description")
	fs.StringVar(&flags.Feed.Language, "language", "", "Feed language")
	fs.StringVar(&flags.Feed.AuthorName, "author-name", "", "Feed author name")
	fs.StringVar(&flags.Feed.AuthorEmail, "author-email", "", "Feed author email")
	fs.StringVar(&flags.PostsDir, "posts", "", "Posts directory")
	fs.StringVar(&flags.Output, "out", "", "Output RSS file")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if keyName != "" && signPriv != "" {
		fmt.Fprintln(errOut, "conflicting signer flags: --key cannot be combined with --sign-priv")
		return 2
	}
	log := newLogger(errOut)

	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			log.WithError(err).Error("resolve config path")
			return 1
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.WithError(err).Error("load config")
		return 1
	}
	cfg.Merge(&flags)
	if keyName == "" {
		keyName = cfg.KeyName
	}

	signer, err := resolveSigner(keyName, dir, signPriv)
	if err != nil {
		log.WithError(err).Error("load signing key")
		return 1
	}
	if signer == nil {
		log.Warn("no signing key given; building an unsigned feed")
	}

	posts, err := mdfeed.Collect(cfg.PostsDir)
	if err != nil {
		log.WithError(err).Error("collect posts")
		return 1
	}

	items := make([]feed.Item, 0, len(posts))
	for _, post := range posts {
		items = append(items, feed.Item{
			ID:          mdfeed.Slugify(post.Title),
			Title:       post.Title,
			Link:        post.Link,
			Description: post.HTML,
			PubDate:     post.Date,
		})
	}
	if err := feed.SignItems(signer, items); err != nil {
		log.WithError(err).Error("sign items")
		return 1
	}

	info := feed.Info{
		Title:       cfg.Feed.Title,
		Link:        cfg.Feed.Link,
		Description: cfg.Feed.Description,
		Language:    cfg.Feed.Language,
		AuthorName:  cfg.Feed.AuthorName,
		AuthorEmail: cfg.Feed.AuthorEmail,
		BuildDate:   time.Now(),
	}
	rss, err := feed.RenderRSS(info, items)
	if err != nil {
		log.WithError(err).Error("render rss")
		return 1
	}
	if err := os.WriteFile(cfg.Output, rss, 0o644); err != nil {
		log.WithError(err).Error("write rss")
		return 1
	}
	log.WithField("path", cfg.Output).WithField("items", len(items)).Info("built feed")
	fmt.Fprintln(out, cfg.Output)
	return 0
}

// resolveSigner builds a feed signer from either a stored key name or an
// armored private key file. Both empty means unsigned mode.
func resolveSigner(keyName, dir, signPriv string) (*feed.Signer, error) {
	switch {
	case keyName != "":
		store, err := keys.Open(dir)
		if err != nil {
			return nil, err
		}
		kp, err := store.Load(keyName)
		if err != nil {
			return nil, err
		}
		compact, err := keys.CompactID(kp.Public)
		if err != nil {
			return nil, err
		}
		return &feed.Signer{Private: kp.Private, KeyID: compact}, nil
	case signPriv != "":
		armored, err := os.ReadFile(signPriv)
		if err != nil {
			return nil, err
		}
		priv, err := keys.LoadPrivate(armored)
		if err != nil {
			return nil, err
		}
		kp, err := keys.FromSeed(priv.Seed())
		if err != nil {
			return nil, err
		}
		compact, err := keys.CompactID(kp.Public)
		if err != nil {
			return nil, err
		}
		return &feed.Signer{Private: kp.Private, KeyID: compact}, nil
	default:
		return nil, nil
	}
}
