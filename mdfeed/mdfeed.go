// Package mdfeed turns a directory of markdown files into feed items.
//
// Each file may start with simple front matter:
//
//	---
//	title: My Post
//	date: 2025-01-01
//	link: https://example.com/my-post
//	---
//
// Missing titles fall back to the file name; missing dates fall back to
// the file's modification time. The body is rendered to HTML.
package mdfeed

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
)

// Post is one parsed markdown source.
type Post struct {
	Title string
	Date  time.Time
	Link  string
	HTML  string
	Path  string
}

const (
	dateTimeLayout = "2006-01-02T15:04:05Z"
	dateOnlyLayout = "2006-01-02"
)

// ParseFile reads one markdown file: front matter, fallbacks, HTML body.
func ParseFile(path string) (*Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	front, body := splitFrontMatter(string(data))
	post := &Post{
		Title: front["title"],
		Link:  front["link"],
		Path:  path,
	}

	if post.Title == "" {
		base := filepath.Base(path)
		post.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if raw := front["date"]; raw != "" {
		layout := dateOnlyLayout
		if strings.Contains(raw, "T") {
			layout = dateTimeLayout
		}
		parsed, perr := time.Parse(layout, raw)
		if perr != nil {
			return nil, fmt.Errorf("%s: invalid date %q: %w", path, raw, perr)
		}
		post.Date = parsed
	} else {
		info, serr := os.Stat(path)
		if serr != nil {
			return nil, serr
		}
		post.Date = info.ModTime().UTC()
	}

	var html bytes.Buffer
	if err := goldmark.Convert([]byte(body), &html); err != nil {
		return nil, fmt.Errorf("%s: render markdown: %w", path, err)
	}
	post.HTML = strings.TrimRight(html.String(), "\n")
	return post, nil
}

// splitFrontMatter separates the YAML-like front matter block from the
// body. Only title, date, and link keys are recognized.
func splitFrontMatter(text string) (map[string]string, string) {
	front := make(map[string]string)
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return front, text
	}

	i := 1
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "---" {
			break
		}
		for _, field := range []string{"title", "date", "link"} {
			prefix := field + ":"
			if strings.HasPrefix(line, prefix) {
				front[field] = strings.TrimSpace(strings.TrimPrefix(line, prefix))
			}
		}
	}
	if i == len(lines) {
		// Unterminated front matter: treat the whole file as body.
		return map[string]string{}, text
	}
	return front, strings.Join(lines[i+1:], "\n")
}

// Collect walks dir recursively, parses every .md file, and returns the
// posts sorted newest first.
func Collect(dir string) ([]*Post, error) {
	var posts []*Post
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		post, perr := ParseFile(path)
		if perr != nil {
			return perr
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(a, b int) bool {
		return posts[a].Date.After(posts[b].Date)
	})
	return posts, nil
}

// CreatePost writes a new markdown stub with front matter. An existing
// file at path is an error, never overwritten.
func CreatePost(path, title, message string, date time.Time) error {
	var sb strings.Builder
	sb.WriteString("---\n")
	if title != "" {
		sb.WriteString("title: " + title + "\n")
	}
	sb.WriteString("date: " + date.UTC().Format(dateTimeLayout) + "\n")
	sb.WriteString("---\n")
	sb.WriteString(message)
	sb.WriteString("\n")

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.WriteString(sb.String()); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
