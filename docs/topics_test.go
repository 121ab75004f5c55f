package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the code.
	// It checks two things:
	// 1. Every topic listed in readme.md can be loaded with GetTopic.
	// 2. Every .md file in this directory (excluding readme.md itself) is
	//    listed as a topic in readme.md.

	topicsInReadme := readmeTopics(t)
	if len(topicsInReadme) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		found := false
		for _, topic := range topicsInReadme {
			if topic == base {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}
}

func TestGetTopic_Star(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("failed to get all topics: %v", err)
	}
	for _, topic := range readmeTopics(t) {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("GetTopic(\"*\") is missing topic %q", topic)
		}
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("nonsense"); err == nil {
		t.Error("GetTopic on an unknown topic did not return an error")
	}
}

func TestTopicStructure(t *testing.T) {
	// Every topic must start with a level-1 heading so concatenated output
	// stays readable, and every fenced code block must name its language.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			first := root.FirstChild()
			h, ok := first.(*ast.Heading)
			if !ok || h.Level != 1 {
				t.Errorf("%s does not start with a level-1 heading", file)
			}

			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if fcb, ok := n.(*ast.FencedCodeBlock); ok {
					if fcb.Info == nil || len(fcb.Info.Segment.Value(content)) == 0 {
						t.Errorf("%s has a fenced code block without a language", file)
					}
				}
				return ast.WalkContinue, nil
			})
		})
	}
}

// readmeTopics extracts the topic names listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}
