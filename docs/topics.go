// Package docs holds the user manual of exl, one markdown file per topic.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// readme is the topic listing all the others.
const readme = "readme"

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, available topics: %s: %w", topic, strings.Join(Topics(), ", "), err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
//
// The topic "*" stands for all topics.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		expanded := []string{topic}
		if topic == "*" {
			expanded = Topics()
		}
		for _, t := range expanded {
			content, err := GetTopic(t)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// Topics returns the sorted list of documentation topics, readme excluded.
func Topics() []string {
	files, _ := fs.Glob(docs, "*.md") // the pattern is valid
	var topics []string
	for _, file := range files {
		if t := strings.TrimSuffix(file, ".md"); t != readme {
			topics = append(topics, t)
		}
	}
	slices.Sort(topics)
	return topics
}
