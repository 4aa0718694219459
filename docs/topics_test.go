package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme) unexpected error = %v", err)
	}
	if !strings.Contains(content, "ftc") {
		t.Errorf("GetTopic(readme) does not mention the command")
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic(no-such-topic) expected an error")
	}
}

func TestGetTopicsStar(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) unexpected error = %v", err)
	}
	for _, topic := range []string{"Views", "Themes", "Assist"} {
		if !strings.Contains(all, topic) {
			t.Errorf("GetTopics(*) missing section %q", topic)
		}
	}
}

// Every topic must be well-formed markdown opening with a level-1 heading,
// since the topic command feeds them straight to the terminal renderer.
func TestTopicsStartWithHeading(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error = %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("GetAllTopics() returned no topics")
	}

	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%s) unexpected error = %v", topic, err)
		}

		source := []byte(content)
		root := goldmark.DefaultParser().Parse(text.NewReader(source))

		first := root.FirstChild()
		heading, ok := first.(*ast.Heading)
		if !ok {
			t.Errorf("topic %q does not start with a heading", topic)
			continue
		}
		if heading.Level != 1 {
			t.Errorf("topic %q starts with a level %d heading, want 1", topic, heading.Level)
		}
	}
}
