// Package fixtures holds recorded API payloads shared by the tests.
package fixtures

import (
	"embed"
	"encoding/json"
	"testing"
)

//go:embed *.json
var files embed.FS

const (
	PostAndComments = "post_and_comments.json"
	Posts           = "posts.json"
	Subreddit       = "subreddit.json"
	Subreddits      = "subreddits.json"
	User            = "user.json"
	Users           = "users.json"
	WikiPage        = "wiki_page.json"
)

// Bytes returns the payload as stored.
func Bytes(t testing.TB, name string) []byte {
	t.Helper()
	b, err := files.ReadFile(name)
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return b
}

// Load decodes a fixture the way encoding/json decodes into any. Each call
// returns a fresh value, so tests may modify it.
func Load(t testing.TB, name string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal(Bytes(t, name), &v); err != nil {
		t.Fatalf("decode fixture %s: %v", name, err)
	}
	return v
}
